package Trees

import (
	"cmp"

	Go_RankTree "github.com/g-m-twostay/go-ranktree"
	"github.com/g-m-twostay/go-ranktree/Queues"
	"golang.org/x/exp/constraints"
)

// Make a detached cell holding v, to be linked later by Assemble. The tree itself doesn't change.
// AllocationError if no new cell can be indexed by S.
func (u *AVLTree[T, S]) Make(v T) Result[Handle[S]] {
	i, has := u.alloc(v, detached)
	if !has {
		return fail[Handle[S]](AllocationError)
	}
	return ok(u.handle(i))
}

// Discard a detached cell made by Make. InvalidInput if h isn't one.
func (u *AVLTree[T, S]) Discard(h Handle[S]) Status {
	i, has := u.lookup(h, detached)
	if !has {
		return InvalidInput
	}
	u.addFree(i)
	return Success
}

// Assemble the detached cells hs[lo:hi] into a perfectly balanced tree that replaces the content
// of u; the cells previously in the tree are freed. The values of the cells must be in strictly
// ascending order. The handles in hs stay valid and now designate cells of the tree.
// Returns the handle of the new root, or InvalidInput with the tree unchanged if the range is
// empty or out of hs, a handle isn't a detached cell of u, or the values aren't ascending.
// Time: O(n)
func (u *AVLTree[T, S]) Assemble(hs []Handle[S], lo, hi int) Result[Handle[S]] {
	if lo < 0 || hi > len(hs) || lo >= hi {
		return fail[Handle[S]](InvalidInput)
	}
	is := make([]S, hi-lo)
	for k, h := range hs[lo:hi] {
		i, has := u.lookup(h, detached)
		if !has || k > 0 && u.cmp(u.vs[is[k-1]], u.vs[i]) >= 0 {
			return fail[Handle[S]](InvalidInput)
		}
		is[k] = i
	}
	for i := len(u.cs) - 1; i > 0; i-- {
		if u.cs[i].st == linked {
			u.addFree(S(i))
		}
	}
	u.root = u.build(is, 0, len(is), 0)
	u.sizeUp(u.root)
	return ok(u.handle(u.root))
}

// Rebuild the tree into a perfectly balanced shape. Every Handle keeps designating its value.
// Time: O(n)
func (u *AVLTree[T, S]) Rebuild() {
	is := make([]S, 0, u.Size())
	for i := u.minimum(u.root); i != 0; i = u.next(i) {
		is = append(is, i)
	}
	u.root = u.build(is, 0, len(is), 0)
	u.sizeUp(u.root)
}

// From builds a tree holding the values of vs, which must be sorted in strictly ascending order.
// This is faster than repeatedly calling Insert.
// InvalidInput if vs isn't strictly ascending, AllocationError if S can't index len(vs) cells.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) Result[*AVLTree[T, S]] {
	return New[T, S](S(len(vs))).fill(vs)
}

// FromOf is From for values that implement Ordered.
func FromOf[T Ordered[T], S constraints.Unsigned](vs []T) Result[*AVLTree[T, S]] {
	return NewOf[T, S](S(len(vs))).fill(vs)
}

func (u *AVLTree[T, S]) fill(vs []T) Result[*AVLTree[T, S]] {
	if len(vs) == 0 {
		return ok(u)
	}
	hs := make([]Handle[S], len(vs))
	for k, v := range vs {
		r := u.Make(v)
		if !r.Ok() {
			return fail[*AVLTree[T, S]](r.Status())
		}
		hs[k] = r.Ans()
	}
	if r := u.Assemble(hs, 0, len(hs)); !r.Ok() {
		return fail[*AVLTree[T, S]](r.Status())
	}
	return ok(u)
}

// InOrder calls f on every value in ascending order together with its rank, until f returns false.
// The tree must not be modified by f.
// Time: O(n)
func (u *AVLTree[T, S]) InOrder(f func(k S, v T) bool) {
	var k S
	for i := u.minimum(u.root); i != 0; i = u.next(i) {
		if !f(k, u.vs[i]) {
			return
		}
		k++
	}
}

// Values in ascending order.
func (u *AVLTree[T, S]) Values() []T {
	vs := make([]T, 0, u.Size())
	u.InOrder(func(_ S, v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// level is a cell queued by Levels with its depth.
type level[S constraints.Unsigned] struct {
	i S
	d uint8
}

// Levels calls f on every cell breadth first, from the root at depth 0 and left to right
// within a depth, until f returns false.
// Time: O(n)
func (u *AVLTree[T, S]) Levels(f func(depth uint8, h Handle[S], v T) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[level[S]](uint(u.Size()+1) / 2)
	for q.Push(level[S]{u.root, 0}); !q.Empty(); {
		it, _ := q.Pop()
		if !f(it.d, u.handle(it.i), u.vs[it.i]) {
			return
		}
		if c := u.cs[it.i]; c.l != 0 {
			q.Push(level[S]{c.l, it.d + 1})
		}
		if c := u.cs[it.i]; c.r != 0 {
			q.Push(level[S]{c.r, it.d + 1})
		}
	}
}

// Corrupt reports whether the tree's structure is broken: values out of order, a balance figure
// outside [-1,1], a wrong height or size, a child whose parent link doesn't point back, or a
// linked cell that isn't reachable exactly once from the root.
// Time: O(cells)
func (u *AVLTree[T, S]) Corrupt() bool {
	if u.cs[0] != (cell[S]{}) {
		return true
	}
	if u.root != 0 && u.cs[u.root].p != 0 {
		return true
	}
	seen := Go_RankTree.NewBitArray(len(u.cs))
	if u.corrupt(u.root, 0, 0, seen) {
		return true
	}
	var n S
	for i := range u.cs {
		if u.cs[i].st == linked {
			n++
		}
	}
	return n != u.Size() || seen.Count() != int(n)
}

// corrupt checks the subtree at i, whose values must lie strictly between those of lo and hi when they aren't 0.
func (u *AVLTree[T, S]) corrupt(i, lo, hi S, seen Go_RankTree.BitArray) bool {
	if i == 0 {
		return false
	}
	c := u.cs[i]
	if seen.Swap(int(i)) || c.st != linked {
		return true
	}
	if lo != 0 && u.cmp(u.vs[lo], u.vs[i]) >= 0 || hi != 0 && u.cmp(u.vs[i], u.vs[hi]) >= 0 {
		return true
	}
	if c.l != 0 && u.cs[c.l].p != i || c.r != 0 && u.cs[c.r].p != i {
		return true
	}
	if b := u.balance(i); b > 1 || b < -1 {
		return true
	}
	lc, rc := u.cs[c.l], u.cs[c.r]
	if c.h != max(lc.h, rc.h)+1 || c.sz != lc.sz+rc.sz+1 {
		return true
	}
	return u.corrupt(c.l, lo, i, seen) || u.corrupt(c.r, i, hi, seen)
}
