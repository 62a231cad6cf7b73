package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Ordered is implemented by types that carry their own total order, like time.Time.
// Compare returns a negative number if u < v, 0 if u == v, and a positive number if u > v.
type Ordered[T any] interface {
	Compare(v T) int
}

// AVLTree is a height balanced binary search tree with no repeated values. Every cell keeps
// the size of its subtree, so ranks are found in O(log n).
// T is the type of the values; its order comes from the type itself, see New and NewOf.
// S is the type used for cell indexes and subtree sizes, it bounds the number of cells:
// an AVLTree[T, uint8] holds at most 255 values.
// The cell that a value is inserted into keeps holding it until the value is removed, so the
// Handle returned by Insert can be kept and used instead of searching again. Rotations and
// removals of other values never change what a Handle designates.
// An AVLTree is not safe for concurrent use.
type AVLTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp func(T, T) int
}

// New tree of cmp.Ordered values, with room for hint values before growing.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T](hint), cmp.Compare[T]}
}

// NewOf is New for values that implement Ordered.
func NewOf[T Ordered[T], S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T](hint), func(a, b T) int { return a.Compare(b) }}
}

// Size returns the number of values in the tree.
// Time: O(1)
func (u *AVLTree[T, S]) Size() S {
	return u.cs[u.root].sz
}

// Height of the tree, 0 when empty.
// Time: O(1)
func (u *AVLTree[T, S]) Height() uint8 {
	return u.cs[u.root].h
}

// Root returns the handle of the root cell, Nil when the tree is empty.
func (u *AVLTree[T, S]) Root() Handle[S] {
	return u.handle(u.root)
}

// search returns the cell holding v, or 0 and the cell under which v would be linked.
func (u *AVLTree[T, S]) search(v T) (at, parent S, order int) {
	for curI := u.root; curI != 0; {
		if order = u.cmp(v, u.vs[curI]); order < 0 {
			parent, curI = curI, u.cs[curI].l
		} else if order > 0 {
			parent, curI = curI, u.cs[curI].r
		} else {
			return curI, parent, 0
		}
	}
	return
}

// Insert v. Returns the Handle of the new cell, Failure if v is already in the tree,
// or AllocationError if no new cell can be indexed by S.
// Time: O(log n)
func (u *AVLTree[T, S]) Insert(v T) Result[Handle[S]] {
	at, p, order := u.search(v)
	if at != 0 {
		return fail[Handle[S]](Failure)
	}
	i, has := u.alloc(v, linked)
	if !has {
		return fail[Handle[S]](AllocationError)
	}
	u.link(i, p, order < 0)
	return ok(u.handle(i))
}

// Find the cell holding v. Failure if there is none.
// Time: O(log n)
func (u *AVLTree[T, S]) Find(v T) Result[Handle[S]] {
	if at, _, _ := u.search(v); at != 0 {
		return ok(u.handle(at))
	}
	return fail[Handle[S]](Failure)
}

// Has v in the tree.
// Time: O(log n)
func (u *AVLTree[T, S]) Has(v T) bool {
	at, _, _ := u.search(v)
	return at != 0
}

// Value held by the cell of h. InvalidInput if h doesn't designate a cell of the tree.
// Time: O(1)
func (u *AVLTree[T, S]) Value(h Handle[S]) Result[T] {
	i, has := u.lookup(h, linked)
	if !has {
		return fail[T](InvalidInput)
	}
	return ok(u.vs[i])
}

// Remove v from the tree. Failure if v isn't in the tree.
// Only the cell that held v is freed: its Handle turns stale, all other Handles keep
// designating the values they did.
// Time: O(log n)
func (u *AVLTree[T, S]) Remove(v T) Status {
	at, _, _ := u.search(v)
	if at == 0 {
		return Failure
	}
	u.unlink(at)
	return Success
}

// RemoveAt removes the value held by the cell of h, without searching for it.
// InvalidInput if h doesn't designate a cell of the tree.
// Time: O(log n)
func (u *AVLTree[T, S]) RemoveAt(h Handle[S]) Status {
	i, has := u.lookup(h, linked)
	if !has {
		return InvalidInput
	}
	u.unlink(i)
	return Success
}

// Relocate makes the cells of a and b trade places: each takes the other's position in the
// tree, value, height and size. Afterwards a designates the value b designated and the other
// way around; the tree itself is unchanged.
// InvalidInput if a or b doesn't designate a cell of the tree, or if they are the same.
// Time: O(1)
func (u *AVLTree[T, S]) Relocate(a, b Handle[S]) Status {
	ai, has := u.lookup(a, linked)
	if !has {
		return InvalidInput
	}
	bi, has := u.lookup(b, linked)
	if !has || ai == bi {
		return InvalidInput
	}
	u.relocate(ai, bi)
	return Success
}

// Parent of the cell of h, Nil for the root.
// InvalidInput if h doesn't designate a cell of the tree.
// Time: O(1)
func (u *AVLTree[T, S]) Parent(h Handle[S]) Result[Handle[S]] {
	i, has := u.lookup(h, linked)
	if !has {
		return fail[Handle[S]](InvalidInput)
	}
	return ok(u.handle(u.cs[i].p))
}

// Clear the tree. Every cell is freed, including the ones made by Make, and every Handle turns stale.
// Memory of the arena is kept for reuse.
// Time: O(cells)
func (u *AVLTree[T, S]) Clear() {
	for i := len(u.cs) - 1; i > 0; i-- {
		if u.cs[i].st != free {
			u.addFree(S(i))
		}
	}
	u.root = 0
}
