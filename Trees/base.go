package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the arena of cells and the structural half of the tree; it never compares values.
// cs[0] is the absent cell. free is the beginning of the linked list of free indexes, cell.l represents next.
type base[T any, S constraints.Unsigned] struct {
	root, free S
	cs         []cell[S]
	vs         []T // vs[i] is the value of cs[i]. len(vs)==len(cs).
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{cs: make([]cell[S], 1, uint(hint)+1), vs: make([]T, 1, uint(hint)+1)}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	c := &u.cs[a]
	*c = cell[S]{l: u.free, st: free, gen: c.gen + 1}
	u.vs[a] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.cs[u.free].l
	return b
}

// alloc a cell holding v in state st. Returns false when S can't index another cell.
func (u *base[T, S]) alloc(v T, st state) (S, bool) {
	i := u.popFree()
	if i == 0 {
		if i = S(len(u.cs)); uint64(i) != uint64(len(u.cs)) {
			return 0, false
		}
		u.cs = append(u.cs, cell[S]{})
		u.vs = append(u.vs, v)
	} else {
		u.vs[i] = v
	}
	c := &u.cs[i]
	*c = cell[S]{sz: 1, h: 1, st: st, gen: c.gen}
	return i, true
}

func (u *base[T, S]) handle(i S) Handle[S] {
	if i == 0 {
		return Handle[S]{}
	}
	return Handle[S]{i, u.cs[i].gen}
}

// lookup the index of h if h designates a cell in state st.
func (u *base[T, S]) lookup(h Handle[S], st state) (S, bool) {
	if h.i == 0 || uint64(h.i) >= uint64(len(u.cs)) {
		return 0, false
	}
	c := &u.cs[h.i]
	return h.i, c.gen == h.gen && c.st == st
}

// update recomputes height and size of i from its children.
func (u *base[T, S]) update(i S) {
	c := &u.cs[i]
	c.h = max(u.cs[c.l].h, u.cs[c.r].h) + 1
	c.sz = u.cs[c.l].sz + u.cs[c.r].sz + 1
}

// balance figure of i, height(left)-height(right). The absent cell has height 0 on either side.
func (u *base[T, S]) balance(i S) int {
	return int(u.cs[u.cs[i].l].h) - int(u.cs[u.cs[i].r].h)
}

// replaceChild makes n take the slot of o under p, or the root when p is absent.
func (u *base[T, S]) replaceChild(p, o, n S) {
	if p == 0 {
		u.root = n
	} else if u.cs[p].l == o {
		u.cs[p].l = n
	} else {
		u.cs[p].r = n
	}
}

// rotateLeft fixes a right heavy i: its right child takes its slot. Returns the new subtree root.
// Time: O(1)
func (u *base[T, S]) rotateLeft(i S) S {
	r := u.cs[i].r
	rl, p := u.cs[r].l, u.cs[i].p
	u.replaceChild(p, i, r)
	u.cs[r].p, u.cs[r].l = p, i
	u.cs[i].p, u.cs[i].r = r, rl
	if rl != 0 {
		u.cs[rl].p = i
	}
	u.update(i)
	u.update(r)
	return r
}

// rotateRight fixes a left heavy i: its left child takes its slot. Returns the new subtree root.
// Time: O(1)
func (u *base[T, S]) rotateRight(i S) S {
	l := u.cs[i].l
	lr, p := u.cs[l].r, u.cs[i].p
	u.replaceChild(p, i, l)
	u.cs[l].p, u.cs[l].r = p, i
	u.cs[i].p, u.cs[i].l = l, lr
	if lr != 0 {
		u.cs[lr].p = i
	}
	u.update(i)
	u.update(l)
	return l
}

// rotateLeftRight fixes i that is left heavy while its left child is right heavy.
func (u *base[T, S]) rotateLeftRight(i S) S {
	u.rotateLeft(u.cs[i].l)
	return u.rotateRight(i)
}

// rotateRightLeft fixes i that is right heavy while its right child is left heavy.
func (u *base[T, S]) rotateRightLeft(i S) S {
	u.rotateRight(u.cs[i].r)
	return u.rotateLeft(i)
}

// rebalance walks from i up to the root, rotating where the balance figure leaves [-1,1] and
// otherwise recomputing height and size.
// Time: O(log n)
func (u *base[T, S]) rebalance(i S) {
	for i != 0 {
		if b := u.balance(i); b > 1 {
			if u.balance(u.cs[i].l) >= 0 {
				i = u.rotateRight(i)
			} else {
				i = u.rotateLeftRight(i)
			}
		} else if b < -1 {
			if u.balance(u.cs[i].r) <= 0 {
				i = u.rotateLeft(i)
			} else {
				i = u.rotateRightLeft(i)
			}
		} else {
			u.update(i)
		}
		i = u.cs[i].p
	}
}

// link i under p on the left or right side; p==0 makes i the root. Sizes of the ancestors grow by one.
func (u *base[T, S]) link(i, p S, left bool) {
	u.cs[i].p = p
	if p == 0 {
		u.root = i
	} else if left {
		u.cs[p].l = i
	} else {
		u.cs[p].r = i
	}
	for ; p != 0; p = u.cs[p].p {
		u.cs[p].sz++
	}
	u.rebalance(i)
}

// splice out i that has at most one child, free it, and rebalance from its former parent.
func (u *base[T, S]) splice(i S) {
	c := u.cs[i]
	child := c.l
	if child == 0 {
		child = c.r
	}
	u.replaceChild(c.p, i, child)
	if child != 0 {
		u.cs[child].p = c.p
	}
	if c.p != 0 {
		u.cs[c.p].sz--
	}
	u.addFree(i)
	u.rebalance(c.p)
}

// unlink removes the linked cell i from the tree and frees it. Every other cell keeps its value.
// Time: O(log n)
func (u *base[T, S]) unlink(i S) {
	if u.cs[i].l == 0 || u.cs[i].r == 0 {
		u.splice(i)
		return
	}
	s := u.minimum(u.cs[i].r)
	sv := u.vs[s]
	u.relocate(i, s)
	// i sits in the old slot of s now, which has no left child.
	u.splice(i)
	u.vs[s] = sv
}

// relocate makes the distinct linked cells a and b trade their slots in the tree, their values, heights and sizes.
// The value held at each slot doesn't change, only which cell holds it.
// Time: O(1)
func (u *base[T, S]) relocate(a, b S) {
	ca, cb := u.cs[a], u.cs[b]
	other := func(i S) S {
		switch i {
		case a:
			return b
		case b:
			return a
		}
		return i
	}
	if ca.p == cb.p { // siblings
		p := &u.cs[ca.p]
		p.l, p.r = p.r, p.l
	} else {
		if ca.p != b {
			u.replaceChild(ca.p, a, b)
		}
		if cb.p != a {
			u.replaceChild(cb.p, b, a)
		}
	}
	for _, c := range [2]S{ca.l, ca.r} {
		if c != 0 && c != b {
			u.cs[c].p = b
		}
	}
	for _, c := range [2]S{cb.l, cb.r} {
		if c != 0 && c != a {
			u.cs[c].p = a
		}
	}
	u.cs[a].p, u.cs[a].l, u.cs[a].r = other(cb.p), other(cb.l), other(cb.r)
	u.cs[b].p, u.cs[b].l, u.cs[b].r = other(ca.p), other(ca.l), other(ca.r)
	u.cs[a].h, u.cs[b].h = cb.h, ca.h
	u.cs[a].sz, u.cs[b].sz = cb.sz, ca.sz
	u.vs[a], u.vs[b] = u.vs[b], u.vs[a]
}

func (u *base[T, S]) minimum(i S) S {
	for i != 0 && u.cs[i].l != 0 {
		i = u.cs[i].l
	}
	return i
}

func (u *base[T, S]) maximum(i S) S {
	for i != 0 && u.cs[i].r != 0 {
		i = u.cs[i].r
	}
	return i
}

// next cell of i in order, 0 if i is the last.
func (u *base[T, S]) next(i S) S {
	if r := u.cs[i].r; r != 0 {
		return u.minimum(r)
	}
	p := u.cs[i].p
	for p != 0 && u.cs[p].r == i {
		i, p = p, u.cs[p].p
	}
	return p
}

// prev cell of i in order, 0 if i is the first.
func (u *base[T, S]) prev(i S) S {
	if l := u.cs[i].l; l != 0 {
		return u.maximum(l)
	}
	p := u.cs[i].p
	for p != 0 && u.cs[p].l == i {
		i, p = p, u.cs[p].p
	}
	return p
}

// rankOf the linked cell i, starting from 0.
func (u *base[T, S]) rankOf(i S) S {
	ra := u.cs[u.cs[i].l].sz
	for p := u.cs[i].p; p != 0; i, p = p, u.cs[p].p {
		if u.cs[p].r == i {
			ra += u.cs[u.cs[p].l].sz + 1
		}
	}
	return ra
}

// selectK finds the cell of rank k, k < size.
func (u *base[T, S]) selectK(k S) S {
	for curI := u.root; curI != 0; {
		if l := u.cs[curI].l; l == 0 {
			if k == 0 {
				return curI
			}
			k--
			curI = u.cs[curI].r
		} else if lsz := u.cs[l].sz; k == lsz {
			return curI
		} else if k < lsz {
			curI = l
		} else {
			k -= lsz + 1
			curI = u.cs[curI].r
		}
	}
	return 0
}

// build links is[lo:hi] into a subtree by median split under p, fixing parent links and heights bottom-up.
// Sizes are left for sizeUp.
func (u *base[T, S]) build(is []S, lo, hi int, p S) S {
	if lo >= hi {
		return 0
	}
	mid := lo + (hi-lo)>>1
	i := is[mid]
	c := &u.cs[i]
	c.p, c.st = p, linked
	c.l = u.build(is, lo, mid, i)
	c.r = u.build(is, mid+1, hi, i)
	c.h = max(u.cs[c.l].h, u.cs[c.r].h) + 1
	return i
}

// sizeUp finalizes the sizes of the subtree rooted at i.
func (u *base[T, S]) sizeUp(i S) S {
	if i == 0 {
		return 0
	}
	c := &u.cs[i]
	c.sz = u.sizeUp(c.l) + u.sizeUp(c.r) + 1
	return c.sz
}
