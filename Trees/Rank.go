package Trees

// Select the cell holding the k-th smallest value, starting from 0.
// InvalidInput if k >= Size().
// Time: O(log n)
func (u *AVLTree[T, S]) Select(k S) Result[Handle[S]] {
	if k >= u.Size() {
		return fail[Handle[S]](InvalidInput)
	}
	return ok(u.handle(u.selectK(k)))
}

// RankOf v, starting from 0. If v isn't found, returns the rank as if v is added to the tree.
// Time: O(log n)
func (u *AVLTree[T, S]) RankOf(v T) (S, bool) {
	var ra S = 0
	for curI := u.root; curI != 0; {
		if order := u.cmp(v, u.vs[curI]); order < 0 {
			curI = u.cs[curI].l
		} else if order > 0 {
			ra += u.cs[u.cs[curI].l].sz + 1
			curI = u.cs[curI].r
		} else {
			return ra + u.cs[u.cs[curI].l].sz, true
		}
	}
	return ra, false
}

// RankAt returns the rank of the value held by the cell of h, walking up from the cell.
// InvalidInput if h doesn't designate a cell of the tree.
// Time: O(log n)
func (u *AVLTree[T, S]) RankAt(h Handle[S]) Result[S] {
	i, has := u.lookup(h, linked)
	if !has {
		return fail[S](InvalidInput)
	}
	return ok(u.rankOf(i))
}

// Minimum returns the cell of the smallest value. Failure on an empty tree.
// Time: O(log n)
func (u *AVLTree[T, S]) Minimum() Result[Handle[S]] {
	if u.root == 0 {
		return fail[Handle[S]](Failure)
	}
	return ok(u.handle(u.minimum(u.root)))
}

// Maximum returns the cell of the greatest value. Failure on an empty tree.
// Time: O(log n)
func (u *AVLTree[T, S]) Maximum() Result[Handle[S]] {
	if u.root == 0 {
		return fail[Handle[S]](Failure)
	}
	return ok(u.handle(u.maximum(u.root)))
}

// Successor returns the cell of the smallest value greater than the one held by h, Nil if there is none.
// InvalidInput if h doesn't designate a cell of the tree.
// Time: O(log n), amortized O(1) when walking the whole tree.
func (u *AVLTree[T, S]) Successor(h Handle[S]) Result[Handle[S]] {
	i, has := u.lookup(h, linked)
	if !has {
		return fail[Handle[S]](InvalidInput)
	}
	return ok(u.handle(u.next(i)))
}

// Predecessor returns the cell of the greatest value less than the one held by h, Nil if there is none.
// InvalidInput if h doesn't designate a cell of the tree.
// Time: O(log n), amortized O(1) when walking the whole tree.
func (u *AVLTree[T, S]) Predecessor(h Handle[S]) Result[Handle[S]] {
	i, has := u.lookup(h, linked)
	if !has {
		return fail[Handle[S]](InvalidInput)
	}
	return ok(u.handle(u.prev(i)))
}
