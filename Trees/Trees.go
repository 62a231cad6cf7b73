package Trees

import "golang.org/x/exp/constraints"

// RankTree is an ordered set that hands out a Handle for every stored value. A Handle stays
// attached to its value until that value is removed, so it can be kept and passed back instead
// of searching for the value again.
// Operations that can fail return a Status, or a Result pairing a Status with the answer; the
// answer is meaningful only when the Status is Success. A failed operation leaves the tree
// exactly as it was. Methods are implemented iteratively unless noted.
type RankTree[T any, S constraints.Unsigned] interface {
	//Insert v. Failure if v is already present.
	Insert(v T) Result[Handle[S]]
	//Remove v. Failure if v isn't present.
	Remove(v T) Status
	//RemoveAt removes the value designated by h.
	RemoveAt(h Handle[S]) Status
	//Find the Handle of v. Failure if v isn't present.
	Find(v T) Result[Handle[S]]
	//Has v in the tree.
	Has(v T) bool
	//Value designated by h.
	Value(h Handle[S]) Result[T]
	//Minimum element of the tree.
	Minimum() Result[Handle[S]]
	//Maximum element of the tree.
	Maximum() Result[Handle[S]]
	//Predecessor returns the greatest element less than the one designated by h, Nil if none.
	Predecessor(h Handle[S]) Result[Handle[S]]
	//Successor returns the smallest element greater than the one designated by h, Nil if none.
	Successor(h Handle[S]) Result[Handle[S]]
	//Select the k-th smallest element, 0<=k<Size().
	Select(k S) Result[Handle[S]]
	//RankOf v according to in-order, starting from 0. If v isn't present the rank is the one
	//v would have if it was inserted, and the second return value is false.
	RankOf(v T) (S, bool)
	//RankAt is RankOf for the element designated by h.
	RankAt(h Handle[S]) Result[S]
	//Size of the tree.
	Size() S
	//InOrder calls f on the elements in ascending order with their ranks until f returns
	//false. The tree must not be modified during the iteration.
	InOrder(f func(k S, v T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value at some node
	//violates the properties of that specific implementation, including its balance.
	Corrupt() bool
}

var _ RankTree[int, uint] = (*AVLTree[int, uint])(nil)
