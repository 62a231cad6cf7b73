package Trees

import "golang.org/x/exp/constraints"

type state uint8

const (
	free     state = iota // on the free list, l is the next free index
	detached              // made by Make, holds a value but isn't in the tree
	linked                // reachable from the root
)

// A storage cell of the AVLTree. Its value lives in the parallel value array at the same index.
// Index 0 is the sentinel for an absent cell: h=0 and sz=0, never written.
type cell[S constraints.Unsigned] struct {
	p, l, r, sz S // p doesn't own; l and r are owned by this cell only.
	h           uint8
	st          state
	gen         uint32 // bumped every time the cell is freed.
}

// Handle designates a cell of an AVLTree. It stays valid until the cell is freed, which
// happens only when the value it holds is removed or the tree is cleared. A stale Handle is
// detected and rejected; it never designates another element.
// The zero value is Nil.
type Handle[S constraints.Unsigned] struct {
	i   S
	gen uint32
}

// Nil returns the handle that designates no cell.
func Nil[S constraints.Unsigned]() Handle[S] {
	return Handle[S]{}
}

func (h Handle[S]) IsNil() bool {
	return h.i == 0
}

// Index of the cell in the tree's arena. Indexes of freed cells are reused by later insertions.
func (h Handle[S]) Index() S {
	return h.i
}
