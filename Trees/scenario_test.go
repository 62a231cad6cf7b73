package Trees

import (
	"slices"
	"testing"

	"golang.org/x/exp/constraints"
)

// levels of the tree, values left to right.
func levels[T any, S constraints.Unsigned](u *AVLTree[T, S]) [][]T {
	var ls [][]T
	u.Levels(func(d uint8, _ Handle[S], v T) bool {
		if int(d) == len(ls) {
			ls = append(ls, nil)
		}
		ls[d] = append(ls[d], v)
		return true
	})
	return ls
}

func insertAll[T any, S constraints.Unsigned](t *testing.T, u *AVLTree[T, S], vs ...T) map[any]Handle[S] {
	t.Helper()
	hs := make(map[any]Handle[S], len(vs))
	for _, v := range vs {
		r := u.Insert(v)
		if !r.Ok() {
			t.Fatalf("failed to insert key %v: %v", v, r.Err())
		}
		hs[v] = r.Ans()
	}
	return hs
}

func TestAVLTree_AscendingShape(t *testing.T) {
	tree := New[int, uint8](0)
	insertAll(t, tree, 1, 2, 3)
	if v := tree.Value(tree.Root()).Ans(); v != 2 || tree.Height() != 2 {
		t.Fatalf("after 3 inserts root is %d with height %d, want 2 and 2", v, tree.Height())
	}
	insertAll(t, tree, 4, 5, 6, 7)
	if tree.Height() != 3 {
		t.Fatalf("height is %d, want 3", tree.Height())
	}
	want := [][]int{{4}, {2, 6}, {1, 3, 5, 7}}
	if got := levels(tree); !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("levels are %v, want %v", got, want)
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestAVLTree_DescendingShape(t *testing.T) {
	tree := New[int, uint8](0)
	insertAll(t, tree, 7, 6, 5, 4, 3, 2, 1)
	want := [][]int{{4}, {2, 6}, {1, 3, 5, 7}}
	if got := levels(tree); !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("levels are %v, want %v", got, want)
	}
}

func TestAVLTree_DoubleRotations(t *testing.T) {
	lr := New[int, uint8](0)
	insertAll(t, lr, 30, 10, 20)
	if got, want := levels(lr), [][]int{{20}, {10, 30}}; !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("left right: levels are %v, want %v", got, want)
	}
	rl := New[int, uint8](0)
	insertAll(t, rl, 10, 30, 20)
	if got, want := levels(rl), [][]int{{20}, {10, 30}}; !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("right left: levels are %v, want %v", got, want)
	}
	if lr.Corrupt() || rl.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestAVLTree_RemoveRoot(t *testing.T) {
	tree := New[int, uint8](0)
	hs := insertAll(t, tree, 8, 3, 10)
	if tree.Remove(8) != Success {
		t.Fatal("failed to delete key 8")
	}
	if got := tree.Values(); !slices.Equal(got, []int{3, 10}) {
		t.Fatalf("values are %v, want [3 10]", got)
	}
	if tree.Root() != hs[10] {
		t.Fatal("successor 10 should be the root")
	}
	if tree.Value(hs[10]).Ans() != 10 || tree.Value(hs[3]).Ans() != 3 {
		t.Fatal("surviving handles changed values")
	}
	if tree.Value(hs[8]).Status() != InvalidInput {
		t.Fatal("handle of the removed value is still valid")
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestAVLTree_HandleStability(t *testing.T) {
	tree := New[int, uint8](0)
	hs := insertAll(t, tree, 10, 20, 5, 15)
	h20 := hs[20]
	for k, v := range insertAll(t, tree, 25, 30, 1, 3, 27, 26) {
		hs[k] = v
	}
	for _, v := range []int{10, 5, 27, 1} {
		if tree.Remove(v) != Success {
			t.Fatalf("failed to delete key %v", v)
		}
		delete(hs, v)
		if tree.Corrupt() {
			t.Fatalf("corrupt after deleting %v", v)
		}
	}
	if r := tree.Value(h20); !r.Ok() || r.Ans() != 20 {
		t.Fatalf("handle of 20 has %v", r.Ans())
	}
	if r := tree.Find(20); !r.Ok() || r.Ans() != h20 {
		t.Fatal("find 20 should return the kept handle")
	}
	for v, h := range hs {
		if tree.Value(h).Ans() != v {
			t.Errorf("handle of %v lost its value", v)
		}
	}
	if r := tree.Successor(h20); tree.Value(r.Ans()).Ans() != 25 {
		t.Fatal("successor of 20 should be 25")
	}
}

// TestAVLTree_SuccessorHandle removes values with two children and checks the handle of the successor that takes their place.
func TestAVLTree_SuccessorHandle(t *testing.T) {
	tree := New[int, uint16](0)
	hs := make(map[int]Handle[uint16])
	for _, v := range rg.Perm(2000) {
		hs[v] = tree.Insert(v).Ans()
	}
	for range 1000 {
		r := tree.Root()
		i, _ := tree.lookup(r, linked)
		if tree.cs[i].l == 0 || tree.cs[i].r == 0 {
			break
		}
		v := tree.Value(r).Ans()
		s := tree.Successor(r).Ans()
		sv := tree.Value(s).Ans()
		if tree.Remove(v) != Success {
			t.Fatalf("failed to delete key %v", v)
		}
		if tree.Value(r).Ok() {
			t.Fatalf("handle of removed %v is still valid", v)
		}
		if got := tree.Value(s); !got.Ok() || got.Ans() != sv {
			t.Fatalf("successor handle of %v has %v, want %v", v, got.Ans(), sv)
		}
		delete(hs, v)
	}
	for v, h := range hs {
		if r := tree.Find(v); !r.Ok() || r.Ans() != h {
			t.Fatalf("handle of %v moved", v)
		}
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}

func TestAVLTree_RemoveAt(t *testing.T) {
	tree := New[int, uint16](0)
	hs := make(map[int]Handle[uint16])
	for _, v := range rg.Perm(1000) {
		hs[v] = tree.Insert(v).Ans()
	}
	for _, v := range rg.Perm(1000)[:600] {
		if tree.RemoveAt(hs[v]) != Success {
			t.Fatalf("failed to delete key %v", v)
		}
		if tree.RemoveAt(hs[v]) != InvalidInput {
			t.Fatalf("can delete a second time key %v", v)
		}
		if tree.Has(v) {
			t.Fatalf("tree still has %v", v)
		}
		delete(hs, v)
	}
	if tree.Corrupt() || int(tree.Size()) != len(hs) {
		t.Fatal("wrong tree after removals")
	}
	if tree.RemoveAt(Nil[uint16]()) != InvalidInput {
		t.Fatal("removed nil handle")
	}
}

func TestAVLTree_Relocate(t *testing.T) {
	tree := New[int, uint8](0)
	hs := insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)
	// 4(2(1,3),6(5,7))
	pairs := [][2]int{
		{4, 6}, // parent and child
		{3, 2}, // child and parent
		{1, 3}, // siblings
		{1, 7}, // unrelated
		{4, 3}, // root and leaf
		{2, 6}, // siblings under the root
	}
	owner := map[Handle[uint8]]int{}
	for v, h := range hs {
		owner[h] = v.(int)
	}
	want := tree.Values()
	for _, p := range pairs {
		a, b := tree.Find(p[0]).Ans(), tree.Find(p[1]).Ans()
		if tree.Relocate(a, b) != Success {
			t.Fatalf("failed to relocate %v", p)
		}
		if tree.Corrupt() {
			t.Fatalf("corrupt after relocating %v", p)
		}
		if !slices.Equal(tree.Values(), want) {
			t.Fatalf("relocating %v changed the values", p)
		}
		if tree.Value(a).Ans() != p[1] || tree.Value(b).Ans() != p[0] {
			t.Fatalf("relocating %v didn't swap the handles", p)
		}
		if tree.Find(p[0]).Ans() != b || tree.Find(p[1]).Ans() != a {
			t.Fatalf("find after relocating %v", p)
		}
		owner[a], owner[b] = p[1], p[0]
	}
	for h, v := range owner {
		if tree.Value(h).Ans() != v {
			t.Errorf("handle should have %d", v)
		}
	}
	a := tree.Find(4).Ans()
	if tree.Relocate(a, a) != InvalidInput {
		t.Fatal("relocated a cell with itself")
	}
	if tree.Relocate(a, Nil[uint8]()) != InvalidInput {
		t.Fatal("relocated a nil handle")
	}
}

func TestAVLTree_Assemble(t *testing.T) {
	tree := New[int, uint8](7)
	hs := make([]Handle[uint8], 7)
	for i := range hs {
		hs[i] = tree.Make(i + 1).Ans()
	}
	if tree.Size() != 0 {
		t.Fatal("detached cells counted in size")
	}
	if tree.Assemble(hs, 3, 3).Status() != InvalidInput || tree.Assemble(hs, 2, 8).Status() != InvalidInput ||
		tree.Assemble(hs, -1, 2).Status() != InvalidInput {
		t.Fatal("assembled an invalid range")
	}
	unsorted := []Handle[uint8]{hs[1], hs[0], hs[2]}
	if tree.Assemble(unsorted, 0, 3).Status() != InvalidInput {
		t.Fatal("assembled unsorted cells")
	}
	if tree.Assemble([]Handle[uint8]{hs[0], hs[0]}, 0, 2).Status() != InvalidInput {
		t.Fatal("assembled a cell twice")
	}
	r := tree.Assemble(hs, 0, 7)
	if !r.Ok() || tree.Value(r.Ans()).Ans() != 4 {
		t.Fatal("root should be 4")
	}
	if !slices.Equal(tree.Values(), []int{1, 2, 3, 4, 5, 6, 7}) || tree.Height() != 3 || tree.Size() != 7 {
		t.Fatalf("wrong tree %v height %d", tree.Values(), tree.Height())
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	for i, h := range hs {
		if tree.Find(i+1).Ans() != h {
			t.Fatalf("cell of %d moved", i+1)
		}
	}
	if tree.Assemble(hs, 0, 7).Status() != InvalidInput {
		t.Fatal("assembled linked cells")
	}
	if tree.Discard(hs[0]) != InvalidInput {
		t.Fatal("discarded a linked cell")
	}
}

func TestAVLTree_AssembleReplace(t *testing.T) {
	tree := New[int, uint16](0)
	old := insertAll(t, tree, 100, 200, 300)
	hs := make([]Handle[uint16], 10)
	for i := range hs {
		hs[i] = tree.Make(i * 10).Ans()
	}
	if r := tree.Assemble(hs, 2, 5); !r.Ok() || tree.Value(r.Ans()).Ans() != 30 {
		t.Fatal("root should be 30")
	}
	if !slices.Equal(tree.Values(), []int{20, 30, 40}) || tree.Corrupt() {
		t.Fatalf("wrong tree %v", tree.Values())
	}
	for _, h := range old {
		if tree.Value(h).Ok() {
			t.Fatal("replaced cell is still valid")
		}
	}
	for _, h := range append(hs[:2:2], hs[5:]...) {
		if tree.Discard(h) != Success {
			t.Fatal("failed to discard a detached cell")
		}
		if tree.Discard(h) != InvalidInput {
			t.Fatal("discarded a cell twice")
		}
	}
	if !tree.Insert(25).Ok() || tree.Corrupt() {
		t.Fatal("failed to insert into an assembled tree")
	}
}

func TestAVLTree_Rebuild(t *testing.T) {
	tree := New[int, uint16](0)
	hs := make(map[int]Handle[uint16])
	for _, v := range rg.Perm(4095) {
		hs[v] = tree.Insert(v).Ans()
	}
	for v := range 4095 {
		if v%3 == 0 {
			tree.Remove(v)
			delete(hs, v)
		}
	}
	want := tree.Values()
	tree.Rebuild()
	if tree.Corrupt() || !slices.Equal(tree.Values(), want) {
		t.Fatal("rebuild broke the tree")
	}
	if tree.Height() != 12 {
		t.Fatalf("height is %d, want 12", tree.Height())
	}
	for v, h := range hs {
		if tree.Find(v).Ans() != h {
			t.Fatalf("handle of %v moved", v)
		}
	}
	t.Logf("depth: %f, height: %d, size: %d.\n", tree.depth(), tree.Height(), tree.Size())
	empty := New[int, uint16](0)
	empty.Rebuild()
	if empty.Size() != 0 || empty.Corrupt() {
		t.Fatal("rebuild of an empty tree")
	}
}

func TestAVLTree_Parent(t *testing.T) {
	tree := New[int, uint8](0)
	hs := insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)
	if r := tree.Parent(hs[4]); !r.Ok() || !r.Ans().IsNil() {
		t.Fatal("root has no parent")
	}
	for _, c := range [][2]int{{2, 4}, {6, 4}, {1, 2}, {3, 2}, {5, 6}, {7, 6}} {
		if tree.Parent(hs[c[0]]).Ans() != hs[c[1]] {
			t.Errorf("parent of %d should be %d", c[0], c[1])
		}
	}
	tree.Remove(1)
	if tree.Parent(hs[1]).Status() != InvalidInput {
		t.Fatal("parent of a stale handle")
	}
}

func TestAVLTree_LevelsStop(t *testing.T) {
	tree := New[int, uint8](0)
	insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)
	var seen []int
	tree.Levels(func(_ uint8, _ Handle[uint8], v int) bool {
		seen = append(seen, v)
		return len(seen) < 4
	})
	if !slices.Equal(seen, []int{4, 2, 6, 1}) {
		t.Fatalf("visited %v", seen)
	}
}
