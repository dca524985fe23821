package Sets

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// NewTree returns an empty ordered set. degree is the branching factor of
// the backing B-tree, 32 is a good value.
func NewTree[E constraints.Ordered](degree int) *Tree[E] {
	return &Tree[E]{btree.NewG(degree, func(a, b E) bool { return a < b })}
}

// Tree is a set of unique elements kept in ascending order by a B-tree,
// so Put, Has, and Remove cost logarithmic time.
type Tree[E constraints.Ordered] struct {
	t *btree.BTreeG[E]
}

// Put e into the set. Returns true if e wasn't already present.
func (u *Tree[E]) Put(e E) bool {
	_, in := u.t.ReplaceOrInsert(e)
	return !in
}

// Has e in the set.
func (u *Tree[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Locate the stored element equal to e.
func (u *Tree[E]) Locate(e E) (E, bool) {
	return u.t.Get(e)
}

// Count occurrences of e, 0 or 1.
func (u *Tree[E]) Count(e E) uint {
	if u.t.Has(e) {
		return 1
	}
	return 0
}

// Remove e from the set. Returns true if the removal is successful.
func (u *Tree[E]) Remove(e E) bool {
	_, in := u.t.Delete(e)
	return in
}

// Size of the set.
func (u *Tree[E]) Size() uint {
	return uint(u.t.Len())
}

// Take the minimum element without removing it, the cheapest one to reach.
// Returns zero value if the set is empty.
func (u *Tree[E]) Take() (e E) {
	e, _ = u.t.Min()
	return
}

// Min returns the minimum element of the set.
func (u *Tree[E]) Min() (E, bool) {
	return u.t.Min()
}

// Max returns the maximum element of the set.
func (u *Tree[E]) Max() (E, bool) {
	return u.t.Max()
}

// Range over elements in ascending order and call f on them.
// Stops when f returns false. The set must not be modified during the
// iteration.
func (u *Tree[E]) Range(f func(E) bool) {
	u.t.Ascend(func(e E) bool { return f(e) })
}

// Clear all elements.
func (u *Tree[E]) Clear() {
	u.t.Clear(false)
}
