package Lists

// New ArrayList with the given initial capacity.
func New[E comparable](initCap uint) *ArrayList[E] {
	return &ArrayList[E]{make([]E, 0, initCap)}
}

// Of returns an ArrayList holding the given elements in order.
func Of[E comparable](es ...E) *ArrayList[E] {
	u := New[E](uint(len(es)))
	u.elems = append(u.elems, es...)
	return u
}

// ArrayList is a growable slice backed sequence. Duplicates are allowed
// and insertion order is kept, so searches cost linear time, the best
// available without ordering or hashing assumptions on E.
type ArrayList[E comparable] struct {
	elems []E
}

// Put e at the end of the list. Always returns true.
func (u *ArrayList[E]) Put(e E) bool {
	u.elems = append(u.elems, e)
	return true
}

// Has e in the list.
func (u *ArrayList[E]) Has(e E) bool {
	_, in := u.Locate(e)
	return in
}

// Locate the first element equal to e.
func (u *ArrayList[E]) Locate(e E) (E, bool) {
	for _, x := range u.elems {
		if x == e {
			return x, true
		}
	}
	var zero E
	return zero, false
}

// Count occurrences of e.
func (u *ArrayList[E]) Count(e E) (n uint) {
	for _, x := range u.elems {
		if x == e {
			n++
		}
	}
	return
}

// Remove every occurrence of e, keeping the order of the remaining
// elements. Returns true if anything was erased.
func (u *ArrayList[E]) Remove(e E) bool {
	w := 0
	for _, x := range u.elems {
		if x != e {
			u.elems[w] = x
			w++
		}
	}
	if w == len(u.elems) {
		return false
	}
	clear(u.elems[w:])
	u.elems = u.elems[:w]
	return true
}

// At returns the element at index i. Panics if i is out of range.
func (u *ArrayList[E]) At(i uint) E {
	return u.elems[i]
}

// Size of the list.
func (u *ArrayList[E]) Size() uint {
	return uint(len(u.elems))
}

// Take the first element of the list without removing it. Returns zero
// value if the list is empty.
func (u *ArrayList[E]) Take() (e E) {
	if len(u.elems) > 0 {
		e = u.elems[0]
	}
	return
}

// Range over elements in insertion order, stopping when f returns false.
func (u *ArrayList[E]) Range(f func(E) bool) {
	for _, e := range u.elems {
		if !f(e) {
			return
		}
	}
}

// Clear all elements.
func (u *ArrayList[E]) Clear() {
	clear(u.elems)
	u.elems = u.elems[:0]
}

// Shrink the backing slice to exactly the current size.
func (u *ArrayList[E]) Shrink() {
	nc := make([]E, len(u.elems))
	copy(nc, u.elems)
	u.elems = nc
}
