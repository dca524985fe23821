package Sets

// NewHash returns an empty hashed set with room for size elements before
// the table grows.
func NewHash[E comparable](size uint) *Hash[E] {
	return &Hash[E]{make(map[E]struct{}, size)}
}

// Hash is an unordered set of unique elements backed by the builtin map,
// so Put, Has, and Remove cost amortized constant time.
type Hash[E comparable] struct {
	m map[E]struct{}
}

// Put e into the set. Returns true if e wasn't already present.
func (u *Hash[E]) Put(e E) bool {
	if _, in := u.m[e]; in {
		return false
	}
	u.m[e] = struct{}{}
	return true
}

// Has e in the set.
func (u *Hash[E]) Has(e E) bool {
	_, in := u.m[e]
	return in
}

// Locate the element equal to e.
func (u *Hash[E]) Locate(e E) (E, bool) {
	_, in := u.m[e]
	return e, in
}

// Count occurrences of e, 0 or 1.
func (u *Hash[E]) Count(e E) uint {
	if _, in := u.m[e]; in {
		return 1
	}
	return 0
}

// Remove e from the set. Returns true if the removal is successful.
func (u *Hash[E]) Remove(e E) bool {
	if _, in := u.m[e]; !in {
		return false
	}
	delete(u.m, e)
	return true
}

// Size of the set.
func (u *Hash[E]) Size() uint {
	return uint(len(u.m))
}

// Take an arbitrary element from the set. Returns zero value if the set
// is empty. Doesn't guarantee which element it will return.
func (u *Hash[E]) Take() (e E) {
	for e = range u.m {
		break
	}
	return
}

// Range over elements in no particular order and call f on them.
// Stops when f returns false.
func (u *Hash[E]) Range(f func(E) bool) {
	for e := range u.m {
		if !f(e) {
			return
		}
	}
}

// Clear all elements.
func (u *Hash[E]) Clear() {
	u.m = make(map[E]struct{})
}
