package Maps

// NewHash returns an empty hashed map with room for size pairs before
// the table grows.
func NewHash[K comparable, V any](size uint) *Hash[K, V] {
	return &Hash[K, V]{make(map[K]V, size)}
}

// Hash maps unique keys to values using the builtin map, so Put, Has,
// Get, and Remove cost amortized constant time. Keys have no order.
type Hash[K comparable, V any] struct {
	m map[K]V
}

// Put k mapped to v, overwriting the value of an existing k.
// Returns true if k was newly inserted.
func (u *Hash[K, V]) Put(k K, v V) bool {
	_, in := u.m[k]
	u.m[k] = v
	return !in
}

// Has k as a key.
func (u *Hash[K, V]) Has(k K) bool {
	_, in := u.m[k]
	return in
}

// Locate the key equal to k.
func (u *Hash[K, V]) Locate(k K) (K, bool) {
	_, in := u.m[k]
	return k, in
}

// Count occurrences of key k, 0 or 1.
func (u *Hash[K, V]) Count(k K) uint {
	if _, in := u.m[k]; in {
		return 1
	}
	return 0
}

// Get the value mapped to k.
func (u *Hash[K, V]) Get(k K) (V, bool) {
	v, in := u.m[k]
	return v, in
}

// Remove k and its value. Returns true if k was present.
func (u *Hash[K, V]) Remove(k K) bool {
	if _, in := u.m[k]; !in {
		return false
	}
	delete(u.m, k)
	return true
}

// Size of the map.
func (u *Hash[K, V]) Size() uint {
	return uint(len(u.m))
}

// Range over keys in no particular order and call f on them.
// Stops when f returns false.
func (u *Hash[K, V]) Range(f func(K) bool) {
	for k := range u.m {
		if !f(k) {
			return
		}
	}
}

// Pairs returns an iterator closure over a snapshot of the keys taken at
// the time of the call. Keys removed after the call are skipped.
func (u *Hash[K, V]) Pairs() func() (K, V, bool) {
	ks := make([]K, 0, len(u.m))
	for k := range u.m {
		ks = append(ks, k)
	}
	i := 0
	return func() (k K, v V, ok bool) {
		for i < len(ks) {
			k = ks[i]
			i++
			if v, ok = u.m[k]; ok {
				return
			}
		}
		return
	}
}

// Clear all pairs.
func (u *Hash[K, V]) Clear() {
	u.m = make(map[K]V)
}
