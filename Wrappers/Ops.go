package Wrappers

import (
	"github.com/g-m-twostay/go-containers/Sets"
)

// Find the stored element equal to e in c. The second return value is the
// absence sentinel: when it is false the element isn't in c and the first
// return value is undefined. For key-value containers e is a key.
// Cost is the container's native search: constant for hashed shapes,
// logarithmic for ordered shapes, linear otherwise.
func Find[E comparable](c Interface[E], e E) (E, bool) {
	if l, ok := c.(Locator[E]); ok {
		return l.Locate(e)
	}
	var r E
	var found bool
	c.Range(func(x E) bool {
		if x == e {
			r, found = x, true
			return false
		}
		return true
	})
	return r, found
}

// Contains e in c. For key-value containers e is a key.
// Cost is the container's native search.
func Contains[E comparable](c Interface[E], e E) bool {
	if s, ok := c.(Searcher[E]); ok {
		return s.Has(e)
	}
	_, found := Find(c, e)
	return found
}

// ContainsAll of the elements of items in c. Stops at the first miss.
// Vacuously true when items is empty.
func ContainsAll[E comparable](c Interface[E], items Interface[E]) bool {
	all := true
	items.Range(func(e E) bool {
		all = Contains(c, e)
		return all
	})
	return all
}

// ContainsAny of the elements of items in c. Stops at the first hit.
// Vacuously false when items is empty.
func ContainsAny[E comparable](c Interface[E], items Interface[E]) bool {
	found := false
	items.Range(func(e E) bool {
		found = Contains(c, e)
		return !found
	})
	return found
}

// Count occurrences of e in c. Always 0 or 1 for unique-element shapes.
// Cost is the container's native search.
func Count[E comparable](c Interface[E], e E) uint {
	if t, ok := c.(Counter[E]); ok {
		return t.Count(e)
	}
	var n uint
	c.Range(func(x E) bool {
		if x == e {
			n++
		}
		return true
	})
	return n
}

// Add e to c using the container's native insert: appended for
// sequential shapes, merged for unique-element shapes. Returns true if c
// was modified.
func Add[E any](c Adder[E], e E) bool {
	return c.Put(e)
}

// AddAll elements of items to c in the iteration order of items, one Add
// per element. Returns the number of elements that modified c.
func AddAll[E any](c Adder[E], items Interface[E]) uint {
	var n uint
	items.Range(func(e E) bool {
		if c.Put(e) {
			n++
		}
		return true
	})
	return n
}

// Put k mapped to v in m, overwriting the value of an existing k.
// Returns true if k was newly inserted.
func Put[K, V any](m PairAdder[K, V], k K, v V) bool {
	return m.Put(k, v)
}

// PutAll pairs of src into dst, overwriting values of existing keys.
// Returns the number of newly inserted keys.
func PutAll[K, V any](dst PairAdder[K, V], src PairRanger[K, V]) uint {
	var n uint
	for next := src.Pairs(); ; {
		k, v, ok := next()
		if !ok {
			return n
		}
		if dst.Put(k, v) {
			n++
		}
	}
}

// Remove e from c using the container's native erase: every occurrence
// for sequential shapes, the unique entry otherwise. Removing an absent
// element is a no-op, not an error. Returns true if c was modified.
func Remove[E any](c Remover[E], e E) bool {
	return c.Remove(e)
}

// Difference returns the elements of first that are not contained in
// second, as a hashed set. Duplicates in first collapse to one entry and
// the result has no iteration order. Membership against second uses its
// native search.
func Difference[E comparable](first, second Interface[E]) *Sets.Hash[E] {
	r := Sets.NewHash[E](first.Size())
	first.Range(func(e E) bool {
		if !Contains(second, e) {
			r.Put(e)
		}
		return true
	})
	return r
}
