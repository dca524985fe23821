// Package Wrappers provides one name per container operation regardless of
// which container shape the caller holds. Every operation probes the
// container for the capability that gives the best native complexity and
// falls back to a linear Range scan when the container doesn't offer it,
// so an un-specialized container is slower, never wrong.
// Functions returning (E, bool) follow the usual convention: the first
// return value is defined only when the second is true.
package Wrappers

// Interface is the minimal surface a container must expose to be usable
// with the operations in this package. Key-value containers range over
// their keys.
type Interface[E any] interface {
	//Range calls f on the elements until f returns false.
	Range(func(E) bool)
	//Size of the container.
	Size() uint
}

// Searcher is implemented by containers with a membership test faster
// than a scan.
type Searcher[E any] interface {
	Has(E) bool
}

// Locator is implemented by containers that can retrieve the stored
// element equal to the argument.
type Locator[E any] interface {
	Locate(E) (E, bool)
}

// Counter is implemented by containers that can count occurrences faster
// than a scan. Unique-element shapes always report 0 or 1.
type Counter[E any] interface {
	Count(E) uint
}

// Adder is implemented by mutable containers. Put reports whether the
// container was modified.
type Adder[E any] interface {
	Put(E) bool
}

// Remover is implemented by mutable containers. Remove reports whether
// anything was erased.
type Remover[E any] interface {
	Remove(E) bool
}

// PairAdder is the key-value insert surface of map shaped containers.
// Put overwrites the value of an existing key and reports whether the key
// was newly inserted.
type PairAdder[K, V any] interface {
	Put(K, V) bool
}

// PairRanger is the pair iteration surface of map shaped containers.
// Pairs returns an iterator closure; the third return value turns false
// once the iterator is exhausted.
type PairRanger[K, V any] interface {
	Pairs() func() (K, V, bool)
}

type items[E any] []E

func (u items[E]) Range(f func(E) bool) {
	for _, e := range u {
		if !f(e) {
			return
		}
	}
}

func (u items[E]) Size() uint {
	return uint(len(u))
}

// Of wraps the given elements in a read-only sequential view, for passing
// a literal batch of items to ContainsAll, ContainsAny, AddAll, or
// Difference.
func Of[E any](es ...E) Interface[E] {
	return items[E](es)
}
