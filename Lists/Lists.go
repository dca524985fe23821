package Lists

// List is a sequence of elements kept in insertion order, duplicates
// allowed.
type List[E any] interface {
	//Put e at the end of the list. Always succeeds.
	Put(E) bool
	//Has e in the list.
	Has(E) bool
	//At returns the element at index i. Panics if i is out of range.
	At(uint) E
	//Remove every occurrence of e, keeping the order of the remaining
	//elements. Returns true if anything was erased.
	Remove(E) bool
	//Size of the list.
	Size() uint
	//Range over elements in insertion order, stopping when f returns
	//false.
	Range(func(E) bool)
	//Clear all elements.
	Clear()
}
