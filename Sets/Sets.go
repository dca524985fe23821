package Sets

// Set of unique elements. Receivers that have a bool as a second return
// value indicate whether the first return value is defined.
type Set[E any] interface {
	//Put e into the set. Returns true if e wasn't already present.
	Put(E) bool
	//Has e in the set.
	Has(E) bool
	//Locate the stored element equal to e.
	Locate(E) (E, bool)
	//Count occurrences of e, always 0 or 1.
	Count(E) uint
	//Remove e from the set. Returns true if the removal is successful.
	Remove(E) bool
	//Size of the set.
	Size() uint
	//Take an element from the set without removing it. Returns zero
	//value if the set is empty. Which element is implementation defined.
	Take() E
	//Range over elements and call f on them, stopping when f returns false.
	Range(func(E) bool)
	//Clear all elements.
	Clear()
}
