package Maps

// Map of unique keys to values. Range iterates over keys, so the
// Wrappers operations treat keys as the elements of a map shaped
// container; values are reached through Get and Pairs.
type Map[K, V any] interface {
	//Put k mapped to v, overwriting the value of an existing k.
	//Returns true if k was newly inserted.
	Put(K, V) bool
	//Has k as a key.
	Has(K) bool
	//Get the value mapped to k.
	Get(K) (V, bool)
	//Remove k and its value. Returns true if k was present.
	Remove(K) bool
	//Size of the map.
	Size() uint
	//Range over keys and call f on them, stopping when f returns false.
	Range(func(K) bool)
	//Pairs returns an iterator closure giving key-value pairs.
	//The third return value turns false once the iterator is exhausted
	//and stays false.
	Pairs() func() (K, V, bool)
	//Clear all pairs.
	Clear()
}
