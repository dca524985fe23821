package Maps

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"golang.org/x/exp/constraints"
)

// NewTree returns an empty ordered map backed by a red-black tree.
func NewTree[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{redblacktree.NewWith(func(a, b interface{}) int {
		x, y := a.(K), b.(K)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})}
}

// Tree maps unique keys to values, keeping the keys in ascending order
// in a red-black tree, so Put, Has, Get, and Remove cost logarithmic
// time.
type Tree[K constraints.Ordered, V any] struct {
	t *redblacktree.Tree
}

// Put k mapped to v, overwriting the value of an existing k.
// Returns true if k was newly inserted.
func (u *Tree[K, V]) Put(k K, v V) bool {
	_, in := u.t.Get(k)
	u.t.Put(k, v)
	return !in
}

// Has k as a key.
func (u *Tree[K, V]) Has(k K) bool {
	_, in := u.t.Get(k)
	return in
}

// Locate the key equal to k.
func (u *Tree[K, V]) Locate(k K) (K, bool) {
	_, in := u.t.Get(k)
	return k, in
}

// Count occurrences of key k, 0 or 1.
func (u *Tree[K, V]) Count(k K) uint {
	if _, in := u.t.Get(k); in {
		return 1
	}
	return 0
}

// Get the value mapped to k.
func (u *Tree[K, V]) Get(k K) (v V, in bool) {
	if x, found := u.t.Get(k); found {
		return x.(V), true
	}
	return
}

// Remove k and its value. Returns true if k was present.
func (u *Tree[K, V]) Remove(k K) bool {
	if _, in := u.t.Get(k); !in {
		return false
	}
	u.t.Remove(k)
	return true
}

// Size of the map.
func (u *Tree[K, V]) Size() uint {
	return uint(u.t.Size())
}

// Min returns the minimum key and its value.
func (u *Tree[K, V]) Min() (k K, v V, in bool) {
	if n := u.t.Left(); n != nil {
		return n.Key.(K), n.Value.(V), true
	}
	return
}

// Max returns the maximum key and its value.
func (u *Tree[K, V]) Max() (k K, v V, in bool) {
	if n := u.t.Right(); n != nil {
		return n.Key.(K), n.Value.(V), true
	}
	return
}

// Range over keys in ascending order and call f on them.
// Stops when f returns false. The map must not be modified during the
// iteration.
func (u *Tree[K, V]) Range(f func(K) bool) {
	for it := u.t.Iterator(); it.Next(); {
		if !f(it.Key().(K)) {
			return
		}
	}
}

// Pairs returns an iterator closure giving key-value pairs in ascending
// key order. The map must not be modified before the iterator is
// exhausted.
func (u *Tree[K, V]) Pairs() func() (K, V, bool) {
	it := u.t.Iterator()
	return func() (k K, v V, ok bool) {
		if it.Next() {
			return it.Key().(K), it.Value().(V), true
		}
		return
	}
}

// Clear all pairs.
func (u *Tree[K, V]) Clear() {
	u.t.Clear()
}
