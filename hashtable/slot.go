package hashtable

import "slices"

// initialSlotSize is how many pairs a new slot has room for before its
// backing array has to grow.
const initialSlotSize = 13

type pair[K Hashable[K], V any] struct {
	key K
	val V
}

// ChainingSlot holds every pair whose key hashes to one index of a
// HashTable, in insertion order. It is not safe for concurrent use.
type ChainingSlot[K Hashable[K], V any] struct {
	items []pair[K, V]
}

// NewChainingSlot returns an empty slot.
func NewChainingSlot[K Hashable[K], V any]() *ChainingSlot[K, V] {
	return &ChainingSlot[K, V]{
		items: make([]pair[K, V], 0, initialSlotSize),
	}
}

// Add appends a pair. An existing pair with an equal key is left in place.
func (s *ChainingSlot[K, V]) Add(key K, val V) {
	s.items = append(s.items, pair[K, V]{key: key, val: val})
}

// Get returns the value of the first pair whose key equals key. The boolean is
// false if there is no such pair.
func (s *ChainingSlot[K, V]) Get(key K) (V, bool) {
	i := s.find(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return s.items[i].val, true
}

// Remove deletes the first pair whose key equals key, keeping the remaining
// pairs in order. It does nothing if there is no such pair.
func (s *ChainingSlot[K, V]) Remove(key K) {
	i := s.find(key)
	if i < 0 {
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
}

// Len returns the number of pairs chained in the slot.
func (s *ChainingSlot[K, V]) Len() int {
	return len(s.items)
}

func (s *ChainingSlot[K, V]) find(key K) int {
	for i := range s.items {
		if s.items[i].key.Equal(key) {
			return i
		}
	}
	return -1
}
