// Package hashtable implements a fixed-capacity hash table that resolves
// collisions by separate chaining.
//
// The number of slots is chosen at construction and never changes: there is
// no resizing, so lookups degrade to a linear scan as the load factor grows.
// A HashTable is not safe for concurrent use.
package hashtable

import (
	"errors"
	"fmt"

	"github.com/goose-lang/primitive"
)

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = errors.New("capacity must be positive")

type HashTable[K Hashable[K], V any] struct {
	capacity int
	slots    []*ChainingSlot[K, V]
}

func createSlots[K Hashable[K], V any](capacity int) []*ChainingSlot[K, V] {
	slots := make([]*ChainingSlot[K, V], 0, capacity)
	for i := 0; i < capacity; i++ {
		slots = append(slots, NewChainingSlot[K, V]())
	}
	return slots
}

// New creates a table with capacity slots, all allocated up front.
func New[K Hashable[K], V any](capacity int) (*HashTable[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	t := &HashTable[K, V]{
		capacity: capacity,
		slots:    createSlots[K, V](capacity),
	}
	primitive.Assert(len(t.slots) == t.capacity)
	return t, nil
}

// MustNew is like New but panics if capacity is not positive.
func MustNew[K Hashable[K], V any](capacity int) *HashTable[K, V] {
	t, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return t
}

// Capacity returns the number of slots, which is fixed for the table's
// lifetime.
func (t *HashTable[K, V]) Capacity() int {
	return t.capacity
}

func (t *HashTable[K, V]) slot(key K) *ChainingSlot[K, V] {
	return t.slots[slotIndex(key.HashCode(), len(t.slots))]
}

// Add stores val under key. Keys are not deduplicated: adding a key that is
// already present chains a second pair behind the first, and Get keeps
// returning the first one.
func (t *HashTable[K, V]) Add(key K, val V) {
	t.slot(key).Add(key, val)
}

// Get returns the value of the earliest added pair for key. The boolean is
// false if key is absent.
func (t *HashTable[K, V]) Get(key K) (V, bool) {
	return t.slot(key).Get(key)
}

// TryRemove removes the earliest added pair for key, if any.
func (t *HashTable[K, V]) TryRemove(key K) {
	t.slot(key).Remove(key)
}

// ChainLengths returns the number of pairs in each slot, indexed by slot.
func (t *HashTable[K, V]) ChainLengths() []int {
	lengths := make([]int, len(t.slots))
	for i, s := range t.slots {
		lengths[i] = s.Len()
	}
	return lengths
}
