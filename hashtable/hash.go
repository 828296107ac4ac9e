package hashtable

// Hashable is the capability a key type needs to be stored in a HashTable.
//
// Equal keys must report equal hash codes, and a key's hash code must not
// change while the key is stored.
type Hashable[K any] interface {
	Equal(other K) bool
	HashCode() int
}

// magnitude returns |h| as an unsigned value, so the most negative int maps
// to its true magnitude rather than overflowing back to a negative number.
func magnitude(h int) uint64 {
	if h < 0 {
		return uint64(-(h + 1)) + 1
	}
	return uint64(h)
}

// slotIndex picks the slot for a hash code: |hashCode| mod capacity.
//
// capacity must be positive.
func slotIndex(hashCode int, capacity int) int {
	return int(magnitude(hashCode) % uint64(capacity))
}
