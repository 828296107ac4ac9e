// Package keys provides key types that can be stored in a hashtable.HashTable.
package keys

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Int is an integer key whose hash code is the integer itself.
type Int int

func (i Int) Equal(other Int) bool {
	return i == other
}

func (i Int) HashCode() int {
	return int(i)
}

// String is a string key hashed with xxHash.
type String string

func (s String) Equal(other String) bool {
	return s == other
}

func (s String) HashCode() int {
	return int(xxhash.Sum64String(string(s)))
}

// UUID is a random 128-bit key, hashed with xxHash over its bytes.
type UUID uuid.UUID

// NewUUID returns a new random (version 4) key.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// ParseUUID parses the textual form accepted by uuid.Parse.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID(u), nil
}

func (u UUID) Equal(other UUID) bool {
	return u == other
}

func (u UUID) HashCode() int {
	return int(xxhash.Sum64(u[:]))
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}
