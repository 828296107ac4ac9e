package bench

import (
	"fmt"
	"strings"

	"chained_hashtable/hashtable"
	"chained_hashtable/keys"
)

// Container is the API shared by the chained table and the baseline map.
type Container interface {
	Add(key keys.UUID, val int)
	Get(key keys.UUID) (int, bool)
	TryRemove(key keys.UUID)
}

// MapContainer is the baseline: Go's built-in map behind the Container API.
type MapContainer map[keys.UUID]int

func NewMapContainer(capacity int) MapContainer {
	return make(MapContainer, capacity)
}

func (m MapContainer) Add(key keys.UUID, val int) {
	m[key] = val
}

func (m MapContainer) Get(key keys.UUID) (int, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapContainer) TryRemove(key keys.UUID) {
	delete(m, key)
}

// Subject is one container implementation taking part in the comparison.
type Subject struct {
	Name string
	New  func(capacity int) Container
}

const (
	ChainedSubject  = "chained"
	BaselineSubject = "map"
)

// DefaultSubjects returns the chained table followed by the baseline map.
func DefaultSubjects() []Subject {
	return []Subject{
		{
			Name: ChainedSubject,
			New: func(capacity int) Container {
				return hashtable.MustNew[keys.UUID, int](capacity)
			},
		},
		{
			Name: BaselineSubject,
			New: func(capacity int) Container {
				return NewMapContainer(capacity)
			},
		},
	}
}

// Operation names one measured batch.
type Operation string

const (
	OpAdd    Operation = "add"
	OpGet    Operation = "get"
	OpRemove Operation = "remove"
)

// ParseOperations validates names, dropping duplicates and keeping the first
// occurrence's position.
func ParseOperations(names []string) ([]Operation, error) {
	var ops []Operation

	seen := make(map[Operation]bool)

	for _, name := range names {
		op := Operation(strings.ToLower(strings.TrimSpace(name)))
		switch op {
		case OpAdd, OpGet, OpRemove:
		default:
			return nil, fmt.Errorf("%w: %q", errUnknownOperation, name)
		}

		if !seen[op] {
			seen[op] = true
			ops = append(ops, op)
		}
	}

	if len(ops) == 0 {
		return nil, errNoOperations
	}

	return ops, nil
}
