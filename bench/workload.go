package bench

import "chained_hashtable/keys"

// Entry is one key/value pair of a workload.
type Entry struct {
	Key   keys.UUID
	Value int
}

// Workload is the data for one measured batch. Every key in it is unique.
type Workload struct {
	// Populate is loaded into a container before the batch, with values
	// 0..n-1.
	Populate []Entry
	// Search is the second half of the populated keys; get and remove
	// operate on it.
	Search []keys.UUID
	// Insert holds len(Search) fresh pairs for the add batch, with values
	// continuing after the populated ones.
	Insert []Entry
}

// NewWorkload generates a workload that populates n keys.
func NewWorkload(n int) Workload {
	w := Workload{Populate: make([]Entry, n)}
	for i := range w.Populate {
		w.Populate[i] = Entry{Key: keys.NewUUID(), Value: i}
	}

	half := w.Populate[n/2:]
	w.Search = make([]keys.UUID, len(half))
	for i, e := range half {
		w.Search[i] = e.Key
	}

	w.Insert = make([]Entry, len(w.Search))
	for i := range w.Insert {
		w.Insert[i] = Entry{Key: keys.NewUUID(), Value: n + i}
	}

	return w
}

// Fill adds every populate entry to c.
func (w Workload) Fill(c Container) {
	for _, e := range w.Populate {
		c.Add(e.Key, e.Value)
	}
}

// Batch returns the measured function for op over c.
func (w Workload) Batch(op Operation, c Container) func() {
	switch op {
	case OpAdd:
		return func() {
			for _, e := range w.Insert {
				c.Add(e.Key, e.Value)
			}
		}
	case OpGet:
		return func() {
			for _, k := range w.Search {
				c.Get(k)
			}
		}
	case OpRemove:
		return func() {
			for _, k := range w.Search {
				c.TryRemove(k)
			}
		}
	}

	return nil
}

// Verify checks that the batch for op had its effect on c. It is called
// after the timed region.
func (w Workload) Verify(op Operation, c Container) bool {
	switch op {
	case OpAdd:
		for _, e := range w.Insert {
			v, ok := c.Get(e.Key)
			if !ok || v != e.Value {
				return false
			}
		}
	case OpGet:
		for i, k := range w.Search {
			v, ok := c.Get(k)
			if !ok || v != len(w.Populate)-len(w.Search)+i {
				return false
			}
		}
	case OpRemove:
		for _, k := range w.Search {
			if _, ok := c.Get(k); ok {
				return false
			}
		}
	}

	return true
}
