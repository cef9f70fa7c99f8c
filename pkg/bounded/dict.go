package bounded

import "iter"

type dictEntry[K comparable, V any] struct {
	key   K
	value V
}

// Dict is a key/value mapping with a fixed number of slots.
// Iteration follows insertion order; updating a key keeps its position.
type Dict[K comparable, V any] struct {
	entries []dictEntry[K, V]
	index   map[K]int
}

// NewDict creates a dictionary with room for capacity keys.
// The capacity must be positive, otherwise it panics.
func NewDict[K comparable, V any](capacity int) *Dict[K, V] {
	if capacity <= 0 {
		panic("bounded: dict capacity must be positive")
	}
	return &Dict[K, V]{
		entries: make([]dictEntry[K, V], 0, capacity),
		index:   make(map[K]int, capacity),
	}
}

// Set stores value under key. An existing key is updated in place; a new key
// is rejected with ErrCapacityExceeded when every slot is taken.
func (d *Dict[K, V]) Set(key K, value V) error {
	if i, ok := d.index[key]; ok {
		d.entries[i].value = value
		return nil
	}
	if len(d.entries) == cap(d.entries) {
		return ErrCapacityExceeded
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, dictEntry[K, V]{key: key, value: value})
	return nil
}

// Get returns the value stored under key.
// Returns the zero value and false if the key is absent.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	if i, ok := d.index[key]; ok {
		return d.entries[i].value, true
	}
	var zero V
	return zero, false
}

func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.index[key]
	return ok
}

// Remove deletes key and reports whether it was present.
func (d *Dict[K, V]) Remove(key K) bool {
	i, ok := d.index[key]
	if !ok {
		return false
	}
	delete(d.index, key)
	copy(d.entries[i:], d.entries[i+1:])
	d.entries[len(d.entries)-1] = dictEntry[K, V]{}
	d.entries = d.entries[:len(d.entries)-1]
	for j := i; j < len(d.entries); j++ {
		d.index[d.entries[j].key] = j
	}
	return true
}

func (d *Dict[K, V]) Len() int { return len(d.entries) }

func (d *Dict[K, V]) Cap() int { return cap(d.entries) }

func (d *Dict[K, V]) Full() bool { return len(d.entries) == cap(d.entries) }

// Clear removes every key, keeping the allocated slots.
func (d *Dict[K, V]) Clear() {
	clear(d.entries)
	d.entries = d.entries[:0]
	clear(d.index)
}

// Keys yields the keys in insertion order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range d.entries {
			if !yield(e.key) {
				return
			}
		}
	}
}

// All yields key/value pairs in insertion order.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range d.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
