package depq

import (
	"cmp"
	"errors"
	"slices"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyQueue is returned by pops and peeks on an empty queue.
	ErrEmptyQueue = errors.New("depq: queue is empty")
	// ErrItemNotFound is returned by Remove when the item is not in the queue.
	ErrItemNotFound = errors.New("depq: item not found")
)

// entry is the unit stored in the heap. seq is assigned from the queue's
// counter at insertion (or update) time and breaks priority ties: the heap
// orders by the composite (priority, seq) key, under which no two entries
// ever compare equal.
type entry[T comparable, P constraints.Ordered] struct {
	item     T
	priority P
	seq      uint64
}

// Item is a snapshot of a queue element, as returned by Items.
type Item[T comparable, P constraints.Ordered] struct {
	Value    T
	Priority P
}

// Queue is a double-ended priority queue backed by a min-max heap.
// Items are unique: pushing an existing item updates its priority instead
// of inserting a duplicate. The zero Queue is not usable; construct with New.
type Queue[T comparable, P constraints.Ordered] struct {
	entries []entry[T, P]
	slots   map[T]int // item -> index in entries
	seq     uint64    // next insertion sequence number, never reused
	opts    options
}

// New creates an empty double-ended priority queue.
func New[T comparable, P constraints.Ordered](opts ...Option) *Queue[T, P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[T, P]{
		slots: make(map[T]int),
		opts:  o,
	}
}

// Len returns the number of items in the queue.
func (q *Queue[T, P]) Len() int {
	return len(q.entries)
}

// Empty reports whether the queue holds no items.
func (q *Queue[T, P]) Empty() bool {
	return len(q.entries) == 0
}

// Push adds a new item or updates the priority of an existing item.
// Either way the item is assigned a fresh sequence number, so among equal
// priorities it sorts after everything already present. If a length bound
// is configured and the push exceeds it, one element is evicted per the
// queue's Keep policy; the evicted element may be the item just pushed.
func (q *Queue[T, P]) Push(item T, priority P) {
	if i, ok := q.slots[item]; ok {
		q.entries[i].priority = priority
		q.entries[i].seq = q.seq
		q.seq++
		q.fix(i)
	} else {
		q.entries = append(q.entries, entry[T, P]{item: item, priority: priority, seq: q.seq})
		q.seq++
		q.slots[item] = len(q.entries) - 1
		q.up(len(q.entries) - 1)
	}

	if q.opts.maxLength > 0 && len(q.entries) > q.opts.maxLength {
		switch q.opts.keep {
		case KeepLowest:
			q.removeAt(q.maxIndex())
		default:
			q.removeAt(0)
		}
	}
}

// PeekMin returns the minimum-priority item without removing it.
func (q *Queue[T, P]) PeekMin() (T, P, error) {
	if len(q.entries) == 0 {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}
	e := q.entries[0]
	return e.item, e.priority, nil
}

// PeekMax returns the maximum-priority item without removing it.
func (q *Queue[T, P]) PeekMax() (T, P, error) {
	if len(q.entries) == 0 {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}
	e := q.entries[q.maxIndex()]
	return e.item, e.priority, nil
}

// PopMin removes and returns the minimum-priority item.
// Among equal priorities the earliest-inserted item is returned first.
func (q *Queue[T, P]) PopMin() (T, P, error) {
	if len(q.entries) == 0 {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}
	e := q.removeAt(0)
	return e.item, e.priority, nil
}

// PopMax removes and returns the maximum-priority item.
// Among equal priorities the most-recently-inserted item is returned first.
func (q *Queue[T, P]) PopMax() (T, P, error) {
	if len(q.entries) == 0 {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}
	e := q.removeAt(q.maxIndex())
	return e.item, e.priority, nil
}

// Remove deletes the given item from anywhere in the queue.
func (q *Queue[T, P]) Remove(item T) error {
	i, ok := q.slots[item]
	if !ok {
		return ErrItemNotFound
	}
	q.removeAt(i)
	return nil
}

// Items returns a snapshot of the queue contents in ascending priority
// order, equal priorities in insertion order. The queue is not modified.
func (q *Queue[T, P]) Items() []Item[T, P] {
	es := make([]entry[T, P], len(q.entries))
	copy(es, q.entries)
	slices.SortFunc(es, func(a, b entry[T, P]) int {
		if c := cmp.Compare(a.priority, b.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	items := make([]Item[T, P], len(es))
	for i, e := range es {
		items[i] = Item[T, P]{Value: e.item, Priority: e.priority}
	}
	return items
}

// maxIndex returns the slot of the maximum entry: the root for a single
// element, otherwise the greater of the root's children (the first max
// level). Callers must ensure the queue is non-empty.
func (q *Queue[T, P]) maxIndex() int {
	if len(q.entries) == 1 {
		return 0
	}
	m := 1
	if len(q.entries) > 2 && q.less(m, 2) {
		m = 2
	}
	return m
}

// removeAt deletes the entry at slot i and returns it: the last entry moves
// into the vacated slot, the array shrinks, and the moved entry is sifted
// in whichever direction restores the invariant.
func (q *Queue[T, P]) removeAt(i int) entry[T, P] {
	e := q.entries[i]
	n := len(q.entries) - 1
	if i != n {
		q.swap(i, n)
	}
	q.entries = q.entries[:n]
	delete(q.slots, e.item)
	if i != n {
		q.fix(i)
	}
	return e
}
