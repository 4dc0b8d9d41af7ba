// Package depq implements a double-ended priority queue: a container that
// supports efficient retrieval and removal of both the minimum- and
// maximum-priority elements, with stable tie-breaking among equal priorities.
//
// The queue is implemented as an array-backed min-max heap with a map for
// O(1) item lookups. Tree levels alternate between min-ordered and
// max-ordered, which keeps both extremes reachable in O(log n) from a single
// array. Every element carries an insertion sequence number, and the heap
// orders by the composite (priority, sequence) key, so equal priorities
// resolve deterministically: the earliest-inserted element is the minimum,
// the most-recently-inserted is the maximum.
//
// Key features:
//   - Generic implementation supporting any comparable item type and any
//     ordered priority type
//   - O(log n) insertion, removal, and priority updates
//   - O(1) peeks at both the minimum and the maximum
//   - O(1) item-based lookups; update or remove any item by identity
//   - Optional length bound with automatic eviction of either extreme
//
// Basic usage:
//
//	// Create a queue of string items with int priorities
//	q := depq.New[string, int]()
//
//	// Add items; pushing an existing item updates its priority
//	q.Push("low", 1)
//	q.Push("mid", 5)
//	q.Push("high", 9)
//
//	// Inspect both ends
//	item, prio, err := q.PeekMin() // "low", 1
//	item, prio, err = q.PeekMax()  // "high", 9
//
//	// Drain from either end
//	item, prio, err = q.PopMin() // "low", 1
//	item, prio, err = q.PopMax() // "high", 9
//
//	// Remove a specific item regardless of its position
//	err = q.Remove("mid")
//
// A bounded queue keeps only the best N items:
//
//	// Keep the 100 highest-priority items; pushing beyond the bound
//	// evicts the current minimum.
//	q := depq.New[string, int](depq.WithMaxLength(100))
//
// The queue is not safe for concurrent use; callers that share a queue
// across goroutines must serialize access externally.
package depq
