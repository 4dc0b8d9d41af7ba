package depq_test

import (
	"fmt"

	"github.com/camall3n/depq"
)

// ExampleQueue demonstrates draining a queue from both ends.
func ExampleQueue() {
	q := depq.New[string, int]()

	q.Push("low", 1)
	q.Push("mid", 5)
	q.Push("high", 9)

	item, prio, _ := q.PeekMin()
	fmt.Printf("min: %s = %d\n", item, prio)
	item, prio, _ = q.PeekMax()
	fmt.Printf("max: %s = %d\n", item, prio)

	// Pop alternately from either end
	item, prio, _ = q.PopMin()
	fmt.Printf("popped min: %s = %d\n", item, prio)
	item, prio, _ = q.PopMax()
	fmt.Printf("popped max: %s = %d\n", item, prio)

	// Output:
	// min: low = 1
	// max: high = 9
	// popped min: low = 1
	// popped max: high = 9
}

// ExampleQueue_update demonstrates that pushing an existing item updates
// its priority instead of inserting a duplicate.
func ExampleQueue_update() {
	q := depq.New[string, int]()

	q.Push("job", 2)
	q.Push("job", 8)

	fmt.Println("len:", q.Len())
	item, prio, _ := q.PeekMax()
	fmt.Printf("max: %s = %d\n", item, prio)

	// Output:
	// len: 1
	// max: job = 8
}

// ExampleQueue_stability demonstrates stable ordering among equal
// priorities: the min side drains in insertion order.
func ExampleQueue_stability() {
	q := depq.New[string, int]()

	q.Push("first", 0)
	q.Push("second", 0)
	q.Push("third", 0)

	for !q.Empty() {
		item, _, _ := q.PopMin()
		fmt.Println(item)
	}

	// Output:
	// first
	// second
	// third
}

// ExampleWithMaxLength demonstrates a bounded queue that retains only the
// highest-priority items.
func ExampleWithMaxLength() {
	q := depq.New[string, int](depq.WithMaxLength(3))

	q.Push("foo", 10)
	q.Push("bar", 7)
	q.Push("baz", 15)
	q.Push("fiz", 9)
	q.Push("buz", 12)

	for _, it := range q.Items() {
		fmt.Printf("%s = %d\n", it.Value, it.Priority)
	}

	// Output:
	// foo = 10
	// buz = 12
	// baz = 15
}
