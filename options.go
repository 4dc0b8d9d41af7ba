package depq

// Keep selects which end of the priority range a bounded queue retains
// when a push exceeds its length bound.
type Keep int

const (
	// KeepHighest evicts the current minimum, retaining the
	// highest-priority items. This is the default.
	KeepHighest Keep = iota
	// KeepLowest evicts the current maximum, retaining the
	// lowest-priority items.
	KeepLowest
)

// options defines all configuration options for the queue.
type options struct {
	maxLength int  // Maximum number of stored elements; 0 means unbounded
	keep      Keep // Which end of the priority range to retain when bounded
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithMaxLength bounds the number of stored elements. When a push would
// leave more than n elements in the queue, one element is evicted per the
// Keep policy immediately after the push settles. Values below 1 leave the
// queue unbounded.
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// WithKeep sets which end of the priority range a bounded queue retains.
// It has no effect unless WithMaxLength is also set.
func WithKeep(k Keep) Option {
	return func(o *options) {
		o.keep = k
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		maxLength: 0,
		keep:      KeepHighest,
	}
}
