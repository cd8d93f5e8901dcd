package radix

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLinearIndex stores edges in an unordered list scanned on lookup.
func WithLinearIndex() Option {
	return func(t *Tree) {
		t.newIndex = func() EdgeIndex { return &LinearIndex{} }
	}
}

// WithSortedIndex stores edges in lexicographic order and looks them up
// with a binary search.
func WithSortedIndex() Option {
	return func(t *Tree) {
		t.newIndex = func() EdgeIndex { return &SortedIndex{} }
	}
}

// WithDirectIndex stores edges in a fixed array indexed by the label's
// leading digit. This is the default.
func WithDirectIndex() Option {
	return func(t *Tree) {
		t.newIndex = func() EdgeIndex { return &DirectIndex{} }
	}
}
