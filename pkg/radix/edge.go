package radix

// Edge is a labeled transition between two nodes. The label is the string
// that must be consumed to move through the edge, and the edge exclusively
// owns the node it leads to.
type Edge struct {
	label string
	next  *Node
}

// Label returns the string required to transition through this edge.
func (e *Edge) Label() string {
	return e.label
}

// Next returns the node this edge leads to.
func (e *Edge) Next() *Node {
	return e.next
}

// commonPrefixLen returns how many leading characters the edge label and
// the remainder share. The remainder must not be empty; an empty remainder
// here means a traversal bug, not bad input.
func (e *Edge) commonPrefixLen(remainder string) int {
	if remainder == "" {
		panic("[BUG] commonPrefixLen: remainder must not be empty")
	}

	n := 0
	for n < len(e.label) && n < len(remainder) && e.label[n] == remainder[n] {
		n++
	}
	return n
}
