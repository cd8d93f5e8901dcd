package radix

// Tree is a compressed trie over fixed-length digit strings. It remembers
// every value ever inserted through IsUnique, storing shared prefixes only
// once. The zero value is not usable; construct with New.
//
// Every node of one tree stores its edges through the same EdgeIndex
// strategy, chosen at construction. A Tree must not be used from more than
// one goroutine.
type Tree struct {
	root     *Node
	newIndex func() EdgeIndex
}

// New creates an empty tree. With no options the direct (slot-per-digit)
// edge index is used.
//
//	tree := radix.New()                        // direct index
//	tree := radix.New(radix.WithSortedIndex()) // O(log n) lookups
func New(opts ...Option) *Tree {
	t := &Tree{}
	WithDirectIndex()(t)
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.node()
	return t
}

// Reset forgets all previously seen values. The whole structure hangs off
// the root, so replacing the root releases every node and edge in one
// step; nothing outside the tree holds pointers into it.
func (t *Tree) Reset() {
	t.root = t.node()
}

// Root returns the root node. Useful for inspecting the structure; the
// tree itself must only be mutated through IsUnique.
func (t *Tree) Root() *Node {
	return t.root
}

// IsUnique reports whether value has never been inserted before, and
// records it. The first call for a given value returns true, every later
// call returns false, until Reset.
//
// The walk consumes the value front to back. At each node it asks the
// edge index for an edge sharing a prefix with what is left:
//   - no such edge: a new edge carrying the whole leftover is attached,
//     and the value is new.
//   - the shared prefix covers the whole edge label: the edge is walked
//     and the loop continues with the rest of the value.
//   - the shared prefix ends inside the edge label: the edge is split at
//     the divergence point, and the value is new.
//
// A value that drains to empty by only walking existing edges traced a
// path that was already there, so it is a repeat. Each round trip consumes
// at least one character, which guarantees termination.
//
// All values inserted into one tree must have the same length; the empty
// string is never new. Callers are expected to validate before inserting
// (see pkg/counter): once a value is validated, IsUnique cannot fail.
func (t *Tree) IsUnique(value string) bool {
	remainder := value
	current := t.root
	for remainder != "" {
		var unique bool
		current, remainder, unique = t.eat(current, remainder)
		if unique {
			return true
		}
	}
	return false
}

// node mints a fresh empty node carrying this tree's index strategy.
func (t *Tree) node() *Node {
	return &Node{edges: t.newIndex()}
}

// eat consumes characters from the front of remainder by following,
// creating, or splitting an edge out of current. It returns the node to
// continue from, what is left of the remainder, and whether this step
// proved the value was never seen before. When unique is true the walk is
// settled and the other results are meaningless.
func (t *Tree) eat(current *Node, remainder string) (next *Node, rest string, unique bool) {
	if remainder == "" {
		panic("[BUG] eat: remainder must not be empty")
	}

	n, edge := current.edges.Find(remainder)
	if edge == nil {
		// No edge shares anything with the remainder: this path has
		// never existed. Attach the whole leftover as one edge.
		current.attach(&Edge{label: remainder, next: t.node()})
		return nil, "", true
	}

	if n == len(edge.label) {
		// The whole label matched. Walk through the edge; uniqueness is
		// still undecided.
		return edge.next, remainder[n:], false
	}

	// The remainder diverges inside the label: split the edge at the
	// divergence point. A new branch means the value is new.
	t.split(edge, n, remainder)
	return nil, "", true
}

// split shortens edge to the first n characters of its label and hangs an
// intermediate node off it with two edges: the old label's tail keeping
// the original child (everything previously reachable stays reachable),
// and the remainder's tail leading to a fresh node.
//
// The two tails start with different characters - had they shared one, the
// common prefix would have run past n - so sibling disjointness holds at
// the new node by construction.
func (t *Tree) split(edge *Edge, n int, remainder string) {
	if n <= 0 || n >= len(edge.label) || n >= len(remainder) {
		panic("[BUG] split: divergence point out of bounds")
	}

	branch := t.node()
	branch.attach(&Edge{label: edge.label[n:], next: edge.next})
	branch.attach(&Edge{label: remainder[n:], next: t.node()})

	edge.label = edge.label[:n]
	edge.next = branch
}
