package radix

// Node is a point in the tree that owns zero or more outgoing edges. Nodes
// carry no payload; whether a value is new is decided by the structural
// change (or absence of one) during traversal, never by a stored flag.
type Node struct {
	edges EdgeIndex
}

// IsLeaf checks if the node has no outgoing edges.
func (n *Node) IsLeaf() bool {
	return len(n.edges.Edges()) == 0
}

// attach adds an edge to this node's index. Sibling labels must not share
// a leading character; the traversal only calls this when that is already
// guaranteed (no sharing edge was found, or a split just separated the
// shared prefix).
func (n *Node) attach(e *Edge) {
	if e == nil || e.label == "" {
		panic("[BUG] attach: edge must exist and carry a non-empty label")
	}
	n.edges.Add(e)
}
