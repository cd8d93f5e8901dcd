package radix

import "sort"

// EdgeIndex is the strategy a node uses to store and search its outgoing
// edges. The three implementations trade lookup cost against memory and
// must be behaviorally interchangeable: given the same insertions, Find
// returns the same answers.
//
// Find reports the edge whose label shares a non-empty prefix with the
// remainder, along with the length of that shared prefix. Sibling
// disjointness guarantees at most one such edge exists. A (0, nil) result
// is the normal "no edge shares anything" outcome, not a failure.
type EdgeIndex interface {
	// Add stores an edge. The caller guarantees no existing sibling
	// shares the edge label's leading character.
	Add(e *Edge)

	// Find looks for the edge sharing a prefix with remainder, which
	// must not be empty.
	Find(remainder string) (int, *Edge)

	// Edges lists the stored edges, in no particular order.
	Edges() []*Edge
}

// alphabetSize is the fan-out of the decimal alphabet '0'..'9'.
const alphabetSize = 10

// LinearIndex keeps edges in insertion order and scans them one by one,
// stopping at the first positive common prefix. O(edges) per lookup, no
// memory beyond the edges themselves.
type LinearIndex struct {
	edges []*Edge
}

func (x *LinearIndex) Add(e *Edge) {
	x.edges = append(x.edges, e)
}

func (x *LinearIndex) Find(remainder string) (int, *Edge) {
	for _, e := range x.edges {
		if n := e.commonPrefixLen(remainder); n > 0 {
			return n, e
		}
	}
	return 0, nil
}

func (x *LinearIndex) Edges() []*Edge {
	return x.edges
}

// SortedIndex keeps edges sorted by label. Because sibling labels never
// share a leading character, the only edge that can share a prefix with
// the remainder is one of the remainder's two lexicographic neighbors, so
// Find probes at most two candidates after a binary search. O(log edges).
type SortedIndex struct {
	edges []*Edge
}

func (x *SortedIndex) Add(e *Edge) {
	at := sort.Search(len(x.edges), func(i int) bool {
		return x.edges[i].label >= e.label
	})
	x.edges = append(x.edges, nil)
	copy(x.edges[at+1:], x.edges[at:])
	x.edges[at] = e
}

func (x *SortedIndex) Find(remainder string) (int, *Edge) {
	at := sort.Search(len(x.edges), func(i int) bool {
		return x.edges[i].label >= remainder
	})

	// The successor first: a label that is >= remainder can still share a
	// prefix with it (e.g. label "457" against remainder "45"). Then the
	// predecessor, which covers labels that are prefixes of the remainder
	// (e.g. label "45" against remainder "457").
	if at < len(x.edges) {
		if n := x.edges[at].commonPrefixLen(remainder); n > 0 {
			return n, x.edges[at]
		}
	}
	if at > 0 {
		if n := x.edges[at-1].commonPrefixLen(remainder); n > 0 {
			return n, x.edges[at-1]
		}
	}
	return 0, nil
}

func (x *SortedIndex) Edges() []*Edge {
	return x.edges
}

// DirectIndex keeps one slot per possible leading digit, so both Add and
// Find are a single array access. O(1), at the cost of ten slots per node
// and a fixed decimal alphabet. Sibling disjointness guarantees at most
// one edge per slot.
type DirectIndex struct {
	slots [alphabetSize]*Edge
}

func (x *DirectIndex) Add(e *Edge) {
	x.slots[digitSlot(e.label[0])] = e
}

func (x *DirectIndex) Find(remainder string) (int, *Edge) {
	if remainder == "" {
		panic("[BUG] Find: remainder must not be empty")
	}
	e := x.slots[digitSlot(remainder[0])]
	if e == nil {
		return 0, nil
	}
	return e.commonPrefixLen(remainder), e
}

func (x *DirectIndex) Edges() []*Edge {
	edges := []*Edge{}
	for _, e := range x.slots {
		if e != nil {
			edges = append(edges, e)
		}
	}
	return edges
}

// digitSlot maps a decimal digit character to its slot. A non-digit here
// means a value bypassed validation, which is a caller bug; failing loudly
// beats silently indexing the wrong slot.
func digitSlot(c byte) int {
	if c < '0' || c > '9' {
		panic("[BUG] digitSlot: direct index requires decimal digit labels")
	}
	return int(c - '0')
}
