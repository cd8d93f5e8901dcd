// ## Overview
// Package radix implements a compressed trie (compact radix tree) that
// detects whether a fixed-length digit string has been seen before.
// Chains of single-child nodes are collapsed into one edge carrying a
// multi-character label, so memory grows with the shared structure of the
// input rather than with its raw volume. An insertion walks the tree
// consuming the value; the walk either traces an existing path end to end
// (the value is a repeat) or has to create or split an edge (the value is
// new). Newness is signaled by that structural change alone - nodes carry
// no payload.
//
// How a node stores its outgoing edges is pluggable. Three strategies are
// provided, all behaviorally identical:
//
//	linear - unordered scan, O(edges) per lookup
//	sorted - lexicographic order + binary search, O(log edges)
//	direct - one slot per leading digit, O(1), decimal alphabet only
//
// ## Example usage:
//
//	tree := radix.New(radix.WithSortedIndex())
//
//	tree.IsUnique("120") // true, new edge "120"
//	tree.IsUnique("121") // true, "120" splits into "12" -> {"0", "1"}
//	tree.IsUnique("120") // false, the path already exists
//
//	tree.Reset() // forget everything by discarding the root
//
// A Tree is not safe for concurrent use; every value inserted into one
// tree must have the same length.
package radix
