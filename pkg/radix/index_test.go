package radix

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// indexes returns one fresh instance of every EdgeIndex strategy, keyed by
// name so failures report which strategy misbehaved.
func indexes() map[string]EdgeIndex {
	return map[string]EdgeIndex{
		"linear": &LinearIndex{},
		"sorted": &SortedIndex{},
		"direct": &DirectIndex{},
	}
}

// TestFindOnEmptyIndex verifies that no edge is a normal outcome, not a
// failure.
func TestFindOnEmptyIndex(t *testing.T) {
	for name, index := range indexes() {
		n, edge := index.Find("123")
		assert.Zero(t, n, "%s: empty index should share no characters", name)
		assert.Nil(t, edge, "%s: empty index should find no edge", name)
	}
}

// TestFindSingleEdge verifies the common-prefix arithmetic against one
// stored edge.
func TestFindSingleEdge(t *testing.T) {
	for name, index := range indexes() {
		index.Add(&Edge{label: "123"})

		n, edge := index.Find("123")
		assert.Equal(t, 3, n, "%s: identical strings share every character", name)
		assert.NotNil(t, edge, "%s: identical strings should find the edge", name)

		n, edge = index.Find("124")
		assert.Equal(t, 2, n, "%s: divergence at the last character", name)
		assert.NotNil(t, edge, "%s: a partial match is still a match", name)

		n, edge = index.Find("456")
		assert.Zero(t, n, "%s: disjoint strings share nothing", name)
		assert.Nil(t, edge, "%s: disjoint strings should find no edge", name)
	}
}

// TestFindAmongFullFanOut verifies lookups when every slot of the decimal
// alphabet is occupied.
func TestFindAmongFullFanOut(t *testing.T) {
	for name, index := range indexes() {
		for d := 0; d < 10; d++ {
			index.Add(&Edge{label: fmt.Sprintf("%d77", d)})
		}
		for d := 0; d < 10; d++ {
			remainder := fmt.Sprintf("%d89", d)
			n, edge := index.Find(remainder)
			assert.Equal(t, 1, n, "%s: only the leading digit of %q matches", name, remainder)
			assert.Equal(t, fmt.Sprintf("%d77", d), edge.Label(), "%s: the edge sharing the leading digit should be found", name)
		}
	}
}

// TestSortedFindNeighborBoundaries pins the sorted strategy's soundness:
// it only ever probes the remainder's two lexicographic neighbors, which
// is enough exactly because sibling labels never share a leading
// character. Each case places the sharing edge (or no edge) on a
// different side of the insertion point.
func TestSortedFindNeighborBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		labels    []string
		remainder string
		wantN     int
		wantLabel string
	}{
		{"sharing edge is the predecessor", []string{"45", "68"}, "457", 2, "45"},
		{"sharing edge is the successor", []string{"457", "68"}, "454", 2, "457"},
		{"label is a prefix of the remainder", []string{"2", "45"}, "4589", 2, "45"},
		{"remainder is a prefix of the label", []string{"4589", "68"}, "45", 2, "4589"},
		{"remainder falls between strangers", []string{"337", "557"}, "457", 0, ""},
		{"remainder below every label", []string{"557", "777"}, "337", 0, ""},
		{"remainder above every label", []string{"337", "557"}, "777", 0, ""},
		{"exact label match", []string{"337", "457", "557"}, "457", 3, "457"},
	}

	for _, c := range cases {
		index := &SortedIndex{}
		for _, label := range c.labels {
			index.Add(&Edge{label: label})
		}

		n, edge := index.Find(c.remainder)
		assert.Equal(t, c.wantN, n, "%s: wrong shared-prefix length", c.name)
		if c.wantLabel == "" {
			assert.Nil(t, edge, "%s: no edge should be found", c.name)
		} else {
			assert.NotNil(t, edge, "%s: an edge should be found", c.name)
			assert.Equal(t, c.wantLabel, edge.Label(), "%s: wrong edge found", c.name)
		}
	}
}

// TestSortedAddKeepsOrder verifies the sorted index stays sorted no matter
// the insertion order.
func TestSortedAddKeepsOrder(t *testing.T) {
	index := &SortedIndex{}
	for _, label := range []string{"57", "13", "99", "42", "08"} {
		index.Add(&Edge{label: label})
	}

	labels := []string{}
	for _, edge := range index.Edges() {
		labels = append(labels, edge.Label())
	}
	assert.Equal(t, []string{"08", "13", "42", "57", "99"}, labels, "edges should be in lexicographic order")
}

// TestStrategiesAgree feeds every strategy the same disjoint label sets
// and random lookups; all three must return identical answers.
func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 100; round++ {
		all := indexes()

		// One label per leading digit keeps the siblings disjoint, the
		// way the tree's split logic guarantees by construction.
		for d := 0; d < 10; d++ {
			if rng.Intn(2) == 0 {
				continue
			}
			label := fmt.Sprintf("%d%03d", d, rng.Intn(1000))
			for _, index := range all {
				index.Add(&Edge{label: label})
			}
		}

		for probe := 0; probe < 20; probe++ {
			remainder := fmt.Sprintf("%04d", rng.Intn(10000))

			n, edge := all["linear"].Find(remainder)
			for _, name := range []string{"sorted", "direct"} {
				otherN, otherEdge := all[name].Find(remainder)
				assert.Equal(t, n, otherN, "%s disagrees with linear on %q (round %d)", name, remainder, round)
				if edge == nil {
					assert.Nil(t, otherEdge, "%s found an edge linear did not for %q", name, remainder)
				} else {
					assert.NotNil(t, otherEdge, "%s missed the edge linear found for %q", name, remainder)
					assert.Equal(t, edge.Label(), otherEdge.Label(), "%s found a different edge for %q", name, remainder)
				}
			}
		}
	}
}

// TestDirectIndexRejectsNonDigit verifies the fixed-alphabet strategy
// fails loudly when a value bypassed validation.
func TestDirectIndexRejectsNonDigit(t *testing.T) {
	index := &DirectIndex{}
	assert.Panics(t, func() { index.Find("abc") }, "a non-digit remainder means validation was bypassed")
	assert.Panics(t, func() { index.Add(&Edge{label: "abc"}) }, "a non-digit label means validation was bypassed")
}
