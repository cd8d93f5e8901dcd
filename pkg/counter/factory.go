package counter

import (
	"fmt"

	"github.com/uniqcount/uniqcount/pkg/radix"
)

// Named oracle algorithms accepted by NewOracle.
const (
	AlgorithmSet              = "set"
	AlgorithmCompactRadixTree = "compact-radix-tree"
)

// Named edge-index strategies for the compact-radix-tree algorithm.
const (
	IndexLinear = "linear"
	IndexSorted = "sorted"
	IndexDirect = "direct"
)

// NewOracle constructs a uniqueness oracle by name. The algorithm is
// "set" or "compact-radix-tree"; for the radix tree, edgeIndex selects the
// edge-storage strategy ("linear", "sorted" or "direct") and an empty
// string means the default. The set algorithm ignores edgeIndex.
func NewOracle(algorithm string, edgeIndex string) (UniquenessOracle, error) {
	switch algorithm {
	case AlgorithmSet:
		return NewSetOracle(), nil
	case AlgorithmCompactRadixTree:
		opt, err := indexOption(edgeIndex)
		if err != nil {
			return nil, err
		}
		return radix.New(opt...), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrConfig, algorithm)
	}
}

func indexOption(edgeIndex string) ([]radix.Option, error) {
	switch edgeIndex {
	case "":
		return nil, nil
	case IndexLinear:
		return []radix.Option{radix.WithLinearIndex()}, nil
	case IndexSorted:
		return []radix.Option{radix.WithSortedIndex()}, nil
	case IndexDirect:
		return []radix.Option{radix.WithDirectIndex()}, nil
	default:
		return nil, fmt.Errorf("%w: unknown edge index %q", ErrConfig, edgeIndex)
	}
}
