package counter

// UniquenessOracle decides, for a stream of fixed-length digit strings,
// whether each one is newly distinct. IsUnique both answers and records:
// it returns true exactly once per distinct value, then false for every
// repeat, until Reset returns the oracle to its initial empty state.
//
// Implementations are stateful and not safe for concurrent use.
type UniquenessOracle interface {
	Reset()
	IsUnique(value string) bool
}

// SetOracle remembers every value verbatim in a set. It is the trivial
// reference implementation: fast, memory-hungry, and obviously correct,
// which makes it the ground truth the radix tree is tested against.
type SetOracle struct {
	seen map[string]struct{}
}

// NewSetOracle creates an empty set-backed oracle.
func NewSetOracle() *SetOracle {
	return &SetOracle{seen: map[string]struct{}{}}
}

// Reset forgets all previously seen values.
func (o *SetOracle) Reset() {
	o.seen = map[string]struct{}{}
}

// IsUnique reports whether value was not already present, and records it.
func (o *SetOracle) IsUnique(value string) bool {
	if _, ok := o.seen[value]; ok {
		return false
	}
	o.seen[value] = struct{}{}
	return true
}
