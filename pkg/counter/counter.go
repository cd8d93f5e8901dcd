package counter

import (
	"errors"
	"fmt"
)

// ErrConfig reports a counter or factory that was constructed with
// unusable parameters. These are programming mistakes, not data problems,
// and retrying cannot fix them.
var ErrConfig = errors.New("invalid configuration")

// ValidationError reports an input value the counter refused to process.
// Validation happens before the oracle is consulted, so a rejected value
// never changes the oracle's state or the running count.
type ValidationError struct {
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", e.Value, e.Reason)
}

// Counter tallies the distinct values in a stream of fixed-length digit
// strings. It owns one UniquenessOracle exclusively and asks it about each
// value that passes validation, counting the true answers.
//
// Not safe for concurrent use.
type Counter struct {
	numExpectedDigits int
	oracle            UniquenessOracle
	count             int
}

// NewCounter creates a counter around the given oracle for values of
// exactly numExpectedDigits decimal digits. The oracle is reset so a
// reused instance starts clean.
//
// Returns:
//   - The counter, or an error wrapping ErrConfig when the oracle is nil
//     or the expected length is zero.
func NewCounter(oracle UniquenessOracle, numExpectedDigits int) (*Counter, error) {
	if oracle == nil {
		return nil, fmt.Errorf("%w: an oracle is required", ErrConfig)
	}
	if numExpectedDigits <= 0 {
		return nil, fmt.Errorf("%w: expected digits must be positive, got %d", ErrConfig, numExpectedDigits)
	}

	oracle.Reset()
	return &Counter{
		numExpectedDigits: numExpectedDigits,
		oracle:            oracle,
	}, nil
}

// ProcessNumber feeds one value from the stream to the counter. The value
// is validated first; a *ValidationError is returned when its length or
// characters are wrong, and in that case neither the oracle nor the count
// is touched. Once validated, the value cannot make the oracle fail.
func (c *Counter) ProcessNumber(value string) error {
	if err := c.checkNumber(value); err != nil {
		return err
	}

	if c.oracle.IsUnique(value) {
		c.count++
	}
	return nil
}

// GetCount returns the number of distinct values seen so far.
func (c *Counter) GetCount() int {
	return c.count
}

// checkNumber verifies the value has exactly the expected number of
// decimal digit characters.
func (c *Counter) checkNumber(value string) error {
	if len(value) != c.numExpectedDigits {
		return &ValidationError{
			Value:  value,
			Reason: fmt.Sprintf("expected %d digits, got %d characters", c.numExpectedDigits, len(value)),
		}
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return &ValidationError{
				Value:  value,
				Reason: fmt.Sprintf("character %q at position %d is not a decimal digit", value[i], i),
			}
		}
	}
	return nil
}
