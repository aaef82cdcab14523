package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidSequence marks content outside the A/C/G/T alphabet.
var ErrInvalidSequence = errors.New("not a valid DNA sequence")

// InvalidSequenceError locates the first offending base.
type InvalidSequenceError struct {
	Record string
	Pos    int // 0-based, within the record's sequence
	Base   byte
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("%v (record %q: %q at position %d)", ErrInvalidSequence, e.Record, e.Base, e.Pos+1)
}

func (e *InvalidSequenceError) Is(target error) bool { return target == ErrInvalidSequence }
