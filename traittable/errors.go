package traittable

import (
	"errors"
	"fmt"

	"github.com/carbocation/biodistance"
)

var (
	// ErrIO is returned, wrapped, when an input cannot be read.
	ErrIO = biodistance.ErrIO

	ErrMalformedHeader    = errors.New("no first trait column found")
	ErrBadCode            = errors.New("trait code is not an integer")
	ErrTraitCountMismatch = errors.New("unequal numbers of traits")
)

// HeaderError reports an input whose header has no cell starting with a
// digit.
type HeaderError struct {
	Source string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: No first trait column found. Header missing or invalid.", e.Source)
}

func (e *HeaderError) Is(target error) bool { return target == ErrMalformedHeader }

// CodeError reports a trait cell rejected by strict parsing.
type CodeError struct {
	Source string
	Line   int
	Column int // 1-based
	Value  string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: line %d, column %d: %q is not an integer trait code", e.Source, e.Line, e.Column, e.Value)
}

func (e *CodeError) Is(target error) bool { return target == ErrBadCode }

// MismatchError reports two tables that cannot be compared trait by trait.
type MismatchError struct {
	A, B   string
	NA, NB int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("Unequal numbers of traits: %s has %d, %s has %d", e.A, e.NA, e.B, e.NB)
}

func (e *MismatchError) Is(target error) bool { return target == ErrTraitCountMismatch }

// CheckTraitCounts returns a *MismatchError naming the first table whose trait
// count differs from the first table's.
func CheckTraitCounts(tables ...*Table) error {
	for _, t := range tables {
		if t.NumTraits() != tables[0].NumTraits() {
			return &MismatchError{
				A:  tables[0].Name,
				NA: tables[0].NumTraits(),
				B:  t.Name,
				NB: t.NumTraits(),
			}
		}
	}

	return nil
}
