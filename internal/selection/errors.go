package selection

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three kinds of syntax failure. A *RangeError
// matches exactly one of them via errors.Is.
var (
	ErrMalformedRange  = errors.New("malformed range")
	ErrNonNumericRange = errors.New("range must contain numbers")
	ErrNonNumericTerm  = errors.New("invalid number")
)

// ErrorKind classifies a range expression syntax error
type ErrorKind int

const (
	// MalformedRange means an interval term did not split into exactly two parts
	MalformedRange ErrorKind = iota
	// NonNumericRange means the start or end of an interval is not an integer
	NonNumericRange
	// NonNumericTerm means a single term is not an integer
	NonNumericTerm
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case MalformedRange:
		return "MalformedRange"
	case NonNumericRange:
		return "NonNumericRange"
	case NonNumericTerm:
		return "NonNumericTerm"
	default:
		return "Unknown"
	}
}

// RangeError reports the term of a range expression that could not be parsed
type RangeError struct {
	Kind ErrorKind
	Term string
}

func (e *RangeError) Error() string {
	switch e.Kind {
	case MalformedRange:
		return fmt.Sprintf("invalid range format: %s", e.Term)
	case NonNumericRange:
		return fmt.Sprintf("range must contain numbers: %s", e.Term)
	default:
		return fmt.Sprintf("invalid number: %s", e.Term)
	}
}

// Is matches the sentinel that corresponds to the error kind
func (e *RangeError) Is(target error) bool {
	switch e.Kind {
	case MalformedRange:
		return target == ErrMalformedRange
	case NonNumericRange:
		return target == ErrNonNumericRange
	case NonNumericTerm:
		return target == ErrNonNumericTerm
	}
	return false
}
