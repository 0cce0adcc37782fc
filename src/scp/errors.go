package scp

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; the concrete error types below carry the details.
var (
	ErrInfeasibleInstance   = errors.New("scp: infeasible instance")
	ErrUnsupportedAlgorithm = errors.New("scp: unsupported algorithm")
	ErrPreconditionViolated = errors.New("scp: precondition violated")
	ErrMalformedInput       = errors.New("scp: malformed input")
)

// InfeasibleInstanceError names the first element (1-based) no set contains.
type InfeasibleInstanceError struct {
	Element int
}

func (e *InfeasibleInstanceError) Error() string {
	return fmt.Sprintf("no set contains element %d", e.Element)
}

func (e *InfeasibleInstanceError) Is(target error) bool {
	return target == ErrInfeasibleInstance
}

type UnsupportedAlgorithmError struct {
	Tag string
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported algorithm %q", e.Tag)
}

func (e *UnsupportedAlgorithmError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithm
}

// PreconditionViolatedError reports a parameter outside the range an operation accepts.
// Limit is the bound that was crossed; Value is what was supplied.
type PreconditionViolatedError struct {
	Algorithm string
	Parameter string
	Value     float64
	Limit     float64
}

func (e *PreconditionViolatedError) Error() string {
	return fmt.Sprintf("%s: parameter %s=%v violates limit %v", e.Algorithm, e.Parameter, e.Value, e.Limit)
}

func (e *PreconditionViolatedError) Is(target error) bool {
	return target == ErrPreconditionViolated
}

// MalformedInputError points at the offending token (0-based index in the stream).
type MalformedInputError struct {
	Location int
	Detail   string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at token %d: %s", e.Location, e.Detail)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
