package gassist

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a square root, asin or acos argument is out of range.
	ErrDomain = errors.New("argument outside of function domain")
	// ErrInvalidConfig is returned when the parameters of a call are rejected before any computation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrParabolic is returned for orbits with an eccentricity of exactly one.
	ErrParabolic = errors.New("parabolic orbits are not supported")
	// ErrCircularRadius is returned when converting a radius to an angle on a circular orbit.
	ErrCircularRadius = errors.New("true anomaly is undefined from a radius on a circular orbit")
)

// DomainError records the operation and argument which left the domain.
type DomainError struct {
	Op  string
	Arg float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (got %g)", e.Op, ErrDomain, e.Arg)
}

// Unwrap allows errors.Is(err, ErrDomain).
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

func domainErr(op string, arg float64) error {
	return &DomainError{Op: op, Arg: arg}
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
