// Package xerrors implements the two error kinds from spec.md §7 that are
// error values (MalformedInput and GeometricPrecondition) on top of
// github.com/pkg/errors, so that wrapped causes keep a stack trace without
// every call site having to build one by hand.
package xerrors

import "github.com/pkg/errors"

// ErrMalformedInput is the sentinel cause for unreadable files, bad
// headers, out-of-range coordinates, dangling ids and the other static
// mesh/scenario defects from spec.md §7. It is always returned, never
// panicked.
var ErrMalformedInput = errors.New("malformed input")

// ErrGeometricPrecondition is the sentinel cause for a violated invariant
// inside the geometry kernel or search-node construction — a programming
// error in the spec's own terms. Precondition panics with it rather than
// returning it, so the bug surfaces immediately instead of silently
// producing a wrong path.
var ErrGeometricPrecondition = errors.New("geometric precondition violated")

// MalformedInput returns ErrMalformedInput wrapped with context describing
// the offending input.
func MalformedInput(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}

// Precondition panics with ErrGeometricPrecondition wrapped with the given
// context. Callers in internal/sphere and internal/search never recover
// from this locally, per spec.md §7's fail-fast propagation rule; only the
// per-scenario boundary in cmd/pathfind recovers, so one malformed mesh
// cannot take down a whole batch run.
func Precondition(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrGeometricPrecondition, format, args...))
}

// IsMalformedInput reports whether err (or a cause in its chain) is
// ErrMalformedInput.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsGeometricPrecondition reports whether err (or a cause in its chain) is
// ErrGeometricPrecondition — used by the recover() at the per-scenario
// boundary to distinguish an expected-shape panic from an unrelated one,
// which it re-panics.
func IsGeometricPrecondition(err error) bool {
	return errors.Is(err, ErrGeometricPrecondition)
}
