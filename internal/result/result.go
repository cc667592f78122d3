// Package result provides a generic disjoint success/failure value.
// A Result carries exactly one of a success payload or a failure payload:
//
//	return result.Ok[string, failure.Failure]("done")
//	return result.Fail[string](invalid("bad input"))
//
// Callers inspect the outcome explicitly rather than catching anything:
//
//	if f, ok := r.Failure(); ok { ... }
//
// Expected failures travel as values; nothing in this package panics.
package result

import "combat-sim/internal/maybe"

// Result holds either a success value of type T or a failure value of type E,
// never both and never neither.
type Result[T, E any] struct {
	val T
	err E
	ok  bool
}

// Ok returns a successful Result carrying val.
func Ok[T, E any](val T) Result[T, E] {
	return Result[T, E]{val: val, ok: true}
}

// Fail returns a failed Result carrying err.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value unpacks the success payload. It is only meaningful when ok is true.
func (r Result[T, E]) Value() (T, bool) {
	return r.val, r.ok
}

// Failure unpacks the failure payload. It is only meaningful when failed is
// true.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

// Discard converts the Result to a Maybe, dropping the failure payload.
// This is a deliberate information loss for callers that only need a
// yes/no signal.
func (r Result[T, E]) Discard() maybe.Maybe[T] {
	if !r.ok {
		return maybe.None[T]()
	}
	return maybe.Some(r.val)
}

// Map applies fn to the success payload, passing failures through untouched.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return Ok[U, E](fn(r.val))
}

// AndThen chains r into a dependent result-producing step.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Fail[U](r.err)
	}
	return fn(r.val)
}
