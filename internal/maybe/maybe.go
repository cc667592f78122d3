// Package maybe provides a generic optional value.
// A Maybe is typically built at the point where a value may or may not exist:
//
//	target := maybe.Some(warrior)
//	nothing := maybe.None[domain.Character]()
//
// and consumed either by unpacking:
//
//	c, ok := target.Get()
//
// or by composing with Map / AndThen without branching at every step.
package maybe

// Maybe holds either a value of type T or nothing.
// The zero value is None.
type Maybe[T any] struct {
	val     T
	present bool
}

// Some returns a Maybe holding val.
func Some[T any](val T) Maybe[T] {
	return Maybe[T]{val: val, present: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool {
	return m.present
}

// IsNone reports whether the Maybe is empty.
func (m Maybe[T]) IsNone() bool {
	return !m.present
}

// Get unpacks the Maybe. The value is only meaningful when ok is true.
func (m Maybe[T]) Get() (T, bool) {
	return m.val, m.present
}

// OrElse returns the contained value, or fallback when empty.
func (m Maybe[T]) OrElse(fallback T) T {
	if !m.present {
		return fallback
	}
	return m.val
}

// Map applies fn to the contained value, if any.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.present {
		return None[U]()
	}
	return Some(fn(m.val))
}

// AndThen chains m into a dependent optional-producing step.
func AndThen[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return None[U]()
	}
	return fn(m.val)
}

// Collect applies fn to every item and keeps only present results,
// preserving input order.
func Collect[T, U any](items []T, fn func(T) Maybe[U]) []U {
	var out []U
	for _, item := range items {
		if v, ok := fn(item).Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
