package show

// Maybe holds either a value (Just) or nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just returns a Maybe holding v.
func Just[T any](v T) Maybe[T] { return Maybe[T]{value: v, ok: true} }

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] { return Maybe[T]{} }

// IsNothing reports whether m is empty.
func (m Maybe[T]) IsNothing() bool { return !m.ok }

// UnsafeGetJust returns the held value. On an empty Maybe it returns the
// zero value of T.
func (m Maybe[T]) UnsafeGetJust() T { return m.value }

// Show renders m like [ShowMaybe].
func (m Maybe[T]) Show() string { return ShowMaybe(m) }

// Result holds either an Ok value or an Error value.
// The zero value is Ok with the zero value of T.
type Result[T, E any] struct {
	ok    T
	err   E
	isErr bool
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{ok: v} }

// Error returns a failed Result holding e.
func Error[T, E any](e E) Result[T, E] { return Result[T, E]{err: e, isErr: true} }

// IsError reports whether r holds an Error value.
func (r Result[T, E]) IsError() bool { return r.isErr }

// UnsafeGetOk returns the Ok value, or the zero value of T if r is an Error.
func (r Result[T, E]) UnsafeGetOk() T { return r.ok }

// UnsafeGetError returns the Error value, or the zero value of E if r is Ok.
func (r Result[T, E]) UnsafeGetError() E { return r.err }

// Show renders r like [ShowResult].
func (r Result[T, E]) Show() string { return ShowResult(r) }

// ShowMaybe renders "Nothing" for an empty Maybe and "Just " followed by the
// shown value otherwise.
func ShowMaybe[T any](m Maybe[T]) string {
	if m.IsNothing() {
		return "Nothing"
	}
	return "Just " + Show(m.UnsafeGetJust())
}

// ShowResult renders "Ok " or "Error " followed by the shown payload.
func ShowResult[T, E any](r Result[T, E]) string {
	if r.IsError() {
		return "Error " + Show(r.UnsafeGetError())
	}
	return "Ok " + Show(r.UnsafeGetOk())
}
