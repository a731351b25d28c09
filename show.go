package show

import (
	"fmt"
	"reflect"
)

// Shower is implemented by types that render themselves. It takes precedence
// over [fmt.Stringer] and the default representation, so a type can override
// how [Show] prints it, including when it is nested inside a [Pair], a
// container, a [Maybe] or a [Result].
type Shower interface {
	Show() string
}

// Show converts x to human-readable text.
//
// Dispatch, most specific first:
//
//   - string: returned unchanged, no quoting or escaping
//   - [Shower]: x.Show()
//   - anything else: fmt.Sprint(x), which uses Error or String when x
//     implements error or [fmt.Stringer]
//
// Show never fails and never modifies x.
func Show[T any](x T) string {
	switch v := any(x).(type) {
	case string:
		return v
	case Shower:
		return showSafe(v)
	default:
		return fmt.Sprint(v)
	}
}

// showSafe calls s.Show, rendering a nil pointer whose Show method panics as
// "<nil>" the way fmt does for String and Error.
func showSafe(s Shower) (out string) {
	defer func() {
		if r := recover(); r != nil {
			if v := reflect.ValueOf(s); v.Kind() == reflect.Pointer && v.IsNil() {
				out = "<nil>"
				return
			}
			panic(r)
		}
	}()
	return s.Show()
}

// Pair is an ordered 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Show renders the pair as "(first, second)", showing both parts with [Show].
func (p Pair[A, B]) Show() string {
	return "(" + Show(p.First) + ", " + Show(p.Second) + ")"
}
