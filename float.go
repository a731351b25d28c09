package show

import (
	"math"
	"strconv"
	"strings"
)

// Float is the set of types accepted by [ShowFloat].
type Float interface {
	~float32 | ~float64
}

// ShowFloat returns a function that renders a number in fixed-point notation
// with exactly right digits after the decimal point and the integer part
// zero-padded to at least minLeft characters. For negative numbers the minus
// sign takes one of the minLeft characters.
//
//	ShowFloat[float64](0, 3)(3.14159)  == "3.142"
//	ShowFloat[float64](2, 3)(3.14159)  == "03.142"
//	ShowFloat[float64](2, 3)(-3.14159) == "-3.142"
//	ShowFloat[float64](3, 3)(-3.14159) == "-03.142"
//
// Rounding is the correctly rounded decimal of the binary value, as done by
// [strconv.FormatFloat]. A negative number whose rounded digits are all zero
// is shown without a sign, so -0.0001 at three digits is "0.000". NaN and
// infinities are shown as "NaN", "Inf" and "-Inf" with no padding.
func ShowFloat[F Float](minLeft, right int) func(F) string {
	right = max(right, 0)
	return func(x F) string {
		f := float64(x)
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Inf"
		case math.IsInf(f, -1):
			return "-Inf"
		}

		digits := strconv.FormatFloat(math.Abs(f), 'f', right, 64)
		negative := f < 0 && !allZeros(digits)

		left := minLeft
		if negative && left > 0 {
			left--
		}
		s := FillLeft('0', left+right+1, digits)
		if negative {
			s = "-" + s
		}
		return s
	}
}

// ShowFloatFillLeft returns a function that renders a number with right
// digits after the decimal point and left-pads the result, sign included,
// with filler up to width.
//
//	ShowFloatFillLeft[float64](' ', 8, 3)(3.14159)  == "   3.142"
//	ShowFloatFillLeft[float64](' ', 8, 3)(-3.14159) == "  -3.142"
//	ShowFloatFillLeft[float64](' ', 2, 3)(-3.14159) == "-3.142"
func ShowFloatFillLeft[F Float](filler rune, width, right int) func(F) string {
	show := ShowFloat[F](0, right)
	return func(x F) string {
		return FillLeft(filler, width, show(x))
	}
}

func allZeros(digits string) bool {
	return strings.Trim(digits, "0.") == ""
}
