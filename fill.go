package show

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Widths are measured in terminal display columns, so "日本" counts as 4 and
// a combining accent as 0. For ASCII text this is the byte length.

// FillLeft pads s on the left with filler until it is width columns wide.
// Strings already at least width columns wide are returned unchanged.
//
// A filler wider than one column may leave a gap narrower than itself; that
// remainder is filled with spaces next to s.
func FillLeft(filler rune, width int, s string) string {
	n, rest := fillCount(filler, width, s)
	if n == 0 && rest == 0 {
		return s
	}
	return strings.Repeat(string(filler), n) + strings.Repeat(" ", rest) + s
}

// FillRight pads s on the right with filler until it is width columns wide.
// Strings already at least width columns wide are returned unchanged.
// Like [FillLeft], any remainder narrower than filler is filled with spaces.
func FillRight(filler rune, width int, s string) string {
	n, rest := fillCount(filler, width, s)
	if n == 0 && rest == 0 {
		return s
	}
	return s + strings.Repeat(" ", rest) + strings.Repeat(string(filler), n)
}

// fillCount returns how many fillers fit in the gap between s and width and
// how many columns are left over. Zero-width fillers count as one column so
// padding always terminates.
func fillCount(filler rune, width int, s string) (n, rest int) {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return 0, 0
	}
	fw := max(runewidth.RuneWidth(filler), 1)
	return gap / fw, gap % fw
}

// ShowFillLeft returns a function that shows a value and left-pads it.
//
//	ShowFillLeft[int](' ', 4)(3)     == "   3"
//	ShowFillLeft[int]('0', 4)(3)     == "0003"
//	ShowFillLeft[int](' ', 4)(12345) == "12345"
func ShowFillLeft[T any](filler rune, width int) func(T) string {
	return func(x T) string {
		return FillLeft(filler, width, Show(x))
	}
}

// ShowFillRight returns a function that shows a value and right-pads it.
//
//	ShowFillRight[int](' ', 4)(3) == "3   "
func ShowFillRight[T any](filler rune, width int) func(T) string {
	return func(x T) string {
		return FillRight(filler, width, Show(x))
	}
}
