package show

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ShowCont renders xs as "[a, b, c]".
func ShowCont[T any](xs []T) string {
	return ShowContWith(", ", xs)
}

// ShowContWith renders xs joined by sep inside square brackets.
//
//	ShowContWith(" - ", []int{1, 2, 3}) == "[1 - 2 - 3]"
func ShowContWith[T any](sep string, xs []T) string {
	return ShowContWithFrame(sep, "[", "]", xs)
}

// ShowContWithFrame renders xs joined by sep between prefix and suffix.
//
//	ShowContWithFrame(" => ", "{", "}", []int{1, 2, 3}) == "{1 => 2 => 3}"
func ShowContWithFrame[T any](sep, prefix, suffix string, xs []T) string {
	return ShowContWithFrameAndNewlines(sep, prefix, suffix, xs, 0)
}

// ShowContWithFrameAndNewlines is [ShowContWithFrame] with line wrapping.
// When everyN is positive, a newline is inserted before every element whose
// index is a non-zero multiple of everyN, followed by enough spaces to line
// the element up under the first one. The separator stays at the end of the
// previous line.
//
//	ShowContWithFrameAndNewlines(",", "(", ")", []int{1, 2, 3, 4, 5}, 2)
//	// (1,2,
//	//  3,4,
//	//  5)
func ShowContWithFrameAndNewlines[T any](sep, prefix, suffix string, xs []T, everyN int) string {
	return ShowSeqWithFrameAndNewlines(sep, prefix, suffix, slices.Values(xs), everyN)
}

// ShowSeq renders the values produced by seq as "[a, b, c]".
func ShowSeq[T any](seq iter.Seq[T]) string {
	return ShowSeqWithFrameAndNewlines(", ", "[", "]", seq, 0)
}

// ShowSeqWithFrameAndNewlines is [ShowContWithFrameAndNewlines] for an
// iterator. Values are shown in the order seq yields them.
//
// A nil seq renders as an empty container.
func ShowSeqWithFrameAndNewlines[T any](sep, prefix, suffix string, seq iter.Seq[T], everyN int) string {
	if seq == nil {
		return prefix + suffix
	}
	var elems []string
	newline := "\n" + strings.Repeat(" ", runewidth.StringWidth(prefix))
	i := 0
	for x := range seq {
		s := Show(x)
		if everyN > 0 && i > 0 && i%everyN == 0 {
			s = newline + s
		}
		elems = append(elems, s)
		i++
	}
	return prefix + strings.Join(elems, sep) + suffix
}

// ShowMap renders m as a container of (key, value) pairs in ascending key
// order.
//
//	ShowMap(map[string]int{"b": 2, "a": 1}) == "[(a, 1), (b, 2)]"
func ShowMap[K cmp.Ordered, V any](m map[K]V) string {
	pairs := make([]Pair[K, V], 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, MakePair(k, m[k]))
	}
	return ShowCont(pairs)
}
