package show_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/bjaus/show"
	"github.com/stretchr/testify/assert"
)

func TestShowCont(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1, 2, 3]", show.ShowCont([]int{1, 2, 3}))
	assert.Equal(t, "[]", show.ShowCont([]int{}))
	assert.Equal(t, "[]", show.ShowCont[int](nil))
	assert.Equal(t, "[7]", show.ShowCont([]int{7}))
	assert.Equal(t, "[a, b]", show.ShowCont([]string{"a", "b"}))
	assert.Equal(t, "[(1, a), (2, b)]", show.ShowCont([]show.Pair[int, string]{show.MakePair(1, "a"), show.MakePair(2, "b")}))
}

func TestShowContNested(t *testing.T) {
	t.Parallel()
	// Inner slices have no Show method and fall back to fmt.
	assert.Equal(t, "[[1 2], [3]]", show.ShowCont([][]int{{1, 2}, {3}}))
}

func TestShowContWith(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1 - 2 - 3]", show.ShowContWith(" - ", []int{1, 2, 3}))
	assert.Equal(t, "[123]", show.ShowContWith("", []int{1, 2, 3}))
}

func TestShowContWithFrame(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		sep, prefix, suffix string
		xs                  []int
		want                string
	}{
		"arrows":   {sep: " => ", prefix: "{", suffix: "}", xs: []int{1, 2, 3}, want: "{1 => 2 => 3}"},
		"empty":    {sep: ", ", prefix: "<", suffix: ">", xs: nil, want: "<>"},
		"single":   {sep: ", ", prefix: "<", suffix: ">", xs: []int{9}, want: "<9>"},
		"no frame": {sep: " ", xs: []int{1, 2}, want: "1 2"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, show.ShowContWithFrame(tt.sep, tt.prefix, tt.suffix, tt.xs))
		})
	}
}

func TestShowContWithFrameAndNewlines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		sep, prefix, suffix string
		xs                  []int
		everyN              int
		want                string
	}{
		"every two": {
			sep: ",", prefix: "(", suffix: ")", xs: []int{1, 2, 3, 4, 5}, everyN: 2,
			want: "(1,2,\n 3,4,\n 5)",
		},
		"every one": {
			sep: ", ", prefix: "[", suffix: "]", xs: []int{1, 2, 3}, everyN: 1,
			want: "[1, \n 2, \n 3]",
		},
		"long prefix": {
			sep: ",", prefix: "xs = [", suffix: "]", xs: []int{1, 2, 3}, everyN: 2,
			want: "xs = [1,2,\n      3]",
		},
		"wide prefix": {
			sep: ",", prefix: "日", suffix: "", xs: []int{1, 2}, everyN: 1,
			want: "日1,\n  2",
		},
		"disabled": {
			sep: ",", prefix: "(", suffix: ")", xs: []int{1, 2, 3, 4, 5}, everyN: 0,
			want: "(1,2,3,4,5)",
		},
		"negative disables": {
			sep: ",", prefix: "(", suffix: ")", xs: []int{1, 2, 3}, everyN: -1,
			want: "(1,2,3)",
		},
		"longer than input": {
			sep: ",", prefix: "(", suffix: ")", xs: []int{1, 2, 3}, everyN: 10,
			want: "(1,2,3)",
		},
		"exact multiple": {
			sep: ",", prefix: "(", suffix: ")", xs: []int{1, 2, 3, 4}, everyN: 2,
			want: "(1,2,\n 3,4)",
		},
		"empty": {
			sep: ",", prefix: "(", suffix: ")", xs: nil, everyN: 2,
			want: "()",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := show.ShowContWithFrameAndNewlines(tt.sep, tt.prefix, tt.suffix, tt.xs, tt.everyN)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShowContDoesNotMutate(t *testing.T) {
	t.Parallel()
	xs := []int{3, 1, 2}
	show.ShowContWithFrameAndNewlines(",", "(", ")", xs, 1)
	assert.Equal(t, []int{3, 1, 2}, xs)
}

func TestShowSeq(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1, 2, 3]", show.ShowSeq(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, "[]", show.ShowSeq(slices.Values([]string(nil))))
	keys := slices.Sorted(maps.Keys(map[string]bool{"b": true, "a": true}))
	assert.Equal(t, "<a|\n b>", show.ShowSeqWithFrameAndNewlines("|", "<", ">", slices.Values(keys), 1))
}

func TestShowSeqNil(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[]", show.ShowSeq[int](nil))
	assert.Equal(t, "<>", show.ShowSeqWithFrameAndNewlines[string](",", "<", ">", nil, 2))
}

func TestShowMap(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[(a, 1), (b, 2), (c, 3)]", show.ShowMap(map[string]int{"c": 3, "a": 1, "b": 2}))
	assert.Equal(t, "[(1, Just x), (2, Nothing)]", show.ShowMap(map[int]show.Maybe[string]{
		2: show.Nothing[string](),
		1: show.Just("x"),
	}))
	assert.Equal(t, "[]", show.ShowMap(map[int]int{}))
}
