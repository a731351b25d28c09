// Package show converts values of any type into human-readable text.
//
// The central entry point is [Show], which picks a rendering per value shape:
// strings are returned as they are, types implementing [Shower] render
// themselves, and everything else uses its default fmt representation.
// [Pair], [Maybe] and [Result] implement [Shower], so they nest freely:
//
//	show.Show(show.MakePair(1, "one"))           // (1, one)
//	show.ShowMaybe(show.Just(42))                // Just 42
//	show.ShowResult(show.Error[int]("fail"))     // Error fail
//
// # Containers
//
// The ShowCont family renders slices, layered from most convenient to most
// general:
//
//   - [ShowCont] — "[1, 2, 3]"
//   - [ShowContWith] — custom separator
//   - [ShowContWithFrame] — custom separator, prefix and suffix
//   - [ShowContWithFrameAndNewlines] — adds wrapping every n elements
//
// [ShowSeq] and [ShowSeqWithFrameAndNewlines] accept an [iter.Seq], and
// [ShowMap] renders a map as pairs in key order.
//
// # Numbers and Padding
//
// [ShowFloat] renders fixed-point numbers with a minimum integer width.
// [FillLeft] and [FillRight] pad strings, and [ShowFillLeft],
// [ShowFillRight] and [ShowFloatFillLeft] combine showing with padding:
//
//	show.ShowFloat[float64](2, 3)(3.14159)             // 03.142
//	show.ShowFloatFillLeft[float64](' ', 8, 3)(-3.14159) //   -3.142
//
// Widths count terminal display columns, so wide characters count as two.
//
// # Styles
//
// A [Style] bundles separator, frame and wrapping. Use [ParseStyle] for a
// preset or [DecodeStyle] to read one from YAML or TOML:
//
//	st, err := show.DecodeStyle(show.YAML, []byte("preset: tuple\nevery_n: 4"))
//	show.ShowContStyled(st, xs)
//
// # Errors
//
// Rendering never fails. Only style lookup and decoding return errors:
//
//   - [ErrUnknownStyle] — no preset with that name
//   - [ErrUnsupportedEncoding] — encoding is neither YAML nor TOML
//   - [ErrInvalidStyle] — malformed document or field value
package show
