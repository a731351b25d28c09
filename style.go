package show

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStyle        = errors.New("unknown style")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrInvalidStyle        = errors.New("invalid style")
)

// Style describes how a container is framed and wrapped.
type Style struct {
	Separator string `yaml:"separator" toml:"separator"`
	Prefix    string `yaml:"prefix" toml:"prefix"`
	Suffix    string `yaml:"suffix" toml:"suffix"`
	// EveryN starts a new line every EveryN elements. Zero disables wrapping.
	EveryN int `yaml:"every_n" toml:"every_n"`
}

// Preset names for [ParseStyle].
const (
	StyleList  = "list"
	StyleTuple = "tuple"
	StyleSet   = "set"
	StyleBare  = "bare"
	StyleLines = "lines"
)

var styleNames = []string{StyleList, StyleTuple, StyleSet, StyleBare, StyleLines}

var presets = map[string]Style{
	StyleList:  {Separator: ", ", Prefix: "[", Suffix: "]"},
	StyleTuple: {Separator: ", ", Prefix: "(", Suffix: ")"},
	StyleSet:   {Separator: ", ", Prefix: "{", Suffix: "}"},
	StyleBare:  {Separator: ", "},
	StyleLines: {Separator: "\n"},
}

// Styles returns the names of all preset styles.
func Styles() []string {
	out := make([]string, len(styleNames))
	copy(out, styleNames)
	return out
}

// ParseStyle returns the preset style called name.
func ParseStyle(name string) (Style, error) {
	st, ok := presets[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return st, nil
}

// Encoding is the document format accepted by [DecodeStyle].
type Encoding string

const (
	YAML Encoding = "yaml"
	TOML Encoding = "toml"
)

// String returns the encoding name.
func (e Encoding) String() string { return string(e) }

// styleDoc is the on-disk shape of a style. Pointer fields tell an explicit
// empty string apart from an omitted one, so a document can clear a preset's
// prefix.
type styleDoc struct {
	Preset    string  `yaml:"preset" toml:"preset"`
	Separator *string `yaml:"separator" toml:"separator"`
	Prefix    *string `yaml:"prefix" toml:"prefix"`
	Suffix    *string `yaml:"suffix" toml:"suffix"`
	EveryN    *int    `yaml:"every_n" toml:"every_n"`
}

// DecodeStyle reads a style document. The optional "preset" key selects a
// starting point from [Styles]; other keys override it. Without a preset the
// document starts from the zero Style.
//
//	preset: list
//	every_n: 10
func DecodeStyle(enc Encoding, data []byte) (Style, error) {
	var doc styleDoc
	switch enc {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return Style{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return Style{}, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Style{}, fmt.Errorf("%w: unknown key %q", ErrInvalidStyle, undecoded[0].String())
		}
	default:
		return Style{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
	return doc.style()
}

func (d styleDoc) style() (Style, error) {
	var st Style
	if d.Preset != "" {
		p, err := ParseStyle(d.Preset)
		if err != nil {
			return Style{}, err
		}
		st = p
	}
	if d.Separator != nil {
		st.Separator = *d.Separator
	}
	if d.Prefix != nil {
		st.Prefix = *d.Prefix
	}
	if d.Suffix != nil {
		st.Suffix = *d.Suffix
	}
	if d.EveryN != nil {
		if *d.EveryN < 0 {
			return Style{}, fmt.Errorf("%w: every_n must not be negative, got %d", ErrInvalidStyle, *d.EveryN)
		}
		st.EveryN = *d.EveryN
	}
	return st, nil
}

// ShowContStyled renders xs framed and wrapped according to st.
func ShowContStyled[T any](st Style, xs []T) string {
	return ShowContWithFrameAndNewlines(st.Separator, st.Prefix, st.Suffix, xs, st.EveryN)
}
