package codepdf

import (
	"strconv"
	"strings"
)

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

// Hex parses a "rrggbb" or "#rrggbb" string into an RGB.
// Invalid input yields black.
func Hex(s string) RGB {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		return RGB{}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Rule maps a category sub-tag to a display color. A rule matches when its
// tag is contained anywhere in the category string.
type Rule struct {
	Tag   string
	Color RGB
}

// Theme is the immutable styling configuration for one rendering run:
// the token color tables plus the document constants the renderer needs.
// Passing it by value keeps invocations with different themes independent.
type Theme struct {
	// Priority rules are checked before Rules regardless of table order,
	// because a category may match both a specific and a generic tag
	// ("Name.Function" also contains "Name").
	Priority []Rule
	// Rules is an ordered table; among matching rules the first wins.
	Rules []Rule
	// Default is the plain-text color used when nothing matches.
	Default RGB
	// Background fills each code paragraph.
	Background RGB

	TitleFont   string
	TitleSize   float64
	CodeFont    string
	CodeSize    float64
	CaptionSize float64
	ImageWidth  float64 // gallery image display width, in document units
}

// Classify maps a token category to its display color. It is pure and safe
// for concurrent use; an unrecognized category resolves to Default.
func (t Theme) Classify(category string) RGB {
	for _, r := range t.Priority {
		if strings.Contains(category, r.Tag) {
			return r.Color
		}
	}
	for _, r := range t.Rules {
		if strings.Contains(category, r.Tag) {
			return r.Color
		}
	}
	return t.Default
}

// Darcula returns the default dark theme. The generic table keeps its
// original insertion order, which acts as the tie-break between rules.
func Darcula() Theme {
	return Theme{
		Priority: []Rule{
			{Tag: "Name.Function", Color: Hex("ffc66d")},
			{Tag: "Name.Class", Color: Hex("ffc66d")},
			{Tag: "Name.Builtin", Color: Hex("a9b7c6")},
		},
		Rules: []Rule{
			{Tag: "Comment", Color: Hex("808080")},
			{Tag: "Keyword", Color: Hex("cc7832")},
			{Tag: "Name.Function", Color: Hex("ffc66d")},
			{Tag: "Name.Class", Color: Hex("ffc66d")},
			{Tag: "Name.Builtin", Color: Hex("a9b7c6")},
			{Tag: "String", Color: Hex("6a8759")},
			{Tag: "Number", Color: Hex("6897bb")},
			{Tag: "Operator", Color: Hex("a9b7c6")},
			{Tag: "Punctuation", Color: Hex("a9b7c6")},
			{Tag: "Name", Color: Hex("a9b7c6")},
			{Tag: "Text", Color: Hex("a9b7c6")},
			{Tag: "Error", Color: Hex("ff0000")},
			{Tag: "Literal", Color: Hex("6a8759")},
		},
		Default:    Hex("a9b7c6"),
		Background: Hex("2b2b2b"),

		TitleFont:   "Times",
		TitleSize:   14,
		CodeFont:    "Courier",
		CodeSize:    10,
		CaptionSize: 9,
		ImageWidth:  76.2, // 3 inches in millimeters
	}
}
