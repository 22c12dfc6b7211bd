package codepdf

import "strings"

// tabWidth is the number of spaces each tab expands to before segmentation.
const tabWidth = 4

// Segment converts an ordered token stream into visual lines of spans.
//
// Tabs are expanded before line splitting so a tab adjacent to a newline is
// preserved. A token spanning multiple lines contributes a span with the
// same category to every line it touches. Joining all span texts with
// newlines reproduces the tab-expanded input with at most one trailing
// newline removed. Always returns at least one line.
func Segment(tokens []Token) []Line {
	lines := []Line{{}}

	for _, tok := range tokens {
		text := strings.ReplaceAll(tok.Text, "\t", strings.Repeat(" ", tabWidth))
		for text != "" {
			i := strings.IndexByte(text, '\n')
			if i < 0 {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Category: tok.Category, Text: text})
				break
			}
			part := strings.TrimSuffix(text[:i], "\r")
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Category: tok.Category, Text: part})
			}
			lines = append(lines, Line{})
			text = text[i+1:]
		}
	}

	// A final newline in the source leaves one artifact empty line behind;
	// trim exactly that one.
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
