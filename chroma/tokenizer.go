// Package chroma provides tokenization using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/fwojciec/codepdf"
)

// Compile-time interface verification.
var _ codepdf.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts categorized tokens using chroma.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits source into categorized tokens. The lexer is picked from
// the filename, then by content analysis, then the plain-text fallback, so
// an unrecognized language never fails. Returns nil only if lexing itself
// errors. Returns an empty slice for empty source.
func (t *Tokenizer) Tokenize(filename, source string) []codepdf.Token {
	if source == "" {
		return []codepdf.Token{}
	}

	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []codepdf.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, codepdf.Token{
			Category: categoryPath(token.Type),
			Text:     token.Value,
		})
	}
	return tokens
}

// categoryPath renders a chroma token type as a dot-separated hierarchical
// category ("Keyword", "Name.Function", "Literal.String.Double"). It relies
// on chroma's convention that a subtype's name extends its parent's name
// (LiteralStringDouble under LiteralString under Literal).
func categoryPath(tt chromalib.TokenType) string {
	name := tt.String()
	var parts []string
	for cur := tt; ; {
		parent := cur.Parent()
		if parent <= 0 || parent == cur {
			parts = append(parts, name)
			break
		}
		parts = append(parts, strings.TrimPrefix(name, parent.String()))
		cur, name = parent, parent.String()
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
