// Package mock provides test doubles for codepdf interfaces.
package mock

import "github.com/fwojciec/codepdf"

// Compile-time interface verification.
var _ codepdf.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of codepdf.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(filename, source string) []codepdf.Token
}

func (t *Tokenizer) Tokenize(filename, source string) []codepdf.Token {
	return t.TokenizeFn(filename, source)
}
