// Package lowercase implements a filter folding the case of every token's term.
package lowercase

import (
	"github.com/gomlx/go-thaiword/analysis/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter lowercases Token.Term using the root locale. Offsets and position increments are not
// changed, even when lowercasing changes the length of the term.
type Filter struct {
	input  api.TokenStream
	caser  cases.Caser
	folded []byte
}

// Compile time assert that Filter implements api.TokenStream.
var _ api.TokenStream = &Filter{}

// New creates a lowercasing filter over input.
func New(input api.TokenStream) *Filter {
	return &Filter{
		input: input,
		caser: cases.Lower(language.Und),
	}
}

// Next implements api.TokenStream.
func (f *Filter) Next() bool {
	if !f.input.Next() {
		return false
	}
	tok := f.input.Token()
	f.caser.Reset()
	f.folded = f.caser.Bytes(tok.Term)
	tok.SetTerm(f.folded)
	return true
}

// Token implements api.TokenStream.
func (f *Filter) Token() *api.Token {
	return f.input.Token()
}

// Reset implements api.TokenStream.
func (f *Filter) Reset() {
	f.caser.Reset()
	f.input.Reset()
}
