package tokenizer

import "github.com/gomlx/go-thaiword/analysis/api"

// Slice replays a fixed list of tokens. It's used to feed filters with tokens whose attributes
// were produced elsewhere, e.g. synonyms injected with the offsets of the word they replace.
type Slice struct {
	tokens []api.Token
	next   int
	tok    api.Token
}

// Compile time assert that Slice implements api.TokenStream.
var _ api.TokenStream = &Slice{}

// FromTokens creates a Slice stream. The tokens are copied.
func FromTokens(tokens ...api.Token) *Slice {
	s := &Slice{}
	s.SetTokens(tokens...)
	return s
}

// SetTokens replaces the tokens to replay and rewinds the stream.
func (s *Slice) SetTokens(tokens ...api.Token) {
	s.tokens = s.tokens[:0]
	for _, tok := range tokens {
		tok.Term = append([]byte(nil), tok.Term...)
		s.tokens = append(s.tokens, tok)
	}
	s.next = 0
}

// Next implements api.TokenStream.
func (s *Slice) Next() bool {
	if s.next >= len(s.tokens) {
		return false
	}
	src := &s.tokens[s.next]
	s.next++
	s.tok.SetTerm(src.Term)
	s.tok.Start = src.Start
	s.tok.End = src.End
	s.tok.PositionIncrement = src.PositionIncrement
	return true
}

// Token implements api.TokenStream.
func (s *Slice) Token() *api.Token {
	return &s.tok
}

// Reset implements api.TokenStream.
func (s *Slice) Reset() {
	s.next = 0
}
