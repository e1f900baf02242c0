// Package api defines the token stream API shared by the analysis packages.
// It's kept free of implementations, so `thaiword`, `lowercase` and `tokenizer` can
// all depend on it without depending on each other.
package api

import "github.com/pkg/errors"

// Token is the mutable attribute set of the current token of a stream.
//
// Start and End are byte offsets (not rune offsets) in the source text, suitable for slicing
// Go strings directly: originalText[tok.Start:tok.End].
//
// A Token is shared by every stage of a chain: filters return their input's Token and rewrite it
// in place. Producers copy text into Term's own backing array and never alias caller memory.
type Token struct {
	Term              []byte // UTF-8 term text
	Start             int    // start byte offset (inclusive)
	End               int    // end byte offset (exclusive)
	PositionIncrement int    // position slots advanced relative to the previous token
}

// String returns the term text.
func (t *Token) String() string {
	return string(t.Term)
}

// SetTerm copies term into the token's own buffer.
func (t *Token) SetTerm(term []byte) {
	t.Term = append(t.Term[:0], term...)
}

// TokenStream is the pull contract between stages of an analysis chain.
type TokenStream interface {
	// Next advances to the next token. It returns false once the stream is exhausted, and keeps
	// returning false on subsequent calls.
	Next() bool

	// Token returns the attribute set of the current token. It's only valid after Next returned true.
	Token() *Token

	// Reset discards any state kept from the current input. It must be called before reusing a
	// stream on new input.
	Reset()
}

// Done is returned by BoundaryDetector.Next when there are no more boundaries.
const Done = -1

// BoundaryDetector finds word boundaries in a text.
//
// Boundaries are byte positions in the text given to SetText, returned in strictly increasing order.
// The last boundary is the end of the text.
type BoundaryDetector interface {
	// SetText sets the text to analyze and rewinds the detector: Current returns 0 afterwards.
	SetText(text []byte)

	// Next advances to the next boundary and returns it, or Done if the text is exhausted.
	Next() int

	// Current returns the last boundary returned by Next, or 0 just after SetText.
	Current() int
}

// ErrUnsupportedEnvironment is returned when word boundary detection is not available in the
// current process.
var ErrUnsupportedEnvironment = errors.New("word boundary detection for Thai is not supported in this environment")
