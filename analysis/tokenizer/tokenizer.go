// Package tokenizer provides the token sources at the head of an analysis chain.
package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/gomlx/go-thaiword/analysis/api"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits text into runs of word characters: letters, digits, combining marks and '_'.
// Everything else separates tokens and is dropped.
//
// Thai is written without spaces, so a whole Thai phrase comes out as a single token. Use
// thaiword.New to break it into words.
type Tokenizer struct {
	nfc  bool
	text string
	pos  int
	tok  api.Token
}

// Compile time assert that Tokenizer implements api.TokenStream.
var _ api.TokenStream = &Tokenizer{}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithNFC normalizes the text to Unicode NFC before tokenizing.
// Offsets then refer to the normalized text, see Tokenizer.Text.
func WithNFC() Option {
	return func(t *Tokenizer) {
		t.nfc = true
	}
}

// New creates a Tokenizer over text.
func New(text string, opts ...Option) *Tokenizer {
	t := &Tokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	t.SetText(text)
	return t
}

// SetText attaches the tokenizer to a new text and rewinds it.
// Filters downstream must be Reset as well.
func (t *Tokenizer) SetText(text string) {
	if t.nfc {
		text = norm.NFC.String(text)
	}
	t.text = text
	t.pos = 0
}

// Text returns the text being tokenized, after normalization. Token offsets index into it.
func (t *Tokenizer) Text() string {
	return t.text
}

// Next implements api.TokenStream.
func (t *Tokenizer) Next() bool {
	text := t.text
	i := t.pos
	for i < len(text) {
		// Skip non-word characters.
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}

		// Collect word characters.
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}

		t.pos = i
		t.tok.Term = append(t.tok.Term[:0], text[start:i]...)
		t.tok.Start = start
		t.tok.End = i
		t.tok.PositionIncrement = 1
		return true
	}
	t.pos = len(text)
	return false
}

// Token implements api.TokenStream.
func (t *Tokenizer) Token() *api.Token {
	return &t.tok
}

// Reset implements api.TokenStream. It rewinds to the start of the current text.
func (t *Tokenizer) Reset() {
	t.pos = 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}
