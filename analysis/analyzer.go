// Package analysis turns text into indexable terms.
//
// The building blocks live in sub-packages: api defines the token stream contract, tokenizer
// produces tokens from text, lowercase and thaiword filter them, and boundary provides the word
// boundary detectors thaiword depends on. ThaiAnalyzer chains them for text mixing Thai and other
// scripts.
package analysis

import (
	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/gomlx/go-thaiword/analysis/boundary"
	"github.com/gomlx/go-thaiword/analysis/thaiword"
	"github.com/gomlx/go-thaiword/analysis/tokenizer"
	"github.com/pkg/errors"
)

// Term is a token produced by an analyzer, with its absolute position.
type Term struct {
	Text      string
	Position  int
	StartByte int
	EndByte   int
}

// ThaiAnalyzer tokenizes text on non-word characters and breaks Thai runs into words.
//
// It's reusable across texts but not safe for concurrent use: create one per goroutine.
type ThaiAnalyzer struct {
	tokenizer *tokenizer.Tokenizer
	filter    *thaiword.Filter
}

type options struct {
	version  api.Version
	detector string
	nfc      bool
}

// Option configures a ThaiAnalyzer.
type Option func(*options)

// WithVersion selects the behavior of the Thai word filter, see api.Version.
func WithVersion(version api.Version) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithDetector selects the boundary detector by name, see boundary.Names.
func WithDetector(name string) Option {
	return func(o *options) {
		o.detector = name
	}
}

// WithNFC normalizes text to NFC before tokenizing. Offsets then refer to the normalized text.
func WithNFC() Option {
	return func(o *options) {
		o.nfc = true
	}
}

// NewThaiAnalyzer creates a ThaiAnalyzer.
func NewThaiAnalyzer(opts ...Option) (*ThaiAnalyzer, error) {
	o := options{detector: boundary.DefaultName}
	for _, opt := range opts {
		opt(&o)
	}
	detector, err := boundary.New(o.detector)
	if err != nil {
		return nil, err
	}
	var tkOpts []tokenizer.Option
	if o.nfc {
		tkOpts = append(tkOpts, tokenizer.WithNFC())
	}
	tk := tokenizer.New("", tkOpts...)
	filter, err := thaiword.New(tk, thaiword.WithVersion(o.version), thaiword.WithDetector(detector))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create Thai analyzer")
	}
	return &ThaiAnalyzer{tokenizer: tk, filter: filter}, nil
}

// Analyze returns the terms of text. Positions start at 0 for the first term.
func (a *ThaiAnalyzer) Analyze(text string) []Term {
	a.tokenizer.SetText(text)
	a.filter.Reset()
	return Collect(a.filter)
}

// Collect drains stream into Terms, accumulating position increments into positions.
func Collect(stream api.TokenStream) []Term {
	var terms []Term
	pos := -1
	for stream.Next() {
		tok := stream.Token()
		pos += tok.PositionIncrement
		terms = append(terms, Term{
			Text:      tok.String(),
			Position:  max(pos, 0),
			StartByte: tok.Start,
			EndByte:   tok.End,
		})
	}
	return terms
}
