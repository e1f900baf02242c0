// Package thaiword implements a filter that breaks Thai tokens into words.
//
// Thai is written without spaces between words, so tokenizers splitting on spaces and punctuation
// produce tokens spanning whole phrases. Filter re-segments every token starting with a Thai
// character using a word boundary detector, emitting one token per word, and fixes their offsets
// and position increments. Other tokens pass through untouched.
//
// Segments are emitted one per call to Next: a Filter holds at most one token being segmented,
// and resumes its boundary walk on the following call.
package thaiword

import (
	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/gomlx/go-thaiword/analysis/boundary"
	"github.com/gomlx/go-thaiword/analysis/lowercase"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Filter breaks Thai tokens of its input into words. It implements api.TokenStream.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	input    api.TokenStream
	version  api.Version
	detector api.BoundaryDetector
	buffer   segmentBuffer
}

// Compile time assert that Filter implements api.TokenStream.
var _ api.TokenStream = &Filter{}

// New creates a Filter reading from input.
//
// With api.VersionLegacy the input is wrapped with a lowercase.Filter, since older versions of this
// filter folded case themselves.
//
// It returns an error wrapping api.ErrUnsupportedEnvironment if boundary.Available reports that
// Thai word boundaries can't be detected in this process.
func New(input api.TokenStream, opts ...Option) (*Filter, error) {
	return newFilter(input, boundary.Available(), opts...)
}

func newFilter(input api.TokenStream, available bool, opts ...Option) (*Filter, error) {
	if !available {
		return nil, errors.Wrapf(api.ErrUnsupportedEnvironment, "can't create thaiword.Filter with detector %q", boundary.DefaultName)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.detector == nil {
		o.detector = boundary.Default()
	}
	if o.version == api.VersionLegacy {
		input = lowercase.New(input)
	}
	klog.V(2).Infof("thaiword: new filter, version=%s, detector=%T", o.version, o.detector)
	return &Filter{
		input:    input,
		version:  o.version,
		detector: o.detector,
	}, nil
}

// Next implements api.TokenStream.
//
// If a Thai token is being segmented, it emits its next word. Otherwise, it pulls a token from the
// input: non-Thai tokens are returned unchanged, Thai tokens are buffered and their first word
// is emitted.
func (f *Filter) Next() bool {
	if seg, ok := f.buffer.next(f.detector); ok {
		f.emit(seg)
		return true
	}

	if !f.input.Next() {
		return false
	}
	tok := f.input.Token()
	if !requiresSegmentation(tok.Term) {
		return true
	}

	f.buffer.begin(tok, f.detector)
	seg, ok := f.buffer.next(f.detector)
	if !ok {
		// No boundary at all: return the token as it came.
		return true
	}
	f.emit(seg)
	return true
}

// emit rewrites the shared token with seg.
func (f *Filter) emit(seg segment) {
	tok := f.input.Token()
	tok.SetTerm(f.buffer.term[seg.Start:seg.End])
	tok.Start, tok.End = f.buffer.offsets(seg)
	tok.PositionIncrement = positionIncrement(f.version, f.buffer.positionIncrement, seg)
}

// Token implements api.TokenStream.
func (f *Filter) Token() *api.Token {
	return f.input.Token()
}

// Reset implements api.TokenStream. It drops the token being segmented, if any, and resets the
// input. It must be called before reading a new text.
func (f *Filter) Reset() {
	f.buffer.clear()
	f.input.Reset()
}

// Buffering reports whether a Thai token is held with words left to emit.
//
// It may report true after the last word of a token was emitted: exhaustion is only known when
// the detector is advanced again, on the next call to Next.
func (f *Filter) Buffering() bool {
	return f.buffer.state == stateBuffering
}

// Version returns the version the filter was created with.
func (f *Filter) Version() api.Version {
	return f.version
}
