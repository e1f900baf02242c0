package boundary

import (
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/gomlx/go-thaiword/analysis/api"
)

// UAX29 detects boundaries with the word segmenter of github.com/clipperhouse/uax29.
type UAX29 struct {
	iter    *words.Iterator[[]byte]
	current int
}

// Compile time assert that UAX29 implements api.BoundaryDetector.
var _ api.BoundaryDetector = &UAX29{}

// NewUAX29 returns a detector with no text.
func NewUAX29() *UAX29 {
	return &UAX29{iter: words.FromBytes(nil)}
}

// SetText implements api.BoundaryDetector.
func (d *UAX29) SetText(text []byte) {
	d.iter.SetText(text)
	d.current = 0
}

// Next implements api.BoundaryDetector.
func (d *UAX29) Next() int {
	if !d.iter.Next() {
		return api.Done
	}
	d.current = d.iter.End()
	return d.current
}

// Current implements api.BoundaryDetector.
func (d *UAX29) Current() int {
	return d.current
}
