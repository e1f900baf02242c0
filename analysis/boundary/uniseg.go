package boundary

import (
	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/rivo/uniseg"
)

// Uniseg detects boundaries with the word segmentation of github.com/rivo/uniseg.
type Uniseg struct {
	rest    []byte
	state   int
	current int
}

// Compile time assert that Uniseg implements api.BoundaryDetector.
var _ api.BoundaryDetector = &Uniseg{}

// NewUniseg returns a detector with no text.
func NewUniseg() *Uniseg {
	return &Uniseg{state: -1}
}

// SetText implements api.BoundaryDetector.
func (d *Uniseg) SetText(text []byte) {
	d.rest = text
	d.state = -1
	d.current = 0
}

// Next implements api.BoundaryDetector.
func (d *Uniseg) Next() int {
	if len(d.rest) == 0 {
		return api.Done
	}
	var word []byte
	word, d.rest, d.state = uniseg.FirstWord(d.rest, d.state)
	d.current += len(word)
	return d.current
}

// Current implements api.BoundaryDetector.
func (d *Uniseg) Current() int {
	return d.current
}
