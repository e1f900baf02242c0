// Package boundary provides word boundary detectors for the analysis filters, and reports whether
// the default one can segment Thai in this process.
//
// Detectors are adapters over UAX #29 word segmenters. Each instance keeps iteration state, so
// it must be owned by a single filter.
package boundary

import (
	"sort"

	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultName is the name of the detector used when none is configured.
const DefaultName = "uax29"

// Constructor creates a new detector instance.
type Constructor func() api.BoundaryDetector

var constructors = map[string]Constructor{
	"uax29":  func() api.BoundaryDetector { return NewUAX29() },
	"uniseg": func() api.BoundaryDetector { return NewUniseg() },
}

// New returns a new instance of the detector registered under name.
func New(name string) (api.BoundaryDetector, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, errors.Errorf("unknown boundary detector %q, known detectors are %q", name, Names())
	}
	return ctor(), nil
}

// Default returns a new instance of the default detector.
func Default() api.BoundaryDetector {
	return constructors[DefaultName]()
}

// Names returns the sorted names of the registered detectors.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// probeText is "Thai language": a working detector must find a boundary between its two words.
const probeText = "ภาษาไทย"

// probeBoundary is the byte offset of "ไทย" in probeText.
const probeBoundary = len("ภาษา")

// available is computed once, before any filter can be constructed, and never changes afterwards.
var available = probe(Default())

// Available reports whether the default detector can segment Thai text in this process.
func Available() bool {
	return available
}

// probe reports whether d reports probeBoundary as a boundary of probeText.
func probe(d api.BoundaryDetector) bool {
	d.SetText([]byte(probeText))
	ok := IsBoundary(d, probeBoundary)
	klog.V(1).Infof("boundary: Thai word boundary detection available=%v", ok)
	return ok
}

// IsBoundary walks d from its current position and reports whether pos is one of its boundaries.
// It consumes the detector up to pos.
func IsBoundary(d api.BoundaryDetector, pos int) bool {
	if d.Current() == pos {
		return true
	}
	for b := d.Next(); b != api.Done; b = d.Next() {
		if b == pos {
			return true
		}
		if b > pos {
			return false
		}
	}
	return false
}

// Boundaries returns all boundaries of text found by d, excluding the initial 0.
func Boundaries(d api.BoundaryDetector, text []byte) []int {
	d.SetText(text)
	var out []int
	for b := d.Next(); b != api.Done; b = d.Next() {
		out = append(out, b)
	}
	return out
}
