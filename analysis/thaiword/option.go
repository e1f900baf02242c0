package thaiword

import "github.com/gomlx/go-thaiword/analysis/api"

type options struct {
	version  api.Version
	detector api.BoundaryDetector
}

// Option configures a Filter.
type Option func(*options)

// WithVersion selects the behavior of the filter. The default is api.VersionModern.
func WithVersion(version api.Version) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithDetector sets the boundary detector. The filter takes ownership of it: it must not be
// shared with another filter. The default is a new boundary.Default().
func WithDetector(detector api.BoundaryDetector) Option {
	return func(o *options) {
		o.detector = detector
	}
}
