package thaiword

import "github.com/gomlx/go-thaiword/analysis/api"

// positionIncrement returns the position increment of seg, given the increment of the token it
// was cut from.
//
// With api.VersionModern the first segment keeps the original increment and every following one
// takes a new position. With api.VersionLegacy every segment keeps the original increment.
func positionIncrement(version api.Version, original int, seg segment) int {
	if version == api.VersionLegacy || seg.Index == 0 {
		return original
	}
	return 1
}
