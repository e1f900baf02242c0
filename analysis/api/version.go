package api

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version selects the behavior of filters that changed over time.
type Version int

const (
	// VersionModern fixes position increments of the segments produced from a single token, and
	// expects no case folding upstream.
	VersionModern Version = iota

	// VersionLegacy leaves position increments untouched and folds the case of every token
	// before segmentation.
	VersionLegacy
)

var versionNames = map[Version]string{
	VersionModern: "modern",
	VersionLegacy: "legacy",
}

// String implements fmt.Stringer.
func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "Version(" + strconv.Itoa(int(v)) + ")"
}

// ParseVersion parses the name of a Version, case-insensitively.
func ParseVersion(name string) (Version, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range versionNames {
		if n == name {
			return v, nil
		}
	}
	return VersionModern, errors.Errorf("unknown version %q, valid values are \"modern\" and \"legacy\"", name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if _, ok := versionNames[v]; !ok {
		return nil, errors.Errorf("invalid version %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Set implements flag.Value, so a Version can be bound with flag.Var.
func (v *Version) Set(name string) error {
	return v.UnmarshalText([]byte(name))
}
