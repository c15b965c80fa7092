package apiversion

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is returned by Parse for malformed version strings.
var ErrInvalidVersion = errors.New("invalid api version")

// Version identifies one published API version.
type Version struct {
	Major int
	Minor int
}

// New returns the version major.minor.
func New(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// Parse accepts "1", "1.0", "v1" and "v1.0".
func Parse(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if raw == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	majorPart, minorPart, hasMinor := strings.Cut(raw, ".")
	major, err := strconv.Atoi(majorPart)
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	minor := 0
	if hasMinor {
		minor, err = strconv.Atoi(minorPart)
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
	}

	return New(major, minor), nil
}

// String renders the version as "{major}.{minor}".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// GroupName renders the document group key: "v1" for 1.0, "v1.1" for 1.1.
func (v Version) GroupName() string {
	if v.Minor == 0 {
		return fmt.Sprintf("v%d", v.Major)
	}
	return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
}

// Compare orders versions by major then minor.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	return cmp.Compare(v.Minor, other.Minor)
}
