package version

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kitty-panics/proton-caller/internal/callerr"
)

type class int

const (
	mainline class = iota
	experimental
	custom
)

// Version identifies one Proton build: a numbered mainline release, the
// Experimental build, or a custom installation outside the mainline scheme.
// The zero value is Mainline 0.0.
type Version struct {
	kind  class
	major uint8
	minor uint8
}

// Experimental is the named special build published alongside mainline.
var Experimental = Version{kind: experimental}

// Custom labels an installation whose name carries no parseable version.
var Custom = Version{kind: custom}

// Mainline builds a numbered release version.
func Mainline(major, minor uint8) Version {
	return Version{kind: mainline, major: major, minor: minor}
}

// Default is the version used when none is requested.
func Default() Version { return Mainline(6, 3) }

// Parse reads a version token: "experimental" in any letter case, or
// "MAJOR.MINOR" with both parts small unsigned integers.
func Parse(s string) (Version, error) {
	if strings.EqualFold(s, "experimental") {
		return Experimental, nil
	}
	maj, min, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, callerr.New(callerr.VersionParse, "%q", s)
	}
	major, err := strconv.ParseUint(maj, 10, 8)
	if err != nil {
		return Version{}, callerr.Wrap(callerr.VersionParse, err, "%q", s)
	}
	minor, err := strconv.ParseUint(min, 10, 8)
	if err != nil {
		return Version{}, callerr.Wrap(callerr.VersionParse, err, "%q", s)
	}
	return Mainline(uint8(major), uint8(minor)), nil
}

// FromInstallName parses the trailing space-separated token of an
// installation directory name, e.g. "Proton 6.3" or "Proton Experimental".
func FromInstallName(name string) (Version, bool) {
	fields := strings.Split(name, " ")
	v, err := Parse(fields[len(fields)-1])
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// FromPath labels a custom installation directory: the trailing token of its
// final path segment when it parses, Custom otherwise.
func FromPath(dir string) Version {
	if v, ok := FromInstallName(filepath.Base(filepath.Clean(dir))); ok {
		return v
	}
	return Custom
}

func (v Version) String() string {
	switch v.kind {
	case experimental:
		return "Experimental"
	case custom:
		return "Custom"
	default:
		return strconv.Itoa(int(v.major)) + "." + strconv.Itoa(int(v.minor))
	}
}

// Compare orders versions for listings: mainline ascending by (major, minor),
// then Experimental, then Custom.
func Compare(a, b Version) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.major != b.major {
		if a.major < b.major {
			return -1
		}
		return 1
	}
	if a.minor != b.minor {
		if a.minor < b.minor {
			return -1
		}
		return 1
	}
	return 0
}
