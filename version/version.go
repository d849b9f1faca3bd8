package version

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/mod/module"
)

// The name to use when referring to the application
const ApplicationName = "loadpalette"

// the release number. either set at link time, eg.
//
//	-ldflags "-X github.com/jetsetilly/loadpalette/version.number=v1.0"
//
// or taken from the module version when installed with "go install".
var number string

// Revision contains the vcs revision. If the source has been modified but
// has not been committed then the Revision string will be suffixed with
// "+dirty"
var revision string

// Version contains the current version number of the project
//
// If the version string is "unreleased" then there is no release number but
// vcs information is available. Pseudo-versions stamped by the go command from
// an untagged commit count as unreleased.
//
// If the version string is "local" then there is no release number and no vcs
// information. Test binaries and "go run ." builds are usually local.
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Short returns the version number. The revision is appended if this is not a
// release version. Used when reporting the version on the command line
func Short() string {
	ver, rev, rel := Version()
	if rel {
		return ver
	}
	return fmt.Sprintf("%s (%s)", ver, rev)
}

// develVersion is the module version reported by the go command when the
// program is built from a working tree rather than installed with a version
// query
const develVersion = "(devel)"

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		version = "local"
		revision = "no revision information"
		return
	}

	revision = "no revision information"
	var vcs bool
	var dirty bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			dirty = v.Value == "true"
		}
	}
	if dirty {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	// a number set with -ldflags takes priority. a binary installed with
	// "go install module@version" carries the module version instead
	switch {
	case number != "":
		version = number
	case info.Main.Version != "" && info.Main.Version != develVersion && !module.IsPseudoVersion(info.Main.Version):
		number = info.Main.Version
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
