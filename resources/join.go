package resources

import (
	"path/filepath"
	"strings"
)

// BasePath is the directory, relative to the invocation directory, that
// contains palette files.
const BasePath = "palettes"

// Extension of all palette files.
const Extension = ".pal"

// JoinPath prepends the supplied path with BasePath, if required.
func JoinPath(path ...string) string {
	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if p == BasePath || strings.HasPrefix(p, BasePath+string(filepath.Separator)) {
		return p
	}

	return filepath.Join(BasePath, p)
}

// PalettePath returns the path of the named palette.
func PalettePath(name string) string {
	return JoinPath(name + Extension)
}
