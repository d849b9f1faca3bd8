package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/loadpalette/logger"
	"github.com/jetsetilly/loadpalette/palette"
	"github.com/jetsetilly/loadpalette/resources"
	"github.com/jetsetilly/loadpalette/test"
	"github.com/jetsetilly/loadpalette/version"
)

func setup(t *testing.T, name string, data []uint8) {
	t.Helper()

	logger.SetOutput(io.Discard)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
	})

	t.Chdir(t.TempDir())

	err := os.Mkdir(resources.BasePath, 0700)
	test.DemandSuccess(t, err)

	err = os.WriteFile(filepath.Join(resources.BasePath, name+resources.Extension), data, 0600)
	test.DemandSuccess(t, err)
}

func TestRun(t *testing.T) {
	setup(t, "base", make([]uint8, palette.FileSize))

	var stdout strings.Builder
	var stderr strings.Builder

	status := run(palette.Config{PaletteName: "base", EmitBanner: true}, nil, &stdout, &stderr)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, stderr.String(), "")
	test.ExpectSuccess(t, strings.HasPrefix(stdout.String(), "// THIS FILE IS GENERATED AT BUILD TIME."))
	test.ExpectEquality(t, strings.Count(stdout.String(), "    (0, 0, 0),\n"), 64)

	p, err := palette.Parse(strings.NewReader(stdout.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Bytes(), make([]uint8, palette.FileSize))
}

func TestRunNoBanner(t *testing.T) {
	setup(t, "smooth", make([]uint8, palette.FileSize))

	var stdout strings.Builder
	var stderr strings.Builder

	status := run(palette.Config{PaletteName: "smooth"}, nil, &stdout, &stderr)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(stdout.String(), "pub const NES_PALETTE: [(u8, u8, u8); 64] = [\n"))
}

func TestRunTooShort(t *testing.T) {
	setup(t, "base", make([]uint8, 191))

	var stdout strings.Builder
	var stderr strings.Builder

	status := run(palette.Config{PaletteName: "base", EmitBanner: true}, nil, &stdout, &stderr)
	test.ExpectEquality(t, status, 1)
	test.ExpectEquality(t, stdout.String(), "")
	test.ExpectSuccess(t, strings.Contains(stderr.String(), "palette file too short: 191 bytes"))
}

func TestRunMissingFile(t *testing.T) {
	setup(t, "base", make([]uint8, palette.FileSize))

	var stdout strings.Builder
	var stderr strings.Builder

	status := run(palette.Config{PaletteName: "smooth"}, nil, &stdout, &stderr)
	test.ExpectEquality(t, status, 1)
	test.ExpectEquality(t, stdout.String(), "")
	test.ExpectSuccess(t, strings.Contains(stderr.String(), "smooth.pal"))
}

func TestRunArguments(t *testing.T) {
	setup(t, "base", make([]uint8, palette.FileSize))

	var stdout strings.Builder
	var stderr strings.Builder

	// positional arguments are ignored. the palette comes from the Config
	status := run(palette.Config{PaletteName: "base", EmitBanner: true}, []string{"palettes/smooth.pal"}, &stdout, &stderr)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, stderr.String(), "")
	test.ExpectSuccess(t, strings.HasPrefix(stdout.String(), "// THIS FILE IS GENERATED AT BUILD TIME."))
	test.ExpectSuccess(t, strings.Contains(stdout.String(), "// THIS PROJECT CURRENTLY USES base.pal FROM\n"))

	p, err := palette.Parse(strings.NewReader(stdout.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Bytes(), make([]uint8, palette.FileSize))
}

func TestRunVersion(t *testing.T) {
	setup(t, "base", make([]uint8, palette.FileSize))

	var stdout strings.Builder
	var stderr strings.Builder

	status := run(palette.Config{PaletteName: "base", EmitBanner: true}, []string{"--version"}, &stdout, &stderr)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, stderr.String(), "")
	test.ExpectSuccess(t, strings.Contains(stdout.String(), version.Short()))
	test.ExpectSuccess(t, strings.HasPrefix(stdout.String(), version.ApplicationName))

	// the declaration is not written
	test.ExpectSuccess(t, !strings.Contains(stdout.String(), "NES_PALETTE"))
}
