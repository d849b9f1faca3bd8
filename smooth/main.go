// The smooth program writes the smooth palette declaration without the
// generated file banner. It is the palette used by the emulator build.
package main

import (
	"os"

	"github.com/jetsetilly/loadpalette/cli"
	"github.com/jetsetilly/loadpalette/palette"
)

func main() {
	os.Exit(cli.Execute(palette.Config{
		PaletteName: "smooth",
		EmitBanner:  false,
	}))
}
