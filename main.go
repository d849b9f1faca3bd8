package main

import (
	"os"

	"github.com/jetsetilly/loadpalette/cli"
	"github.com/jetsetilly/loadpalette/palette"
)

// to change the palette copy the .pal file into the palettes directory and set
// PaletteName to the name of the file without the extension
var paletteConfig = palette.Config{
	PaletteName: "base",
	EmitBanner:  true,
}

func main() {
	os.Exit(cli.Execute(paletteConfig))
}
