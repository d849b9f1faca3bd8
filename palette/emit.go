package palette

import (
	"fmt"
	"io"
	"strings"
)

// the first and last lines of the declaration
const (
	declarationHeader = "pub const NES_PALETTE: [(u8, u8, u8); 64] = ["
	declarationClose  = "];"
)

// the indentation of each entry line in the declaration
const entryIndent = "    "

// source that references the palette, for the instructions in the banner
const referenceURL = "https://en.wikipedia.org/wiki/List_of_video_game_console_palettes"

func banner(name string) string {
	var s strings.Builder
	s.WriteString("// THIS FILE IS GENERATED AT BUILD TIME. ANY CHANGES MADE WILL BE LOST.\n")
	s.WriteString("\n")
	fmt.Fprintf(&s, "// THIS PROJECT CURRENTLY USES %s.pal FROM\n", name)
	fmt.Fprintf(&s, "// %s.\n", referenceURL)
	s.WriteString("\n")
	s.WriteString("// TO CHANGE THE PALETTE (e.g., \"test.pal\"),\n")
	s.WriteString("// 1. COPY test.pal INTO /palettes/\n")
	s.WriteString("// 2. EDIT THE PALETTE CONFIGURATION TO SET `PaletteName = \"test\"`\n")
	s.WriteString("\n")
	return s.String()
}

// String returns the entry in the form used by the declaration.
func (e Entry) String() string {
	return fmt.Sprintf("(%d, %d, %d),", e.R, e.G, e.B)
}

// String returns the constant array declaration for the palette. It does not
// include the banner.
func (p Palette) String() string {
	var s strings.Builder
	s.WriteString(declarationHeader)
	s.WriteString("\n")
	for _, e := range p {
		s.WriteString(entryIndent)
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	s.WriteString(declarationClose)
	s.WriteString("\n")
	return s.String()
}

// Write the palette declaration to the io.Writer, preceded by the banner if
// the Config requires it. The text is written with a single call to Write().
func Write(w io.Writer, cfg Config, p Palette) error {
	var s strings.Builder
	if cfg.EmitBanner {
		s.WriteString(banner(cfg.PaletteName))
	}
	s.WriteString(p.String())

	n, err := io.WriteString(w, s.String())
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	if n != s.Len() {
		return fmt.Errorf("palette: declaration not completely written")
	}

	return nil
}

// Generate loads the palette specified by the Config and writes the
// declaration to the io.Writer. Nothing is written if the palette cannot be
// loaded.
func Generate(w io.Writer, cfg Config) error {
	p, err := Load(cfg)
	if err != nil {
		return err
	}
	return Write(w, cfg, p)
}
