package palette

import (
	"fmt"

	"github.com/jetsetilly/loadpalette/logger"
	"github.com/jetsetilly/loadpalette/resources"
)

// Config specifies which palette to load and how to write it.
type Config struct {
	// the palette file is found with resources.PalettePath()
	PaletteName string

	// whether to write the provenance comments before the declaration
	EmitBanner bool
}

// Path returns the location of the palette file.
func (cfg Config) Path() string {
	return resources.PalettePath(cfg.PaletteName)
}

// Load reads and decodes the palette specified by the Config.
func Load(cfg Config) (Palette, error) {
	if cfg.PaletteName == "" {
		return Palette{}, fmt.Errorf("palette: no palette name")
	}

	data, err := resources.Read(cfg.PaletteName + resources.Extension)
	if err != nil {
		return Palette{}, fmt.Errorf("palette: %w", err)
	}

	p, err := Decode(data)
	if err != nil {
		return Palette{}, fmt.Errorf("palette: %s: %w", cfg.Path(), err)
	}

	logger.Debugf(logger.Allow, "palette", "loaded %s (%d bytes)", cfg.Path(), len(data))
	if len(data) > FileSize {
		logger.Debugf(logger.Allow, "palette", "ignoring %d bytes after the last entry", len(data)-FileSize)
	}

	return p, nil
}
