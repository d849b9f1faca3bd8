package palette

// NumEntries is the number of colours in a palette.
const NumEntries = 64

// entrySize is the number of bytes used by each entry in a palette file.
const entrySize = 3

// FileSize is the minimum length of a palette file.
const FileSize = NumEntries * entrySize

// Entry is a single palette colour.
type Entry struct {
	R uint8
	G uint8
	B uint8
}

// Palette is the ordered list of colours in the order they appear in the
// palette file.
type Palette [NumEntries]Entry

// Decode palette data. The data must be at least FileSize bytes long. Data
// beyond FileSize is ignored.
func Decode(data []uint8) (Palette, error) {
	var p Palette

	if len(data) < FileSize {
		return p, &ValidationError{Length: len(data)}
	}

	for i := range NumEntries {
		o := i * entrySize
		p[i] = Entry{R: data[o], G: data[o+1], B: data[o+2]}
	}

	return p, nil
}

// Bytes returns the palette as palette file data. The returned slice is
// always FileSize bytes long.
func (p Palette) Bytes() []uint8 {
	b := make([]uint8, 0, FileSize)
	for _, e := range p {
		b = append(b, e.R, e.G, e.B)
	}
	return b
}
