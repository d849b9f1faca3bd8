package palette

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a declaration created by Write() and returns the Palette it
// describes. Blank lines and comment lines are ignored.
func Parse(r io.Reader) (Palette, error) {
	var p Palette

	const (
		header = iota
		entries
		closed
	)
	state := header

	var ct int
	var lineNum int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++

		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}

		switch state {
		case header:
			if l != declarationHeader {
				return p, fmt.Errorf("palette: line %d: expected declaration header", lineNum)
			}
			state = entries

		case entries:
			if l == declarationClose {
				if ct != NumEntries {
					return p, fmt.Errorf("palette: line %d: declaration has %d entries, expected %d", lineNum, ct, NumEntries)
				}
				state = closed
				continue
			}

			if ct >= NumEntries {
				return p, fmt.Errorf("palette: line %d: too many entries", lineNum)
			}

			e, err := parseEntry(l)
			if err != nil {
				return p, fmt.Errorf("palette: line %d: %w", lineNum, err)
			}
			p[ct] = e
			ct++

		case closed:
			return p, fmt.Errorf("palette: line %d: unexpected text after declaration", lineNum)
		}
	}

	if err := scanner.Err(); err != nil {
		return p, fmt.Errorf("palette: %w", err)
	}

	if state != closed {
		return p, fmt.Errorf("palette: declaration is incomplete")
	}

	return p, nil
}

// parseEntry parses a single line of the form "(R, G, B),"
func parseEntry(l string) (Entry, error) {
	s, ok := strings.CutPrefix(l, "(")
	if !ok {
		return Entry{}, fmt.Errorf("entry is malformed: %s", l)
	}
	s, ok = strings.CutSuffix(s, "),")
	if !ok {
		return Entry{}, fmt.Errorf("entry is malformed: %s", l)
	}

	f := strings.Split(s, ",")
	if len(f) != entrySize {
		return Entry{}, fmt.Errorf("entry does not have three components: %s", l)
	}

	var c [entrySize]uint8
	for i := range f {
		v, err := strconv.ParseUint(strings.TrimSpace(f[i]), 10, 8)
		if err != nil {
			return Entry{}, fmt.Errorf("entry component is not valid: %s", strings.TrimSpace(f[i]))
		}
		c[i] = uint8(v)
	}

	return Entry{R: c[0], G: c[1], B: c[2]}, nil
}
