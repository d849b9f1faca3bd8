package palette

import "fmt"

// ValidationError is returned by Decode() when the palette data is too short.
type ValidationError struct {
	// the number of bytes in the data that was rejected
	Length int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("palette file too short: %d bytes", e.Length)
}
