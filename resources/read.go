package resources

import (
	"io"
	"os"
)

// Read returns the entire contents of the file. The filename is resolved with
// JoinPath().
func Read(filename string) ([]uint8, error) {
	f, err := os.Open(JoinPath(filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return b, nil
}
