package fsutils

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var ErrInputTooLarge = errors.New("input too large")

func ReadFileWithDefault(path string, defaultBytes []byte) []byte {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return defaultBytes
	}
	return bytes
}

// ReadLimited reads all of r, failing once more than limit bytes arrive.
// A zero limit, or one too large for an int64, disables the check.
func ReadLimited(r io.Reader, limit uint64) ([]byte, error) {
	if limit == 0 || limit >= math.MaxInt64 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}

// ReadInput reads path, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader, limit uint64) ([]byte, error) {
	if path == "" || path == "-" {
		return ReadLimited(stdin, limit)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLimited(f, limit)
}
