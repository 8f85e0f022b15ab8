package ase

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// inflate decompresses a zlib stream that must expand to exactly size bytes.
// The output grows with the data the stream actually yields, so a declared
// size alone never drives the allocation.
func inflate(data []byte, size int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCompressedData, err)
	}
	defer func() { _ = zr.Close() }()

	// one byte past size detects overlong streams; a clean EOF before the
	// limit means the checksum was verified
	out, err := io.ReadAll(io.LimitReader(zr, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCompressedData, err)
	}
	switch {
	case len(out) < size:
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptCompressedData, size, len(out))
	case len(out) > size:
		return nil, fmt.Errorf("%w: stream longer than %d bytes", ErrCorruptCompressedData, size)
	}

	return out, nil
}
