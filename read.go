package ase

import (
	"bufio"
	"fmt"
	"os"
)

// ReadFile reads and decodes an Aseprite file.
func ReadFile(path string) (*Document, error) {
	return ReadFileWithOptions(path, nil)
}

// ReadFileWithOptions reads and decodes an Aseprite file with the given
// options. Nil opts uses defaults.
func ReadFileWithOptions(path string, opts *DecodeOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := DecodeWithOptions(bufio.NewReader(f), opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return doc, nil
}

// ReadHeader reads the file header without decoding frames.
func ReadHeader(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeHeader(f)
}
