package ase

import "errors"

// Container errors
var (
	// ErrInvalidMagicNumber indicates the file header magic is not 0xA5E0.
	ErrInvalidMagicNumber = errors.New("invalid file magic number")
	// ErrInvalidFrameMagicNumber indicates a frame header magic is not 0xF1FA.
	ErrInvalidFrameMagicNumber = errors.New("invalid frame magic number")
	// ErrUnexpectedEndOfData indicates a read past the end of the data or of a chunk.
	ErrUnexpectedEndOfData = errors.New("unexpected end of data")
	// ErrUnsupportedChunkType indicates a chunk type this package cannot decode.
	ErrUnsupportedChunkType = errors.New("unsupported chunk type")
	// ErrChunkSizeMismatch indicates a chunk decoder left bytes of its payload unread.
	ErrChunkSizeMismatch = errors.New("chunk size mismatch")
	// ErrInvalidColorDepth indicates a header color depth other than 8, 16 or 32.
	ErrInvalidColorDepth = errors.New("invalid color depth")
)

// Chunk errors
var (
	// ErrInvalidLayerType indicates a layer type outside normal, group and tilemap.
	ErrInvalidLayerType = errors.New("invalid layer type")
	// ErrInvalidCelType indicates an unknown cel type.
	ErrInvalidCelType = errors.New("invalid cel type")
	// ErrCorruptCompressedData indicates a zlib stream that fails to inflate
	// to exactly the expected size.
	ErrCorruptCompressedData = errors.New("corrupt compressed data")
	// ErrDanglingCelExtra indicates a cel extra chunk with no cel before it in the frame.
	ErrDanglingCelExtra = errors.New("cel extra without preceding cel")
	// ErrUnsupportedFeature indicates recognized data this package does not interpret.
	ErrUnsupportedFeature = errors.New("unsupported feature")
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
)

// Document errors
var (
	// ErrInvalidLayerIndex indicates a cel referencing a layer that does not exist.
	ErrInvalidLayerIndex = errors.New("invalid layer index")
	// ErrInvalidCelLink indicates a linked cel whose source frame or cel is missing.
	ErrInvalidCelLink = errors.New("invalid cel link")
	// ErrSemanticRangeViolation indicates a tag range outside the decoded frames.
	ErrSemanticRangeViolation = errors.New("semantic range violation")
)

// File errors
var (
	// ErrOpenFile indicates file open failed.
	ErrOpenFile = errors.New("open file failed")
)
