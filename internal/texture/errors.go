package texture

import "errors"

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidFormat indicates an unsupported pixel format.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmptyImage indicates an image with no pixels.
	ErrEmptyImage = errors.New("empty image")
	// ErrMipmapSizeMismatch indicates an encoded mipmap of unexpected size.
	ErrMipmapSizeMismatch = errors.New("mipmap size mismatch")
	// ErrEncodeMipmap indicates pixel encoding of a mipmap failed.
	ErrEncodeMipmap = errors.New("encode mipmap failed")
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = errors.New("LZ4 compression failed")
	// ErrChunkTooLarge indicates a compressed chunk exceeds the 24-bit size field.
	ErrChunkTooLarge = errors.New("compressed chunk too large")
	// ErrWriteHeader indicates the DDS magic or header write failed.
	ErrWriteHeader = errors.New("writing DDS header failed")
	// ErrWriteBlockTable indicates a block table entry write failed.
	ErrWriteBlockTable = errors.New("writing block table failed")
	// ErrWriteBlockData indicates a block body write failed.
	ErrWriteBlockData = errors.New("writing block data failed")
)
