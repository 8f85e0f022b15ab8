// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ase

package ase

// DefaultMaxCelBytes bounds the decoded size of a single cel payload.
const DefaultMaxCelBytes = 256 << 20

// bufferSize returns width*height*unit, failing when it exceeds limit.
func bufferSize(width, height uint16, unit int, limit int64) (int, error) {
	if unit <= 0 {
		return 0, ErrSizeOverflow
	}

	n := int64(width) * int64(height) * int64(unit)
	if limit > 0 && n > limit {
		return 0, ErrSizeOverflow
	}

	return int(n), nil
}

// payloadSize returns the payload length of a chunk with the given total
// size, or -1 when the size cannot hold the chunk envelope.
func payloadSize(total uint32) int64 {
	if total < ChunkHeaderSize {
		return -1
	}

	// #nosec G115 -- uint32 always fits in int64.
	return int64(total) - ChunkHeaderSize
}
