package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

const (
	// BlockMagicCOPY marks an uncompressed block.
	BlockMagicCOPY = "COPY"
	// BlockMagicLZ4 marks an LZ4 chunk-stream block.
	BlockMagicLZ4 = "LZ4 "

	// ChunkSize is the uncompressed size of one LZ4 stream chunk.
	ChunkSize = 64 * 1024

	// blocks smaller than this are always stored
	minPackSize = 1024
	// compressed output above this percentage of the input is stored instead
	packRatio = 85
	// chunk sizes are stored in 24 bits
	maxChunkBody = 0x7FFFFF
	lastChunk    = 0x80
)

// block is one mipmap body ready to be written.
type block struct {
	magic   string
	data    []byte
	size    int32 // body size as listed in the block table
	rawSize int32 // uncompressed size, LZ4 only
}

// packBlock compresses data into an LZ4 chunk stream, or returns a COPY
// block when compression does not pay off.
func packBlock(data []byte) (*block, error) {
	rawSize, err := i32FromInt(len(data))
	if err != nil {
		return nil, err
	}
	stored := &block{magic: BlockMagicCOPY, size: rawSize, data: data}
	if len(data) < minPackSize {
		return stored, nil
	}

	var stream bytes.Buffer
	scratch := make([]byte, lz4.CompressBlockBound(ChunkSize))

	for off := 0; off < len(data); off += ChunkSize {
		chunk := data[off:min(off+ChunkSize, len(data))]

		n, err := lz4.CompressBlockHC(chunk, scratch, 0, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
		}
		if n == 0 || n*100 > len(chunk)*packRatio {
			return stored, nil
		}
		if n > maxChunkBody {
			return nil, fmt.Errorf("%w: %d", ErrChunkTooLarge, n)
		}

		flags := byte(0)
		if off+len(chunk) == len(data) {
			flags = lastChunk
		}
		stream.Write([]byte{byte(n), byte(n >> 8), byte(n >> 16), flags})
		stream.Write(scratch[:n])
	}

	body := 4 + stream.Len()
	if body*100 > len(data)*packRatio {
		return stored, nil
	}
	size, err := i32FromInt(body)
	if err != nil {
		return nil, err
	}

	return &block{magic: BlockMagicLZ4, size: size, rawSize: rawSize, data: stream.Bytes()}, nil
}

// writeBody writes a block body; LZ4 bodies start with the raw size.
func (b *block) writeBody(w io.Writer) error {
	if b.magic == BlockMagicLZ4 {
		if err := binary.Write(w, binary.LittleEndian, b.rawSize); err != nil {
			return err
		}
	}
	_, err := w.Write(b.data)
	return err
}

// writeTableEntry writes the block magic and body size.
func (b *block) writeTableEntry(w io.Writer) error {
	if _, err := io.WriteString(w, b.magic); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, b.size)
}
