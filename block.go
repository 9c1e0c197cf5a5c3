package yxdb

import (
	"github.com/thestick613/yxdb-utils/internal/lzfcodec"
	"github.com/thestick613/yxdb-utils/internal/prim"
	"github.com/thestick613/yxdb-utils/internal/yxerr"
)

// compressedFlagMask is bit 31 of a block's length prefix. Per spec §4.3
// the sign is inverted from what's intuitive: clear (0) means LZF-
// compressed, set (1) means stored raw.
const (
	compressedFlagMask = uint32(1) << 31
	blockSizeMask      = compressedFlagMask - 1
)

// DecodeBlocks decodes the block stream framed within data into the flat,
// decompressed payload buffer it represents (spec §4.4).
func DecodeBlocks(data []byte) ([]byte, error) {
	c := prim.NewCursor(data, 0)
	return decodeBlocksCursor(c)
}

func decodeBlocksCursor(c *prim.Cursor) ([]byte, error) {
	var out []byte
	for c.Remaining() > 0 {
		payload, err := decodeOneBlock(c)
		if err != nil {
			return nil, err
		}
		out = append(out, payload...)
	}
	return out, nil
}

func decodeOneBlock(c *prim.Cursor) ([]byte, error) {
	raw, err := c.ReadU32LE("block.size")
	if err != nil {
		return nil, err
	}
	compressed := raw&compressedFlagMask == 0
	size := raw & blockSizeMask

	payloadOffset := c.Offset()
	// A declared size that overruns what's left isn't an ordinary short
	// read: the block's length prefix is itself a sub-region budget, so
	// a declaration bigger than the remaining input is the block codec's
	// own sub-parser over-consuming its isolated window (spec §7).
	if int(size) > c.Remaining() {
		return nil, &yxerr.IsolationMismatchError{Offset: payloadOffset, Label: "block.payload", Want: int(size), Consumed: c.Remaining()}
	}
	payload, err := c.ReadBytes(int(size), "block.payload")
	if err != nil {
		return nil, err
	}

	if !compressed {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}
	return lzfcodec.Decompress(payload, DecompressionBufferSize, payloadOffset)
}

// EncodeBlocks frames payload as one or more on-disk blocks (spec §4.4).
// Each chunk is LZF-compressed when that's strictly smaller than the
// chunk itself; otherwise it's stored raw with the uncompressed flag set
// (spec §4.3). Chunks are at most DecompressionBufferSize bytes, so every
// block fits the reader's decompression buffer. An empty payload always
// yields a single zero-length block, never zero blocks.
func EncodeBlocks(payload []byte) []byte {
	if len(payload) == 0 {
		return writeOneBlock(nil, payload)
	}

	var buf []byte
	for start := 0; start < len(payload); start += DecompressionBufferSize {
		end := start + DecompressionBufferSize
		if end > len(payload) {
			end = len(payload)
		}
		buf = writeOneBlock(buf, payload[start:end])
	}
	return buf
}

func writeOneBlock(buf []byte, chunk []byte) []byte {
	maxOut := len(chunk) - 1
	if compressed, ok := lzfcodec.Compress(chunk, maxOut); ok {
		buf = prim.WriteU32LE(buf, uint32(len(compressed)))
		return append(buf, compressed...)
	}

	raw := uint32(len(chunk)) | compressedFlagMask
	buf = prim.WriteU32LE(buf, raw)
	return append(buf, chunk...)
}
