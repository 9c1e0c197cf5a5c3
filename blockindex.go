package yxdb

import (
	"github.com/thestick613/yxdb-utils/internal/prim"
	"github.com/thestick613/yxdb-utils/internal/yxerr"
)

// DecodeBlockIndex decodes a length-prefixed array of signed 64-bit
// offsets: a u32 LE count followed by count u64 LE values, reinterpreted
// as signed (spec §4.5).
func DecodeBlockIndex(data []byte) ([]int64, error) {
	c := prim.NewCursor(data, 0)
	return decodeBlockIndexCursor(c)
}

func decodeBlockIndexCursor(c *prim.Cursor) ([]int64, error) {
	count, err := c.ReadU32LE("blockIndex.count")
	if err != nil {
		return nil, err
	}

	return prim.Isolate(c, int(count)*8, "blockIndex.entries", func(sub *prim.Cursor) ([]int64, error) {
		out := make([]int64, count)
		for i := range out {
			entryOffset := sub.Offset()
			raw, err := sub.ReadU64LE("blockIndex.entry")
			if err != nil {
				return nil, err
			}
			if raw&(1<<63) != 0 {
				return nil, &yxerr.OffsetOverflowError{Offset: entryOffset, Index: i, Raw: raw}
			}
			out[i] = int64(raw)
		}
		return out, nil
	})
}

// EncodeBlockIndex serializes offsets as a u32 LE count followed by each
// value as u64 LE.
func EncodeBlockIndex(offsets []int64) []byte {
	buf := make([]byte, 0, 4+8*len(offsets))
	buf = prim.WriteU32LE(buf, uint32(len(offsets)))
	for _, v := range offsets {
		buf = prim.WriteU64LE(buf, uint64(v))
	}
	return buf
}
