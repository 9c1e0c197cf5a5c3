package yxdb

import (
	"github.com/thestick613/yxdb-utils/internal/prim"
	"github.com/thestick613/yxdb-utils/internal/yxerr"
)

// File is the fully decoded form of a YXDB document: a Header, the
// RecordInfo schemas it describes, the decompressed concatenation of all
// block payloads, and the trailing block index (spec §3). A File owns
// all of its data exclusively; nothing here is shared with the caller's
// buffers after decode.
type File struct {
	Header     Header
	Metadata   []RecordInfo
	Blocks     []byte
	BlockIndex []int64
}

// DecodeFile parses a complete YXDB byte stream (spec §4.9 read).
func DecodeFile(data []byte) (*File, error) {
	c := prim.NewCursor(data, 0)

	header, err := prim.Isolate(c, HeaderPageSize, "header", decodeHeaderCursor)
	if err != nil {
		return nil, err
	}

	metaLen := int(header.MetaInfoLength) * 2
	records, err := prim.Isolate(c, metaLen, "metadata", func(sub *prim.Cursor) ([]RecordInfo, error) {
		windowBase := sub.Offset()
		raw, err := sub.ReadBytes(sub.Remaining(), "metadata.window")
		if err != nil {
			return nil, err
		}
		return decodeMetadataAt(raw, windowBase)
	})
	if err != nil {
		return nil, err
	}

	numBlocksBytes := int64(header.RecordBlockIndexPos) - c.Offset()
	if numBlocksBytes < 0 {
		return nil, &yxerr.NegativeBlockRegionError{Offset: c.Offset(), RecordBlockIndexPos: header.RecordBlockIndexPos}
	}

	blocks, err := prim.Isolate(c, int(numBlocksBytes), "blocks", decodeBlocksCursor)
	if err != nil {
		return nil, err
	}

	blockIndex, err := decodeBlockIndexCursor(c)
	if err != nil {
		return nil, err
	}

	return &File{
		Header:     header,
		Metadata:   records,
		Blocks:     blocks,
		BlockIndex: blockIndex,
	}, nil
}

// EncodeFile serializes f's sections in header/metadata/blocks/blockIndex
// order (spec §4.9 write). It's the caller's responsibility to have set
// Header fields consistently with the actual content; see Finalize for a
// helper that recomputes them.
func EncodeFile(f File) ([]byte, error) {
	metaBytes, err := EncodeMetadata(f.Metadata)
	if err != nil {
		return nil, err
	}
	blockBytes := EncodeBlocks(f.Blocks)
	indexBytes := EncodeBlockIndex(f.BlockIndex)

	buf := make([]byte, 0, HeaderPageSize+len(metaBytes)+len(blockBytes)+len(indexBytes))
	buf = append(buf, f.Header.Encode()...)
	buf = append(buf, metaBytes...)
	buf = append(buf, blockBytes...)
	buf = append(buf, indexBytes...)
	return buf, nil
}

// Finalize recomputes Header.MetaInfoLength, Header.RecordBlockIndexPos
// and Header.NumRecords from f's actual Metadata/Blocks/BlockIndex
// content and numRecords, then returns the fully encoded file. Record
// counting itself lives above this codec (spec §1), so the caller
// supplies it explicitly rather than Finalize inferring it from the raw
// block payload.
func (f *File) Finalize(numRecords uint64) ([]byte, error) {
	metaBytes, err := EncodeMetadata(f.Metadata)
	if err != nil {
		return nil, err
	}
	blockBytes := EncodeBlocks(f.Blocks)
	indexBytes := EncodeBlockIndex(f.BlockIndex)

	f.Header.MetaInfoLength = uint32(len(metaBytes) / 2)
	f.Header.RecordBlockIndexPos = uint64(f.Header.StartOfBlocks()) + uint64(len(blockBytes))
	f.Header.NumRecords = numRecords

	buf := make([]byte, 0, HeaderPageSize+len(metaBytes)+len(blockBytes)+len(indexBytes))
	buf = append(buf, f.Header.Encode()...)
	buf = append(buf, metaBytes...)
	buf = append(buf, blockBytes...)
	buf = append(buf, indexBytes...)
	return buf, nil
}
