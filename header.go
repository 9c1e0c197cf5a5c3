package yxdb

import (
	"github.com/thestick613/yxdb-utils/internal/prim"
)

const descriptionWidth = 64

// reservedSpaceWidth is whatever's left of the 512-byte page after every
// declared field.
const reservedSpaceWidth = HeaderPageSize - descriptionWidth - 4*7 - 8*3

// Header is the fixed 512-byte leading page of a YXDB file (spec §3).
type Header struct {
	Description         [descriptionWidth]byte
	FileID              uint32
	CreationDate        uint32
	Flags1              uint32
	Flags2              uint32
	MetaInfoLength      uint32
	Mystery             uint32
	SpatialIndexPos     uint64
	RecordBlockIndexPos uint64
	NumRecords          uint64
	CompressionVersion  uint32
	ReservedSpace       [reservedSpaceWidth]byte
}

// HasSpatialIndex reports whether FileID carries the magic value that
// indicates a spatial index is present. The index body itself is never
// parsed by this codec (spec §9).
func (h Header) HasSpatialIndex() bool {
	return h.FileID == fileIDWithSpatialIndex
}

// StartOfBlocks is the byte offset at which block data begins, derived
// from the header page size and the metadata section length (spec §3).
func (h Header) StartOfBlocks() int64 {
	return HeaderPageSize + 2*int64(h.MetaInfoLength)
}

// DecodeHeader parses exactly 512 bytes into a Header.
func DecodeHeader(data []byte) (Header, error) {
	c := prim.NewCursor(data, 0)
	return prim.Isolate(c, HeaderPageSize, "header", decodeHeaderCursor)
}

func decodeHeaderCursor(c *prim.Cursor) (Header, error) {
	var h Header

	desc, err := c.ReadBytes(descriptionWidth, "header.description")
	if err != nil {
		return h, err
	}
	copy(h.Description[:], desc)

	if h.FileID, err = c.ReadU32LE("header.fileId"); err != nil {
		return h, err
	}
	if h.CreationDate, err = c.ReadU32LE("header.creationDate"); err != nil {
		return h, err
	}
	if h.Flags1, err = c.ReadU32LE("header.flags1"); err != nil {
		return h, err
	}
	if h.Flags2, err = c.ReadU32LE("header.flags2"); err != nil {
		return h, err
	}
	if h.MetaInfoLength, err = c.ReadU32LE("header.metaInfoLength"); err != nil {
		return h, err
	}
	if h.Mystery, err = c.ReadU32LE("header.mystery"); err != nil {
		return h, err
	}
	if h.SpatialIndexPos, err = c.ReadU64LE("header.spatialIndexPos"); err != nil {
		return h, err
	}
	if h.RecordBlockIndexPos, err = c.ReadU64LE("header.recordBlockIndexPos"); err != nil {
		return h, err
	}
	if h.NumRecords, err = c.ReadU64LE("header.numRecords"); err != nil {
		return h, err
	}
	if h.CompressionVersion, err = c.ReadU32LE("header.compressionVersion"); err != nil {
		return h, err
	}

	reserved, err := c.ReadBytes(reservedSpaceWidth, "header.reservedSpace")
	if err != nil {
		return h, err
	}
	copy(h.ReservedSpace[:], reserved)

	return h, nil
}

// Encode serializes h into exactly 512 bytes.
func (h Header) Encode() []byte {
	buf := make([]byte, 0, HeaderPageSize)
	buf = append(buf, h.Description[:]...)
	buf = prim.WriteU32LE(buf, h.FileID)
	buf = prim.WriteU32LE(buf, h.CreationDate)
	buf = prim.WriteU32LE(buf, h.Flags1)
	buf = prim.WriteU32LE(buf, h.Flags2)
	buf = prim.WriteU32LE(buf, h.MetaInfoLength)
	buf = prim.WriteU32LE(buf, h.Mystery)
	buf = prim.WriteU64LE(buf, h.SpatialIndexPos)
	buf = prim.WriteU64LE(buf, h.RecordBlockIndexPos)
	buf = prim.WriteU64LE(buf, h.NumRecords)
	buf = prim.WriteU32LE(buf, h.CompressionVersion)
	buf = append(buf, h.ReservedSpace[:]...)
	return buf
}

// EncodeHeader is the free-function form of Header.Encode, matching the
// language-neutral API surface named in spec §6.
func EncodeHeader(h Header) []byte { return h.Encode() }
