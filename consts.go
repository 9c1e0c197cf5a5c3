package yxdb

// Configuration constants (spec §6). All are immutable; there is no
// config file or flag parsing at this layer — that belongs to a CLI
// collaborator outside this module's scope.
const (
	// HeaderPageSize is the fixed byte width of the header section.
	HeaderPageSize = 512

	// RecordsPerBlock is a writer hint only: the source's own writer
	// flushes roughly this many records per block. Nothing in the format
	// enforces it; a reader tolerates any chunking.
	RecordsPerBlock = 65536

	// SpatialIndexRecordBlockSize is informational; the spatial index
	// body itself is opaque to this codec (spec §9).
	SpatialIndexRecordBlockSize = 32

	// DecompressionBufferSize bounds LZF decompression of a single block.
	// Decompression fails if the expanded block would exceed this.
	DecompressionBufferSize = 0x40000 // 256 KiB

	// maxBlockPayloadBytes is the largest payload a single block may
	// carry on disk: the length prefix reserves its high bit for the
	// compression flag, leaving 31 bits for size.
	maxBlockPayloadBytes = (1 << 31) - 1

	// fileIDWithSpatialIndex and fileIDWithoutSpatialIndex are the two
	// magic values a header's fileId may carry (spec §3).
	fileIDWithSpatialIndex    = 0x00440205
	fileIDWithoutSpatialIndex = 0x00440204
)
