package yxdb

import "github.com/thestick613/yxdb-utils/internal/yxerr"

// Error taxonomy surfaced to callers (spec §7). These are type aliases
// over internal/yxerr so both the codec's own internal layers and
// external callers use errors.As against the same underlying types.
type (
	TruncatedError           = yxerr.TruncatedError
	IsolationMismatchError   = yxerr.IsolationMismatchError
	NegativeBlockRegionError = yxerr.NegativeBlockRegionError
	BufferTooSmallError      = yxerr.BufferTooSmallError
	MetadataTruncatedError   = yxerr.MetadataTruncatedError
	XmlMalformedError        = yxerr.XmlMalformedError
	BadFieldAttributeError   = yxerr.BadFieldAttributeError
	UnimplementedError       = yxerr.UnimplementedError
	OffsetOverflowError      = yxerr.OffsetOverflowError
)
