// Package lzfcodec wraps a pure LZF compressor/decompressor behind the
// bounded-buffer contract the block codec (spec §4.2) expects: Compress
// reports whether the result fit under a caller-chosen ceiling instead of
// growing a buffer, and Decompress never allocates past a fixed cap.
package lzfcodec

import (
	"github.com/thestick613/yxdb-utils/internal/yxerr"
	"github.com/zhuyie/golzf"
)

// Compress attempts to LZF-compress input into at most maxOut bytes. ok is
// false if the compressed form would not fit, mirroring golzf's own
// "insufficient output buffer" failure mode; callers fall back to storing
// input raw.
func Compress(input []byte, maxOut int) (out []byte, ok bool) {
	if maxOut <= 0 {
		return nil, false
	}
	buf := make([]byte, maxOut)
	n, err := golzf.Compress(input, buf)
	if err != nil {
		return nil, false
	}
	return buf[:n], true
}

// Decompress expands input into a buffer bounded by outBufSize, failing
// with *yxerr.BufferTooSmallError if the decompressed form would exceed it.
func Decompress(input []byte, outBufSize int, offset int64) ([]byte, error) {
	buf := make([]byte, outBufSize)
	n, err := golzf.Decompress(input, buf)
	if err != nil {
		return nil, &yxerr.BufferTooSmallError{Offset: offset, Limit: outBufSize, Cause: err}
	}
	return buf[:n], nil
}
