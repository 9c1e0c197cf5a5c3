package yxdb

import (
	"errors"
	"testing"

	"github.com/thestick613/yxdb-utils/internal/prim"
	"github.com/thestick613/yxdb-utils/internal/yxerr"
)

func TestBlockIndexRoundTrip(t *testing.T) {
	offsets := []int64{0, 512, 1024, 999999}

	encoded := EncodeBlockIndex(offsets)
	decoded, err := DecodeBlockIndex(encoded)
	if err != nil {
		t.Fatalf("DecodeBlockIndex: %v", err)
	}
	if len(decoded) != len(offsets) {
		t.Fatalf("got %d entries, want %d", len(decoded), len(offsets))
	}
	for i, v := range offsets {
		if decoded[i] != v {
			t.Fatalf("entry[%d] = %d, want %d", i, decoded[i], v)
		}
	}
}

func TestBlockIndexEmpty(t *testing.T) {
	encoded := EncodeBlockIndex(nil)
	if len(encoded) != 4 {
		t.Fatalf("empty index encoding = %d bytes, want 4 (count only)", len(encoded))
	}
	decoded, err := DecodeBlockIndex(encoded)
	if err != nil {
		t.Fatalf("DecodeBlockIndex: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("got %d entries, want 0", len(decoded))
	}
}

func TestBlockIndexOffsetOverflow(t *testing.T) {
	var buf []byte
	buf = prim.WriteU32LE(buf, 1)
	buf = prim.WriteU64LE(buf, 1<<63) // high bit set

	_, err := DecodeBlockIndex(buf)
	var oe *yxerr.OffsetOverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("want *yxerr.OffsetOverflowError, got %v (%T)", err, err)
	}
	if oe.Index != 0 {
		t.Fatalf("Index = %d, want 0", oe.Index)
	}
}

func TestBlockIndexTruncatedEntries(t *testing.T) {
	var buf []byte
	buf = prim.WriteU32LE(buf, 2)
	buf = prim.WriteU64LE(buf, 0) // only one of two promised entries present

	_, err := DecodeBlockIndex(buf)
	var te *yxerr.TruncatedError
	if !errors.As(err, &te) {
		t.Fatalf("want *yxerr.TruncatedError, got %v (%T)", err, err)
	}
}
