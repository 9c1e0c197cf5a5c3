// Package fieldvalue implements the per-FieldType value codec spec.md
// describes as an open dispatch table (§4.8, §9): the source repo this
// was distilled from only ever defines Double, leaving every other
// FieldType as a reserved, Unimplemented slot. Registry models that
// shape directly so a later extension adds a Codec entry rather than
// touching the block/metadata framing layers.
package fieldvalue

import (
	"encoding/binary"
	"fmt"
	"math"

	yxdb "github.com/thestick613/yxdb-utils"
)

// Codec is the encoder/decoder pair for one FieldType's value
// representation: Encode turns a value into its on-disk bytes, Decode
// recovers a value and reports how many bytes it consumed.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte) (v any, consumed int, err error)
}

// Registry dispatches by FieldType. Only Double is populated with real
// encoding semantics; every other enumerated FieldType gets an
// unimplementedCodec so the table's shape already matches what a
// production extension would fill in.
var Registry = map[yxdb.FieldType]Codec{
	yxdb.Double: doubleCodec{},
}

func init() {
	for _, t := range []yxdb.FieldType{
		yxdb.Bool, yxdb.Byte, yxdb.Int16, yxdb.Int32, yxdb.Int64,
		yxdb.FixedDecimal, yxdb.Float, yxdb.String, yxdb.WString,
		yxdb.VString, yxdb.VWString, yxdb.Date, yxdb.Time, yxdb.DateTime,
		yxdb.Blob, yxdb.SpatialObj, yxdb.Unknown,
	} {
		Registry[t] = unimplementedCodec{kind: t}
	}
}

// EncodeValue dispatches to the Registry entry for t.
func EncodeValue(t yxdb.FieldType, v any) ([]byte, error) {
	codec, ok := Registry[t]
	if !ok {
		return nil, &yxdb.UnimplementedError{Kind: t.String()}
	}
	return codec.Encode(v)
}

// DecodeValue dispatches to the Registry entry for t.
func DecodeValue(t yxdb.FieldType, data []byte) (v any, consumed int, err error) {
	codec, ok := Registry[t]
	if !ok {
		return nil, 0, &yxdb.UnimplementedError{Kind: t.String()}
	}
	return codec.Decode(data)
}

// doubleCodec implements the Double contract (spec §4.8, invariant 9):
// 8 bytes of IEEE-754 little-endian, followed by a single trailing
// null-indicator byte. The encoder always writes zero there — this
// source never produces a null Double.
type doubleCodec struct{}

func (doubleCodec) Encode(v any) ([]byte, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("yxdb/fieldvalue: Double.Encode expects float64, got %T", v)
	}
	buf := make([]byte, 9)
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(f))
	buf[8] = 0
	return buf, nil
}

func (doubleCodec) Decode(data []byte) (any, int, error) {
	if len(data) < 9 {
		return nil, 0, fmt.Errorf("yxdb/fieldvalue: Double.Decode needs 9 bytes, have %d", len(data))
	}
	bits := binary.LittleEndian.Uint64(data[:8])
	return math.Float64frombits(bits), 9, nil
}

// unimplementedCodec reserves a FieldType's slot in Registry without
// implementing any encoding (spec §4.8: "(others) — Unimplemented").
type unimplementedCodec struct{ kind yxdb.FieldType }

func (u unimplementedCodec) Encode(any) ([]byte, error) {
	return nil, &yxdb.UnimplementedError{Kind: u.kind.String()}
}

func (u unimplementedCodec) Decode([]byte) (any, int, error) {
	return nil, 0, &yxdb.UnimplementedError{Kind: u.kind.String()}
}
