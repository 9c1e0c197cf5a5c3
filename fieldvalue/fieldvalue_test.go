package fieldvalue

import (
	"errors"
	"testing"

	yxdb "github.com/thestick613/yxdb-utils"
)

func TestDoubleRoundTrip(t *testing.T) {
	encoded, err := EncodeValue(yxdb.Double, 2.71828)
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}
	if len(encoded) != 9 {
		t.Fatalf("encoded length = %d, want 9", len(encoded))
	}

	v, consumed, err := DecodeValue(yxdb.Double, encoded)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	if consumed != 9 {
		t.Fatalf("consumed = %d, want 9", consumed)
	}
	if v.(float64) != 2.71828 {
		t.Fatalf("decoded = %v, want 2.71828", v)
	}
}

func TestDoubleEncodeWrongType(t *testing.T) {
	if _, err := EncodeValue(yxdb.Double, "not a float"); err == nil {
		t.Fatal("expected an error encoding a non-float64 as Double")
	}
}

func TestDoubleDecodeTooShort(t *testing.T) {
	if _, _, err := DecodeValue(yxdb.Double, []byte{1, 2, 3}); err == nil {
		t.Fatal("expected an error decoding fewer than 9 bytes as Double")
	}
}

func TestUnimplementedTypesReportUnimplementedError(t *testing.T) {
	for _, ft := range []yxdb.FieldType{
		yxdb.Bool, yxdb.Byte, yxdb.Int16, yxdb.Int32, yxdb.Int64,
		yxdb.FixedDecimal, yxdb.Float, yxdb.String, yxdb.WString,
		yxdb.VString, yxdb.VWString, yxdb.Date, yxdb.Time, yxdb.DateTime,
		yxdb.Blob, yxdb.SpatialObj,
	} {
		_, err := EncodeValue(ft, nil)
		var ue *yxdb.UnimplementedError
		if !errors.As(err, &ue) {
			t.Fatalf("EncodeValue(%v): want *yxdb.UnimplementedError, got %v (%T)", ft, err, err)
		}

		_, _, err = DecodeValue(ft, nil)
		if !errors.As(err, &ue) {
			t.Fatalf("DecodeValue(%v): want *yxdb.UnimplementedError, got %v (%T)", ft, err, err)
		}
	}
}

func TestUnknownFieldTypeNotInRegistryFallsBackToUnimplemented(t *testing.T) {
	_, err := EncodeValue(yxdb.FieldType(9999), nil)
	var ue *yxdb.UnimplementedError
	if !errors.As(err, &ue) {
		t.Fatalf("want *yxdb.UnimplementedError for an out-of-range FieldType, got %v (%T)", err, err)
	}
}
