package yxdb

import "testing"

func TestFieldTypeStringRoundTrip(t *testing.T) {
	types := []FieldType{
		Bool, Byte, Int16, Int32, Int64, FixedDecimal, Float, Double,
		String, WString, VString, VWString, Date, Time, DateTime, Blob, SpatialObj,
	}
	for _, ft := range types {
		name := ft.String()
		if name == "" || name == "Unknown" {
			t.Fatalf("FieldType(%d).String() = %q, want a real canonical name", ft, name)
		}
		if got := ParseFieldType(name); got != ft {
			t.Fatalf("ParseFieldType(%q) = %v, want %v", name, got, ft)
		}
	}
}

func TestFieldTypeVariantSpellings(t *testing.T) {
	if VString.String() != "V_String" {
		t.Fatalf("VString.String() = %q, want %q", VString.String(), "V_String")
	}
	if VWString.String() != "V_WString" {
		t.Fatalf("VWString.String() = %q, want %q", VWString.String(), "V_WString")
	}
}

func TestFieldTypeUnknownFallback(t *testing.T) {
	if got := ParseFieldType("NotARealType"); got != Unknown {
		t.Fatalf("ParseFieldType(garbage) = %v, want Unknown", got)
	}
	if got := FieldType(999).String(); got != "Unknown" {
		t.Fatalf("FieldType(999).String() = %q, want Unknown", got)
	}
}
