package yxdb

// FieldType enumerates the column kinds a RecordInfo Field may declare
// (spec §3). Unknown type strings decode to Unknown rather than failing.
type FieldType int

const (
	Bool FieldType = iota
	Byte
	Int16
	Int32
	Int64
	FixedDecimal
	Float
	Double
	String
	WString
	VString
	VWString
	Date
	Time
	DateTime
	Blob
	SpatialObj
	Unknown
)

// fieldTypeNames is the closed, immutable bidirectional map between
// FieldType and its canonical on-disk spelling (spec §3, §4.7).
var fieldTypeNames = map[FieldType]string{
	Bool:         "Bool",
	Byte:         "Byte",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	FixedDecimal: "FixedDecimal",
	Float:        "Float",
	Double:       "Double",
	String:       "String",
	WString:      "WString",
	VString:      "V_String",
	VWString:     "V_WString",
	Date:         "Date",
	Time:         "Time",
	DateTime:     "DateTime",
	Blob:         "Blob",
	SpatialObj:   "SpatialObj",
	Unknown:      "Unknown",
}

var fieldTypeByName map[string]FieldType

func init() {
	fieldTypeByName = make(map[string]FieldType, len(fieldTypeNames))
	for t, name := range fieldTypeNames {
		fieldTypeByName[name] = t
	}
}

// String returns the canonical spelling for t, or "Unknown" for any value
// outside the enumerated set.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fieldTypeNames[Unknown]
}

// ParseFieldType maps a canonical type string back to a FieldType. An
// unrecognized string yields Unknown rather than an error (spec §4.7).
func ParseFieldType(s string) FieldType {
	if t, ok := fieldTypeByName[s]; ok {
		return t
	}
	return Unknown
}
