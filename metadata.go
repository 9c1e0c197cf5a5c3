package yxdb

import (
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/antchfx/xmlquery"
	"github.com/thestick613/yxdb-utils/internal/yxerr"
)

// Field is a named, typed column descriptor with optional size and scale
// (spec §3). Size and Scale are nil when the attribute was absent.
type Field struct {
	Name  string
	Type  FieldType
	Size  *int
	Scale *int
}

// RecordInfo is an ordered list of Fields: a schema for one record stream
// within the file. A Metadata document holds one or more RecordInfos.
type RecordInfo struct {
	Fields []Field
}

// xmlField/xmlRecordInfo/xmlMetaInfo mirror the document shape from
// spec §4.6 step 1. encoding/xml emits struct fields, including
// attributes, in declaration order, which is how the writer satisfies
// the recommended name/type/size/scale attribute ordering without any
// manual string building.
type xmlField struct {
	XMLName xml.Name `xml:"Field"`
	Name    string   `xml:"name,attr"`
	Type    string   `xml:"type,attr"`
	Size    *int     `xml:"size,attr,omitempty"`
	Scale   *int     `xml:"scale,attr,omitempty"`
}

type xmlRecordInfo struct {
	XMLName xml.Name   `xml:"RecordInfo"`
	Fields  []xmlField `xml:"Field"`
}

type xmlMetaInfo struct {
	XMLName xml.Name        `xml:"MetaInfo"`
	Records []xmlRecordInfo `xml:"RecordInfo"`
}

// EncodeMetadata serializes records as UTF-16LE XML, followed by a
// literal newline and NUL sentinel (spec §4.6 write steps). The result's
// byte length is always even; len(result)/2 is the metaInfoLength a
// Header must carry alongside it.
func EncodeMetadata(records []RecordInfo) ([]byte, error) {
	doc := xmlMetaInfo{Records: make([]xmlRecordInfo, len(records))}
	for i, ri := range records {
		fields := make([]xmlField, len(ri.Fields))
		for j, f := range ri.Fields {
			fields[j] = xmlField{
				Name:  f.Name,
				Type:  f.Type.String(),
				Size:  f.Size,
				Scale: f.Scale,
			}
		}
		doc.Records[i] = xmlRecordInfo{Fields: fields}
	}

	xmlBytes, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yxdb: failed to serialize metadata XML: %w", err)
	}

	text := string(xmlBytes) + "\n\x00"
	units := utf16.Encode([]rune(text))

	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], u)
		out = append(out, b[:]...)
	}
	return out, nil
}

// DecodeMetadata decodes a UTF-16LE XML metadata window (spec §4.6 read
// steps). data's length must be even and is expected to equal
// 2*Header.MetaInfoLength.
func DecodeMetadata(data []byte) ([]RecordInfo, error) {
	return decodeMetadataAt(data, 0)
}

func decodeMetadataAt(data []byte, base int64) ([]RecordInfo, error) {
	if len(data) < 4 {
		return nil, &yxerr.MetadataTruncatedError{Offset: base, Have: len(data)}
	}

	unitCount := len(data) / 2
	units := make([]uint16, unitCount)
	for i := 0; i < unitCount; i++ {
		units[i] = binary.LittleEndian.Uint16(data[i*2 : i*2+2])
	}
	// Strip exactly the trailing newline + NUL code units, but only once
	// they're confirmed present: a window missing or misspelling the
	// sentinel pair is MetadataTruncated, not silently-chopped text.
	if units[len(units)-2] != '\n' || units[len(units)-1] != 0 {
		return nil, &yxerr.MetadataTruncatedError{Offset: base, Have: len(data)}
	}
	units = units[:len(units)-2]

	text := string(utf16.Decode(units))
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, &yxerr.XmlMalformedError{Offset: base, Cause: err}
	}

	var records []RecordInfo
	for _, riNode := range xmlquery.Find(doc, "//RecordInfo") {
		var fields []Field
		for _, fNode := range xmlquery.Find(riNode, "Field") {
			f := Field{
				Name: fNode.SelectAttr("name"),
				Type: ParseFieldType(fNode.SelectAttr("type")),
			}
			if raw := fNode.SelectAttr("size"); raw != "" {
				v, perr := strconv.Atoi(raw)
				if perr != nil {
					return nil, &yxerr.BadFieldAttributeError{Offset: base, Attribute: "size", Value: raw, Cause: perr}
				}
				f.Size = &v
			}
			if raw := fNode.SelectAttr("scale"); raw != "" {
				v, perr := strconv.Atoi(raw)
				if perr != nil {
					return nil, &yxerr.BadFieldAttributeError{Offset: base, Attribute: "scale", Value: raw, Cause: perr}
				}
				f.Scale = &v
			}
			fields = append(fields, f)
		}
		records = append(records, RecordInfo{Fields: fields})
	}
	return records, nil
}
