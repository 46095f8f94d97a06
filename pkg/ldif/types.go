// pkg/ldif/types.go

// Package ldif converts between LDIF text and an in-memory record model and
// sorts records by their DNs, honoring the {<weight>} sibling-ordering
// convention implemented by pkg/dn.
package ldif

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Value is one attribute value. Parsing produces Text for values that decode
// as UTF-8 and Bytes for everything else (certificates, photos, ...).
// Serialization additionally accepts Integer and one level of List.
type Value interface {
	isValue()
}

type (
	// Text is a UTF-8 attribute value.
	Text string
	// Bytes is an opaque binary attribute value.
	Bytes []byte
	// Integer is a numeric attribute value, stringified on encoding.
	Integer int64
	// List groups several values under a single attribute.
	List []Value
)

func (Text) isValue()    {}
func (Bytes) isValue()   {}
func (Integer) isValue() {}
func (List) isValue()    {}

// Record is a single LDIF entry: a DN plus its attributes. Attribute names
// are lower-cased and never include "dn"; value order matches the input.
// No operation in this package mutates a Record once built.
type Record struct {
	DN         string
	Attributes map[string][]Value
}

// GetAttributeValues returns the text rendering of every value of the named
// attribute. The lookup is case-insensitive; binary values come back as raw
// strings.
func (r *Record) GetAttributeValues(name string) []string {
	values := r.Attributes[strings.ToLower(name)]
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, renderValue(v)...)
	}
	return out
}

// GetAttributeValue returns the first value of the named attribute, or ""
// when the record does not carry it.
func (r *Record) GetAttributeValue(name string) string {
	values := r.GetAttributeValues(name)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func renderValue(v Value) []string {
	switch v := v.(type) {
	case Text:
		return []string{string(v)}
	case Bytes:
		return []string{string(v)}
	case Integer:
		return []string{strconv.FormatInt(int64(v), 10)}
	case List:
		out := make([]string, 0, len(v))
		for _, e := range v {
			out = append(out, renderValue(e)...)
		}
		return out
	default:
		return nil
	}
}

// decodeValue turns raw bytes off the wire into Text when they are valid
// UTF-8 and an owned Bytes copy otherwise.
func decodeValue(raw []byte) Value {
	if utf8.Valid(raw) {
		return Text(raw)
	}
	return Bytes(append([]byte(nil), raw...))
}
