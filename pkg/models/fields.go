package models

import (
	"net/url"
	"strconv"
	"strings"
)

// Submission field names shared by the JSON and query-parameter input shapes.
const (
	FieldDeviceID      string = "deviceId"
	FieldDoorState     string = "doorState"
	FieldTemperature   string = "temperature"
	FieldHumidity      string = "humidity"
	FieldTimestamp     string = "timestamp"
	FieldSubject       string = "subject"
	FieldDescription   string = "description"
	FieldRelatedDevice string = "relatedDevice"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindText
	KindNumber
	KindObject
)

// Value is the discriminated representation of one submitted field, decided
// once at the normalization boundary. Booleans, nulls and arrays normalize to
// KindInvalid and are skipped when fields are scanned for store writes.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Object Fields
}

// Fields is the canonical field mapping produced from an inbound request,
// either from a JSON body or from URL query parameters.
type Fields map[string]Value

func TextValue(s string) Value    { return Value{Kind: KindText, Text: s} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }
func ObjectValue(f Fields) Value  { return Value{Kind: KindObject, Object: f} }

// Scalar returns the value as it should be bound into a store write: strings
// stay strings, numbers stay numbers. Other kinds report false.
func (v Value) Scalar() (any, bool) {
	switch v.Kind {
	case KindText:
		return v.Text, true
	case KindNumber:
		return v.Number, true
	default:
		return nil, false
	}
}

// Text returns the named field rendered as text. Numbers are formatted with
// the shortest representation that round-trips.
func (f Fields) Text(key string) (string, bool) {
	v, ok := f[key]
	if !ok {
		return "", false
	}
	switch v.Kind {
	case KindText:
		return v.Text, true
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Object returns the named field as a nested mapping.
func (f Fields) Object(key string) (Fields, bool) {
	v, ok := f[key]
	if !ok || v.Kind != KindObject {
		return nil, false
	}
	return v.Object, true
}

// FieldsFromJSON converts a decoded JSON object into the canonical mapping.
// One level of object nesting is kept (for relatedDevice); anything deeper,
// and any non-scalar leaf, becomes KindInvalid.
func FieldsFromJSON(obj map[string]any) Fields {
	fields := make(Fields, len(obj))
	for key, raw := range obj {
		switch v := raw.(type) {
		case string:
			fields[key] = TextValue(v)
		case float64:
			fields[key] = NumberValue(v)
		case map[string]any:
			nested := make(Fields, len(v))
			for nkey, nraw := range v {
				switch nv := nraw.(type) {
				case string:
					nested[nkey] = TextValue(nv)
				case float64:
					nested[nkey] = NumberValue(nv)
				default:
					nested[nkey] = Value{}
				}
			}
			fields[key] = ObjectValue(nested)
		default:
			fields[key] = Value{}
		}
	}
	return fields
}

// FieldsFromQuery converts URL query parameters into the canonical mapping.
// Every value is text; a dotted key such as relatedDevice.deviceId nests,
// since the query string has no object syntax of its own.
func FieldsFromQuery(values url.Values) Fields {
	fields := make(Fields, len(values))
	for key := range values {
		value := values.Get(key)
		parent, child, nested := strings.Cut(key, ".")
		if !nested || parent == "" || child == "" {
			fields[key] = TextValue(value)
			continue
		}
		obj, ok := fields.Object(parent)
		if !ok {
			obj = Fields{}
			fields[parent] = ObjectValue(obj)
		}
		obj[child] = TextValue(value)
	}
	return fields
}
