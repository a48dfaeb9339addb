package xdrkit

import (
	"bytes"
	encjson "encoding/json"
	"strconv"

	json "github.com/goccy/go-json"
)

// Obj is an insertion-ordered JSON object value. Canonical JSON output must
// preserve declared field order byte-for-byte, so struct and union codecs
// project into Obj rather than a Go map.
type Obj []Member

// Member is a single key/value pair of an Obj.
type Member struct {
	Key   string
	Value any
}

// Get returns the value for key and whether it is present.
func (o Obj) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes members in insertion order.
func (o Obj) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		v, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// AsObject coerces a JSON value into key→value form. It accepts both the
// ordered Obj produced by JSONValue and the plain map produced by
// unmarshaling JSON text.
func AsObject(j any) (map[string]any, bool) {
	switch t := j.(type) {
	case map[string]any:
		return t, true
	case Obj:
		m := make(map[string]any, len(t))
		for _, mem := range t {
			m[mem.Key] = mem.Value
		}
		return m, true
	default:
		return nil, false
	}
}

// AsArray coerces a JSON value into a []any.
func AsArray(j any) ([]any, bool) {
	a, ok := j.([]any)
	return a, ok
}

// AsString coerces a JSON value into a string.
func AsString(j any) (string, bool) {
	s, ok := j.(string)
	return s, ok
}

// AsNumber coerces a JSON number into its textual form. The entry points
// decode JSON text with UseNumber, so numbers normally arrive as json.Number;
// float64 and native integers are accepted for hand-built values.
func AsNumber(j any) (encjson.Number, bool) {
	switch t := j.(type) {
	case encjson.Number:
		return t, true
	case float64:
		return encjson.Number(strconv.FormatFloat(t, 'g', -1, 64)), true
	case int:
		return encjson.Number(strconv.FormatInt(int64(t), 10)), true
	case int32:
		return encjson.Number(strconv.FormatInt(int64(t), 10)), true
	case int64:
		return encjson.Number(strconv.FormatInt(t, 10)), true
	case uint32:
		return encjson.Number(strconv.FormatUint(uint64(t), 10)), true
	case uint64:
		return encjson.Number(strconv.FormatUint(t, 10)), true
	default:
		return "", false
	}
}
