package xdrkit

import (
	"bytes"
	"encoding/base64"

	json "github.com/goccy/go-json"
)

// Codec converts values of type T between their XDR wire form and their
// canonical JSON projection. Codecs are immutable, stateless values composed
// once at init time; they are safe for concurrent use because every call
// allocates its own cursor.
type Codec[T any] interface {
	// EncodeTo appends the XDR bytes of v to w.
	EncodeTo(w *Writer, v T) error
	// DecodeFrom consumes exactly the bytes of one T, advancing the shared
	// cursor. It does not require the cursor to reach end-of-buffer; the
	// outermost boundary decides completeness.
	DecodeFrom(r *Reader) (T, error)
	// JSONValue projects v into its canonical JSON value.
	JSONValue(v T) (any, error)
	// FromJSONValue reverses JSONValue.
	FromJSONValue(j any) (T, error)
}

// Marshal encodes v into its XDR byte form.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	w := NewWriter()
	if err := c.EncodeTo(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes one value of T from b, requiring that b is fully
// consumed. Callers that embed values in larger buffers compose codecs
// instead and use DecodeFrom directly.
func Unmarshal[T any](c Codec[T], b []byte) (T, error) {
	r := NewReader(b)
	v, err := c.DecodeFrom(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if r.Remaining() != 0 {
		var zero T
		return zero, Issues{{Path: "/", Code: CodeInvalidValue, Message: "trailing bytes after value", Offset: r.Offset()}}
	}
	return v, nil
}

// MarshalBase64 encodes v and wraps the bytes in standard base64.
func MarshalBase64[T any](c Codec[T], v T) (string, error) {
	b, err := Marshal(c, v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 decodes standard base64 text and then one value of T.
func UnmarshalBase64[T any](c Codec[T], s string) (T, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		var zero T
		return zero, Issues{{Path: "/", Code: CodeInvalidFormat, Message: "invalid base64", Cause: err, Offset: -1}}
	}
	return Unmarshal(c, b)
}

// MarshalJSON projects v and renders the canonical JSON text. Objects keep
// their declared member order (see Obj).
func MarshalJSON[T any](c Codec[T], v T) ([]byte, error) {
	j, err := c.JSONValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

// UnmarshalJSON parses JSON text (numbers preserved as json.Number) and
// reverses the projection.
func UnmarshalJSON[T any](c Codec[T], b []byte) (T, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var j any
	if err := dec.Decode(&j); err != nil {
		var zero T
		return zero, Issues{{Path: "/", Code: CodeInvalidFormat, Message: "invalid JSON", Cause: err, Offset: -1}}
	}
	return c.FromJSONValue(j)
}
