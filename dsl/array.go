package dsl

import (
	"strconv"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
)

// FixedArray returns the codec for exactly n elements of inner, with no
// length prefix.
func FixedArray(n int, inner AnyCodec) xdrkit.Codec[[]any] {
	return fixedArrayCodec{n: n, inner: inner}
}

// VarArray returns the codec for a 4-byte count followed by that many
// elements of inner. max bounds the count on both encode and decode; pass
// Unbounded for no bound.
func VarArray(max int, inner AnyCodec) xdrkit.Codec[[]any] {
	return varArrayCodec{max: max, inner: inner}
}

// Option returns the codec for an optional inner value: a 4-byte presence
// boolean followed, only when present, by the inner bytes. The absent value
// is nil, projecting to JSON null.
func Option(inner AnyCodec) xdrkit.Codec[any] {
	return optionCodec{inner: inner}
}

type fixedArrayCodec struct {
	n     int
	inner AnyCodec
}

func (c fixedArrayCodec) EncodeTo(w *xdrkit.Writer, v []any) error {
	if len(v) != c.n {
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeLengthMismatch, Message: i18n.T(xdrkit.CodeLengthMismatch, nil), Offset: -1}}
	}
	return encodeElems(w, c.inner, v)
}

func (c fixedArrayCodec) DecodeFrom(r *xdrkit.Reader) ([]any, error) {
	return decodeElems(r, c.inner, c.n)
}

func (c fixedArrayCodec) JSONValue(v []any) (any, error) {
	if len(v) != c.n {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeLengthMismatch, Message: i18n.T(xdrkit.CodeLengthMismatch, nil), Offset: -1}}
	}
	return elemsJSON(c.inner, v)
}

func (c fixedArrayCodec) FromJSONValue(j any) ([]any, error) {
	out, err := elemsFromJSON(c.inner, j)
	if err != nil {
		return nil, err
	}
	if len(out) != c.n {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeLengthMismatch, Message: i18n.T(xdrkit.CodeLengthMismatch, nil), Offset: -1}}
	}
	return out, nil
}

type varArrayCodec struct {
	max   int
	inner AnyCodec
}

func (c varArrayCodec) EncodeTo(w *xdrkit.Writer, v []any) error {
	if c.max >= 0 && len(v) > c.max {
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	w.PutUint32(uint32(len(v)))
	return encodeElems(w, c.inner, v)
}

func (c varArrayCodec) DecodeFrom(r *xdrkit.Reader) ([]any, error) {
	off := r.Offset()
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if c.max >= 0 && n > uint32(c.max) {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: off}}
	}
	return decodeElems(r, c.inner, int(n))
}

func (c varArrayCodec) JSONValue(v []any) (any, error) {
	if c.max >= 0 && len(v) > c.max {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	return elemsJSON(c.inner, v)
}

func (c varArrayCodec) FromJSONValue(j any) ([]any, error) {
	out, err := elemsFromJSON(c.inner, j)
	if err != nil {
		return nil, err
	}
	if c.max >= 0 && len(out) > c.max {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	return out, nil
}

type optionCodec struct {
	inner AnyCodec
}

func (c optionCodec) EncodeTo(w *xdrkit.Writer, v any) error {
	if v == nil {
		w.PutUint32(0)
		return nil
	}
	w.PutUint32(1)
	return c.inner.EncodeTo(w, v)
}

func (c optionCodec) DecodeFrom(r *xdrkit.Reader) (any, error) {
	off := r.Offset()
	u, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	switch u {
	case 0:
		return nil, nil
	case 1:
		return c.inner.DecodeFrom(r)
	default:
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidValue, Message: i18n.T(xdrkit.CodeInvalidValue, nil), Hint: "presence word must be 0 or 1", Offset: off}}
	}
}

func (c optionCodec) JSONValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return c.inner.JSONValue(v)
}

func (c optionCodec) FromJSONValue(j any) (any, error) {
	if j == nil {
		return nil, nil
	}
	return c.inner.FromJSONValue(j)
}

// ---- helpers ----

func encodeElems(w *xdrkit.Writer, inner AnyCodec, v []any) error {
	for i, e := range v {
		if err := inner.EncodeTo(w, e); err != nil {
			return xdrkit.RebaseIssues("/"+strconv.Itoa(i), err)
		}
	}
	return nil
}

func decodeElems(r *xdrkit.Reader, inner AnyCodec, n int) ([]any, error) {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		e, err := inner.DecodeFrom(r)
		if err != nil {
			return nil, xdrkit.RebaseIssues("/"+strconv.Itoa(i), err)
		}
		out = append(out, e)
	}
	return out, nil
}

func elemsJSON(inner AnyCodec, v []any) (any, error) {
	out := make([]any, 0, len(v))
	for i, e := range v {
		je, err := inner.JSONValue(e)
		if err != nil {
			return nil, xdrkit.RebaseIssues("/"+strconv.Itoa(i), err)
		}
		out = append(out, je)
	}
	return out, nil
}

func elemsFromJSON(inner AnyCodec, j any) ([]any, error) {
	arr, ok := xdrkit.AsArray(j)
	if !ok {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected array", Offset: -1}}
	}
	out := make([]any, 0, len(arr))
	for i, je := range arr {
		e, err := inner.FromJSONValue(je)
		if err != nil {
			return nil, xdrkit.RebaseIssues("/"+strconv.Itoa(i), err)
		}
		out = append(out, e)
	}
	return out, nil
}
