package dsl

import (
	"encoding/hex"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
	"github.com/reoring/xdrkit/internal/escape"
)

// Unbounded marks a variable-length container without a declared maximum.
const Unbounded = -1

// FixedOpaque returns the codec for exactly n opaque bytes, zero-padded to
// the next 4-byte boundary. Decode discards padding bytes without validating
// their value.
func FixedOpaque(n int) xdrkit.Codec[[]byte] { return fixedOpaqueCodec{n: n} }

// VarOpaque returns the codec for length-prefixed opaque bytes. max bounds
// the byte length on both encode and decode; pass Unbounded for no bound.
func VarOpaque(max int) xdrkit.Codec[[]byte] { return varOpaqueCodec{max: max} }

// String returns the codec for length-prefixed UTF-8 text. max bounds the
// byte length of the UTF-8 encoding, not the character count; pass Unbounded
// for no bound.
func String(max int) xdrkit.Codec[string] { return stringCodec{max: max} }

type fixedOpaqueCodec struct{ n int }

func (c fixedOpaqueCodec) EncodeTo(w *xdrkit.Writer, v []byte) error {
	if len(v) != c.n {
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeLengthMismatch, Message: i18n.T(xdrkit.CodeLengthMismatch, nil), Offset: -1}}
	}
	w.PutBytes(v)
	w.PutPadding(c.n)
	return nil
}

func (c fixedOpaqueCodec) DecodeFrom(r *xdrkit.Reader) ([]byte, error) {
	b, err := r.ReadBytes(c.n)
	if err != nil {
		return nil, err
	}
	if err := r.SkipPadding(c.n); err != nil {
		return nil, err
	}
	out := make([]byte, c.n)
	copy(out, b)
	return out, nil
}

func (c fixedOpaqueCodec) JSONValue(v []byte) (any, error) {
	if len(v) != c.n {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeLengthMismatch, Message: i18n.T(xdrkit.CodeLengthMismatch, nil), Offset: -1}}
	}
	return hex.EncodeToString(v), nil
}

func (c fixedOpaqueCodec) FromJSONValue(j any) ([]byte, error) {
	b, err := hexBytes(j)
	if err != nil {
		return nil, err
	}
	if len(b) != c.n {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeLengthMismatch, Message: i18n.T(xdrkit.CodeLengthMismatch, nil), Offset: -1}}
	}
	return b, nil
}

type varOpaqueCodec struct{ max int }

func (c varOpaqueCodec) EncodeTo(w *xdrkit.Writer, v []byte) error {
	if c.max >= 0 && len(v) > c.max {
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	w.PutUint32(uint32(len(v)))
	w.PutBytes(v)
	w.PutPadding(len(v))
	return nil
}

func (c varOpaqueCodec) DecodeFrom(r *xdrkit.Reader) ([]byte, error) {
	off := r.Offset()
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if c.max >= 0 && n > uint32(c.max) {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: off}}
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	if err := r.SkipPadding(int(n)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (c varOpaqueCodec) JSONValue(v []byte) (any, error) {
	if c.max >= 0 && len(v) > c.max {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	return hex.EncodeToString(v), nil
}

func (c varOpaqueCodec) FromJSONValue(j any) ([]byte, error) {
	b, err := hexBytes(j)
	if err != nil {
		return nil, err
	}
	if c.max >= 0 && len(b) > c.max {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	return b, nil
}

type stringCodec struct{ max int }

func (c stringCodec) EncodeTo(w *xdrkit.Writer, v string) error {
	if c.max >= 0 && len(v) > c.max {
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	w.PutUint32(uint32(len(v)))
	w.PutBytes([]byte(v))
	w.PutPadding(len(v))
	return nil
}

func (c stringCodec) DecodeFrom(r *xdrkit.Reader) (string, error) {
	off := r.Offset()
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	if c.max >= 0 && n > uint32(c.max) {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: off}}
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if err := r.SkipPadding(int(n)); err != nil {
		return "", err
	}
	return string(b), nil
}

func (c stringCodec) JSONValue(v string) (any, error) {
	if c.max >= 0 && len(v) > c.max {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	return escape.Escape([]byte(v)), nil
}

func (c stringCodec) FromJSONValue(j any) (string, error) {
	s, ok := xdrkit.AsString(j)
	if !ok {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected string", Offset: -1}}
	}
	b, err := escape.Unescape(s)
	if err != nil {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidFormat, Message: i18n.T(xdrkit.CodeInvalidFormat, nil), Cause: err, Offset: -1}}
	}
	if c.max >= 0 && len(b) > c.max {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeTooLong, Message: i18n.T(xdrkit.CodeTooLong, nil), Offset: -1}}
	}
	return string(b), nil
}

// hexBytes parses the lowercase-hex JSON projection of opaque data.
func hexBytes(j any) ([]byte, error) {
	s, ok := xdrkit.AsString(j)
	if !ok {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected hex string", Offset: -1}}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidFormat, Message: i18n.T(xdrkit.CodeInvalidFormat, nil), Cause: err, Offset: -1}}
	}
	return b, nil
}
