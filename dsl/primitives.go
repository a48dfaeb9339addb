package dsl

import (
	"errors"
	"math"
	"strconv"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
)

// Bool returns the XDR bool codec: a 4-byte word that must be 0 or 1.
func Bool() xdrkit.Codec[bool] { return boolCodec{} }

// Int32 returns the 32-bit signed integer codec.
func Int32() xdrkit.Codec[int32] { return int32Codec{} }

// Uint32 returns the 32-bit unsigned integer codec.
func Uint32() xdrkit.Codec[uint32] { return uint32Codec{} }

// Int64 returns the 64-bit signed integer codec. Its JSON projection is a
// base-10 string to avoid double precision loss above 2^53.
func Int64() xdrkit.Codec[int64] { return int64Codec{} }

// Uint64 returns the 64-bit unsigned integer codec. Its JSON projection is a
// base-10 string.
func Uint64() xdrkit.Codec[uint64] { return uint64Codec{} }

// Float32 returns the IEEE 754 single-precision codec.
func Float32() xdrkit.Codec[float32] { return float32Codec{} }

// Float64 returns the IEEE 754 double-precision codec.
func Float64() xdrkit.Codec[float64] { return float64Codec{} }

type boolCodec struct{}

func (boolCodec) EncodeTo(w *xdrkit.Writer, v bool) error {
	if v {
		w.PutUint32(1)
	} else {
		w.PutUint32(0)
	}
	return nil
}

func (boolCodec) DecodeFrom(r *xdrkit.Reader) (bool, error) {
	off := r.Offset()
	u, err := r.ReadUint32()
	if err != nil {
		return false, err
	}
	switch u {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidValue, Message: i18n.T(xdrkit.CodeInvalidValue, nil), Hint: "bool word must be 0 or 1", Offset: off}}
	}
}

func (boolCodec) JSONValue(v bool) (any, error) { return v, nil }

func (boolCodec) FromJSONValue(j any) (bool, error) {
	b, ok := j.(bool)
	if !ok {
		return false, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected boolean", Offset: -1}}
	}
	return b, nil
}

type int32Codec struct{}

func (int32Codec) EncodeTo(w *xdrkit.Writer, v int32) error {
	w.PutUint32(uint32(v))
	return nil
}

func (int32Codec) DecodeFrom(r *xdrkit.Reader) (int32, error) {
	u, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

func (int32Codec) JSONValue(v int32) (any, error) { return v, nil }

func (int32Codec) FromJSONValue(j any) (int32, error) {
	i, err := jsonInt(j, math.MinInt32, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}

type uint32Codec struct{}

func (uint32Codec) EncodeTo(w *xdrkit.Writer, v uint32) error {
	w.PutUint32(v)
	return nil
}

func (uint32Codec) DecodeFrom(r *xdrkit.Reader) (uint32, error) {
	return r.ReadUint32()
}

func (uint32Codec) JSONValue(v uint32) (any, error) { return v, nil }

func (uint32Codec) FromJSONValue(j any) (uint32, error) {
	i, err := jsonInt(j, 0, math.MaxUint32)
	if err != nil {
		return 0, err
	}
	return uint32(i), nil
}

type int64Codec struct{}

func (int64Codec) EncodeTo(w *xdrkit.Writer, v int64) error {
	w.PutUint64(uint64(v))
	return nil
}

func (int64Codec) DecodeFrom(r *xdrkit.Reader) (int64, error) {
	u, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

func (int64Codec) JSONValue(v int64) (any, error) {
	return strconv.FormatInt(v, 10), nil
}

func (int64Codec) FromJSONValue(j any) (int64, error) {
	s, err := jsonDecimalText(j)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseInt(s, 10, 64)
	if perr != nil {
		return 0, parseIntIssue(perr)
	}
	return v, nil
}

type uint64Codec struct{}

func (uint64Codec) EncodeTo(w *xdrkit.Writer, v uint64) error {
	w.PutUint64(v)
	return nil
}

func (uint64Codec) DecodeFrom(r *xdrkit.Reader) (uint64, error) {
	return r.ReadUint64()
}

func (uint64Codec) JSONValue(v uint64) (any, error) {
	return strconv.FormatUint(v, 10), nil
}

func (uint64Codec) FromJSONValue(j any) (uint64, error) {
	s, err := jsonDecimalText(j)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseUint(s, 10, 64)
	if perr != nil {
		return 0, parseIntIssue(perr)
	}
	return v, nil
}

type float32Codec struct{}

func (float32Codec) EncodeTo(w *xdrkit.Writer, v float32) error {
	w.PutUint32(math.Float32bits(v))
	return nil
}

func (float32Codec) DecodeFrom(r *xdrkit.Reader) (float32, error) {
	u, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (float32Codec) JSONValue(v float32) (any, error) { return float64(v), nil }

func (float32Codec) FromJSONValue(j any) (float32, error) {
	f, err := jsonFloat(j)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

type float64Codec struct{}

func (float64Codec) EncodeTo(w *xdrkit.Writer, v float64) error {
	w.PutUint64(math.Float64bits(v))
	return nil
}

func (float64Codec) DecodeFrom(r *xdrkit.Reader) (float64, error) {
	u, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

func (float64Codec) JSONValue(v float64) (any, error) { return v, nil }

func (float64Codec) FromJSONValue(j any) (float64, error) {
	return jsonFloat(j)
}

// ---- helpers ----

// jsonInt parses a 32-bit JSON number within [min, max].
func jsonInt(j any, min, max int64) (int64, error) {
	num, ok := xdrkit.AsNumber(j)
	if !ok {
		return 0, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected number", Offset: -1}}
	}
	i, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return 0, parseIntIssue(err)
	}
	if i < min || i > max {
		return 0, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeRangeError, Message: i18n.T(xdrkit.CodeRangeError, nil), Offset: -1}}
	}
	return i, nil
}

// jsonDecimalText extracts the textual form of a 64-bit JSON integer, which
// renders as a base-10 string. Bare JSON numbers are rejected: doubles lose
// precision above 2^53 and the reference mapping only emits strings.
func jsonDecimalText(j any) (string, error) {
	if s, ok := xdrkit.AsString(j); ok {
		return s, nil
	}
	return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected decimal string", Offset: -1}}
}

func jsonFloat(j any) (float64, error) {
	num, ok := xdrkit.AsNumber(j)
	if !ok {
		return 0, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected number", Offset: -1}}
	}
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return 0, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidFormat, Message: i18n.T(xdrkit.CodeInvalidFormat, nil), Cause: err, Offset: -1}}
	}
	return f, nil
}

func parseIntIssue(err error) xdrkit.Issues {
	code := xdrkit.CodeInvalidFormat
	if errors.Is(err, strconv.ErrRange) {
		code = xdrkit.CodeRangeError
	}
	return xdrkit.Issues{{Path: "/", Code: code, Message: i18n.T(code, nil), Cause: err, Offset: -1}}
}
