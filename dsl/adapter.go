package dsl

import (
	xdrkit "github.com/reoring/xdrkit"
)

// AnyCodec adapts a typed xdrkit.Codec[T] to an any-typed wrapper so that
// struct fields and union arms of differing value types can share one
// builder surface. It keeps the original codec for advanced integrations.
type AnyCodec struct {
	encodeTo   func(*xdrkit.Writer, any) error
	decodeFrom func(*xdrkit.Reader) (any, error)
	jsonValue  func(any) (any, error)
	fromJSON   func(any) (any, error)
	orig       any
}

// Of wraps a strongly typed codec as an AnyCodec.
func Of[T any](c xdrkit.Codec[T]) AnyCodec {
	return AnyCodec{
		encodeTo: func(w *xdrkit.Writer, v any) error {
			tv, ok := v.(T)
			if !ok {
				return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: "unexpected value type", Offset: -1}}
			}
			return c.EncodeTo(w, tv)
		},
		decodeFrom: func(r *xdrkit.Reader) (any, error) {
			v, err := c.DecodeFrom(r)
			if err != nil {
				return nil, err
			}
			return any(v), nil
		},
		jsonValue: func(v any) (any, error) {
			tv, ok := v.(T)
			if !ok {
				return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: "unexpected value type", Offset: -1}}
			}
			return c.JSONValue(tv)
		},
		fromJSON: func(j any) (any, error) {
			v, err := c.FromJSONValue(j)
			if err != nil {
				return nil, err
			}
			return any(v), nil
		},
		orig: c,
	}
}

// Orig returns the original underlying codec used to create this adapter.
func (ad AnyCodec) Orig() any { return ad.orig }

// AnyCodec itself satisfies xdrkit.Codec[any], so combinators like Option
// and the arrays can hold erased inner codecs directly.

func (ad AnyCodec) EncodeTo(w *xdrkit.Writer, v any) error { return ad.encodeTo(w, v) }

func (ad AnyCodec) DecodeFrom(r *xdrkit.Reader) (any, error) { return ad.decodeFrom(r) }

func (ad AnyCodec) JSONValue(v any) (any, error) { return ad.jsonValue(v) }

func (ad AnyCodec) FromJSONValue(j any) (any, error) { return ad.fromJSON(j) }
