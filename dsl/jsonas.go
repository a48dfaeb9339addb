package dsl

import (
	xdrkit "github.com/reoring/xdrkit"
)

// JSONAs wraps inner with a replacement JSON projection while keeping its
// wire behavior. Use it when the canonical JSON of a type is not the
// mechanical projection of its wire shape (checksummed address strings,
// decimal renderings of wide integers, trimmed text codes).
func JSONAs[T any](inner xdrkit.Codec[T], toJSON func(T) (any, error), fromJSON func(any) (T, error)) xdrkit.Codec[T] {
	return jsonAsCodec[T]{inner: inner, toJSON: toJSON, fromJSON: fromJSON}
}

type jsonAsCodec[T any] struct {
	inner    xdrkit.Codec[T]
	toJSON   func(T) (any, error)
	fromJSON func(any) (T, error)
}

func (c jsonAsCodec[T]) EncodeTo(w *xdrkit.Writer, v T) error {
	return c.inner.EncodeTo(w, v)
}

func (c jsonAsCodec[T]) DecodeFrom(r *xdrkit.Reader) (T, error) {
	return c.inner.DecodeFrom(r)
}

func (c jsonAsCodec[T]) JSONValue(v T) (any, error) {
	return c.toJSON(v)
}

func (c jsonAsCodec[T]) FromJSONValue(j any) (T, error) {
	return c.fromJSON(j)
}
