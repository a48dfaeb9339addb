// Package dsl builds XDR codecs from declarative descriptions: primitive
// scalars, opaque/string/array/option container combinators, and
// struct/enum/union builders. Composition happens once at init time; the
// resulting codec values are immutable and shared freely.
//
// Typed codecs (xdrkit.Codec[T]) are erased to AnyCodec via Of so that
// builders can mix field and arm types:
//
//	var Price = dsl.Struct().
//		Field("n", dsl.Of(dsl.Int32())).
//		Field("d", dsl.Of(dsl.Int32())).
//		MustBuild()
package dsl
