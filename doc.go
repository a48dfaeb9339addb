// Package xdrkit is an XDR (RFC 4506-style) codec framework for a
// distributed-ledger protocol, with a canonical JSON projection for every
// codec and the checksummed "strkey" address encoding layered on top.
//
// The root package defines the Codec interface, the byte cursors, the
// structured Issue error model, and generic entry points (Marshal, Unmarshal,
// MarshalBase64, MarshalJSON, ...). The dsl package builds codecs from
// declarative struct/enum/union descriptions; the codec package adds the
// protocol's semantic wrappers (addresses, wide integers, asset codes); the
// strkey package stands alone.
//
// Every operation is a pure function over its inputs: codecs never log,
// never retry, and report failures only as Issues.
package xdrkit
