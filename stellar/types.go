// Package stellar defines ledger protocol types assembled from the codec
// combinators: assets, memos, prices, time bounds, and sequence numbers.
// Each definition is a package-level codec built once at init.
package stellar

import (
	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/codec"
	"github.com/reoring/xdrkit/dsl"
)

// AssetType discriminates native lumens from issued assets by code width.
var AssetType = dsl.Enum().
	Value("ASSET_TYPE_NATIVE", 0).
	Value("ASSET_TYPE_CREDIT_ALPHANUM4", 1).
	Value("ASSET_TYPE_CREDIT_ALPHANUM12", 2).
	MustBuild()

// AlphaNum4 is an issued asset with a code of up to 4 bytes.
var AlphaNum4 = dsl.Struct().
	FieldAs("assetCode", "asset_code", dsl.Of(codec.AssetCode4())).
	Field("issuer", dsl.Of(codec.AccountID())).
	MustBuild()

// AlphaNum12 is an issued asset with a code of 5 to 12 bytes.
var AlphaNum12 = dsl.Struct().
	FieldAs("assetCode", "asset_code", dsl.Of(codec.AssetCode12())).
	Field("issuer", dsl.Of(codec.AccountID())).
	MustBuild()

// Asset is the union over asset types. Native assets are void; issued
// assets carry the code-and-issuer struct for their width.
var Asset = dsl.Union(AssetType).
	Void("ASSET_TYPE_NATIVE").
	Arm(dsl.Of(AlphaNum4), "ASSET_TYPE_CREDIT_ALPHANUM4").
	Arm(dsl.Of(AlphaNum12), "ASSET_TYPE_CREDIT_ALPHANUM12").
	MustBuild()

// MemoType discriminates the memo union.
var MemoType = dsl.Enum().
	Value("MEMO_NONE", 0).
	Value("MEMO_TEXT", 1).
	Value("MEMO_ID", 2).
	Value("MEMO_HASH", 3).
	Value("MEMO_RETURN", 4).
	MustBuild()

// Memo is the transaction memo union: empty, up to 28 bytes of text, a
// 64-bit ID, or a 32-byte hash.
var Memo = dsl.Union(MemoType).
	Void("MEMO_NONE").
	Arm(dsl.Of(dsl.String(28)), "MEMO_TEXT").
	Arm(dsl.Of(dsl.Uint64()), "MEMO_ID").
	Arm(dsl.Of(dsl.FixedOpaque(32)), "MEMO_HASH", "MEMO_RETURN").
	MustBuild()

// Price is a rational price, numerator over denominator.
var Price = dsl.Struct().
	Field("n", dsl.Of(dsl.Int32())).
	Field("d", dsl.Of(dsl.Int32())).
	MustBuild()

// TimeBounds is the validity window of a transaction, in seconds since
// epoch. A max of zero means no upper bound.
var TimeBounds = dsl.Struct().
	FieldAs("minTime", "min_time", dsl.Of(dsl.Uint64())).
	FieldAs("maxTime", "max_time", dsl.Of(dsl.Uint64())).
	MustBuild()

// LedgerBounds is the ledger-number validity window of a transaction. A
// max of zero means no upper bound.
var LedgerBounds = dsl.Struct().
	FieldAs("minLedger", "min_ledger", dsl.Of(dsl.Uint32())).
	FieldAs("maxLedger", "max_ledger", dsl.Of(dsl.Uint32())).
	MustBuild()

// SequenceNumber is an account sequence number.
var SequenceNumber = dsl.Int64()

// AccountID is the single-key account identifier.
var AccountID = codec.AccountID()

// MuxedAccount is an account identifier that may carry a multiplexing ID.
var MuxedAccount = codec.MuxedAccount()

// Wide integer amounts.
var (
	Int128  = codec.Int128()
	Uint128 = codec.Uint128()
	Int256  = codec.Int256()
	Uint256 = codec.Uint256()
)

var _ xdrkit.Codec[dsl.UnionVal] = Asset
