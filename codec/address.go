package codec

import (
	"encoding/binary"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/dsl"
	"github.com/reoring/xdrkit/i18n"
	"github.com/reoring/xdrkit/strkey"
)

const (
	armEd25519      = "PUBLIC_KEY_TYPE_ED25519"
	armKeyEd25519   = "KEY_TYPE_ED25519"
	armMuxedEd25519 = "KEY_TYPE_MUXED_ED25519"
)

var publicKeyType = dsl.Enum().
	Value(armEd25519, 0).
	MustBuild()

var publicKeyUnion = dsl.Union(publicKeyType).
	Arm(dsl.Of(dsl.FixedOpaque(32)), armEd25519).
	MustBuild()

var cryptoKeyType = dsl.Enum().
	Value(armKeyEd25519, 0).
	Value(armMuxedEd25519, 0x100).
	MustBuild()

var med25519 = dsl.Struct().
	Field("id", dsl.Of(dsl.Uint64())).
	Field("ed25519", dsl.Of(dsl.FixedOpaque(32))).
	MustBuild()

var muxedUnion = dsl.Union(cryptoKeyType).
	Arm(dsl.Of(dsl.FixedOpaque(32)), armKeyEd25519).
	Arm(dsl.Of(med25519), armMuxedEd25519).
	MustBuild()

// AccountID returns the codec for a single-ed25519-key account identifier.
// The wire form is the public-key union; the JSON projection is the
// checksummed G... address string.
func AccountID() xdrkit.Codec[dsl.UnionVal] {
	return dsl.JSONAs(publicKeyUnion,
		func(v dsl.UnionVal) (any, error) {
			key, ok := v.Value.([]byte)
			if !ok {
				return nil, addrIssue(xdrkit.CodeInternal, "account id payload is not bytes")
			}
			return strkey.Encode(strkey.VersionPublicKey, key), nil
		},
		func(j any) (dsl.UnionVal, error) {
			s, ok := xdrkit.AsString(j)
			if !ok {
				return dsl.UnionVal{}, addrIssue(xdrkit.CodeInvalidType, "expected address string")
			}
			key, err := strkey.DecodeExpect(s, strkey.VersionPublicKey)
			if err != nil {
				return dsl.UnionVal{}, err
			}
			return dsl.UnionVal{Arm: armEd25519, Value: key}, nil
		})
}

// MuxedAccount returns the codec for an account that may carry a 64-bit
// multiplexing ID. A plain key projects as the G... form; a multiplexed
// key projects as the M... form whose 40-byte payload is the 32-byte key
// followed by the big-endian ID.
func MuxedAccount() xdrkit.Codec[dsl.UnionVal] {
	return dsl.JSONAs(muxedUnion, muxedToJSON, muxedFromJSON)
}

func muxedToJSON(v dsl.UnionVal) (any, error) {
	switch v.Arm {
	case armKeyEd25519:
		key, ok := v.Value.([]byte)
		if !ok {
			return nil, addrIssue(xdrkit.CodeInternal, "muxed account payload is not bytes")
		}
		return strkey.Encode(strkey.VersionPublicKey, key), nil
	case armMuxedEd25519:
		m, ok := v.Value.(map[string]any)
		if !ok {
			return nil, addrIssue(xdrkit.CodeInternal, "muxed account payload is not a struct")
		}
		key, kok := m["ed25519"].([]byte)
		id, iok := m["id"].(uint64)
		if !kok || !iok || len(key) != 32 {
			return nil, addrIssue(xdrkit.CodeInternal, "malformed muxed account limbs")
		}
		payload := make([]byte, 0, 40)
		payload = append(payload, key...)
		payload = binary.BigEndian.AppendUint64(payload, id)
		return strkey.Encode(strkey.VersionMuxedAccount, payload), nil
	}
	return nil, addrIssue(xdrkit.CodeInternal, "no union arm for '"+v.Arm+"'")
}

func muxedFromJSON(j any) (dsl.UnionVal, error) {
	s, ok := xdrkit.AsString(j)
	if !ok {
		return dsl.UnionVal{}, addrIssue(xdrkit.CodeInvalidType, "expected address string")
	}
	v, payload, err := strkey.Decode(s)
	if err != nil {
		return dsl.UnionVal{}, err
	}
	switch v {
	case strkey.VersionPublicKey:
		return dsl.UnionVal{Arm: armKeyEd25519, Value: payload}, nil
	case strkey.VersionMuxedAccount:
		key := make([]byte, 32)
		copy(key, payload[:32])
		id := binary.BigEndian.Uint64(payload[32:40])
		return dsl.UnionVal{Arm: armMuxedEd25519, Value: map[string]any{"id": id, "ed25519": key}}, nil
	}
	return dsl.UnionVal{}, addrIssue(xdrkit.CodeInvalidEncodedString, "expected public_key or muxed_account address, got "+v.String())
}

func addrIssue(code string, hint string) error {
	return xdrkit.Issues{{Path: "/", Code: code, Message: i18n.T(code, nil), Hint: hint, Offset: -1}}
}
