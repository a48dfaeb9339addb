// Package strkey implements the checksummed base-32 address text format:
// a version byte, the payload, and a 16-bit checksum, base-32 encoded with
// no padding. Decoding enforces the full validation ladder, ending with an
// exact re-encode comparison so every accepted string round-trips
// byte-identically.
package strkey

import (
	"encoding/base32"
	"encoding/binary"
	"strings"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
)

// Version is the address-type byte carried in the first base-32 character
// pair. The values are chosen so the encoded string starts with a fixed
// letter per type.
type Version byte

const (
	VersionPublicKey        Version = 6 << 3  // 'G'
	VersionMuxedAccount     Version = 12 << 3 // 'M'
	VersionSeed             Version = 18 << 3 // 'S'
	VersionPreAuthTx        Version = 19 << 3 // 'T'
	VersionHashX            Version = 23 << 3 // 'X'
	VersionSignedPayload    Version = 15 << 3 // 'P'
	VersionContract         Version = 2 << 3  // 'C'
	VersionLiquidityPool    Version = 11 << 3 // 'L'
	VersionClaimableBalance Version = 1 << 3  // 'B'
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// payloadLen maps each known version to its required payload length.
// VersionSignedPayload is variable-length and validated structurally.
var payloadLen = map[Version]int{
	VersionPublicKey:        32,
	VersionMuxedAccount:     40,
	VersionSeed:             32,
	VersionPreAuthTx:        32,
	VersionHashX:            32,
	VersionSignedPayload:    -1,
	VersionContract:         32,
	VersionLiquidityPool:    32,
	VersionClaimableBalance: 33,
}

func (v Version) String() string {
	switch v {
	case VersionPublicKey:
		return "public_key"
	case VersionMuxedAccount:
		return "muxed_account"
	case VersionSeed:
		return "seed"
	case VersionPreAuthTx:
		return "pre_auth_tx"
	case VersionHashX:
		return "hash_x"
	case VersionSignedPayload:
		return "signed_payload"
	case VersionContract:
		return "contract"
	case VersionLiquidityPool:
		return "liquidity_pool"
	case VersionClaimableBalance:
		return "claimable_balance"
	}
	return "unknown"
}

// Encode produces the checksummed base-32 string for a (version, payload)
// pair. It does not validate the payload shape; Decode does.
func Encode(v Version, payload []byte) string {
	raw := make([]byte, 0, 1+len(payload)+2)
	raw = append(raw, byte(v))
	raw = append(raw, payload...)
	raw = binary.LittleEndian.AppendUint16(raw, checksum(raw))
	return encoding.EncodeToString(raw)
}

// Decode validates s and returns its version byte and payload. Each failure
// mode is distinct: checksum mismatches report invalid_checksum, everything
// else invalid_encoded_string.
func Decode(s string) (Version, []byte, error) {
	if strings.ContainsRune(s, '=') {
		return 0, nil, badString("padding characters are not allowed")
	}
	raw, err := encoding.DecodeString(s)
	if err != nil || len(raw) < 3 {
		return 0, nil, badString("not a valid base-32 address")
	}
	body, tail := raw[:len(raw)-2], raw[len(raw)-2:]
	if checksum(body) != binary.LittleEndian.Uint16(tail) {
		return 0, nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidChecksum, Message: i18n.T(xdrkit.CodeInvalidChecksum, nil), Offset: -1}}
	}
	v := Version(body[0])
	want, known := payloadLen[v]
	if !known {
		return 0, nil, badString("unknown version byte")
	}
	payload := body[1:]
	if want >= 0 && len(payload) != want {
		return 0, nil, badString("wrong payload length for version")
	}
	if v == VersionSignedPayload {
		if len(payload) < 36 {
			return 0, nil, badString("signed payload too short")
		}
		inner := binary.BigEndian.Uint32(payload[32:36])
		if inner < 1 || inner > 64 {
			return 0, nil, badString("signed payload inner length out of range")
		}
		padded := int(inner) + (4-int(inner)%4)%4
		if len(payload) != 36+padded {
			return 0, nil, badString("signed payload length mismatch")
		}
	}
	if v == VersionClaimableBalance && payload[0] != 0x00 {
		return 0, nil, badString("unknown claimable balance subtype")
	}
	if Encode(v, payload) != s {
		return 0, nil, badString("non-canonical encoding")
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return v, out, nil
}

// DecodeExpect decodes s and additionally requires its version to equal
// want.
func DecodeExpect(s string, want Version) ([]byte, error) {
	v, payload, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if v != want {
		return nil, badString("expected " + want.String() + " address, got " + v.String())
	}
	return payload, nil
}

// PeekVersion extracts the version byte from the first two base-32
// characters without validating the rest of the string. Use it for fast
// address-type dispatch; a successful peek does not imply the string
// decodes.
func PeekVersion(s string) (Version, error) {
	if len(s) < 2 {
		return 0, badString("address too short")
	}
	hi := strings.IndexByte(alphabet, s[0])
	lo := strings.IndexByte(alphabet, s[1])
	if hi < 0 || lo < 0 {
		return 0, badString("not a valid base-32 address")
	}
	v := Version(hi<<3 | lo>>2)
	if _, known := payloadLen[v]; !known {
		return 0, badString("unknown version byte")
	}
	return v, nil
}

// IsValid reports whether s decodes successfully.
func IsValid(s string) bool {
	_, _, err := Decode(s)
	return err == nil
}

func badString(hint string) error {
	return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidEncodedString, Message: i18n.T(xdrkit.CodeInvalidEncodedString, nil), Hint: hint, Offset: -1}}
}
