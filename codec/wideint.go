// Package codec provides protocol semantic wrappers: codecs whose wire
// behavior comes from an underlying struct or union definition but whose
// JSON projection follows the reference mapping (checksummed address
// strings, decimal wide integers, trimmed asset codes).
package codec

import (
	"math/big"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/dsl"
	"github.com/reoring/xdrkit/i18n"
)

// Int128 returns the codec for a signed 128-bit integer held as two 64-bit
// limbs (field "hi" signed, "lo" unsigned). JSON is a base-10 string;
// decoding also accepts the per-limb object form.
func Int128() xdrkit.Codec[map[string]any] {
	return wideInt(128, true, []limb{{"hi", "hi", true}, {"lo", "lo", false}})
}

// Uint128 returns the codec for an unsigned 128-bit integer (limbs "hi",
// "lo", both unsigned).
func Uint128() xdrkit.Codec[map[string]any] {
	return wideInt(128, false, []limb{{"hi", "hi", false}, {"lo", "lo", false}})
}

// Int256 returns the codec for a signed 256-bit integer held as four
// limbs, most significant first (field "hiHi" signed, the rest unsigned).
func Int256() xdrkit.Codec[map[string]any] {
	return wideInt(256, true, []limb{{"hiHi", "hi_hi", true}, {"hiLo", "hi_lo", false}, {"loHi", "lo_hi", false}, {"loLo", "lo_lo", false}})
}

// Uint256 returns the codec for an unsigned 256-bit integer (four unsigned
// limbs, most significant first).
func Uint256() xdrkit.Codec[map[string]any] {
	return wideInt(256, false, []limb{{"hiHi", "hi_hi", false}, {"hiLo", "hi_lo", false}, {"loHi", "lo_hi", false}, {"loLo", "lo_lo", false}})
}

type limb struct {
	name    string
	jsonKey string
	signed  bool
}

func wideInt(bits int, signed bool, limbs []limb) xdrkit.Codec[map[string]any] {
	b := dsl.Struct()
	for _, l := range limbs {
		if l.signed {
			b = b.FieldAs(l.name, l.jsonKey, dsl.Of(dsl.Int64()))
		} else {
			b = b.FieldAs(l.name, l.jsonKey, dsl.Of(dsl.Uint64()))
		}
	}
	inner := b.MustBuild()
	return dsl.JSONAs(inner,
		func(v map[string]any) (any, error) {
			n, err := limbsToBig(v, limbs, signed, bits)
			if err != nil {
				return nil, err
			}
			return n.String(), nil
		},
		func(j any) (map[string]any, error) {
			if s, ok := xdrkit.AsString(j); ok {
				n, ok := new(big.Int).SetString(s, 10)
				if !ok {
					return nil, wideIssue(xdrkit.CodeInvalidFormat, "not a decimal integer")
				}
				return bigToLimbs(n, limbs, signed, bits)
			}
			if _, ok := xdrkit.AsObject(j); ok {
				return inner.FromJSONValue(j)
			}
			return nil, wideIssue(xdrkit.CodeInvalidType, "expected decimal string or limb object")
		})
}

// limbsToBig reassembles the arbitrary-precision value from 64-bit limbs,
// most significant first, applying two's complement at the width boundary
// for signed values.
func limbsToBig(v map[string]any, limbs []limb, signed bool, bits int) (*big.Int, error) {
	u := new(big.Int)
	for _, l := range limbs {
		var word uint64
		switch t := v[l.name].(type) {
		case int64:
			word = uint64(t)
		case uint64:
			word = t
		default:
			return nil, wideIssue(xdrkit.CodeInvalidType, "limb '"+l.name+"' is not a 64-bit integer")
		}
		u.Lsh(u, 64)
		u.Or(u, new(big.Int).SetUint64(word))
	}
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if u.Cmp(half) >= 0 {
			u.Sub(u, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
		}
	}
	return u, nil
}

// bigToLimbs range-checks n for the target width and signedness, then
// splits its two's-complement representation into limbs.
func bigToLimbs(n *big.Int, limbs []limb, signed bool, bits int) (map[string]any, error) {
	full := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		min := new(big.Int).Neg(half)
		max := new(big.Int).Sub(half, big.NewInt(1))
		if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
			return nil, wideIssue(xdrkit.CodeRangeError, "value outside signed range")
		}
	} else {
		if n.Sign() < 0 || n.Cmp(full) >= 0 {
			return nil, wideIssue(xdrkit.CodeRangeError, "value outside unsigned range")
		}
	}
	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, full)
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	out := make(map[string]any, len(limbs))
	for i := len(limbs) - 1; i >= 0; i-- {
		word := new(big.Int).And(u, mask).Uint64()
		if limbs[i].signed {
			out[limbs[i].name] = int64(word)
		} else {
			out[limbs[i].name] = word
		}
		u.Rsh(u, 64)
	}
	return out, nil
}

func wideIssue(code string, hint string) error {
	return xdrkit.Issues{{Path: "/", Code: code, Message: i18n.T(code, nil), Hint: hint, Offset: -1}}
}
