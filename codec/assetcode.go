package codec

import (
	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/dsl"
	"github.com/reoring/xdrkit/internal/escape"
)

// AssetCode4 returns the codec for a 4-byte asset code. The wire form is
// fixed opaque; the JSON projection trims trailing zero bytes and applies
// the byte-escape scheme, and decoding re-pads to the fixed width.
func AssetCode4() xdrkit.Codec[[]byte] { return assetCode(4) }

// AssetCode12 returns the codec for a 12-byte asset code.
func AssetCode12() xdrkit.Codec[[]byte] { return assetCode(12) }

func assetCode(width int) xdrkit.Codec[[]byte] {
	inner := dsl.FixedOpaque(width)
	return dsl.JSONAs(inner,
		func(v []byte) (any, error) {
			if len(v) != width {
				return nil, wideIssue(xdrkit.CodeLengthMismatch, "asset code width mismatch")
			}
			end := len(v)
			for end > 0 && v[end-1] == 0 {
				end--
			}
			return escape.Escape(v[:end]), nil
		},
		func(j any) ([]byte, error) {
			s, ok := xdrkit.AsString(j)
			if !ok {
				return nil, wideIssue(xdrkit.CodeInvalidType, "expected asset code string")
			}
			b, err := escape.Unescape(s)
			if err != nil {
				return nil, wideIssue(xdrkit.CodeInvalidFormat, "bad escape sequence")
			}
			if len(b) > width {
				return nil, wideIssue(xdrkit.CodeLengthMismatch, "asset code too long")
			}
			out := make([]byte, width)
			copy(out, b)
			return out, nil
		})
}
