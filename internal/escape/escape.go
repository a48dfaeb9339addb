// Package escape implements the byte-oriented SEP-0051 string escaping used
// by the canonical JSON projection: text is treated as UTF-8 bytes, and each
// byte outside printable ASCII is escaped so that any byte value 0x00-0xff
// survives a round trip through a JSON string.
package escape

import (
	"errors"
	"strings"
)

const hexDigits = "0123456789abcdef"

// ErrBadEscape reports a malformed escape sequence during Unescape.
var ErrBadEscape = errors.New("escape: malformed escape sequence")

// Escape renders b using the byte escape scheme: \0, \t, \n, \r, \\ for
// their named bytes, \xHH (lowercase hex) for any other byte outside
// 0x20-0x7e, and the byte itself otherwise.
func Escape(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch c {
		case 0x00:
			sb.WriteString(`\0`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			if c >= 0x20 && c <= 0x7e {
				sb.WriteByte(c)
				continue
			}
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		}
	}
	return sb.String()
}

// Unescape reverses Escape, returning the raw bytes. Consecutive \xHH
// sequences reassemble into multi-byte UTF-8 as-is; Unescape itself does not
// validate UTF-8. Unknown escape sequences fail with ErrBadEscape.
func Unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return nil, ErrBadEscape
		}
		switch s[i] {
		case '0':
			out = append(out, 0x00)
		case 't':
			out = append(out, '\t')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case 'x':
			if i+2 >= len(s) {
				return nil, ErrBadEscape
			}
			hi, ok1 := hexVal(s[i+1])
			lo, ok2 := hexVal(s[i+2])
			if !ok1 || !ok2 {
				return nil, ErrBadEscape
			}
			out = append(out, hi<<4|lo)
			i += 2
		default:
			return nil, ErrBadEscape
		}
	}
	return out, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
