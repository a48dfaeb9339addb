package xdrkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Binary encode/decode failures.
	CodeTruncated           = "truncated"            // decode needs more bytes than remain
	CodeLengthMismatch      = "length_mismatch"      // fixed-size container got wrong-size input
	CodeTooLong             = "too_long"             // variable-size container over its declared bound
	CodeUnknownDiscriminant = "unknown_discriminant" // enum/union saw a value with no matching arm
	CodeInvalidValue        = "invalid_value"        // e.g. a boolean word other than 0/1
	// JSON projection failures.
	CodeInvalidType   = "invalid_type"   // JSON value of the wrong kind for the codec
	CodeInvalidFormat = "invalid_format" // malformed hex, escape sequence, or decimal string
	CodeRangeError    = "range_error"    // integer outside the representable range
	// Strkey failures.
	CodeInvalidEncodedString = "invalid_encoded_string" // malformed base-32, wrong length, unknown version
	CodeInvalidChecksum      = "invalid_checksum"       // checksum mismatch, kept distinct for diagnostics
	// Programming errors that should be unreachable given closed definitions.
	CodeInternal = "internal"
)

// Issue represents a single codec failure.
type Issue struct {
	Path    string // JSON Pointer into the value being (de)serialized (for example: /operations/2/amount).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected sizes, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset of the read cursor when a binary decode failed (-1 when not applicable).
}

// Issues is a collection of codec failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. truncated at /operations/2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// RebaseIssues prefixes every issue path in err with base so that failures
// reported by an inner codec surface under the enclosing field or element.
// Non-Issues errors are wrapped as a single internal issue at base.
func RebaseIssues(base string, err error) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeInternal, Message: err.Error(), Cause: err, Offset: -1}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = append(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Offset: it.Offset})
	}
	return out
}
