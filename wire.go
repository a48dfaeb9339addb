package xdrkit

import (
	"encoding/binary"

	"github.com/reoring/xdrkit/i18n"
)

// Reader is a cursor over an XDR byte buffer. Each decode call allocates its
// own Reader; readers are never shared between concurrent decodes.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a cursor positioned at the start of b. The reader aliases
// b and never mutates it.
func NewReader(b []byte) *Reader { return &Reader{buf: b} }

// Offset reports the current cursor position in bytes.
func (r *Reader) Offset() int64 { return int64(r.off) }

// Remaining reports how many bytes are left to consume.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// ReadBytes consumes exactly n bytes, failing with a truncated issue when
// fewer remain. The returned slice aliases the underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, Issues{{Path: "/", Code: CodeTruncated, Message: i18n.T(CodeTruncated, nil), Offset: r.Offset()}}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadUint32 consumes a 4-byte big-endian word.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 consumes an 8-byte big-endian word.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// SkipPadding consumes the zero-padding that follows n data bytes. Padding
// byte values are not validated; XDR decoding is permissive here while
// encoding always emits canonical zero bytes.
func (r *Reader) SkipPadding(n int) error {
	_, err := r.ReadBytes(paddingOf(n))
	return err
}

// Writer accumulates XDR bytes. Each encode call allocates its own Writer.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// PutBytes appends b verbatim.
func (w *Writer) PutBytes(b []byte) { w.buf = append(w.buf, b...) }

// PutUint32 appends a 4-byte big-endian word.
func (w *Writer) PutUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// PutUint64 appends an 8-byte big-endian word.
func (w *Writer) PutUint64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// PutPadding appends the zero bytes that align n data bytes to the next
// 4-byte boundary.
func (w *Writer) PutPadding(n int) {
	for i := 0; i < paddingOf(n); i++ {
		w.buf = append(w.buf, 0)
	}
}

// paddingOf returns how many pad bytes follow n data bytes.
func paddingOf(n int) int { return (4 - n%4) % 4 }
