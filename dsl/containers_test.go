package dsl_test

import (
	"bytes"
	"testing"

	xdrkit "github.com/reoring/xdrkit"
	g "github.com/reoring/xdrkit/dsl"
)

func TestFixedOpaque_Padding(t *testing.T) {
	c := g.FixedOpaque(3)
	b, err := xdrkit.Marshal(c, []byte{0xAA, 0xBB, 0xCC})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(b, []byte{0xAA, 0xBB, 0xCC, 0x00}) {
		t.Fatalf("expected one zero pad byte: %x", b)
	}

	// decode tolerates nonzero padding
	v, err := xdrkit.Unmarshal(c, []byte{0xAA, 0xBB, 0xCC, 0xFF})
	if err != nil || !bytes.Equal(v, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("unmarshal: got %x err=%v", v, err)
	}

	_, err = xdrkit.Marshal(c, []byte{0xAA})
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeLengthMismatch {
		t.Fatalf("expected length_mismatch, got %v", err)
	}

	j, err := c.JSONValue([]byte{0x00, 0x0F, 0xA0})
	if err != nil || j != "000fa0" {
		t.Fatalf("hex projection: got %v err=%v", j, err)
	}
}

func TestVarOpaque_Bounds(t *testing.T) {
	c := g.VarOpaque(4)
	b, err := xdrkit.Marshal(c, []byte{1, 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(b, []byte{0, 0, 0, 2, 1, 2, 0, 0}) {
		t.Fatalf("unexpected layout: %x", b)
	}

	_, err = xdrkit.Marshal(c, []byte{1, 2, 3, 4, 5})
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeTooLong {
		t.Fatalf("expected too_long on encode, got %v", err)
	}

	// declared length over max fails before reading the payload
	_, err = xdrkit.Unmarshal(c, []byte{0, 0, 0, 9})
	iss, ok = xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeTooLong {
		t.Fatalf("expected too_long on decode, got %v", err)
	}
}

func TestString_ByteEscaping(t *testing.T) {
	c := g.String(g.Unbounded)

	// é is two UTF-8 bytes, each escaped individually
	j, err := c.JSONValue("héllo")
	if err != nil || j != `h\xc3\xa9llo` {
		t.Fatalf("projection: got %v err=%v", j, err)
	}
	v, err := c.FromJSONValue(`h\xc3\xa9llo`)
	if err != nil || v != "héllo" {
		t.Fatalf("reverse projection: got %q err=%v", v, err)
	}

	_, err = c.FromJSONValue(`bad\q`)
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestString_ByteLengthBound(t *testing.T) {
	c := g.String(5)
	// five characters but six UTF-8 bytes
	_, err := xdrkit.Marshal(c, "héllo")
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeTooLong {
		t.Fatalf("expected too_long, got %v", err)
	}
	if _, err := xdrkit.Marshal(c, "hello"); err != nil {
		t.Fatalf("five bytes must fit: %v", err)
	}
}

func TestOption_Layout(t *testing.T) {
	c := g.Option(g.Of(g.Int32()))

	b, err := xdrkit.Marshal(c, nil)
	if err != nil || !bytes.Equal(b, []byte{0, 0, 0, 0}) {
		t.Fatalf("absent: got %x err=%v", b, err)
	}

	b, err = xdrkit.Marshal[any](c, int32(7))
	if err != nil || !bytes.Equal(b, []byte{0, 0, 0, 1, 0, 0, 0, 7}) {
		t.Fatalf("present: got %x err=%v", b, err)
	}

	v, err := xdrkit.Unmarshal(c, b)
	if err != nil || v != int32(7) {
		t.Fatalf("unmarshal present: got %v err=%v", v, err)
	}

	_, err = xdrkit.Unmarshal(c, []byte{0, 0, 0, 2, 0, 0, 0, 7})
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidValue {
		t.Fatalf("expected invalid_value for presence word, got %v", err)
	}

	j, err := c.JSONValue(nil)
	if err != nil || j != nil {
		t.Fatalf("absent projects to null: got %v err=%v", j, err)
	}
}

func TestArrays(t *testing.T) {
	fixed := g.FixedArray(2, g.Of(g.Uint32()))
	b, err := xdrkit.Marshal(fixed, []any{uint32(1), uint32(2)})
	if err != nil || !bytes.Equal(b, []byte{0, 0, 0, 1, 0, 0, 0, 2}) {
		t.Fatalf("fixed: got %x err=%v", b, err)
	}
	_, err = xdrkit.Marshal(fixed, []any{uint32(1)})
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeLengthMismatch {
		t.Fatalf("expected length_mismatch, got %v", err)
	}

	varr := g.VarArray(3, g.Of(g.Uint32()))
	b, err = xdrkit.Marshal(varr, []any{uint32(9)})
	if err != nil || !bytes.Equal(b, []byte{0, 0, 0, 1, 0, 0, 0, 9}) {
		t.Fatalf("var: got %x err=%v", b, err)
	}
	v, err := xdrkit.Unmarshal(varr, b)
	if err != nil || len(v) != 1 || v[0] != uint32(9) {
		t.Fatalf("var unmarshal: got %v err=%v", v, err)
	}

	// element failures carry the index in their path
	_, err = xdrkit.Unmarshal(varr, []byte{0, 0, 0, 2, 0, 0, 0, 9})
	iss, ok = xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeTruncated || iss[0].Path != "/1" {
		t.Fatalf("expected truncated at /1, got %v", err)
	}
}
