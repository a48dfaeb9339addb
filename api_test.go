package xdrkit_test

import (
	"testing"

	xdrkit "github.com/reoring/xdrkit"
	g "github.com/reoring/xdrkit/dsl"
)

func TestMarshalUnmarshal_Roundtrip(t *testing.T) {
	c := g.Uint32()
	b, err := xdrkit.Marshal(c, uint32(0xDEADBEEF))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	v, err := xdrkit.Unmarshal(c, b)
	if err != nil || v != 0xDEADBEEF {
		t.Fatalf("unmarshal: got %x err=%v", v, err)
	}
}

func TestUnmarshal_TrailingBytes(t *testing.T) {
	_, err := xdrkit.Unmarshal(g.Uint32(), []byte{0, 0, 0, 1, 0xFF})
	if err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidValue {
		t.Fatalf("expected invalid_value, got %v", err)
	}
	if iss[0].Offset != 4 {
		t.Fatalf("expected offset 4, got %d", iss[0].Offset)
	}
}

func TestBase64_Roundtrip(t *testing.T) {
	c := g.Int32()
	s, err := xdrkit.MarshalBase64(c, int32(-1))
	if err != nil {
		t.Fatalf("marshal base64: %v", err)
	}
	if s != "/////w==" {
		t.Fatalf("unexpected base64: %q", s)
	}
	v, err := xdrkit.UnmarshalBase64(c, s)
	if err != nil || v != -1 {
		t.Fatalf("unmarshal base64: got %d err=%v", v, err)
	}

	_, err = xdrkit.UnmarshalBase64(c, "!!not base64!!")
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestJSON_Int64AsString(t *testing.T) {
	c := g.Int64()
	b, err := xdrkit.MarshalJSON(c, int64(9007199254740993))
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	if string(b) != `"9007199254740993"` {
		t.Fatalf("64-bit value must render as string: %s", b)
	}
	v, err := xdrkit.UnmarshalJSON(c, b)
	if err != nil || v != 9007199254740993 {
		t.Fatalf("unmarshal json: got %d err=%v", v, err)
	}

	_, err = xdrkit.UnmarshalJSON(c, []byte("{"))
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidFormat {
		t.Fatalf("expected invalid_format for bad JSON, got %v", err)
	}
}
