package codec_test

import (
	"bytes"
	"testing"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/codec"
)

func TestAssetCode4_TrimAndPad(t *testing.T) {
	c := codec.AssetCode4()
	raw := []byte{'U', 'S', 'D', 0}

	j, err := c.JSONValue(raw)
	if err != nil || j != "USD" {
		t.Fatalf("projection must trim trailing zeros: got %v err=%v", j, err)
	}

	v, err := c.FromJSONValue("USD")
	if err != nil || !bytes.Equal(v, raw) {
		t.Fatalf("reverse projection must re-pad: got %x err=%v", v, err)
	}

	// wire form keeps the full width
	b, err := xdrkit.Marshal(c, raw)
	if err != nil || !bytes.Equal(b, raw) {
		t.Fatalf("marshal: got %x err=%v", b, err)
	}
}

func TestAssetCode12_Escaping(t *testing.T) {
	c := codec.AssetCode12()
	raw := make([]byte, 12)
	copy(raw, []byte{'A', '\\', 0x01, 'B'})

	j, err := c.JSONValue(raw)
	if err != nil || j != `A\\\x01B` {
		t.Fatalf("escaped projection: got %v err=%v", j, err)
	}
	v, err := c.FromJSONValue(`A\\\x01B`)
	if err != nil || !bytes.Equal(v, raw) {
		t.Fatalf("reverse projection: got %x err=%v", v, err)
	}
}

func TestAssetCode_Rejections(t *testing.T) {
	c := codec.AssetCode4()

	_, err := c.FromJSONValue("TOOLONG")
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeLengthMismatch {
		t.Fatalf("expected length_mismatch, got %v", err)
	}

	_, err = c.FromJSONValue(`bad\q`)
	iss, ok = xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}

	_, err = c.JSONValue([]byte{1, 2})
	iss, ok = xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeLengthMismatch {
		t.Fatalf("expected length_mismatch on short value, got %v", err)
	}
}
