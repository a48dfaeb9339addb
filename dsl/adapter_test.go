package dsl_test

import (
	"strconv"
	"testing"

	xdrkit "github.com/reoring/xdrkit"
	g "github.com/reoring/xdrkit/dsl"
)

func TestOf_TypeMismatch(t *testing.T) {
	c := g.Of(g.Int32())
	w := xdrkit.NewWriter()
	err := c.EncodeTo(w, "not an int32")
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}

	if _, ok := c.Orig().(xdrkit.Codec[int32]); !ok {
		t.Fatalf("Orig lost the underlying codec")
	}
}

func TestJSONAs_OverridesProjectionOnly(t *testing.T) {
	// render a uint32 as a decimal string without touching the wire form
	c := g.JSONAs(g.Uint32(),
		func(v uint32) (any, error) { return strconv.FormatUint(uint64(v), 10), nil },
		func(j any) (uint32, error) {
			s, _ := xdrkit.AsString(j)
			u, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return 0, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidFormat, Message: err.Error(), Offset: -1}}
			}
			return uint32(u), nil
		})

	b, err := xdrkit.Marshal(c, uint32(5))
	if err != nil || string(b) != "\x00\x00\x00\x05" {
		t.Fatalf("wire form changed: %x err=%v", b, err)
	}
	j, err := c.JSONValue(5)
	if err != nil || j != "5" {
		t.Fatalf("projection: got %v err=%v", j, err)
	}
	v, err := c.FromJSONValue("5")
	if err != nil || v != 5 {
		t.Fatalf("reverse projection: got %v err=%v", v, err)
	}
}
