package dsl_test

import (
	"math"
	"testing"

	xdrkit "github.com/reoring/xdrkit"
	g "github.com/reoring/xdrkit/dsl"
)

func TestBool_WireStrictness(t *testing.T) {
	c := g.Bool()

	b, err := xdrkit.Marshal(c, true)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "\x00\x00\x00\x01" {
		t.Fatalf("unexpected bytes: %x", b)
	}

	v, err := xdrkit.Unmarshal(c, []byte{0, 0, 0, 0})
	if err != nil || v != false {
		t.Fatalf("decode false: got %v err=%v", v, err)
	}

	// any word other than 0 or 1 must be rejected
	_, err = xdrkit.Unmarshal(c, []byte{0, 0, 0, 2})
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidValue {
		t.Fatalf("expected invalid_value, got %v", err)
	}
}

func TestInt32_Roundtrip(t *testing.T) {
	c := g.Int32()
	b, err := xdrkit.Marshal(c, int32(-2))
	if err != nil || string(b) != "\xff\xff\xff\xfe" {
		t.Fatalf("marshal: got %x err=%v", b, err)
	}
	v, err := xdrkit.Unmarshal(c, b)
	if err != nil || v != -2 {
		t.Fatalf("unmarshal: got %d err=%v", v, err)
	}

	_, err = c.FromJSONValue(float64(1 << 40))
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeRangeError {
		t.Fatalf("expected range_error, got %v", err)
	}
}

func TestInt64_JSONString(t *testing.T) {
	c := g.Int64()
	j, err := c.JSONValue(-1)
	if err != nil || j != "-1" {
		t.Fatalf("projection: got %v err=%v", j, err)
	}
	v, err := c.FromJSONValue("-9223372036854775808")
	if err != nil || v != math.MinInt64 {
		t.Fatalf("parse min: got %d err=%v", v, err)
	}

	// numbers as float64 lose precision above 2^53 and are rejected
	_, err = c.FromJSONValue(float64(1))
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidType {
		t.Fatalf("expected invalid_type for float64, got %v", err)
	}

	_, err = c.FromJSONValue("9223372036854775808")
	iss, ok = xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeRangeError {
		t.Fatalf("expected range_error on overflow, got %v", err)
	}
}

func TestInt64_RejectsJSONNumbers(t *testing.T) {
	// bare JSON numbers arrive as json.Number and are still type errors;
	// the projection is string-only in both directions
	for _, raw := range []string{"7", "7.0"} {
		_, err := xdrkit.UnmarshalJSON(g.Int64(), []byte(raw))
		iss, ok := xdrkit.AsIssues(err)
		if !ok || iss[0].Code != xdrkit.CodeInvalidType {
			t.Fatalf("%s: expected invalid_type, got %v", raw, err)
		}
		_, err = xdrkit.UnmarshalJSON(g.Uint64(), []byte(raw))
		iss, ok = xdrkit.AsIssues(err)
		if !ok || iss[0].Code != xdrkit.CodeInvalidType {
			t.Fatalf("%s: expected invalid_type for unsigned, got %v", raw, err)
		}
	}
}

func TestUint64_Roundtrip(t *testing.T) {
	c := g.Uint64()
	b, err := xdrkit.Marshal(c, uint64(math.MaxUint64))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	v, err := xdrkit.Unmarshal(c, b)
	if err != nil || v != math.MaxUint64 {
		t.Fatalf("unmarshal: got %d err=%v", v, err)
	}
	j, err := c.JSONValue(v)
	if err != nil || j != "18446744073709551615" {
		t.Fatalf("projection: got %v err=%v", j, err)
	}
	_, err = c.FromJSONValue("-1")
	if _, ok := xdrkit.AsIssues(err); !ok {
		t.Fatalf("expected issues for negative, got %v", err)
	}
}

func TestFloat64_Roundtrip(t *testing.T) {
	c := g.Float64()
	b, err := xdrkit.Marshal(c, 1.5)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "\x3f\xf8\x00\x00\x00\x00\x00\x00" {
		t.Fatalf("unexpected IEEE bytes: %x", b)
	}
	v, err := xdrkit.Unmarshal(c, b)
	if err != nil || v != 1.5 {
		t.Fatalf("unmarshal: got %v err=%v", v, err)
	}
}
