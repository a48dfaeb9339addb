package codec_test

import (
	"bytes"
	"testing"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/codec"
)

func TestInt128_NegativeOne(t *testing.T) {
	c := codec.Int128()
	v, err := c.FromJSONValue("-1")
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if v["hi"] != int64(-1) || v["lo"] != uint64(0xFFFFFFFFFFFFFFFF) {
		t.Fatalf("two's-complement limbs wrong: %v", v)
	}
	j, err := c.JSONValue(v)
	if err != nil || j != "-1" {
		t.Fatalf("projection: got %v err=%v", j, err)
	}

	// wire form is 16 bytes of 0xFF
	b, err := xdrkit.Marshal(c, v)
	if err != nil || !bytes.Equal(b, bytes.Repeat([]byte{0xFF}, 16)) {
		t.Fatalf("marshal: got %x err=%v", b, err)
	}
}

func TestUint128_LimbBoundary(t *testing.T) {
	c := codec.Uint128()
	v, err := c.FromJSONValue("18446744073709551616") // 2^64
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if v["hi"] != uint64(1) || v["lo"] != uint64(0) {
		t.Fatalf("limb split wrong: %v", v)
	}
	j, err := c.JSONValue(v)
	if err != nil || j != "18446744073709551616" {
		t.Fatalf("projection: got %v err=%v", j, err)
	}
}

func TestWideInt_RangeValidation(t *testing.T) {
	cases := []struct {
		name string
		c    xdrkit.Codec[map[string]any]
		in   string
	}{
		{"uint128 negative", codec.Uint128(), "-1"},
		{"uint128 overflow", codec.Uint128(), "340282366920938463463374607431768211456"},  // 2^128
		{"int128 overflow", codec.Int128(), "170141183460469231731687303715884105728"},   // 2^127
		{"int128 underflow", codec.Int128(), "-170141183460469231731687303715884105729"}, // -2^127-1
		{"uint256 negative", codec.Uint256(), "-5"},
	}
	for _, tc := range cases {
		_, err := tc.c.FromJSONValue(tc.in)
		iss, ok := xdrkit.AsIssues(err)
		if !ok || iss[0].Code != xdrkit.CodeRangeError {
			t.Fatalf("%s: expected range_error, got %v", tc.name, err)
		}
	}

	_, err := codec.Int128().FromJSONValue("twelve")
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestWideInt_RejectsJSONNumbers(t *testing.T) {
	// only the decimal string and limb object forms decode; a bare JSON
	// number is a type error even though it arrives as json.Number
	codecs := map[string]xdrkit.Codec[map[string]any]{
		"int128":  codec.Int128(),
		"uint128": codec.Uint128(),
		"int256":  codec.Int256(),
		"uint256": codec.Uint256(),
	}
	for name, c := range codecs {
		_, err := xdrkit.UnmarshalJSON(c, []byte("123"))
		iss, ok := xdrkit.AsIssues(err)
		if !ok || iss[0].Code != xdrkit.CodeInvalidType {
			t.Fatalf("%s: expected invalid_type for bare number, got %v", name, err)
		}
	}
}

func TestInt128_BoundaryValues(t *testing.T) {
	c := codec.Int128()
	for _, s := range []string{
		"170141183460469231731687303715884105727",  // 2^127-1
		"-170141183460469231731687303715884105728", // -2^127
		"0",
	} {
		v, err := c.FromJSONValue(s)
		if err != nil {
			t.Fatalf("%s: from json: %v", s, err)
		}
		j, err := c.JSONValue(v)
		if err != nil || j != s {
			t.Fatalf("%s: projection diverged: %v err=%v", s, j, err)
		}
	}
}

func TestInt256_Roundtrip(t *testing.T) {
	c := codec.Int256()
	const s = "-57896044618658097711785492504343953926634992332820282019728792003956564819968" // -2^255
	v, err := c.FromJSONValue(s)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if v["hiHi"] != int64(-9223372036854775808) {
		t.Fatalf("sign limb wrong: %v", v["hiHi"])
	}
	b, err := xdrkit.Marshal(c, v)
	if err != nil || len(b) != 32 {
		t.Fatalf("marshal: %d bytes err=%v", len(b), err)
	}
	back, err := xdrkit.Unmarshal(c, b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	j, err := c.JSONValue(back)
	if err != nil || j != s {
		t.Fatalf("round-trip diverged: %v err=%v", j, err)
	}
}

func TestWideInt_LimbObjectForm(t *testing.T) {
	c := codec.Uint128()
	v, err := c.FromJSONValue(map[string]any{"hi": "1", "lo": "5"})
	if err != nil {
		t.Fatalf("limb object form: %v", err)
	}
	j, err := c.JSONValue(v)
	if err != nil || j != "18446744073709551621" { // 2^64 + 5
		t.Fatalf("projection: got %v err=%v", j, err)
	}

	_, err = c.FromJSONValue(true)
	iss, ok := xdrkit.AsIssues(err)
	if !ok || iss[0].Code != xdrkit.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}
