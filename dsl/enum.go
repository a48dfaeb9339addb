package dsl

import (
	"fmt"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
)

// Enum opens a builder for a closed mapping of constant names to 32-bit
// values. Enum values are the name strings; the JSON projection is the bare
// name.
func Enum() *EnumBuilder { return &EnumBuilder{} }

// EnumBuilder accumulates (name, value) pairs.
type EnumBuilder struct {
	names   []string
	byName  map[string]int32
	byValue map[int32]string
	err     error
}

// Value declares a constant.
func (b *EnumBuilder) Value(name string, v int32) *EnumBuilder {
	if b.err != nil {
		return b
	}
	if b.byName == nil {
		b.byName = map[string]int32{}
		b.byValue = map[int32]string{}
	}
	if name == "" {
		b.err = fmt.Errorf("dsl: enum constant name must not be empty")
		return b
	}
	if _, dup := b.byName[name]; dup {
		b.err = fmt.Errorf("dsl: duplicate enum constant %q", name)
		return b
	}
	if prev, dup := b.byValue[v]; dup {
		b.err = fmt.Errorf("dsl: enum value %d already bound to %q", v, prev)
		return b
	}
	b.names = append(b.names, name)
	b.byName[name] = v
	b.byValue[v] = name
	return b
}

// Build finalizes the enum codec.
func (b *EnumBuilder) Build() (*EnumCodec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.names) == 0 {
		return nil, fmt.Errorf("dsl: enum needs at least one constant")
	}
	names := make([]string, len(b.names))
	copy(names, b.names)
	byName := make(map[string]int32, len(b.byName))
	byValue := make(map[int32]string, len(b.byValue))
	for k, v := range b.byName {
		byName[k] = v
		byValue[v] = k
	}
	return &EnumCodec{names: names, byName: byName, byValue: byValue}, nil
}

// MustBuild finalizes the enum codec and panics on a malformed definition.
func (b *EnumBuilder) MustBuild() *EnumCodec {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// EnumCodec encodes constant names as their 4-byte values. It satisfies
// xdrkit.Codec[string].
type EnumCodec struct {
	names   []string
	byName  map[string]int32
	byValue map[int32]string
}

// Names returns the constant names in declaration order.
func (c *EnumCodec) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup returns the wire value for a constant name.
func (c *EnumCodec) Lookup(name string) (int32, bool) {
	v, ok := c.byName[name]
	return v, ok
}

func (c *EnumCodec) EncodeTo(w *xdrkit.Writer, v string) error {
	n, ok := c.byName[v]
	if !ok {
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Hint: "unknown constant: '" + v + "'", Offset: -1}}
	}
	w.PutUint32(uint32(n))
	return nil
}

func (c *EnumCodec) DecodeFrom(r *xdrkit.Reader) (string, error) {
	off := r.Offset()
	u, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	name, ok := c.byValue[int32(u)]
	if !ok {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Offset: off}}
	}
	return name, nil
}

func (c *EnumCodec) JSONValue(v string) (any, error) {
	if _, ok := c.byName[v]; !ok {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Hint: "unknown constant: '" + v + "'", Offset: -1}}
	}
	return v, nil
}

func (c *EnumCodec) FromJSONValue(j any) (string, error) {
	s, ok := xdrkit.AsString(j)
	if !ok {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected enum name string", Offset: -1}}
	}
	if _, ok := c.byName[s]; !ok {
		return "", xdrkit.Issues{{Path: "/", Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Hint: "unknown constant: '" + s + "'", Offset: -1}}
	}
	return s, nil
}
