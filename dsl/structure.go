package dsl

import (
	"fmt"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
)

// Struct opens a builder for an ordered, fixed set of named fields. Field
// order is part of the wire contract: encode and decode walk the declared
// order exactly. Values are map[string]any keyed by field name.
func Struct() *StructBuilder { return &StructBuilder{} }

// StructBuilder accumulates (name, codec) pairs in declaration order.
type StructBuilder struct {
	fields []structField
	err    error
}

type structField struct {
	name    string
	jsonKey string
	codec   AnyCodec
}

// Field declares the next field. The JSON member key defaults to the field
// name; use FieldAs when the canonical JSON uses a different key.
func (b *StructBuilder) Field(name string, c AnyCodec) *StructBuilder {
	return b.FieldAs(name, name, c)
}

// FieldAs declares the next field with a distinct JSON member key (for
// example snake_case keys required by the reference JSON mapping).
func (b *StructBuilder) FieldAs(name, jsonKey string, c AnyCodec) *StructBuilder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = fmt.Errorf("dsl: struct field name must not be empty")
		return b
	}
	for _, f := range b.fields {
		if f.name == name {
			b.err = fmt.Errorf("dsl: duplicate struct field %q", name)
			return b
		}
	}
	b.fields = append(b.fields, structField{name: name, jsonKey: jsonKey, codec: c})
	return b
}

// Build finalizes the struct codec.
func (b *StructBuilder) Build() (xdrkit.Codec[map[string]any], error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := make([]structField, len(b.fields))
	copy(fields, b.fields)
	return structCodec{fields: fields}, nil
}

// MustBuild finalizes the struct codec and panics on a malformed definition.
// Definitions are static, so a panic here is a programming error surfaced at
// init time.
func (b *StructBuilder) MustBuild() xdrkit.Codec[map[string]any] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

type structCodec struct {
	fields []structField
}

func (c structCodec) EncodeTo(w *xdrkit.Writer, v map[string]any) error {
	for _, f := range c.fields {
		fv, ok := v[f.name]
		if !ok {
			return xdrkit.Issues{{Path: "/" + f.name, Code: xdrkit.CodeInvalidValue, Message: i18n.T(xdrkit.CodeInvalidValue, nil), Hint: "missing struct field", Offset: -1}}
		}
		if err := f.codec.EncodeTo(w, fv); err != nil {
			return xdrkit.RebaseIssues("/"+f.name, err)
		}
	}
	return nil
}

func (c structCodec) DecodeFrom(r *xdrkit.Reader) (map[string]any, error) {
	out := make(map[string]any, len(c.fields))
	for _, f := range c.fields {
		fv, err := f.codec.DecodeFrom(r)
		if err != nil {
			return nil, xdrkit.RebaseIssues("/"+f.name, err)
		}
		out[f.name] = fv
	}
	return out, nil
}

func (c structCodec) JSONValue(v map[string]any) (any, error) {
	out := make(xdrkit.Obj, 0, len(c.fields))
	for _, f := range c.fields {
		fv, ok := v[f.name]
		if !ok {
			return nil, xdrkit.Issues{{Path: "/" + f.name, Code: xdrkit.CodeInvalidValue, Message: i18n.T(xdrkit.CodeInvalidValue, nil), Hint: "missing struct field", Offset: -1}}
		}
		jv, err := f.codec.JSONValue(fv)
		if err != nil {
			return nil, xdrkit.RebaseIssues("/"+f.name, err)
		}
		out = append(out, xdrkit.Member{Key: f.jsonKey, Value: jv})
	}
	return out, nil
}

func (c structCodec) FromJSONValue(j any) (map[string]any, error) {
	src, ok := xdrkit.AsObject(j)
	if !ok {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected object", Offset: -1}}
	}
	out := make(map[string]any, len(c.fields))
	for _, f := range c.fields {
		jv, ok := src[f.jsonKey]
		if !ok {
			return nil, xdrkit.Issues{{Path: "/" + f.jsonKey, Code: xdrkit.CodeInvalidValue, Message: i18n.T(xdrkit.CodeInvalidValue, nil), Hint: "missing member", Offset: -1}}
		}
		fv, err := f.codec.FromJSONValue(jv)
		if err != nil {
			return nil, xdrkit.RebaseIssues("/"+f.jsonKey, err)
		}
		out[f.name] = fv
	}
	return out, nil
}
