package dsl

import (
	"fmt"

	xdrkit "github.com/reoring/xdrkit"
	"github.com/reoring/xdrkit/i18n"
)

// UnionVal is the value of a tagged union: the active arm's discriminant
// name plus, for value arms, its payload. Void arms carry a nil Value.
// Switching arms means constructing a new UnionVal.
type UnionVal struct {
	Arm   string
	Value any
}

// Union opens a builder for a tagged union over the given enum discriminant.
func Union(disc *EnumCodec) *UnionBuilder {
	return &UnionBuilder{disc: disc}
}

// UnionBuilder accumulates arms. Each arm may match several discriminant
// names sharing one payload codec.
type UnionBuilder struct {
	disc *EnumCodec
	arms map[string]unionArm
	err  error
}

type unionArm struct {
	payload AnyCodec
	void    bool
}

// Arm declares a value arm for one or more discriminant names.
func (b *UnionBuilder) Arm(payload AnyCodec, names ...string) *UnionBuilder {
	return b.add(unionArm{payload: payload}, names)
}

// Void declares payload-less arms: only the discriminant is encoded.
func (b *UnionBuilder) Void(names ...string) *UnionBuilder {
	return b.add(unionArm{void: true}, names)
}

func (b *UnionBuilder) add(arm unionArm, names []string) *UnionBuilder {
	if b.err != nil {
		return b
	}
	if len(names) == 0 {
		b.err = fmt.Errorf("dsl: union arm needs at least one discriminant name")
		return b
	}
	if b.arms == nil {
		b.arms = map[string]unionArm{}
	}
	for _, name := range names {
		if _, ok := b.disc.Lookup(name); !ok {
			b.err = fmt.Errorf("dsl: union arm %q is not a discriminant constant", name)
			return b
		}
		if _, dup := b.arms[name]; dup {
			b.err = fmt.Errorf("dsl: duplicate union arm %q", name)
			return b
		}
		b.arms[name] = arm
	}
	return b
}

// Build finalizes the union codec.
func (b *UnionBuilder) Build() (xdrkit.Codec[UnionVal], error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.arms) == 0 {
		return nil, fmt.Errorf("dsl: union needs at least one arm")
	}
	arms := make(map[string]unionArm, len(b.arms))
	for k, v := range b.arms {
		arms[k] = v
	}
	return unionCodec{disc: b.disc, arms: arms}, nil
}

// MustBuild finalizes the union codec and panics on a malformed definition.
func (b *UnionBuilder) MustBuild() xdrkit.Codec[UnionVal] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

type unionCodec struct {
	disc *EnumCodec
	arms map[string]unionArm
}

func (c unionCodec) EncodeTo(w *xdrkit.Writer, v UnionVal) error {
	arm, ok := c.arms[v.Arm]
	if !ok {
		// Unreachable for values built against the closed enum; reaching it
		// means the definition and the value disagree.
		return xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInternal, Message: i18n.T(xdrkit.CodeInternal, nil), Hint: "no union arm for '" + v.Arm + "'", Offset: -1}}
	}
	if err := c.disc.EncodeTo(w, v.Arm); err != nil {
		return err
	}
	if arm.void {
		return nil
	}
	if err := arm.payload.EncodeTo(w, v.Value); err != nil {
		return xdrkit.RebaseIssues("/"+v.Arm, err)
	}
	return nil
}

func (c unionCodec) DecodeFrom(r *xdrkit.Reader) (UnionVal, error) {
	off := r.Offset()
	name, err := c.disc.DecodeFrom(r)
	if err != nil {
		return UnionVal{}, err
	}
	arm, ok := c.arms[name]
	if !ok {
		return UnionVal{}, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Hint: "no union arm for '" + name + "'", Offset: off}}
	}
	if arm.void {
		return UnionVal{Arm: name}, nil
	}
	payload, err := arm.payload.DecodeFrom(r)
	if err != nil {
		return UnionVal{}, xdrkit.RebaseIssues("/"+name, err)
	}
	return UnionVal{Arm: name, Value: payload}, nil
}

func (c unionCodec) JSONValue(v UnionVal) (any, error) {
	arm, ok := c.arms[v.Arm]
	if !ok {
		return nil, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInternal, Message: i18n.T(xdrkit.CodeInternal, nil), Hint: "no union arm for '" + v.Arm + "'", Offset: -1}}
	}
	if arm.void {
		return v.Arm, nil
	}
	jv, err := arm.payload.JSONValue(v.Value)
	if err != nil {
		return nil, xdrkit.RebaseIssues("/"+v.Arm, err)
	}
	return xdrkit.Obj{{Key: v.Arm, Value: jv}}, nil
}

func (c unionCodec) FromJSONValue(j any) (UnionVal, error) {
	// Void arms project as the bare discriminant name.
	if s, ok := xdrkit.AsString(j); ok {
		arm, ok := c.arms[s]
		if !ok {
			return UnionVal{}, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Hint: "no union arm for '" + s + "'", Offset: -1}}
		}
		if !arm.void {
			return UnionVal{}, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "arm '" + s + "' carries a payload", Offset: -1}}
		}
		return UnionVal{Arm: s}, nil
	}
	src, ok := xdrkit.AsObject(j)
	if !ok || len(src) != 1 {
		return UnionVal{}, xdrkit.Issues{{Path: "/", Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "expected arm name or single-key object", Offset: -1}}
	}
	for name, jv := range src {
		arm, ok := c.arms[name]
		if !ok {
			return UnionVal{}, xdrkit.Issues{{Path: "/" + name, Code: xdrkit.CodeUnknownDiscriminant, Message: i18n.T(xdrkit.CodeUnknownDiscriminant, nil), Offset: -1}}
		}
		if arm.void {
			return UnionVal{}, xdrkit.Issues{{Path: "/" + name, Code: xdrkit.CodeInvalidType, Message: i18n.T(xdrkit.CodeInvalidType, nil), Hint: "arm '" + name + "' is void", Offset: -1}}
		}
		payload, err := arm.payload.FromJSONValue(jv)
		if err != nil {
			return UnionVal{}, xdrkit.RebaseIssues("/"+name, err)
		}
		return UnionVal{Arm: name, Value: payload}, nil
	}
	return UnionVal{}, nil // unreachable: src has exactly one key
}
