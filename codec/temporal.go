// Package codec provides Codecs between wire renderings and the canonical
// neo4j values.
package codec

import (
	"context"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/dsl"
	js "github.com/reoring/goskema4j/jsonschema"
	"github.com/reoring/goskema4j/temporal"
)

// Date returns a Codec for temporal.Date. Decode accepts any parseable date
// string; Encode and In use the canonical "YYYY-MM-DD" rendering.
func Date() goskema4j.Codec[string, temporal.Date] { return Temporal(dsl.Date()) }

// DateTime returns a Codec for temporal.DateTime. Decode accepts any
// parseable date string; Encode and In use the canonical RFC3339 rendering.
func DateTime() goskema4j.Codec[string, temporal.DateTime] { return Temporal(dsl.DateTime()) }

// LocalDateTime returns a Codec for temporal.LocalDateTime. Decode accepts any
// parseable date string; Encode and In use the canonical zone-less ISO
// rendering.
func LocalDateTime() goskema4j.Codec[string, temporal.LocalDateTime] {
	return Temporal(dsl.LocalDateTime())
}

// Temporal returns a Codec whose domain side is out, so its rules apply on
// both directions.
func Temporal[V temporal.Value](out *dsl.TemporalSchema[V]) goskema4j.Codec[string, V] {
	return &temporalCodec[V]{in: wireSchema{kind: out.Kind()}, out: out}
}

type temporalCodec[V temporal.Value] struct {
	in  wireSchema
	out *dsl.TemporalSchema[V]
}

func (c *temporalCodec[V]) In() goskema4j.Schema[string] { return c.in }
func (c *temporalCodec[V]) Out() goskema4j.Schema[V]     { return c.out }

func (c *temporalCodec[V]) Decode(ctx context.Context, a string) (V, error) {
	var zero V
	// wire(string) -> canonical V -> Out.ValidateValue
	v, err := temporal.Normalize(a, c.in.kind)
	if err != nil {
		return zero, goskema4j.IssuesFrom(err, "")
	}
	out, ok := v.(V)
	if !ok {
		return zero, goskema4j.Issues{{Path: "/", Code: goskema4j.CodeInvalidType, Message: "unexpected " + v.Kind().String()}}
	}
	if err := c.out.ValidateValue(ctx, out); err != nil {
		return zero, err
	}
	return out, nil
}

func (c *temporalCodec[V]) Encode(ctx context.Context, b V) (string, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return "", err
	}
	s := b.String()
	if _, err := c.in.Parse(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

// wireSchema accepts only the canonical rendering of kind.
type wireSchema struct{ kind temporal.Kind }

func (w wireSchema) Parse(ctx context.Context, v any) (string, error) {
	if err := w.TypeCheck(ctx, v); err != nil {
		return "", err
	}
	return v.(string), nil
}

func (w wireSchema) TypeCheck(ctx context.Context, v any) error {
	s, ok := v.(string)
	if !ok {
		return goskema4j.Issues{{Path: "/", Code: goskema4j.CodeInvalidType, Message: "expected string"}}
	}
	return w.ValidateValue(ctx, s)
}

func (wireSchema) RuleCheck(ctx context.Context, v any) error  { return nil }
func (w wireSchema) Validate(ctx context.Context, v any) error { return w.TypeCheck(ctx, v) }

func (w wireSchema) ValidateValue(ctx context.Context, s string) error {
	if _, err := temporal.Parse(s, w.kind); err != nil {
		return goskema4j.Issues{{Path: "/", Code: goskema4j.CodeInvalidFormat, Message: "expected " + w.kind.String() + " string", Cause: err}}
	}
	return nil
}

func (w wireSchema) JSONSchema() (*js.Schema, error) {
	switch w.kind {
	case temporal.KindDate:
		return dsl.Date().JSONSchema()
	case temporal.KindDateTime:
		return dsl.DateTime().JSONSchema()
	default:
		return dsl.LocalDateTime().JSONSchema()
	}
}
