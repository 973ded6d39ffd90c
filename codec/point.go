package codec

import (
	"context"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/dsl"
	js "github.com/reoring/goskema4j/jsonschema"
	"github.com/reoring/goskema4j/spatial"
)

// Point returns a Codec between point maps and spatial.Point. Decode accepts
// the loose keys spatial.Normalize does; Encode emits the canonical
// {"srid","x","y"[,"z"]} map.
func Point() goskema4j.Codec[map[string]any, spatial.Point] { return PointOf(dsl.Point()) }

// PointOf is Point with a custom domain schema.
func PointOf(out *dsl.PointSchema) goskema4j.Codec[map[string]any, spatial.Point] {
	return &pointCodec{out: out}
}

type pointCodec struct {
	in  pointMapSchema
	out *dsl.PointSchema
}

func (c *pointCodec) In() goskema4j.Schema[map[string]any] { return c.in }
func (c *pointCodec) Out() goskema4j.Schema[spatial.Point] { return c.out }

func (c *pointCodec) Decode(ctx context.Context, a map[string]any) (spatial.Point, error) {
	p, err := spatial.Normalize(a)
	if err != nil {
		return spatial.Point{}, goskema4j.IssuesFrom(err, "")
	}
	if err := c.out.ValidateValue(ctx, p); err != nil {
		return spatial.Point{}, err
	}
	return p, nil
}

func (c *pointCodec) Encode(ctx context.Context, b spatial.Point) (map[string]any, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return nil, err
	}
	m := b.Map()
	if _, err := c.in.Parse(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// pointMapSchema accepts maps that normalize to a valid point.
type pointMapSchema struct{}

func (s pointMapSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, goskema4j.Issues{{Path: "/", Code: goskema4j.CodeInvalidType, Message: "expected object"}}
	}
	if err := s.ValidateValue(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s pointMapSchema) TypeCheck(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (pointMapSchema) RuleCheck(ctx context.Context, v any) error  { return nil }
func (s pointMapSchema) Validate(ctx context.Context, v any) error { return s.TypeCheck(ctx, v) }

func (pointMapSchema) ValidateValue(ctx context.Context, m map[string]any) error {
	if _, err := spatial.Normalize(m); err != nil {
		return goskema4j.IssuesFrom(err, "")
	}
	return nil
}

func (pointMapSchema) JSONSchema() (*js.Schema, error) { return dsl.Point().JSONSchema() }
