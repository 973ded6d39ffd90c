package dsl

import (
	"context"
	"slices"

	goskema4j "github.com/reoring/goskema4j"
	js "github.com/reoring/goskema4j/jsonschema"
	"github.com/reoring/goskema4j/spatial"
)

// PointSchema validates neo4j points.
type PointSchema struct {
	strict   bool
	nullable bool
	label    string
	rules    []spatial.Rule
}

// Point returns a schema for neo4j Point values.
func Point() *PointSchema { return &PointSchema{} }

func (s *PointSchema) with(r spatial.Rule) *PointSchema {
	c := s.clone()
	c.rules = append(c.rules, r)
	return c
}

func (s *PointSchema) clone() *PointSchema {
	c := *s
	c.rules = append([]spatial.Rule(nil), s.rules...)
	return &c
}

// Coordinates requires a geographic point within range.
func (s *PointSchema) Coordinates() *PointSchema { return s.with(spatial.RuleCoordinates) }

// Cartesian requires a cartesian point.
func (s *PointSchema) Cartesian() *PointSchema { return s.with(spatial.RuleCartesian) }

// Is3D requires a 3D point.
func (s *PointSchema) Is3D() *PointSchema { return s.with(spatial.RuleIs3D) }

// Is2D requires a 2D point.
func (s *PointSchema) Is2D() *PointSchema { return s.with(spatial.RuleIs2D) }

// Rule adds a classification rule by value.
func (s *PointSchema) Rule(r spatial.Rule) *PointSchema { return s.with(r) }

// Strict accepts canonical points only.
func (s *PointSchema) Strict() *PointSchema {
	c := s.clone()
	c.strict = true
	return c
}

// Nullable lets nil through as the zero Point.
func (s *PointSchema) Nullable() *PointSchema {
	c := s.clone()
	c.nullable = true
	return c
}

// Label names the value in messages (default "value").
func (s *PointSchema) Label(label string) *PointSchema {
	c := s.clone()
	c.label = label
	return c
}

func (s *PointSchema) withDefaultLabel(label string) goskema4j.Schema[spatial.Point] {
	if s.label != "" {
		return s
	}
	return s.Label(label)
}

func (s *PointSchema) Parse(ctx context.Context, v any) (spatial.Point, error) {
	if v == nil && s.nullable {
		return spatial.Point{}, nil
	}
	p, err := s.coerce(v)
	if err != nil {
		return spatial.Point{}, err
	}
	if err := s.ValidateValue(ctx, p); err != nil {
		return spatial.Point{}, err
	}
	return p, nil
}

func (s *PointSchema) TypeCheck(ctx context.Context, v any) error {
	if v == nil && s.nullable {
		return nil
	}
	_, err := s.coerce(v)
	return err
}

func (s *PointSchema) RuleCheck(ctx context.Context, v any) error {
	if v == nil && s.nullable {
		return nil
	}
	p, err := s.coerce(v)
	if err != nil {
		return nil
	}
	return s.ValidateValue(ctx, p)
}

func (s *PointSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// ValidateValue checks p is a valid point and then runs the rules in
// declaration order.
func (s *PointSchema) ValidateValue(ctx context.Context, p spatial.Point) error {
	if err := p.Validate(); err != nil {
		return goskema4j.IssuesFrom(err, s.label)
	}
	var iss goskema4j.Issues
	for _, r := range s.rules {
		if err := spatial.Check(r, p); err != nil {
			iss = goskema4j.AppendIssues(iss, goskema4j.IssuesFrom(err, s.label)...)
			if goskema4j.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *PointSchema) coerce(v any) (spatial.Point, error) {
	if s.strict {
		switch p := v.(type) {
		case spatial.Point:
			return p, nil
		case *spatial.Point:
			if p != nil {
				return *p, nil
			}
		}
		err := &spatial.InvalidInputError{Rule: spatial.RuleBase, Value: v}
		return spatial.Point{}, goskema4j.IssuesFrom(err, s.label)
	}
	p, err := spatial.Normalize(v)
	if err != nil {
		return spatial.Point{}, goskema4j.IssuesFrom(err, s.label)
	}
	return p, nil
}

// JSONSchema describes the canonical map form. The srid enum is narrowed by
// the declared rules.
func (s *PointSchema) JSONSchema() (*js.Schema, error) {
	allowed := spatial.SRIDs()
	geographicOnly, needZ, noZ := false, false, false
	for _, r := range s.rules {
		switch r {
		case spatial.RuleCoordinates:
			allowed = slices.DeleteFunc(allowed, func(id spatial.SRID) bool { return !id.IsGeographic() })
			geographicOnly = true
		case spatial.RuleCartesian:
			allowed = slices.DeleteFunc(allowed, func(id spatial.SRID) bool { return !id.IsCartesian() })
		case spatial.RuleIs3D:
			allowed = slices.DeleteFunc(allowed, func(id spatial.SRID) bool { return !id.Is3D() })
			needZ = true
		case spatial.RuleIs2D:
			allowed = slices.DeleteFunc(allowed, spatial.SRID.Is3D)
			noZ = true
		}
	}
	enum := make([]any, 0, len(allowed))
	for _, id := range allowed {
		enum = append(enum, int(id))
	}

	x, y := &js.Schema{Type: "number"}, &js.Schema{Type: "number"}
	if geographicOnly {
		x.Minimum, x.Maximum = js.Float(-180), js.Float(180)
		y.Minimum, y.Maximum = js.Float(-90), js.Float(90)
	}
	props := map[string]*js.Schema{
		"srid": {Type: "integer", Enum: enum},
		"x":    x,
		"y":    y,
	}
	if !noZ {
		props["z"] = &js.Schema{Type: "number"}
	}
	required := []string{"srid", "x", "y"}
	if needZ {
		required = append(required, "z")
	}
	out := &js.Schema{
		Type:                 "object",
		Description:          s.label,
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}
	if s.nullable {
		return js.Nullable(out), nil
	}
	return out, nil
}
