package dsl

import (
	"context"
	"time"

	goskema4j "github.com/reoring/goskema4j"
	js "github.com/reoring/goskema4j/jsonschema"
	"github.com/reoring/goskema4j/spatial"
	"github.com/reoring/goskema4j/temporal"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper so schemas of
// different value types can share an object.
type AnyAdapter struct {
	parse      func(context.Context, any) (any, error)
	jsonSchema func() (*js.Schema, error)
	orig       any
	named      func(name string) AnyAdapter
}

// labelDefaulter is implemented by schemas whose messages name the value.
type labelDefaulter[T any] interface {
	withDefaultLabel(label string) goskema4j.Schema[T]
}

// SchemaOf wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func SchemaOf[T any](s goskema4j.Schema[T]) AnyAdapter {
	ad := AnyAdapter{
		parse:      func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
	if d, ok := s.(labelDefaulter[T]); ok {
		ad.named = func(name string) AnyAdapter { return SchemaOf(d.withDefaultLabel(name)) }
	}
	return ad
}

// Orig returns the original underlying Schema[T] used to create this adapter.
func (ad AnyAdapter) Orig() any { return ad.orig }

// withName labels an unlabelled schema with its field name.
func (ad AnyAdapter) withName(name string) AnyAdapter {
	if ad.named == nil {
		return ad
	}
	return ad.named(name)
}

// Adapter is SchemaOf for temporal schemas.
func (s *TemporalSchema[V]) Adapter() AnyAdapter { return SchemaOf[V](s) }

// Adapter is SchemaOf for point schemas.
func (s *PointSchema) Adapter() AnyAdapter { return SchemaOf[spatial.Point](s) }

type parentKey struct{}

func withParent(ctx context.Context, m map[string]any) context.Context {
	return context.WithValue(ctx, parentKey{}, m)
}

// Ref returns a LimitFunc that reads the sibling field name of the object
// being parsed. It resolves to nil, skipping the rule, when the field is
// absent or the schema is not parsed inside an Object.
func Ref(name string) LimitFunc {
	return func(ctx context.Context) (any, error) {
		m, _ := ctx.Value(parentKey{}).(map[string]any)
		return m[name], nil
	}
}

// Now returns a LimitFunc resolving to the current instant at validation
// time, e.g. Date().LessFunc(Now()).
func Now() LimitFunc {
	return func(context.Context) (any, error) { return temporal.DateTimeOf(time.Now()), nil }
}
