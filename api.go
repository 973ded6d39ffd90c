package goskema4j

import (
	"context"

	js "github.com/reoring/goskema4j/jsonschema"
)

// Schema surfaces the pillars of coercion, type checking, rule checking and
// typed validation.
type Schema[T any] interface {
	// Parse transforms an unknown input into T (Coerce -> Validate -> Rules).
	// It returns Issues when validation fails.
	Parse(ctx context.Context, v any) (T, error)

	// TypeCheck verifies that v can be coerced into T.
	TypeCheck(ctx context.Context, v any) error

	// RuleCheck runs the declared rules assuming TypeCheck already succeeded.
	RuleCheck(ctx context.Context, v any) error

	// Validate composes TypeCheck followed by RuleCheck.
	Validate(ctx context.Context, v any) error

	// ValidateValue verifies a value already typed as T without any conversion.
	ValidateValue(ctx context.Context, v T) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	In() Schema[A]                              // Wire schema (input side).
	Out() Schema[B]                             // Domain schema (output side).
	Decode(ctx context.Context, a A) (B, error) // A (In) -> B (convert) -> Out.ValidateValue.
	Encode(ctx context.Context, b B) (A, error) // Out.ValidateValue -> A -> In.Parse for revalidation.
}

// Decode is a thin wrapper around Schema.Parse for the forward direction.
func Decode[T any](ctx context.Context, s Schema[T], v any) (T, error) {
	return s.Parse(ctx, v)
}

// Encode is a convenience wrapper over Codec.Encode.
func Encode[A, B any](ctx context.Context, c Codec[A, B], b B) (A, error) {
	return c.Encode(ctx, b)
}

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is returns true if v conforms to the schema s (TypeCheck+RuleCheck).
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// ParseFrom sets it from ParseOpt; schema implementations stop at the first
// failing rule when it is set.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
