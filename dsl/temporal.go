package dsl

import (
	"context"

	goskema4j "github.com/reoring/goskema4j"
	js "github.com/reoring/goskema4j/jsonschema"
	"github.com/reoring/goskema4j/temporal"
)

const localDateTimePattern = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?$`

// LimitFunc resolves a rule limit at validation time. A nil limit without an
// error skips the rule.
type LimitFunc func(ctx context.Context) (any, error)

// TemporalSchema validates one temporal variant. Builders return a modified
// copy, so a schema can be shared and extended safely.
type TemporalSchema[V temporal.Value] struct {
	kind     temporal.Kind
	strict   bool
	nullable bool
	label    string
	rules    []temporalRule
}

type temporalRule struct {
	rule  temporal.Rule
	limit any
	fn    LimitFunc
}

// Date returns a schema for neo4j Date values.
func Date() *TemporalSchema[temporal.Date] {
	return &TemporalSchema[temporal.Date]{kind: temporal.KindDate}
}

// DateTime returns a schema for neo4j DateTime values.
func DateTime() *TemporalSchema[temporal.DateTime] {
	return &TemporalSchema[temporal.DateTime]{kind: temporal.KindDateTime}
}

// LocalDateTime returns a schema for neo4j LocalDateTime values.
func LocalDateTime() *TemporalSchema[temporal.LocalDateTime] {
	return &TemporalSchema[temporal.LocalDateTime]{kind: temporal.KindLocalDateTime}
}

func (s *TemporalSchema[V]) clone() *TemporalSchema[V] {
	c := *s
	c.rules = append([]temporalRule(nil), s.rules...)
	return &c
}

func (s *TemporalSchema[V]) with(r temporalRule) *TemporalSchema[V] {
	c := s.clone()
	c.rules = append(c.rules, r)
	return c
}

// Min requires value >= limit.
func (s *TemporalSchema[V]) Min(limit any) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleMin, limit: limit})
}

// Max requires value <= limit.
func (s *TemporalSchema[V]) Max(limit any) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleMax, limit: limit})
}

// Less requires value < limit.
func (s *TemporalSchema[V]) Less(limit any) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleLess, limit: limit})
}

// Greater requires value > limit.
func (s *TemporalSchema[V]) Greater(limit any) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleGreater, limit: limit})
}

func (s *TemporalSchema[V]) MinFunc(fn LimitFunc) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleMin, fn: fn})
}

func (s *TemporalSchema[V]) MaxFunc(fn LimitFunc) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleMax, fn: fn})
}

func (s *TemporalSchema[V]) LessFunc(fn LimitFunc) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleLess, fn: fn})
}

func (s *TemporalSchema[V]) GreaterFunc(fn LimitFunc) *TemporalSchema[V] {
	return s.with(temporalRule{rule: temporal.RuleGreater, fn: fn})
}

// Rule adds a relational rule by value. It is the dynamic form of Min, Max,
// Less and Greater.
func (s *TemporalSchema[V]) Rule(rule temporal.Rule, limit any) *TemporalSchema[V] {
	return s.with(temporalRule{rule: rule, limit: limit})
}

// Strict disables coercion: only canonical values of the schema's variant
// are accepted.
func (s *TemporalSchema[V]) Strict() *TemporalSchema[V] {
	c := s.clone()
	c.strict = true
	return c
}

// Nullable lets nil through as the zero value.
func (s *TemporalSchema[V]) Nullable() *TemporalSchema[V] {
	c := s.clone()
	c.nullable = true
	return c
}

// Label names the value in messages (default "value").
func (s *TemporalSchema[V]) Label(label string) *TemporalSchema[V] {
	c := s.clone()
	c.label = label
	return c
}

func (s *TemporalSchema[V]) withDefaultLabel(label string) goskema4j.Schema[V] {
	if s.label != "" {
		return s
	}
	return s.Label(label)
}

// Kind returns the variant the schema produces.
func (s *TemporalSchema[V]) Kind() temporal.Kind { return s.kind }

func (s *TemporalSchema[V]) Parse(ctx context.Context, v any) (V, error) {
	var zero V
	if v == nil && s.nullable {
		return zero, nil
	}
	val, err := s.coerce(v)
	if err != nil {
		return zero, err
	}
	if err := s.ValidateValue(ctx, val); err != nil {
		return zero, err
	}
	return val, nil
}

func (s *TemporalSchema[V]) TypeCheck(ctx context.Context, v any) error {
	if v == nil && s.nullable {
		return nil
	}
	_, err := s.coerce(v)
	return err
}

func (s *TemporalSchema[V]) RuleCheck(ctx context.Context, v any) error {
	if v == nil && s.nullable {
		return nil
	}
	val, err := s.coerce(v)
	if err != nil {
		// TypeCheck reports the coercion failure
		return nil
	}
	return s.ValidateValue(ctx, val)
}

func (s *TemporalSchema[V]) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// ValidateValue runs the rules in declaration order. All failures are
// collected unless the context is fail-fast.
func (s *TemporalSchema[V]) ValidateValue(ctx context.Context, v V) error {
	var iss goskema4j.Issues
	for _, r := range s.rules {
		limit := r.limit
		if r.fn != nil {
			l, err := r.fn(ctx)
			if err != nil {
				iss = goskema4j.AppendIssues(iss, goskema4j.IssuesFrom(err, s.label)...)
				if goskema4j.IsFailFast(ctx) {
					return iss
				}
				continue
			}
			if l == nil {
				continue
			}
			limit = l
		}
		if err := temporal.Check(r.rule, v, limit); err != nil {
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

func (s *TemporalSchema[V]) coerce(v any) (V, error) {
	var zero V
	if s.strict {
		if val, ok := v.(V); ok {
			return val, nil
		}
		err := &temporal.InvalidInputError{Kind: s.kind, Rule: temporal.RuleBase, Value: v}
		return zero, goskema4j.IssuesFrom(err, s.label)
	}
	nv, err := temporal.Normalize(v, s.kind)
	if err != nil {
		return zero, goskema4j.IssuesFrom(err, s.label)
	}
	return nv.(V), nil
}

func (s *TemporalSchema[V]) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Description: s.label}
	switch s.kind {
	case temporal.KindDate:
		out.Format = "date"
	case temporal.KindDateTime:
		out.Format = "date-time"
	case temporal.KindLocalDateTime:
		out.Pattern = localDateTimePattern
	}
	for _, r := range s.rules {
		if r.fn != nil {
			continue
		}
		l, err := temporal.Normalize(r.limit, s.kind)
		if err != nil {
			return nil, goskema4j.IssuesFrom(err, "limit")
		}
		switch r.rule {
		case temporal.RuleMin:
			out.FormatMinimum = l.String()
		case temporal.RuleMax:
			out.FormatMaximum = l.String()
		case temporal.RuleLess:
			out.FormatExclusiveMaximum = l.String()
		case temporal.RuleGreater:
			out.FormatExclusiveMinimum = l.String()
		}
	}
	if s.nullable {
		return js.Nullable(out), nil
	}
	return out, nil
}
