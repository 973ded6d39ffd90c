package dsl

import (
	"context"
	"fmt"
	"sort"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/i18n"
	js "github.com/reoring/goskema4j/jsonschema"
)

type objectBuilder struct {
	fields   map[string]AnyAdapter
	required map[string]struct{}
	strip    bool
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]AnyAdapter{},
		required: map[string]struct{}{},
	}
}

// Field registers a field with its adapter.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Require marks several fields as required at once.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// UnknownStrict rejects keys without a field (default).
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.strip = false
	return b
}

// UnknownStrip drops keys without a field.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.strip = true
	return b
}

// Build validates the declaration and returns the object schema.
func (b *objectBuilder) Build() (goskema4j.Schema[map[string]any], error) {
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, fmt.Errorf("dsl: required field %q is not declared", n)
		}
	}
	names := make([]string, 0, len(b.fields))
	for n := range b.fields {
		names = append(names, n)
	}
	sort.Strings(names)
	fields := make(map[string]AnyAdapter, len(b.fields))
	for n, ad := range b.fields {
		fields[n] = ad.withName(n)
	}
	required := make(map[string]struct{}, len(b.required))
	for n := range b.required {
		required[n] = struct{}{}
	}
	return &objectSchema{names: names, fields: fields, required: required, strip: b.strip}, nil
}

// MustBuild is Build that panics on a declaration error.
func (b *objectBuilder) MustBuild() goskema4j.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Require(names ...string) *objectBuilder      { return f.b.Require(names...) }
func (f *fieldStep) UnknownStrict() *objectBuilder               { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder                { return f.b.UnknownStrip() }
func (f *fieldStep) Build() (goskema4j.Schema[map[string]any], error) {
	return f.b.Build()
}
func (f *fieldStep) MustBuild() goskema4j.Schema[map[string]any] { return f.b.MustBuild() }

type objectSchema struct {
	names    []string
	fields   map[string]AnyAdapter
	required map[string]struct{}
	strip    bool
}

func (s *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, goskema4j.Issues{{Path: "/", Code: goskema4j.CodeInvalidType, Message: i18n.T(goskema4j.CodeInvalidType, nil)}}
	}
	root := goskema4j.Root()
	failFast := goskema4j.IsFailFast(ctx)
	ctx = withParent(ctx, m)

	var iss goskema4j.Issues
	out := make(map[string]any, len(s.fields))
	for _, name := range s.names {
		raw, present := m[name]
		if !present {
			if _, req := s.required[name]; req {
				iss = goskema4j.AppendIssues(iss, goskema4j.IssueAt(root.Field(name), goskema4j.CodeRequired, i18n.T(goskema4j.CodeRequired, nil), nil))
				if failFast {
					return nil, iss
				}
			}
			continue
		}
		val, err := s.fields[name].parse(ctx, raw)
		if err != nil {
			iss = goskema4j.AppendIssues(iss, goskema4j.Rebase(goskema4j.IssuesFrom(err, name), root.Field(name))...)
			if failFast {
				return nil, iss
			}
			continue
		}
		out[name] = val
	}
	if !s.strip {
		unknown := make([]string, 0)
		for k := range m {
			if _, ok := s.fields[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			iss = goskema4j.AppendIssues(iss, root.Field(k).Issue(goskema4j.CodeUnknownKey, i18n.T(goskema4j.CodeUnknownKey, nil), "key", k))
			if failFast {
				return nil, iss
			}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s *objectSchema) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(map[string]any); !ok {
		return goskema4j.Issues{{Path: "/", Code: goskema4j.CodeInvalidType, Message: i18n.T(goskema4j.CodeInvalidType, nil)}}
	}
	return nil
}

func (s *objectSchema) RuleCheck(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *objectSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// ValidateValue re-parses the already typed map so field rules and
// references run again.
func (s *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (s *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(s.fields))
	for _, name := range s.names {
		ad := s.fields[name]
		if ad.jsonSchema == nil {
			props[name] = &js.Schema{}
			continue
		}
		fs, err := ad.jsonSchema()
		if err != nil {
			return nil, err
		}
		props[name] = fs
	}
	required := make([]string, 0, len(s.required))
	for n := range s.required {
		required = append(required, n)
	}
	sort.Strings(required)
	return &js.Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: !s.strip}, nil
}
