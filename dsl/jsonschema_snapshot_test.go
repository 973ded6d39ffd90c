package dsl_test

import (
	"encoding/json"
	"reflect"
	"testing"

	g "github.com/reoring/goskema4j/dsl"
)

// normalize marshals v to JSON and unmarshals back into interface{} to remove ordering effects.
func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	_ = json.Unmarshal(b, &out)
	return out
}

func TestJSONSchema_Temporal(t *testing.T) {
	if s, err := g.Date().Min("2019-01-01").Less("2020-01-01T12:00:00Z").JSONSchema(); err != nil {
		t.Fatalf("date JSONSchema err: %v", err)
	} else {
		got := normalize(s)
		want := normalize(map[string]any{
			"type":                   "string",
			"format":                 "date",
			"formatMinimum":          "2019-01-01",
			"formatExclusiveMaximum": "2020-01-01",
		})
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("date schema mismatch\n got=%v\nwant=%v", got, want)
		}
	}

	if s, err := g.DateTime().Nullable().JSONSchema(); err != nil {
		t.Fatalf("datetime JSONSchema err: %v", err)
	} else {
		got := normalize(s)
		want := normalize(map[string]any{"oneOf": []any{
			map[string]any{"type": "string", "format": "date-time"},
			map[string]any{"type": "null"},
		}})
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("datetime schema mismatch\n got=%v\nwant=%v", got, want)
		}
	}

	s, err := g.LocalDateTime().JSONSchema()
	if err != nil {
		t.Fatalf("local datetime JSONSchema err: %v", err)
	}
	if s.Type != "string" || s.Pattern == "" || s.Format != "" {
		t.Fatalf("unexpected local datetime schema: %+v", s)
	}

	if _, err := g.Date().Max("garbage").JSONSchema(); err == nil {
		t.Fatalf("expected invalid static limit to fail projection")
	}
}

func TestJSONSchema_Point(t *testing.T) {
	s, err := g.Point().Coordinates().Is3D().JSONSchema()
	if err != nil {
		t.Fatalf("point JSONSchema err: %v", err)
	}
	got := normalize(s)
	want := normalize(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"srid": map[string]any{"type": "integer", "enum": []any{4979}},
			"x":    map[string]any{"type": "number", "minimum": -180, "maximum": 180},
			"y":    map[string]any{"type": "number", "minimum": -90, "maximum": 90},
			"z":    map[string]any{"type": "number"},
		},
		"required":             []any{"srid", "x", "y", "z"},
		"additionalProperties": false,
	})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("point schema mismatch\n got=%v\nwant=%v", got, want)
	}

	s2, err := g.Point().Is2D().JSONSchema()
	if err != nil {
		t.Fatalf("point JSONSchema err: %v", err)
	}
	if _, ok := s2.Properties["z"]; ok {
		t.Fatalf("2D schema must not declare z")
	}
	if len(s2.Properties["srid"].Enum) != 2 {
		t.Fatalf("expected the two 2D srids, got %v", s2.Properties["srid"].Enum)
	}
}
