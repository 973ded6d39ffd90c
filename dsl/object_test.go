package dsl_test

import (
	"context"
	"testing"

	goskema4j "github.com/reoring/goskema4j"
	g "github.com/reoring/goskema4j/dsl"
	"github.com/reoring/goskema4j/temporal"
)

func period() goskema4j.Schema[map[string]any] {
	return g.Object().
		Field("from", g.Date().Adapter()).Required().
		Field("to", g.Date().MinFunc(g.Ref("from")).Adapter()).Required().
		Field("where", g.Point().Coordinates().Adapter()).
		UnknownStrict().
		MustBuild()
}

func TestObject_RefLimit(t *testing.T) {
	ctx := context.Background()
	s := period()

	m, err := goskema4j.ParseFrom(ctx, s, goskema4j.JSONBytes([]byte(`{"from":"2019-01-01","to":"2019-01-31"}`)))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if _, ok := m["to"].(temporal.Date); !ok {
		t.Fatalf("expected canonical date, got %T", m["to"])
	}

	_, err = goskema4j.ParseFrom(ctx, s, goskema4j.JSONBytes([]byte(`{"from":"2019-02-01","to":"2019-01-31"}`)))
	iss, ok := goskema4j.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Path != "/to" || iss[0].Code != "neo4jDate.min" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestObject_RequiredUnknownAndNested(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{
		"to":    "2019-01-01",
		"where": map[string]any{"x": 1, "y": 2},
		"zzz":   true,
	}
	_, err := period().Parse(ctx, in)
	iss, ok := goskema4j.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	want := map[string]string{
		"/from":  goskema4j.CodeRequired,
		"/where": "neo4jPoint.coordinates",
		"/zzz":   goskema4j.CodeUnknownKey,
	}
	if len(iss) != len(want) {
		t.Fatalf("expected %d issues, got %v", len(want), iss)
	}
	for _, it := range iss {
		if want[it.Path] != it.Code {
			t.Fatalf("unexpected issue %s at %s", it.Code, it.Path)
		}
	}

	_, err = period().Parse(goskema4j.WithFailFast(ctx, true), in)
	if iss, _ := goskema4j.AsIssues(err); len(iss) != 1 {
		t.Fatalf("expected a single issue in fail-fast, got %v", iss)
	}
}

func TestObject_BuildErrors(t *testing.T) {
	if _, err := g.Object().Require("missing").Build(); err == nil {
		t.Fatalf("expected undeclared required field to fail")
	}
	if _, err := period().Parse(context.Background(), "not an object"); err == nil {
		t.Fatalf("expected invalid_type")
	}
}

func TestObject_UnknownStrip(t *testing.T) {
	s := g.Object().Field("at", g.DateTime().Adapter()).UnknownStrip().MustBuild()
	m, err := s.Parse(context.Background(), map[string]any{"at": "2019-01-01T00:00:00Z", "extra": 1})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if _, ok := m["extra"]; ok {
		t.Fatalf("expected unknown key to be stripped")
	}
}

func TestObject_FieldNameLabels(t *testing.T) {
	_, err := period().Parse(context.Background(), map[string]any{"from": "garbage", "to": "2019-01-31"})
	iss, ok := goskema4j.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected only the invalid field to fail, got %v", err)
	}
	if iss[0].Path != "/from" || iss[0].Code != "neo4jDate.base" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
	if want := `"from" must be a valid Date`; iss[0].Message != want {
		t.Fatalf("message = %q, want %q", iss[0].Message, want)
	}

	_, err = period().Parse(context.Background(), map[string]any{"from": "2019-02-01", "to": "2019-01-31"})
	iss, _ = goskema4j.AsIssues(err)
	if len(iss) != 1 || iss[0].Message != `"to" must be greater than or equal to "2019-02-01"` {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestObject_ExplicitLabelWins(t *testing.T) {
	s := g.Object().Field("at", g.DateTime().Label("start").Adapter()).MustBuild()
	_, err := s.Parse(context.Background(), map[string]any{"at": "garbage"})
	iss, _ := goskema4j.AsIssues(err)
	if len(iss) != 1 || iss[0].Message != `"start" must be a valid DateTime` {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestObject_InvalidRefBlamesRule(t *testing.T) {
	s := g.Object().
		Field("to", g.Date().MinFunc(g.Ref("from")).Adapter()).
		UnknownStrip().
		MustBuild()
	_, err := s.Parse(context.Background(), map[string]any{"from": "garbage", "to": "2019-01-31"})
	iss, _ := goskema4j.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/to" || iss[0].Code != "neo4jDate.min" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if iss[0].Params["limit"] != "garbage" {
		t.Fatalf("expected the raw limit in params, got %v", iss[0].Params)
	}
}
