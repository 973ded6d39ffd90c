package goskema4j_test

import (
	"context"
	"testing"

	goskema4j "github.com/reoring/goskema4j"
	g "github.com/reoring/goskema4j/dsl"
)

func TestErrorModel_CollectVsFailFast_And_AsIssues(t *testing.T) {
	s := g.Date().Min("2020-01-01").Greater("2020-06-01")
	src := goskema4j.JSONBytes([]byte(`"2019-01-01"`))

	_, err := goskema4j.ParseFrom(context.Background(), s, src)
	iss, ok := goskema4j.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two collected issues, got %v", err)
	}

	_, err = goskema4j.ParseFrom(context.Background(), s, src, goskema4j.ParseOpt{FailFast: true})
	iss, ok = goskema4j.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue in fail-fast, got %v", err)
	}
	if iss[0].Code != "neo4jDate.min" {
		t.Fatalf("expected the first declared rule to fail first, got %s", iss[0].Code)
	}
}

func TestErrorModel_DeterministicOrder(t *testing.T) {
	s := g.Object().
		Field("b", g.Date().Adapter()).
		Field("a", g.Point().Adapter()).
		Field("c", g.LocalDateTime().Adapter()).
		MustBuild()
	in := map[string]any{"a": "nope", "b": "nope", "c": "nope", "z": 1, "y": 2}

	var first []string
	for i := 0; i < 5; i++ {
		_, err := s.Parse(context.Background(), in)
		iss, _ := goskema4j.AsIssues(err)
		var paths []string
		for _, it := range iss {
			paths = append(paths, it.Path+" "+it.Code)
		}
		if first == nil {
			first = paths
			continue
		}
		if len(paths) != len(first) {
			t.Fatalf("issue count changed between runs: %v vs %v", first, paths)
		}
		for j := range paths {
			if paths[j] != first[j] {
				t.Fatalf("issue order changed between runs: %v vs %v", first, paths)
			}
		}
	}
	if len(first) != 5 || first[0] != "/a neo4jPoint.base" || first[4] != "/z unknown_key" {
		t.Fatalf("unexpected issues: %v", first)
	}
}
