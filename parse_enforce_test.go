package goskema4j_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	goskema4j "github.com/reoring/goskema4j"
	g "github.com/reoring/goskema4j/dsl"
	"github.com/reoring/goskema4j/spatial"
)

func TestStreamParse_MaxBytes_Exceeded(t *testing.T) {
	data := []byte(`"2019-01-01T00:00:00Z"`)
	opt := goskema4j.ParseOpt{MaxBytes: 8}

	_, err := goskema4j.StreamParse(context.Background(), g.DateTime(), bytes.NewReader(data), opt)
	iss, ok := goskema4j.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != goskema4j.CodeTruncated {
		t.Fatalf("expected truncated, got %v", err)
	}

	_, err = goskema4j.ParseFrom(context.Background(), g.DateTime(), goskema4j.JSONBytes(data), opt)
	if iss, _ := goskema4j.AsIssues(err); len(iss) != 1 || iss[0].Code != goskema4j.CodeTruncated {
		t.Fatalf("expected truncated for bytes source, got %v", err)
	}

	if _, err := goskema4j.StreamParse(context.Background(), g.DateTime(), bytes.NewReader(data), goskema4j.ParseOpt{MaxBytes: int64(len(data))}); err != nil {
		t.Fatalf("input at the limit must pass: %v", err)
	}
}

func TestJSONBytes_Malformed(t *testing.T) {
	for _, in := range []string{`{"x":`, `"a" "b"`} {
		_, err := goskema4j.ReadValue(goskema4j.JSONBytes([]byte(in)))
		iss, ok := goskema4j.AsIssues(err)
		if !ok || len(iss) != 1 || iss[0].Code != goskema4j.CodeParseError {
			t.Fatalf("%s: expected parse_error, got %v", in, err)
		}
	}
}

func TestJSONBytes_NumbersAsEpochMillis(t *testing.T) {
	d, err := goskema4j.ParseFrom(context.Background(), g.DateTime(), goskema4j.JSONBytes([]byte(`1546300800000`)))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if d.String() != "2019-01-01T00:00:00.000000000Z" {
		t.Fatalf("unexpected instant: %s", d)
	}
}

func TestYAML_PointKeys(t *testing.T) {
	doc := "srid: 7203\nx: 1\ny: 2\n"
	for _, src := range []goskema4j.Source{
		goskema4j.YAMLBytes([]byte(doc)),
		goskema4j.YAMLReader(strings.NewReader(doc)),
	} {
		p, err := goskema4j.ParseFrom(context.Background(), g.Point().Cartesian(), src)
		if err != nil {
			t.Fatalf("%s: parse err: %v", src.Format(), err)
		}
		if p != spatial.NewPoint2D(spatial.Cartesian2D, 1, 2) {
			t.Fatalf("%s: unexpected point %v", src.Format(), p)
		}
	}
}

func TestYAML_NonStringKeysNormalized(t *testing.T) {
	v, err := goskema4j.ReadValue(goskema4j.YAMLBytes([]byte("- {1: a, true: b}\n")))
	if err != nil {
		t.Fatalf("read err: %v", err)
	}
	m, ok := v.([]any)[0].(map[string]any)
	if !ok || m["1"] != "a" || m["true"] != "b" {
		t.Fatalf("expected string keys, got %#v", v)
	}
}

func TestValueSource(t *testing.T) {
	p := spatial.NewPoint3D(spatial.Geographic3D, 1, 2, 3)
	got, err := goskema4j.ParseFrom(context.Background(), g.Point().Is3D(), goskema4j.Value(p))
	if err != nil || got != p {
		t.Fatalf("expected passthrough, got %v %v", got, err)
	}
	if _, err := goskema4j.ReadValue(nil); err == nil {
		t.Fatalf("expected nil source to fail")
	}
}
