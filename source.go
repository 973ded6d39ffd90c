package goskema4j

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over input documents. Decoded documents are built from
// map[string]any, []any, string, bool, nil and numbers (json.Number for JSON,
// int or float64 for YAML).
type Source interface {
	// Format names the document format ("json", "yaml" or "value").
	Format() string

	decode(opt ParseOpt) (any, error)
}

var errTruncated = errors.New("max bytes exceeded")

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{data: b} }

// JSONReader wraps an io.Reader as a JSON Source. The reader is consumed on
// parse.
func JSONReader(r io.Reader) Source { return readerSource{r: r, format: "json"} }

// YAMLBytes wraps a byte slice as a YAML Source. Mapping keys are rendered
// as strings.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

// YAMLReader wraps an io.Reader as a YAML Source.
func YAMLReader(r io.Reader) Source { return readerSource{r: r, format: "yaml"} }

// Value wraps an already decoded value. MaxBytes does not apply.
func Value(v any) Source { return valueSource{v: v} }

type jsonSource struct{ data []byte }

func (jsonSource) Format() string { return "json" }

func (s jsonSource) decode(opt ParseOpt) (any, error) {
	if opt.MaxBytes > 0 && int64(len(s.data)) > opt.MaxBytes {
		return nil, errTruncated
	}
	dec := json.NewDecoder(bytes.NewReader(s.data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

type yamlSource struct{ data []byte }

func (yamlSource) Format() string { return "yaml" }

func (s yamlSource) decode(opt ParseOpt) (any, error) {
	if opt.MaxBytes > 0 && int64(len(s.data)) > opt.MaxBytes {
		return nil, errTruncated
	}
	var v any
	if err := yaml.Unmarshal(s.data, &v); err != nil {
		return nil, err
	}
	return stringKeys(v), nil
}

type readerSource struct {
	r      io.Reader
	format string
}

func (s readerSource) Format() string { return s.format }

func (s readerSource) decode(opt ParseOpt) (any, error) {
	r := s.r
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if s.format == "yaml" {
		return yamlSource{data: data}.decode(opt)
	}
	return jsonSource{data: data}.decode(opt)
}

type valueSource struct{ v any }

func (valueSource) Format() string { return "value" }

func (s valueSource) decode(ParseOpt) (any, error) { return s.v, nil }

// stringKeys rewrites map[any]any nodes produced by yaml.v3 for non-string
// keys into map[string]any.
func stringKeys(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = stringKeys(e)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = stringKeys(e)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = stringKeys(e)
		}
		return x
	default:
		return v
	}
}
