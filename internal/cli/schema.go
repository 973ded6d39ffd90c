package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/dsl"
	"github.com/reoring/goskema4j/internal/logger"
	js "github.com/reoring/goskema4j/jsonschema"
	"github.com/reoring/goskema4j/spatial"
	"github.com/reoring/goskema4j/temporal"
)

// Kinds lists the accepted --kind values.
var Kinds = []string{"date", "datetime", "localdatetime", "point"}

// schemaFlags are the flags shared by check and schema.
type schemaFlags struct {
	kind    string
	min     string
	max     string
	less    string
	greater string
	rules   []string
}

func (f *schemaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "", "value kind (date|datetime|localdatetime|point)")
	cmd.Flags().StringVar(&f.min, "min", "", "inclusive lower limit")
	cmd.Flags().StringVar(&f.max, "max", "", "inclusive upper limit")
	cmd.Flags().StringVar(&f.less, "less", "", "exclusive upper limit")
	cmd.Flags().StringVar(&f.greater, "greater", "", "exclusive lower limit")
	cmd.Flags().StringSliceVar(&f.rules, "rule", nil, "point rule (coordinates|cartesian|is3d|is2d), repeatable")
	_ = cmd.MarkFlagRequired("kind")
}

// target is a schema reduced to what the commands need.
type target struct {
	check      func(ctx context.Context, v any) (string, error)
	jsonSchema func() (*js.Schema, error)
}

func (f *schemaFlags) limits() []struct {
	rule  temporal.Rule
	value string
} {
	return []struct {
		rule  temporal.Rule
		value string
	}{
		{temporal.RuleMin, f.min},
		{temporal.RuleMax, f.max},
		{temporal.RuleLess, f.less},
		{temporal.RuleGreater, f.greater},
	}
}

func (f *schemaFlags) build() (*target, error) {
	switch f.kind {
	case "date":
		return temporalTarget(dsl.Date(), f)
	case "datetime":
		return temporalTarget(dsl.DateTime(), f)
	case "localdatetime":
		return temporalTarget(dsl.LocalDateTime(), f)
	case "point":
		return pointTarget(f)
	default:
		return nil, fmt.Errorf("unknown kind %q: must be one of %v", f.kind, Kinds)
	}
}

func temporalTarget[V temporal.Value](s *dsl.TemporalSchema[V], f *schemaFlags) (*target, error) {
	if len(f.rules) > 0 {
		return nil, fmt.Errorf("--rule applies to points only")
	}
	for _, l := range f.limits() {
		if l.value == "" {
			continue
		}
		if _, err := temporal.Normalize(l.value, s.Kind()); err != nil {
			return nil, fmt.Errorf("--%s: %w", l.rule, err)
		}
		s = s.Rule(l.rule, l.value)
	}
	return &target{check: checkWith[V](s), jsonSchema: s.JSONSchema}, nil
}

func pointTarget(f *schemaFlags) (*target, error) {
	for _, l := range f.limits() {
		if l.value != "" {
			return nil, fmt.Errorf("--%s applies to temporal kinds only", l.rule)
		}
	}
	s := dsl.Point()
	for _, name := range f.rules {
		r, ok := spatial.ParseRule(name)
		if !ok {
			return nil, fmt.Errorf("unknown point rule %q", name)
		}
		s = s.Rule(r)
	}
	return &target{check: checkWith[spatial.Point](s), jsonSchema: s.JSONSchema}, nil
}

func checkWith[T fmt.Stringer](s goskema4j.Schema[T]) func(context.Context, any) (string, error) {
	return func(ctx context.Context, v any) (string, error) {
		out, err := s.Parse(ctx, v)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &schemaFlags{}
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a kind",
		Long: `Print the JSON Schema projection of --kind with the given limits and
rules applied.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tgt, err := opts.build()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			sch, err := tgt.jsonSchema()
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot project schema", err)
			}
			logger.FromContext(cmd.Context()).Debug("projected schema", "kind", opts.kind)
			// The schema itself is JSON, so both formats print it as is.
			return (&OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}).JSON(sch)
		},
	}
	opts.register(cmd)
	return cmd
}
