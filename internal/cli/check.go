package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/internal/logger"
)

// CheckResult is the outcome for one checked value.
type CheckResult struct {
	Path   string      `json:"path"`
	Valid  bool        `json:"valid"`
	Value  string      `json:"value,omitempty"`
	Issues []IssueView `json:"issues,omitempty"`
}

// CheckReport is the data payload of check.
type CheckReport struct {
	Kind    string        `json:"kind"`
	Checked int           `json:"checked"`
	Failed  int           `json:"failed"`
	Results []CheckResult `json:"results"`
}

type checkOptions struct {
	schemaFlags
	input string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Normalize and validate values",
		Long: `Read a JSON or YAML document holding one value or an array of values,
normalize each to --kind and apply the declared rules.

The input format follows the file extension (.yaml, .yml) unless --input is
given. Standard input is read when FILE is "-" or omitted.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := "-"
			if len(args) == 1 {
				file = args[0]
			}
			return runCheck(cmd, rootOpts, opts, file)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.input, "input", "", "input format (json|yaml), default from extension")
	return cmd
}

func runCheck(cmd *cobra.Command, rootOpts *RootOptions, opts *checkOptions, file string) error {
	log := logger.FromContext(cmd.Context())
	tgt, err := opts.build()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	src, closeFn, err := openSource(cmd, file, opts.input)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read input", err)
	}
	defer closeFn()

	doc, err := goskema4j.ReadValue(src, goskema4j.ParseOpt{MaxBytes: rootOpts.MaxBytes})
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot decode input", err)
	}
	log.Debug("decoded input", "file", file, "format", src.Format())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if rootOpts.FailFast {
		ctx = goskema4j.WithFailFast(ctx, true)
	}

	report := CheckReport{Kind: opts.kind}
	check := func(p goskema4j.PathRef, v any) {
		res := CheckResult{Path: p.Pointer()}
		out, err := tgt.check(ctx, v)
		if err != nil {
			res.Issues = viewIssues(goskema4j.Rebase(goskema4j.IssuesFrom(err, ""), p))
			report.Failed++
		} else {
			res.Valid = true
			res.Value = out
		}
		report.Checked++
		report.Results = append(report.Results, res)
	}
	if arr, ok := doc.([]any); ok {
		for i, v := range arr {
			check(goskema4j.Root().Index(i), v)
		}
	} else {
		check(goskema4j.Root(), doc)
	}
	log.Debug("checked values", "kind", opts.kind, "checked", report.Checked, "failed", report.Failed)

	if err := writeReport(&OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		log.Warn("validation failed", "failed", report.Failed)
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d values failed", report.Failed, report.Checked))
	}
	return nil
}

func writeReport(f *OutputFormatter, r CheckReport) error {
	if f.Format == "json" {
		status := "ok"
		if r.Failed > 0 {
			status = "error"
		}
		return f.JSON(Response{Status: status, Data: r})
	}
	for _, res := range r.Results {
		if res.Valid {
			f.Printf("%s ok %s\n", res.Path, res.Value)
			continue
		}
		for _, it := range res.Issues {
			f.Printf("%s %s: %s\n", it.Path, it.Code, it.Message)
		}
	}
	f.Printf("%d checked, %d failed\n", r.Checked, r.Failed)
	return nil
}

func openSource(cmd *cobra.Command, file, format string) (goskema4j.Source, func(), error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	if format != "json" && format != "yaml" {
		return nil, nil, fmt.Errorf("unknown input format %q", format)
	}

	r := cmd.InOrStdin()
	closeFn := func() {}
	if file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return nil, nil, err
		}
		r, closeFn = fh, func() { _ = fh.Close() }
	}
	if format == "yaml" {
		return goskema4j.YAMLReader(r), closeFn, nil
	}
	return goskema4j.JSONReader(r), closeFn, nil
}
