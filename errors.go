package goskema4j

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goskema4j/i18n"
	"github.com/reoring/goskema4j/spatial"
	"github.com/reoring/goskema4j/temporal"
)

// Generic issue codes. Value-kind codes such as "neo4jDate.min" come from the
// temporal and spatial errors; see FromError.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
)

// DefaultLabel is used in messages when a schema has no label.
const DefaultLabel = "value"

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2).
	Code    string // A generic code above or a value-kind code.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters ("label", "value", "limit") for
	// i18n and observability.
	Params map[string]any
	// Rule optionally records the rule name that produced this issue.
	Rule string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. neo4jDate.min at /from
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// FromError maps a temporal or spatial *InvalidInputError into an Issue at
// the root path, labelled DefaultLabel. It reports false for other errors.
func FromError(err error) (Issue, bool) { return FromLabeledError(err, DefaultLabel) }

// FromLabeledError is FromError with a custom label.
func FromLabeledError(err error, label string) (Issue, bool) {
	if label == "" {
		label = DefaultLabel
	}
	var (
		te *temporal.InvalidInputError
		se *spatial.InvalidInputError
	)
	switch {
	case errors.As(err, &te):
		params := map[string]string{"label": label, "value": Render(te.Value)}
		if te.Rule != temporal.RuleBase && te.Rule != "" {
			params["limit"] = Render(te.Limit)
		}
		return newIssue(te.Code(), string(te.Rule), params, err), true
	case errors.As(err, &se):
		params := map[string]string{"label": label, "value": Render(se.Value)}
		return newIssue(se.Code(), string(se.Rule), params, err), true
	default:
		return Issue{}, false
	}
}

// IssuesFrom converts err into Issues. Issues pass through; temporal and
// spatial errors map through FromLabeledError; anything else becomes a
// parse_error.
func IssuesFrom(err error, label string) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	if it, ok := FromLabeledError(err, label); ok {
		return AppendIssues(nil, it)
	}
	return singleIssue(CodeParseError, err.Error())
}

// Render formats a value for messages: canonical values and points use
// their String form, everything else fmt's default.
func Render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func newIssue(code, rule string, params map[string]string, cause error) Issue {
	p := make(map[string]any, len(params))
	for k, v := range params {
		p[k] = v
	}
	return Issue{Path: "/", Code: code, Message: i18n.T(code, params), Cause: cause, Params: p, Rule: rule}
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
