package validatorv10

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/i18n"
)

// Issues converts the error returned by (*validator.Validate).Struct into
// goskema4j.Issues. Failures of the neo4j tags carry the same codes and
// messages as the dsl schemas; other tags keep their tag as the code.
// A nil error yields nil.
func Issues(err error) goskema4j.Issues {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return goskema4j.AppendIssues(nil, goskema4j.Issue{
			Path:    "/",
			Code:    goskema4j.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		})
	}
	out := make(goskema4j.Issues, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, issueOf(fe))
	}
	return out
}

func issueOf(fe validator.FieldError) goskema4j.Issue {
	path := pathOf(fe.Namespace())
	info, ok := tags[fe.Tag()]
	if !ok {
		return goskema4j.IssueAt(path, fe.Tag(), fe.Error(), map[string]any{
			"label": fe.Field(),
			"param": fe.Param(),
		})
	}
	data := map[string]string{
		"label": fe.Field(),
		"value": goskema4j.Render(fe.Value()),
	}
	if fe.Param() != "" {
		data["limit"] = fe.Param()
	}
	params := make(map[string]any, len(data))
	for k, v := range data {
		params[k] = v
	}
	it := goskema4j.IssueAt(path, info.code, i18n.T(info.code, data), params)
	it.Rule = info.rule
	return it
}

// pathOf turns a validator namespace such as "Trip.Stops[1].At" into a
// PathRef, dropping the top-level struct name.
func pathOf(ns string) goskema4j.PathRef {
	p := goskema4j.Root()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for _, part := range parts {
		name, rest, _ := strings.Cut(part, "[")
		p = p.Field(name)
		for rest != "" {
			var idx string
			idx, rest, _ = strings.Cut(rest, "]")
			if i, err := strconv.Atoi(idx); err == nil {
				p = p.Index(i)
			} else {
				p = p.Field(idx)
			}
			rest = strings.TrimPrefix(rest, "[")
		}
	}
	return p
}
