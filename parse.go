package goskema4j

import (
	"context"
	"errors"
	"io"
)

// ParseFrom is the primary entry point. It decodes the Source into an any
// value and delegates validation to the Schema.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	var zero T
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	opt := lastOpt(opts)
	// propagate fail-fast intent via context for schema implementations
	if opt.FailFast {
		ctx = WithFailFast(ctx, true)
	}
	v, err := ReadValue(src, opt)
	if err != nil {
		return zero, err
	}
	return s.Parse(ctx, v)
}

// ReadValue decodes src without validating it. Decode failures are Issues
// with code parse_error, or truncated when MaxBytes is exceeded.
func ReadValue(src Source, opts ...ParseOpt) (any, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	v, err := src.decode(lastOpt(opts))
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// StreamParse validates JSON read from an io.Reader.
func StreamParse[T any](ctx context.Context, s Schema[T], r io.Reader, opts ...ParseOpt) (T, error) {
	return ParseFrom[T](ctx, s, JSONReader(r), opts...)
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	if errors.Is(err, errTruncated) {
		return AppendIssues(nil, Issue{Path: "/", Code: CodeTruncated, Message: err.Error(), Cause: err})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}
