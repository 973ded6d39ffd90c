package temporal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("temporal: invalid input")

var (
	errNotTemporal = errors.New("unsupported type")
	errEmptyString = errors.New("empty string")
)

// InvalidInputError reports a raw value that could not be normalized, or a
// canonical value that failed a relational rule against Limit.
type InvalidInputError struct {
	Kind  Kind
	Rule  Rule
	Value any
	// Limit is set for relational rules only.
	Limit any
	Err   error
}

func (e *InvalidInputError) Error() string {
	b := &strings.Builder{}
	b.WriteString("temporal: ")
	if r := e.rule(); r == RuleBase {
		fmt.Fprintf(b, "%s is not a valid %s", render(e.Value), e.Kind)
	} else {
		fmt.Fprintf(b, "%s must be %s %s", render(e.Value), r.phrase(), render(e.Limit))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Code returns the host-facing code, e.g. "neo4jDate.min".
func (e *InvalidInputError) Code() string { return e.Kind.TypeName() + "." + string(e.rule()) }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InvalidInputError) Unwrap() error { return e.Err }

func (e *InvalidInputError) rule() Rule {
	if e.Rule == "" {
		return RuleBase
	}
	return e.Rule
}

func render(v any) string {
	switch x := v.(type) {
	case Value:
		return strconv.Quote(x.String())
	case string:
		return strconv.Quote(x)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%v", x)
	}
}

func invalid(kind Kind, raw any, err error) *InvalidInputError {
	return &InvalidInputError{Kind: kind, Rule: RuleBase, Value: raw, Err: err}
}
