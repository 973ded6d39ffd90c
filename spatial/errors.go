package spatial

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("spatial: invalid input")

var (
	errUnknownSRID     = errors.New("unknown srid")
	errUnknownSRIDName = errors.New("unknown srid name")
	errNoSRID          = errors.New("cannot infer srid from keys")
	errMissingCoord    = errors.New("missing coordinate")
	errDimension       = errors.New("z presence does not match srid dimension")
	errNotFinite       = errors.New("coordinate is not finite")
	errOutOfRange      = errors.New("coordinates out of range")
	errNilPoint        = errors.New("nil point")
)

// InvalidInputError reports input that is not a valid point, or a point that
// failed Rule.
type InvalidInputError struct {
	Rule  Rule
	Value any
	Err   error
}

func (e *InvalidInputError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "spatial: %v %s", e.Value, e.rule().phrase())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Code returns the host-facing code, e.g. "neo4jPoint.is3d".
func (e *InvalidInputError) Code() string { return "neo4jPoint." + string(e.rule()) }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InvalidInputError) Unwrap() error { return e.Err }

func (e *InvalidInputError) rule() Rule {
	if e.Rule == "" {
		return RuleBase
	}
	return e.Rule
}

func invalid(raw any, err error) *InvalidInputError {
	return &InvalidInputError{Rule: RuleBase, Value: raw, Err: err}
}
