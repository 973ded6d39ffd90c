package spatial

import (
	"errors"
	"fmt"
)

// Rule names a check over a canonical point.
type Rule string

const (
	RuleBase        Rule = "base"
	RuleCoordinates Rule = "coordinates"
	RuleCartesian   Rule = "cartesian"
	RuleIs3D        Rule = "is3d"
	RuleIs2D        Rule = "is2d"
)

var errUnknownRule = errors.New("unknown rule")

// Rules lists the classification rules.
func Rules() []Rule { return []Rule{RuleCoordinates, RuleCartesian, RuleIs3D, RuleIs2D} }

// ParseRule looks up a classification rule by name.
func ParseRule(s string) (Rule, bool) {
	for _, r := range Rules() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

func (r Rule) phrase() string {
	switch r {
	case RuleCoordinates:
		return "must be a valid coordinates point"
	case RuleCartesian:
		return "must be a valid cartesian point"
	case RuleIs3D:
		return "must be a valid 3D point"
	case RuleIs2D:
		return "must be a valid 2D point"
	default:
		return "must be a valid point"
	}
}

// IsCartesian reports a cartesian SRID.
func IsCartesian(p Point) bool { return p.srid.IsCartesian() }

// IsGeographic reports a geographic SRID with in-range coordinates.
func IsGeographic(p Point) bool { return p.srid.IsGeographic() && inBounds(p) }

// Is3D reports a 3D SRID with z present.
func Is3D(p Point) bool { return p.srid.Is3D() && p.hasZ }

// Is2D reports a known 2D SRID with z absent.
func Is2D(p Point) bool { return p.srid.Known() && !p.srid.Is3D() && !p.hasZ }

// Holds reports whether p satisfies rule.
func Holds(rule Rule, p Point) (bool, error) {
	switch rule {
	case RuleBase:
		return p.Validate() == nil, nil
	case RuleCoordinates:
		return IsGeographic(p), nil
	case RuleCartesian:
		return IsCartesian(p), nil
	case RuleIs3D:
		return Is3D(p), nil
	case RuleIs2D:
		return Is2D(p), nil
	default:
		return false, fmt.Errorf("%w %q", errUnknownRule, string(rule))
	}
}

// Check applies rule to p and returns an *InvalidInputError when it fails.
func Check(rule Rule, p Point) error {
	if rule == RuleBase {
		return p.Validate()
	}
	ok, err := Holds(rule, p)
	if err != nil {
		return &InvalidInputError{Rule: rule, Value: p, Err: err}
	}
	if !ok {
		return &InvalidInputError{Rule: rule, Value: p}
	}
	return nil
}
