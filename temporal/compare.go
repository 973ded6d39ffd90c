package temporal

import (
	"errors"
	"fmt"
)

// Rule names a check over a canonical value. RuleBase is the normalization
// itself; the others compare against a limit.
type Rule string

const (
	RuleBase    Rule = "base"
	RuleMin     Rule = "min"
	RuleMax     Rule = "max"
	RuleLess    Rule = "less"
	RuleGreater Rule = "greater"
)

var errUnknownRule = errors.New("unknown rule")

// Rules lists the relational rules.
func Rules() []Rule { return []Rule{RuleMin, RuleMax, RuleLess, RuleGreater} }

// ParseRule looks up a relational rule by name.
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
	case RuleMin:
		return "greater than or equal to"
	case RuleMax:
		return "less than or equal to"
	case RuleLess:
		return "less than"
	case RuleGreater:
		return "greater than"
	default:
		return string(r)
	}
}

// holds reports whether the sign of a three-way comparison satisfies r.
func (r Rule) holds(c int) (bool, error) {
	switch r {
	case RuleMin:
		return c >= 0, nil
	case RuleMax:
		return c <= 0, nil
	case RuleLess:
		return c < 0, nil
	case RuleGreater:
		return c > 0, nil
	default:
		return false, fmt.Errorf("%w %q", errUnknownRule, string(r))
	}
}

// Compare orders two raw temporal inputs by the instant they denote. It
// returns -1, 0 or +1. Values of different variants are equal when their
// instants are.
//
// Conversion failures are reported against the variant of the first
// canonical argument, DateTime when neither is canonical.
func Compare(a, b any) (int, error) {
	kind := kindOf(a, b)
	ta, err := ToInstant(a)
	if err != nil {
		return 0, invalid(kind, a, err)
	}
	tb, err := ToInstant(b)
	if err != nil {
		return 0, invalid(kind, b, err)
	}
	return ta.Compare(tb), nil
}

// Holds reports whether a satisfies rule against limit.
func Holds(rule Rule, a, limit any) (bool, error) {
	c, err := Compare(a, limit)
	if err != nil {
		return false, err
	}
	ok, err := rule.holds(c)
	if err != nil {
		return false, &InvalidInputError{Kind: kindOf(a, limit), Rule: rule, Value: a, Limit: limit, Err: err}
	}
	return ok, nil
}

// Min reports a >= limit.
func Min(a, limit any) (bool, error) { return Holds(RuleMin, a, limit) }

// Max reports a <= limit.
func Max(a, limit any) (bool, error) { return Holds(RuleMax, a, limit) }

// Less reports a < limit.
func Less(a, limit any) (bool, error) { return Holds(RuleLess, a, limit) }

// Greater reports a > limit.
func Greater(a, limit any) (bool, error) { return Holds(RuleGreater, a, limit) }

// Check applies rule to a canonical value. A failed comparison returns an
// *InvalidInputError carrying rule, value and limit. When limit normalizes
// to the variant of value, the normalized limit is reported. A limit that is
// not temporal fails the rule itself, not the value's base check.
func Check(rule Rule, value Value, limit any) error {
	if value == nil {
		return invalid(KindDateTime, nil, errNotTemporal)
	}
	if _, err := ToInstant(limit); err != nil {
		return &InvalidInputError{Kind: value.Kind(), Rule: rule, Value: value, Limit: limit, Err: err}
	}
	ok, err := Holds(rule, value, limit)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	reported := limit
	if l, err := Normalize(limit, value.Kind()); err == nil {
		reported = l
	}
	return &InvalidInputError{Kind: value.Kind(), Rule: rule, Value: value, Limit: reported}
}

func kindOf(vs ...any) Kind {
	for _, v := range vs {
		if tv, ok := v.(Value); ok {
			return tv.Kind()
		}
	}
	return KindDateTime
}
