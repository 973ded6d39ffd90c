package temporal

import (
	"errors"
	"time"
)

var errUnknownKind = errors.New("unknown temporal kind")

// Normalize converts raw to the canonical variant kind.
//
// A canonical value that already is of kind is returned unchanged. Anything
// else goes through ToInstant and the variant is built from the instant.
func Normalize(raw any, kind Kind) (Value, error) {
	if !kind.Valid() {
		return nil, invalid(kind, raw, errUnknownKind)
	}
	if v, ok := raw.(Value); ok && v.Kind() == kind {
		return v, nil
	}
	t, err := ToInstant(raw)
	if err != nil {
		return nil, invalid(kind, raw, err)
	}
	v, _ := Of(kind, t)
	return v, nil
}

// NormalizeDate is Normalize(raw, KindDate) with a concrete result.
func NormalizeDate(raw any) (Date, error) {
	v, err := Normalize(raw, KindDate)
	if err != nil {
		return Date{}, err
	}
	return v.(Date), nil
}

// NormalizeDateTime is Normalize(raw, KindDateTime) with a concrete result.
func NormalizeDateTime(raw any) (DateTime, error) {
	v, err := Normalize(raw, KindDateTime)
	if err != nil {
		return DateTime{}, err
	}
	return v.(DateTime), nil
}

// NormalizeLocalDateTime is Normalize(raw, KindLocalDateTime) with a concrete
// result.
func NormalizeLocalDateTime(raw any) (LocalDateTime, error) {
	v, err := Normalize(raw, KindLocalDateTime)
	if err != nil {
		return LocalDateTime{}, err
	}
	return v.(LocalDateTime), nil
}

// ParseDate parses s in DateLayout only.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, invalid(KindDate, s, err)
	}
	return DateOf(t), nil
}

// ParseDateTime parses s as RFC 3339. A zone designator is required.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return DateTime{}, invalid(KindDateTime, s, err)
	}
	return DateTimeOf(t), nil
}

// ParseLocalDateTime parses s as a zone-less RFC 3339 date and time. The
// fractional second is optional.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.UTC)
	if err != nil {
		return LocalDateTime{}, invalid(KindLocalDateTime, s, err)
	}
	return LocalDateTimeOf(t), nil
}

// Parse dispatches to the strict parser of kind.
func Parse(s string, kind Kind) (Value, error) {
	switch kind {
	case KindDate:
		return ParseDate(s)
	case KindDateTime:
		return ParseDateTime(s)
	case KindLocalDateTime:
		return ParseLocalDateTime(s)
	default:
		return nil, invalid(kind, s, errUnknownKind)
	}
}
