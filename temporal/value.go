package temporal

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Layouts used to render (and strictly parse) canonical values.
const (
	DateLayout          = "2006-01-02"
	DateTimeLayout      = "2006-01-02T15:04:05.000000000Z07:00"
	LocalDateTimeLayout = "2006-01-02T15:04:05.000000000"
)

// Kind tags a canonical temporal variant.
type Kind uint8

const (
	KindDate Kind = iota + 1
	KindDateTime
	KindLocalDateTime
)

// String returns the variant name ("Date", "DateTime", "LocalDateTime").
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "Date"
	case KindDateTime:
		return "DateTime"
	case KindLocalDateTime:
		return "LocalDateTime"
	default:
		return "Temporal"
	}
}

// TypeName returns the host-facing type name used as the error code prefix.
func (k Kind) TypeName() string { return "neo4j" + k.String() }

// Valid reports whether k is one of the three variants.
func (k Kind) Valid() bool { return k >= KindDate && k <= KindLocalDateTime }

// Value is a canonical temporal value. The set of implementations is closed.
type Value interface {
	Kind() Kind
	// Time returns the instant the value denotes. Zone-less variants are
	// anchored in UTC.
	Time() time.Time
	String() string

	sealed()
}

// Date is a calendar date without time of day or zone.
type Date struct{ t time.Time }

// DateOf returns the calendar date of t, read in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// NewDate builds a Date from its components. Out-of-range components are
// normalized the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Kind() Kind          { return KindDate }
func (d Date) Time() time.Time     { return d.t }
func (d Date) String() string      { return d.t.Format(DateLayout) }
func (d Date) Year() int           { return d.t.Year() }
func (d Date) Month() time.Month   { return d.t.Month() }
func (d Date) Day() int            { return d.t.Day() }
func (d Date) DBType() dbtype.Date { return dbtype.Date(d.t) }
func (Date) sealed()               {}

// DateTime is an instant with a fixed UTC offset.
type DateTime struct{ t time.Time }

// DateTimeOf keeps t's instant and offset. The monotonic reading is dropped.
func DateTimeOf(t time.Time) DateTime { return DateTime{t: t.Round(0)} }

func (d DateTime) Kind() Kind      { return KindDateTime }
func (d DateTime) Time() time.Time { return d.t }
func (d DateTime) String() string  { return d.t.Format(DateTimeLayout) }

// Offset returns the UTC offset in seconds.
func (d DateTime) Offset() int {
	_, off := d.t.Zone()
	return off
}

// DBType returns the value as the Neo4j driver represents DATETIME.
func (d DateTime) DBType() time.Time { return d.t }
func (DateTime) sealed()             {}

// LocalDateTime is a date and time of day without zone.
type LocalDateTime struct{ t time.Time }

// LocalDateTimeOf returns the wall clock of t, read in t's own location.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return LocalDateTime{t: time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)}
}

func (d LocalDateTime) Kind() Kind      { return KindLocalDateTime }
func (d LocalDateTime) Time() time.Time { return d.t }
func (d LocalDateTime) String() string  { return d.t.Format(LocalDateTimeLayout) }

// DBType returns the value as the Neo4j driver represents LOCALDATETIME.
func (d LocalDateTime) DBType() dbtype.LocalDateTime { return dbtype.LocalDateTime(d.t) }
func (LocalDateTime) sealed()                        {}

// Of builds the kind variant from an instant.
func Of(kind Kind, t time.Time) (Value, bool) {
	switch kind {
	case KindDate:
		return DateOf(t), true
	case KindDateTime:
		return DateTimeOf(t), true
	case KindLocalDateTime:
		return LocalDateTimeOf(t), true
	default:
		return nil, false
	}
}
