// Package temporal normalizes and orders Neo4j temporal values.
//
// Three canonical variants are provided: Date (calendar date, no zone),
// DateTime (date, time of day and UTC offset) and LocalDateTime (date and
// time of day, no zone). All of them implement Value and are immutable.
//
// Raw input (strings, time.Time, epoch milliseconds, Neo4j driver values or
// canonical values of another variant) is converted to a time.Time first and
// the requested variant is built from that instant:
//
//	d, err := temporal.NormalizeDate("2019-01-01T10:00:00Z")
//	// d.String() == "2019-01-01"
//
//	ok, err := temporal.Less(d, "2019-02-01")
//
// Every failure is an *InvalidInputError that matches ErrInvalidInput.
package temporal
