package temporal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// strictLayouts are tried before falling back to dateparse. Strings without
// a zone are read in UTC.
var strictLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	DateLayout,
}

// jsonNumber matches json.Number from encoding/json and goccy/go-json.
type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

// ToInstant converts raw temporal input to a time.Time.
//
// Accepted inputs: canonical values, time.Time, *time.Time, dbtype.Date,
// dbtype.LocalDateTime, strings and numbers. Numbers are epoch milliseconds.
// The returned error is not wrapped in an *InvalidInputError; Normalize and
// Compare do that.
func ToInstant(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case Value:
		return v.Time(), nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, errNotTemporal
		}
		return *v, nil
	case dbtype.Date:
		return time.Time(v), nil
	case *dbtype.Date:
		if v == nil {
			return time.Time{}, errNotTemporal
		}
		return time.Time(*v), nil
	case dbtype.LocalDateTime:
		return LocalDateTimeOf(time.Time(v)).Time(), nil
	case *dbtype.LocalDateTime:
		if v == nil {
			return time.Time{}, errNotTemporal
		}
		return LocalDateTimeOf(time.Time(*v)).Time(), nil
	case string:
		return parseString(v)
	case jsonNumber:
		if n, err := v.Int64(); err == nil {
			return time.UnixMilli(n).UTC(), nil
		}
		f, err := v.Float64()
		if err != nil {
			return time.Time{}, err
		}
		return fromMillis(f)
	case int:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int8:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int16:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int32:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int64:
		return time.UnixMilli(v).UTC(), nil
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return fromUnsigned(uint64(v))
	case uint16:
		return fromUnsigned(uint64(v))
	case uint32:
		return fromUnsigned(uint64(v))
	case uint64:
		return fromUnsigned(v)
	case float32:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	default:
		return time.Time{}, fmt.Errorf("%w %T", errNotTemporal, raw)
	}
}

func parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyString
	}
	for _, layout := range strictLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseIn(s, time.UTC)
}

func fromUnsigned(n uint64) (time.Time, error) {
	if n > math.MaxInt64 {
		return time.Time{}, fmt.Errorf("timestamp %d overflows int64", n)
	}
	return time.UnixMilli(int64(n)).UTC(), nil
}

func fromMillis(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, fmt.Errorf("timestamp %v is not finite", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return time.Time{}, fmt.Errorf("timestamp %v out of range", f)
	}
	ms, frac := math.Modf(f)
	return time.UnixMilli(int64(ms)).Add(time.Duration(frac * float64(time.Millisecond))).UTC(), nil
}
