package validatorv10_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goskema4j "github.com/reoring/goskema4j"
	"github.com/reoring/goskema4j/spatial"
	"github.com/reoring/goskema4j/temporal"
	"github.com/reoring/goskema4j/validatorv10"
)

type booking struct {
	From  string         `validate:"neo4j_date"`
	To    string         `validate:"neo4j_date,neo4j_date_min=From"`
	Until string         `validate:"omitempty,neo4j_datetime_less=2030-01-01T00:00:00Z"`
	Where map[string]any `validate:"omitempty,neo4j_point,neo4j_point_coordinates"`
}

type stored struct {
	Day   temporal.Date        `validate:"neo4j_date,neo4j_date_greater=2000-01-01"`
	Wall  dbtype.LocalDateTime `validate:"neo4j_localdatetime"`
	Site  spatial.Point        `validate:"neo4j_point,neo4j_point_3d"`
	Plain dbtype.Point2D       `validate:"neo4j_point_cartesian,neo4j_point_2d"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v, err := validatorv10.New()
	require.NoError(t, err)
	return v
}

func TestRegister_Accepts(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(booking{
		From:  "2019-01-01",
		To:    "2019-01-31",
		Until: "2029-12-31T23:59:59Z",
		Where: map[string]any{"lon": 10.0, "lat": 20.0},
	})
	assert.NoError(t, err)
}

func TestRegister_SiblingReference(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(booking{From: "2019-02-01", To: "2019-01-31"})
	require.Error(t, err)

	iss := validatorv10.Issues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/To", iss[0].Path)
	assert.Equal(t, "neo4jDate.min", iss[0].Code)
	assert.Equal(t, "min", iss[0].Rule)
	assert.Equal(t, `"To" must be greater than or equal to "From"`, iss[0].Message)
}

func TestRegister_LiteralLimitAndBase(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(booking{
		From:  "not a date",
		To:    "2019-01-31",
		Until: "2031-01-01T00:00:00Z",
		Where: map[string]any{"x": 1, "y": 2, "srid": 7203},
	})
	require.Error(t, err)

	codes := map[string]string{}
	for _, it := range validatorv10.Issues(err) {
		codes[it.Path] = it.Code
	}
	assert.Equal(t, map[string]string{
		"/From":  "neo4jDate.base",
		"/To":    "neo4jDate.min",
		"/Until": "neo4jDateTime.less",
		"/Where": "neo4jPoint.coordinates",
	}, codes)
}

func TestRegister_CanonicalAndDriverFields(t *testing.T) {
	v := newValidator(t)
	ok := stored{
		Day:   temporal.NewDate(2019, time.January, 1),
		Wall:  dbtype.LocalDateTime(time.Date(2019, 1, 1, 12, 0, 0, 0, time.UTC)),
		Site:  spatial.NewPoint3D(spatial.Geographic3D, 10, 20, 30),
		Plain: dbtype.Point2D{SpatialRefId: 7203, X: 1, Y: 2},
	}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.Day = temporal.NewDate(1999, time.December, 31)
	bad.Site = spatial.NewPoint2D(spatial.Geographic2D, 10, 20)
	bad.Plain = dbtype.Point2D{SpatialRefId: 4326, X: 1, Y: 2}
	codes := map[string]string{}
	for _, it := range validatorv10.Issues(v.Struct(bad)) {
		codes[it.Path] = it.Code
	}
	assert.Equal(t, map[string]string{
		"/Day":   "neo4jDate.greater",
		"/Site":  "neo4jPoint.is3d",
		"/Plain": "neo4jPoint.cartesian",
	}, codes)
}

func TestRegister_ZeroCanonicalIsAbsent(t *testing.T) {
	type optional struct {
		Day temporal.Date `validate:"omitempty,neo4j_date"`
		At  spatial.Point `validate:"required,neo4j_point"`
	}
	v := newValidator(t)
	iss := validatorv10.Issues(v.Struct(optional{}))
	require.Len(t, iss, 1)
	assert.Equal(t, "/At", iss[0].Path)
	assert.Equal(t, "required", iss[0].Code)
}

func TestIssues_NestedPaths(t *testing.T) {
	type stop struct {
		At string `validate:"neo4j_localdatetime"`
	}
	type trip struct {
		Stops []stop `validate:"dive"`
	}
	v := newValidator(t)
	iss := validatorv10.Issues(v.Struct(trip{Stops: []stop{{At: "2019-01-01T10:00:00"}, {At: "x"}}}))
	require.Len(t, iss, 1)
	assert.Equal(t, "/Stops/1/At", iss[0].Path)
	assert.Equal(t, "neo4jLocalDateTime.base", iss[0].Code)
}

func TestIssues_NonValidationError(t *testing.T) {
	assert.Nil(t, validatorv10.Issues(nil))

	v := newValidator(t)
	iss := validatorv10.Issues(v.Struct(42))
	require.Len(t, iss, 1)
	assert.Equal(t, goskema4j.CodeParseError, iss[0].Code)
}

func TestRelationalTag(t *testing.T) {
	assert.Equal(t, "neo4j_localdatetime_greater", validatorv10.RelationalTag(temporal.KindLocalDateTime, temporal.RuleGreater))
	assert.Equal(t, "neo4j_date_min", validatorv10.RelationalTag(temporal.KindDate, temporal.RuleMin))
}
