// Package validatorv10 registers the neo4j value kinds with
// github.com/go-playground/validator/v10.
//
//	v := validator.New()
//	if err := validatorv10.Register(v); err != nil { ... }
//
//	type Booking struct {
//		From  string        `validate:"neo4j_date"`
//		To    string        `validate:"neo4j_date,neo4j_date_min=From"`
//		Where spatial.Point `validate:"neo4j_point,neo4j_point_coordinates"`
//	}
//
// Relational tags take either the name of a sibling field or a literal
// limit. Struct fields of canonical or driver types validate as their string
// (temporal) or map (spatial) renderings.
package validatorv10

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/reoring/goskema4j/spatial"
	"github.com/reoring/goskema4j/temporal"
)

// Tag names.
const (
	TagDate          = "neo4j_date"
	TagDateTime      = "neo4j_datetime"
	TagLocalDateTime = "neo4j_localdatetime"

	TagPoint            = "neo4j_point"
	TagPointCoordinates = "neo4j_point_coordinates"
	TagPointCartesian   = "neo4j_point_cartesian"
	TagPoint3D          = "neo4j_point_3d"
	TagPoint2D          = "neo4j_point_2d"
)

type tagInfo struct {
	code string
	rule string
}

// tags maps every registered tag to its issue code and rule.
var tags = map[string]tagInfo{}

var temporalTags = map[temporal.Kind]string{
	temporal.KindDate:          TagDate,
	temporal.KindDateTime:      TagDateTime,
	temporal.KindLocalDateTime: TagLocalDateTime,
}

var pointTags = map[string]spatial.Rule{
	TagPoint:            spatial.RuleBase,
	TagPointCoordinates: spatial.RuleCoordinates,
	TagPointCartesian:   spatial.RuleCartesian,
	TagPoint3D:          spatial.RuleIs3D,
	TagPoint2D:          spatial.RuleIs2D,
}

func init() {
	for kind, tag := range temporalTags {
		tags[tag] = tagInfo{code: kind.TypeName() + ".base", rule: string(temporal.RuleBase)}
		for _, r := range temporal.Rules() {
			tags[RelationalTag(kind, r)] = tagInfo{code: kind.TypeName() + "." + string(r), rule: string(r)}
		}
	}
	for tag, r := range pointTags {
		tags[tag] = tagInfo{code: "neo4jPoint." + string(r), rule: string(r)}
	}
}

// RelationalTag returns the tag of a relational rule for kind, e.g.
// "neo4j_date_min".
func RelationalTag(kind temporal.Kind, rule temporal.Rule) string {
	return temporalTags[kind] + "_" + string(rule)
}

// Register installs every tag and the custom type funcs on v.
func Register(v *validator.Validate) error {
	for kind, tag := range temporalTags {
		if err := v.RegisterValidation(tag, validateTemporal(kind)); err != nil {
			return err
		}
		for _, r := range temporal.Rules() {
			if err := v.RegisterValidation(RelationalTag(kind, r), validateRelational(kind, r)); err != nil {
				return err
			}
		}
	}
	for tag, r := range pointTags {
		if err := v.RegisterValidation(tag, validatePoint(r)); err != nil {
			return err
		}
	}
	v.RegisterCustomTypeFunc(renderTemporal,
		temporal.Date{}, temporal.DateTime{}, temporal.LocalDateTime{},
		dbtype.Date{}, dbtype.LocalDateTime{},
	)
	v.RegisterCustomTypeFunc(renderPoint, spatial.Point{}, dbtype.Point2D{}, dbtype.Point3D{})
	return nil
}

// New returns a validator with Register applied.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

func validateTemporal(kind temporal.Kind) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw, ok := fieldValue(fl.Field())
		if !ok {
			return false
		}
		_, err := temporal.Normalize(raw, kind)
		return err == nil
	}
}

func validateRelational(kind temporal.Kind, rule temporal.Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw, ok := fieldValue(fl.Field())
		if !ok {
			return false
		}
		value, err := temporal.Normalize(raw, kind)
		if err != nil {
			return false
		}
		var limit any = fl.Param()
		if f, _, _, found := fl.GetStructFieldOK2(); found {
			if limit, ok = fieldValue(f); !ok {
				return false
			}
		}
		return temporal.Check(rule, value, limit) == nil
	}
}

func validatePoint(rule spatial.Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw, ok := fieldValue(fl.Field())
		if !ok {
			return false
		}
		p, err := spatial.Normalize(raw)
		if err != nil {
			return false
		}
		return spatial.Check(rule, p) == nil
	}
}

func fieldValue(f reflect.Value) (any, bool) {
	for f.IsValid() && (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) {
		if f.IsNil() {
			return nil, false
		}
		f = f.Elem()
	}
	if !f.IsValid() || !f.CanInterface() {
		return nil, false
	}
	return f.Interface(), true
}

// renderTemporal renders canonical and driver temporal values as strings.
// Zero values render as nil so that required and omitempty behave.
func renderTemporal(f reflect.Value) any {
	switch v := f.Interface().(type) {
	case temporal.Value:
		if v.Time().IsZero() {
			return nil
		}
		return v.String()
	case dbtype.Date:
		return temporal.DateOf(v.Time()).String()
	case dbtype.LocalDateTime:
		return temporal.LocalDateTimeOf(v.Time()).String()
	}
	return nil
}

// renderPoint renders points as their canonical map. The zero Point renders
// as nil.
func renderPoint(f reflect.Value) any {
	switch v := f.Interface().(type) {
	case spatial.Point:
		if v == (spatial.Point{}) {
			return nil
		}
		return v.Map()
	case dbtype.Point2D:
		return spatial.FromDBType(v).Map()
	case dbtype.Point3D:
		return spatial.FromDBType3D(v).Map()
	}
	return nil
}
