package spatial

import (
	"fmt"
	"math"

	"github.com/go-viper/mapstructure/v2"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// rawPoint is the synonym layout loosely keyed input is decoded into. A nil
// coordinate is absent; zero is present.
type rawPoint struct {
	SRID      any      `mapstructure:"srid"`
	X         *float64 `mapstructure:"x"`
	Longitude *float64 `mapstructure:"longitude"`
	Lon       *float64 `mapstructure:"lon"`
	Y         *float64 `mapstructure:"y"`
	Latitude  *float64 `mapstructure:"latitude"`
	Lat       *float64 `mapstructure:"lat"`
	Z         *float64 `mapstructure:"z"`
	Height    *float64 `mapstructure:"height"`
}

// Normalize converts raw into a validated Point.
//
// Canonical and driver points are validated as they are. Anything else is
// decoded as a map or struct; see the package documentation for the key
// rules. The caller's value is never modified.
func Normalize(raw any) (Point, error) {
	p, err := construct(raw)
	if err != nil {
		return Point{}, err
	}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

func construct(raw any) (Point, error) {
	switch v := raw.(type) {
	case Point:
		return v, nil
	case *Point:
		if v == nil {
			return Point{}, invalid(raw, errNilPoint)
		}
		return *v, nil
	case dbtype.Point2D:
		return FromDBType(v), nil
	case *dbtype.Point2D:
		if v == nil {
			return Point{}, invalid(raw, errNilPoint)
		}
		return FromDBType(*v), nil
	case dbtype.Point3D:
		return FromDBType3D(v), nil
	case *dbtype.Point3D:
		if v == nil {
			return Point{}, invalid(raw, errNilPoint)
		}
		return FromDBType3D(*v), nil
	case nil:
		return Point{}, invalid(raw, errNilPoint)
	}

	var rp rawPoint
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    &rp,
		TagName:   "mapstructure",
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return Point{}, invalid(raw, err)
	}
	if err := dec.Decode(raw); err != nil {
		return Point{}, invalid(raw, err)
	}

	srid, err := rp.resolveSRID()
	if err != nil {
		return Point{}, invalid(raw, err)
	}
	x, y, z := first(rp.X, rp.Longitude, rp.Lon), first(rp.Y, rp.Latitude, rp.Lat), first(rp.Z, rp.Height)
	if x == nil || y == nil {
		return Point{}, invalid(raw, errMissingCoord)
	}
	if srid.Known() && srid.Is3D() != (z != nil) {
		return Point{}, invalid(raw, errDimension)
	}
	if z != nil {
		return NewPoint3D(srid, *x, *y, *z), nil
	}
	return NewPoint2D(srid, *x, *y), nil
}

func (rp rawPoint) resolveSRID() (SRID, error) {
	switch v := rp.SRID.(type) {
	case nil:
		return rp.inferSRID()
	case string:
		if s, ok := ParseSRID(v); ok {
			return s, nil
		}
		return 0, fmt.Errorf("%w %q", errUnknownSRIDName, v)
	case SRID:
		return v, nil
	default:
		return numericSRID(v)
	}
}

func (rp rawPoint) inferSRID() (SRID, error) {
	switch {
	case first(rp.Longitude, rp.Lon) != nil && first(rp.Latitude, rp.Lat) != nil:
		if rp.Height != nil {
			return Geographic3D, nil
		}
		return Geographic2D, nil
	case rp.X != nil && rp.Y != nil:
		if rp.Z != nil {
			return Cartesian3D, nil
		}
		return Cartesian2D, nil
	default:
		return 0, errNoSRID
	}
}

// numericSRID accepts any integral number, including json.Number.
func numericSRID(v any) (SRID, error) {
	var f float64
	if err := mapstructure.Decode(v, &f); err != nil {
		return 0, fmt.Errorf("srid: %w", err)
	}
	if f < 0 || f > math.MaxUint32 || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w %v", errUnknownSRID, v)
	}
	return SRID(f), nil
}

func first(vs ...*float64) *float64 {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}
