package spatial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Point is a canonical spatial point. The zero value is not valid.
type Point struct {
	srid    SRID
	x, y, z float64
	hasZ    bool
}

// NewPoint2D builds a point without z. The SRID is not checked; see Validate.
func NewPoint2D(srid SRID, x, y float64) Point {
	return Point{srid: srid, x: x, y: y}
}

// NewPoint3D builds a point with z. The SRID is not checked; see Validate.
func NewPoint3D(srid SRID, x, y, z float64) Point {
	return Point{srid: srid, x: x, y: y, z: z, hasZ: true}
}

// FromDBType converts a driver point.
func FromDBType(p dbtype.Point2D) Point { return NewPoint2D(SRID(p.SpatialRefId), p.X, p.Y) }

// FromDBType3D converts a driver 3D point.
func FromDBType3D(p dbtype.Point3D) Point { return NewPoint3D(SRID(p.SpatialRefId), p.X, p.Y, p.Z) }

func (p Point) SRID() SRID { return p.srid }
func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }
func (p Point) HasZ() bool { return p.hasZ }

// Z returns the z coordinate and whether it is present.
func (p Point) Z() (float64, bool) { return p.z, p.hasZ }

// String renders the point the way the Neo4j drivers do, e.g.
// "Point{srid=4326, x=10.0, y=20.0}".
func (p Point) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Point{srid=%d, x=%s, y=%s", uint32(p.srid), formatCoord(p.x), formatCoord(p.y))
	if p.hasZ {
		fmt.Fprintf(b, ", z=%s", formatCoord(p.z))
	}
	b.WriteString("}")
	return b.String()
}

// Validate checks the SRID is known, z presence matches its dimension,
// coordinates are finite, and geographic points are within
// |x| <= 180 and |y| <= 90.
func (p Point) Validate() error {
	if !p.srid.Known() {
		return invalid(p, fmt.Errorf("%w %d", errUnknownSRID, uint32(p.srid)))
	}
	if p.srid.Is3D() != p.hasZ {
		return invalid(p, errDimension)
	}
	for _, c := range []float64{p.x, p.y, p.z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return invalid(p, errNotFinite)
		}
	}
	if p.srid.IsGeographic() && !inBounds(p) {
		return invalid(p, errOutOfRange)
	}
	return nil
}

// DBType returns a dbtype.Point2D or dbtype.Point3D.
func (p Point) DBType() any {
	if p.hasZ {
		return dbtype.Point3D{X: p.x, Y: p.y, Z: p.z, SpatialRefId: uint32(p.srid)}
	}
	return dbtype.Point2D{X: p.x, Y: p.y, SpatialRefId: uint32(p.srid)}
}

// Map returns the canonical map form {srid, x, y[, z]}.
func (p Point) Map() map[string]any {
	m := map[string]any{"srid": int(p.srid), "x": p.x, "y": p.y}
	if p.hasZ {
		m["z"] = p.z
	}
	return m
}

func inBounds(p Point) bool { return math.Abs(p.x) <= 180 && math.Abs(p.y) <= 90 }

func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
