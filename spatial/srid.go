package spatial

import (
	"strconv"
	"strings"
)

// SRID is a spatial reference identifier.
type SRID uint32

const (
	Cartesian2D  SRID = 7203
	Cartesian3D  SRID = 9157
	Geographic2D SRID = 4326 // WGS-84
	Geographic3D SRID = 4979 // WGS-84-3D
)

var sridNames = map[SRID]string{
	Cartesian2D:  "CARTESIAN",
	Cartesian3D:  "CARTESIAN-3D",
	Geographic2D: "WGS-84",
	Geographic3D: "WGS-84-3D",
}

// SRIDs lists the known identifiers.
func SRIDs() []SRID { return []SRID{Cartesian2D, Cartesian3D, Geographic2D, Geographic3D} }

// ParseSRID maps a symbolic name such as "wgs-84" to its identifier.
func ParseSRID(name string) (SRID, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for s, n := range sridNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

func (s SRID) Known() bool        { return s.Name() != "" }
func (s SRID) IsCartesian() bool  { return s == Cartesian2D || s == Cartesian3D }
func (s SRID) IsGeographic() bool { return s == Geographic2D || s == Geographic3D }
func (s SRID) Is3D() bool         { return s == Cartesian3D || s == Geographic3D }

// Name returns the symbolic name, or "" for an unknown identifier.
func (s SRID) Name() string { return sridNames[s] }

func (s SRID) String() string { return strconv.FormatUint(uint64(s), 10) }
