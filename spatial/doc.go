// Package spatial normalizes Neo4j spatial points.
//
// A Point carries an SRID and two or three coordinates. Normalize accepts
// canonical points, the driver's dbtype.Point2D and dbtype.Point3D, and
// loosely keyed maps or structs:
//
//	p, err := spatial.Normalize(map[string]any{"lon": 10, "lat": 20})
//	// p.SRID() == spatial.Geographic2D
//
// Keys are matched exactly against the synonyms x|longitude|lon,
// y|latitude|lat and z|height; struct fields need mapstructure tags. When no srid key is given it is inferred from
// the keys that are present. A zero coordinate counts as present.
package spatial
