// Package dsl provides schemas for neo4j temporal and spatial values.
//
// Overview
//   - Date()/DateTime()/LocalDateTime(): coerce strings, time.Time, epoch milliseconds and driver values into canonical temporal values.
//   - Relational rules: Min/Max/Less/Greater with a static limit, or MinFunc/... with a LimitFunc resolved at validation time.
//   - Point(): coerce loosely keyed coordinates into a spatial.Point; Coordinates/Cartesian/Is3D/Is2D narrow the accepted points.
//   - Object(): combine fields; Ref(name) reads a sibling field as a rule limit.
//
// Every builder method returns a modified copy. Rules run in declaration
// order and all failures are collected unless the context is fail-fast
// (goskema4j.WithFailFast or ParseOpt.FailFast).
//
// Example
//
//	period := g.Object().
//	    Field("from", g.Date().Adapter()).Required().
//	    Field("to",   g.Date().MinFunc(g.Ref("from")).Adapter()).Required().
//	    Field("at",   g.Point().Coordinates().Adapter()).
//	    UnknownStrict().
//	    MustBuild()
//
//	data := []byte(`{"from":"2019-01-01","to":"2018-12-31"}`)
//	_, err := goskema4j.ParseFrom(ctx, period, goskema4j.JSONBytes(data))
//	// err: neo4jDate.min at /to
//
// JSON Schema output hints
//
//	// Date => {"type":"string","format":"date"}; static limits become formatMinimum/formatMaximum
//	// Point => object with srid enum narrowed by the declared rules
//	sch, _ := g.Point().Is3D().JSONSchema()
package dsl
