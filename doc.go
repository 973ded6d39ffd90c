// Package goskema4j provides Neo4j temporal and spatial value kinds for
// goskema-style schemas:
//
// - Type-safe validation and transformation based on Schema/Codec (Parse/Validate/Decode/Encode)
// - A stable error model via Issues (JSON Pointer, code, message, params)
// - JSON and YAML sources feeding the same schemas
//
// The normalizers live in temporal/ and spatial/ and know nothing about
// schemas. Schemas are under dsl/, codecs under codec/, a
// go-playground/validator adapter under validatorv10/ and the CLI under
// cmd/goskema4j.
//
// Typical usage:
//
//	s := dsl.Date().Min("2019-01-01")
//	d, err := goskema4j.ParseFrom(ctx, s, goskema4j.JSONBytes([]byte(`"2019-06-01"`)))
//
//	iss, _ := goskema4j.AsIssues(err)
//	for _, it := range iss {
//		fmt.Println(it.Code, it.Message) // neo4jDate.min "value" must be ...
//	}
package goskema4j
