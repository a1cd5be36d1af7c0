// Package schema describes the shape of a table: the ordered column names
// and the value domain (kind) of each column.
//
// Kinds form a small fixed set (string, int, float, bool, time, any) with a
// Validate method used both for membership checks and for inferring a
// column's kind from its cells:
//
//	kind := schema.Infer([]any{1, 2, 3})   // schema.Int()
//	kind.Validate("oops")                  // error
//
// A Schema is an ordered list of columns, as reported by a table backend:
//
//	s := schema.Schema{
//	    {Name: "city", Kind: schema.String()},
//	    {Name: "temp", Kind: schema.Float()},
//	}
//	s.Names() // ["city", "temp"]
//
// This package has no dependencies beyond the Go standard library so that
// table backends and selectors can share it freely.
package schema
