// Package yangtypes provides:
//
// - A plugin contract (Store/Compare/Print/Duplicate/Free, optional
// Validate and Sort) for values of schema-declared types
// - Textual formats (canonical, XML, JSON, ...) and the compact binary LYB format
// - Canonical strings interned in a per-Context dictionary
// - A stable error model via Issues (code, message, offending input)
//
// Design policy:
// - Keep the contract, the value and the type descriptor in the root package.
// - Place plugins under plugins/, the dictionary under dict/, descriptor
// loading under schema/ and the CLI under cmd/yangtypes.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	ctx := yangtypes.NewContext(plugins.NewRegistry(), yangtypes.Options{TimeZone: "UTC"})
//	v, err := ctx.Store(dateandtime.Type(), []byte("2021-06-15T10:00:00-05:30"), 0, yangtypes.FormatJSON, yangtypes.HintData)
//	out, err := ctx.Print(v, yangtypes.FormatJSON) // 2021-06-15T15:30:00+00:00
//	lyb, err := ctx.Print(v, yangtypes.FormatLYB)
//	ctx.Free(v)
package yangtypes
