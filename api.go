package yangtypes

import "github.com/reoring/yangtypes/dict"

// Value is the runtime representation of one typed data value.
type Value struct {
	// Canonical caches the canonical text in the context dictionary. It is
	// filled by Store (canonical input) or lazily by Print and never changes
	// afterwards.
	Canonical dict.Ref
	// Payload is owned by the plugin of RealType, for example
	// *dateandtime.Stored.
	Payload any
	// RealType is the descriptor the value was stored with.
	RealType *Type
}

// CanonicalString returns the cached canonical text, "" when not yet cached.
func (v *Value) CanonicalString() string { return v.Canonical.String() }

// Printed is the result of Plugin.Print.
type Printed struct {
	Value string
	// Dynamic is true when Value was built for this call and belongs to the
	// caller. Otherwise Value is the interned canonical string shared with the
	// printed Value and stays valid until that value is freed.
	Dynamic bool
}

// Bytes returns the printed value as a byte slice.
func (p Printed) Bytes() []byte { return []byte(p.Value) }

// Plugin implements storing, comparing, printing, duplicating and freeing
// values of one schema type. A Plugin is selected by a Registry through the
// (module, revision, name) of the type descriptor.
type Plugin interface {
	// ID identifies the implementation, for logs and metrics.
	ID() string

	// Store converts value in format into out. out is overwritten; on error
	// it is left freed, so passing it to Free is always safe. With
	// StoreDynamic in opts the plugin owns value.
	Store(ctx *Context, typ *Type, value []byte, opts StoreOption, format Format, prefix PrefixData, hints Hints, out *Value) error

	// Compare reports whether a and b hold the same value. Values of
	// different types are never equal.
	Compare(ctx *Context, a, b *Value) bool

	// Print encodes v in format. Textual formats may populate v.Canonical.
	Print(ctx *Context, v *Value, format Format, prefix PrefixData) (Printed, error)

	// Duplicate deep-copies src into dst, acquiring a new reference to the
	// canonical string in ctx. On error dst is left freed.
	Duplicate(ctx *Context, src, dst *Value) error

	// Free releases the canonical reference and the payload. It is safe on a
	// zero Value and on an already freed one.
	Free(ctx *Context, v *Value)
}

// Validator provides an optional second validation pass which needs the data
// tree. If it is not implemented, the pass is skipped.
type Validator interface {
	Validate(ctx *Context, typ *Type, v *Value, tree any) error
}

// Sorter provides an optional total order used for sorting list and
// leaf-list instances. It returns a negative, zero or positive number.
type Sorter interface {
	Sort(ctx *Context, a, b *Value) int
}
