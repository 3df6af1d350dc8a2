package yangtypes

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	js "github.com/reoring/yangtypes/jsonschema"
)

// BaseType is the built-in kind a derived type is restricted from.
type BaseType int

const (
	BaseUnknown BaseType = iota
	BaseBinary
	BaseUint8
	BaseUint16
	BaseUint32
	BaseUint64
	BaseString
	BaseBits
	BaseBool
	BaseDec64
	BaseEmpty
	BaseEnum
	BaseIdentityRef
	BaseInstanceID
	BaseLeafRef
	BaseUnion
	BaseInt8
	BaseInt16
	BaseInt32
	BaseInt64
)

var baseNames = [...]string{
	BaseUnknown:     "unknown",
	BaseBinary:      "binary",
	BaseUint8:       "uint8",
	BaseUint16:      "uint16",
	BaseUint32:      "uint32",
	BaseUint64:      "uint64",
	BaseString:      "string",
	BaseBits:        "bits",
	BaseBool:        "boolean",
	BaseDec64:       "decimal64",
	BaseEmpty:       "empty",
	BaseEnum:        "enumeration",
	BaseIdentityRef: "identityref",
	BaseInstanceID:  "instance-identifier",
	BaseLeafRef:     "leafref",
	BaseUnion:       "union",
	BaseInt8:        "int8",
	BaseInt16:       "int16",
	BaseInt32:       "int32",
	BaseInt64:       "int64",
}

func (b BaseType) String() string {
	if b >= 0 && int(b) < len(baseNames) {
		return baseNames[b]
	}
	return baseNames[BaseUnknown]
}

// ParseBaseType returns the BaseType named s.
func ParseBaseType(s string) (BaseType, bool) {
	for i, n := range baseNames {
		if i != int(BaseUnknown) && n == s {
			return BaseType(i), true
		}
	}
	return BaseUnknown, false
}

// Range is an inclusive length interval.
type Range struct {
	Min uint64
	Max uint64
}

// Length is a compiled length restriction.
type Length struct {
	Ranges       []Range
	ErrorMessage string
	AppTag       string
}

// Contains reports whether n falls into one of the ranges.
func (l *Length) Contains(n uint64) bool {
	for _, r := range l.Ranges {
		if n >= r.Min && n <= r.Max {
			return true
		}
	}
	return false
}

// Pattern is a compiled pattern restriction. Patterns always match the whole
// value.
type Pattern struct {
	Expr         string
	Inverted     bool
	ErrorMessage string
	AppTag       string

	re *regexp.Regexp
}

// NewPattern compiles expr as an anchored pattern.
func NewPattern(expr string, inverted bool) (*Pattern, error) {
	p := &Pattern{Expr: expr, Inverted: inverted}
	if err := p.Compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustPattern is like NewPattern but panics on an invalid expression.
func MustPattern(expr string) *Pattern {
	p, err := NewPattern(expr, false)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile (re)builds the matcher from Expr.
func (p *Pattern) Compile() error {
	re, err := regexp.Compile(`^(?:` + p.Expr + `)$`)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", p.Expr, err)
	}
	p.re = re
	return nil
}

// Match reports whether b satisfies the pattern, honoring Inverted.
func (p *Pattern) Match(b []byte) bool {
	if p.re == nil {
		if err := p.Compile(); err != nil {
			return false
		}
	}
	return p.re.Match(b) != p.Inverted
}

// Type is an externally compiled description of a schema type: the typedef
// identity a plugin is registered for, its base type and its restrictions.
// Types are consumed read-only.
type Type struct {
	Module   string
	Revision string
	Name     string
	Base     BaseType
	Length   *Length
	Patterns []*Pattern
	// Format optionally names a well-known value format for projections
	// (for example "date-time").
	Format      string
	Description string
}

// QName returns "module:name".
func (t *Type) QName() string { return t.Module + ":" + t.Name }

// CheckHints verifies that the syntactic hints fit the base type.
func (t *Type) CheckHints(hints Hints, value []byte) error {
	data := map[string]string{"value": string(value), "type": t.Base.String()}
	var key string
	switch t.Base {
	case BaseString, BaseBinary, BaseBits, BaseEnum, BaseIdentityRef, BaseInstanceID:
		if hints&HintString == 0 {
			key = "hint_string"
		}
	case BaseBool:
		if hints&HintBoolean == 0 {
			key = "hint_boolean"
		}
	case BaseEmpty:
		if hints&HintEmpty == 0 {
			key = "hint_empty"
		}
	case BaseInt8, BaseInt16, BaseInt32, BaseUint8, BaseUint16, BaseUint32:
		if hints&(HintDecNum|HintOctNum|HintHexNum) == 0 {
			key = "hint_number"
		}
	case BaseInt64, BaseUint64, BaseDec64:
		if hints&HintNum64 == 0 {
			key = "hint_num64"
		}
	}
	if key == "" {
		return nil
	}
	return NewIssue(CodeInvalidType, key, data)
}

// CheckLength verifies the value length, counted in characters, against the
// length restriction. Types without a restriction always pass.
func (t *Type) CheckLength(value []byte) error {
	if t.Length == nil {
		return nil
	}
	n := uint64(utf8.RuneCount(value))
	if t.Length.Contains(n) {
		return nil
	}
	iss := NewIssue(CodeLength, "length", map[string]string{"value": string(value)})
	if t.Length.ErrorMessage != "" {
		iss[0].Message = t.Length.ErrorMessage
	}
	iss[0].AppTag = t.Length.AppTag
	iss[0].Params = map[string]any{"length": n}
	return iss
}

// CheckPatterns verifies the value against every pattern and reports the
// first one not satisfied.
func (t *Type) CheckPatterns(value []byte) error {
	for _, p := range t.Patterns {
		if p.Match(value) {
			continue
		}
		key := "pattern"
		if p.Inverted {
			key = "pattern_inverted"
		}
		iss := NewIssue(CodePattern, key, map[string]string{"value": string(value), "pattern": p.Expr})
		if p.ErrorMessage != "" {
			iss[0].Message = p.ErrorMessage
		}
		iss[0].AppTag = p.AppTag
		iss[0].Params = map[string]any{"pattern": p.Expr}
		return iss
	}
	return nil
}

// JSONSchema projects the type into a JSON Schema representation.
func (t *Type) JSONSchema() (*js.Schema, error) {
	s := &js.Schema{Title: t.QName(), Description: t.Description, Format: t.Format}
	switch t.Base {
	case BaseBool:
		s.Type = "boolean"
	case BaseInt8, BaseInt16, BaseInt32, BaseUint8, BaseUint16, BaseUint32:
		s.Type = "integer"
	case BaseEmpty:
		s.Type = "array"
	case BaseUnknown, BaseUnion, BaseLeafRef:
		// unconstrained
	default:
		s.Type = "string"
	}
	if l := t.Length; l != nil && len(l.Ranges) > 0 {
		if len(l.Ranges) == 1 {
			s.MinLength, s.MaxLength = lengthBounds(l.Ranges[0])
		} else {
			for _, r := range l.Ranges {
				sub := &js.Schema{}
				sub.MinLength, sub.MaxLength = lengthBounds(r)
				s.AnyOf = append(s.AnyOf, sub)
			}
		}
	}
	var pats []*js.Schema
	for _, p := range t.Patterns {
		ps := &js.Schema{Pattern: `^(?:` + p.Expr + `)$`}
		if p.Inverted {
			ps = &js.Schema{Not: ps}
		}
		pats = append(pats, ps)
	}
	switch {
	case len(pats) == 1 && pats[0].Not == nil:
		s.Pattern = pats[0].Pattern
	case len(pats) > 0:
		s.AllOf = pats
	}
	return s, nil
}

// lengthBounds maps a range to JSON Schema bounds; a bound that does not
// fit into int (YANG "max") is left open.
func lengthBounds(r Range) (*int, *int) {
	var lo, hi *int
	if r.Min > 0 && r.Min <= uint64(maxInt) {
		v := int(r.Min)
		lo = &v
	}
	if r.Max <= uint64(maxInt) {
		v := int(r.Max)
		hi = &v
	}
	return lo, hi
}

const maxInt = int(^uint(0) >> 1)

// String renders the range in YANG syntax.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatUint(r.Min, 10)
	}
	hi := "max"
	if r.Max != ^uint64(0) {
		hi = strconv.FormatUint(r.Max, 10)
	}
	return strconv.FormatUint(r.Min, 10) + ".." + hi
}
