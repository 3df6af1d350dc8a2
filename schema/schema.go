// Package schema loads externally compiled type descriptors.
//
// A descriptor document lists typedefs with their base type and restrictions:
//
//	types:
//	  - module: example-types
//	    revision: "2024-01-01"
//	    name: short-timestamp
//	    base: string
//	    length:
//	      value: "20..25"
//	      error-message: timestamp too long
//	    patterns:
//	      - expr: '\d{4}-.*'
//	    format: date-time
//
// YAML documents are read strictly (duplicate keys and unknown fields are
// rejected); JSON documents reject unknown fields and duplicate keys too.
package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/yangtypes"
)

// Document is the on-disk form of a set of type descriptors.
type Document struct {
	Types []TypeDef `yaml:"types" json:"types"`
}

// TypeDef describes one typedef.
type TypeDef struct {
	Module      string       `yaml:"module" json:"module"`
	Revision    string       `yaml:"revision,omitempty" json:"revision,omitempty"`
	Name        string       `yaml:"name" json:"name"`
	Base        string       `yaml:"base" json:"base"`
	Length      *LengthDef   `yaml:"length,omitempty" json:"length,omitempty"`
	Patterns    []PatternDef `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Format      string       `yaml:"format,omitempty" json:"format,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
}

// LengthDef is a length restriction in YANG syntax, e.g. "1..10 | 20..max".
type LengthDef struct {
	Value        string `yaml:"value" json:"value"`
	ErrorMessage string `yaml:"error-message,omitempty" json:"error-message,omitempty"`
	AppTag       string `yaml:"error-app-tag,omitempty" json:"error-app-tag,omitempty"`
}

// PatternDef is a pattern restriction.
type PatternDef struct {
	Expr         string `yaml:"expr" json:"expr"`
	Inverted     bool   `yaml:"inverted,omitempty" json:"inverted,omitempty"`
	ErrorMessage string `yaml:"error-message,omitempty" json:"error-message,omitempty"`
	AppTag       string `yaml:"error-app-tag,omitempty" json:"error-app-tag,omitempty"`
}

// Compile turns the document into type descriptors, in document order.
func (d *Document) Compile() ([]*yangtypes.Type, error) {
	seen := make(map[string]struct{}, len(d.Types))
	out := make([]*yangtypes.Type, 0, len(d.Types))
	for i := range d.Types {
		td := &d.Types[i]
		typ, err := td.Compile()
		if err != nil {
			return nil, fmt.Errorf("schema: types[%d]: %w", i, err)
		}
		key := typ.Module + "@" + typ.Revision + ":" + typ.Name
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("schema: types[%d]: type %s defined twice", i, typ.QName())
		}
		seen[key] = struct{}{}
		out = append(out, typ)
	}
	return out, nil
}

// Compile builds the descriptor of a single typedef.
func (td *TypeDef) Compile() (*yangtypes.Type, error) {
	if td.Module == "" || td.Name == "" {
		return nil, errors.New("module and name are required")
	}
	base, ok := yangtypes.ParseBaseType(td.Base)
	if !ok {
		return nil, fmt.Errorf("%s:%s: unknown base type %q", td.Module, td.Name, td.Base)
	}
	typ := &yangtypes.Type{
		Module:      td.Module,
		Revision:    td.Revision,
		Name:        td.Name,
		Base:        base,
		Format:      td.Format,
		Description: td.Description,
	}
	if td.Length != nil {
		ranges, err := ParseLength(td.Length.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", typ.QName(), err)
		}
		typ.Length = &yangtypes.Length{Ranges: ranges, ErrorMessage: td.Length.ErrorMessage, AppTag: td.Length.AppTag}
	}
	for _, pd := range td.Patterns {
		p, err := yangtypes.NewPattern(pd.Expr, pd.Inverted)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", typ.QName(), err)
		}
		p.ErrorMessage = pd.ErrorMessage
		p.AppTag = pd.AppTag
		typ.Patterns = append(typ.Patterns, p)
	}
	return typ, nil
}

// ParseLength parses a YANG length expression. "min" and "max" stand for the
// smallest and the largest length.
func ParseLength(expr string) ([]yangtypes.Range, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, errors.New("empty length expression")
	}
	var out []yangtypes.Range
	var prev uint64
	for i, part := range strings.Split(expr, "|") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "..")
		from, err := parseBound(lo)
		if err != nil {
			return nil, fmt.Errorf("length %q: %w", expr, err)
		}
		to := from
		if isRange {
			if to, err = parseBound(hi); err != nil {
				return nil, fmt.Errorf("length %q: %w", expr, err)
			}
		}
		if to < from {
			return nil, fmt.Errorf("length %q: range %q is descending", expr, part)
		}
		if i > 0 && from <= prev {
			return nil, fmt.Errorf("length %q: ranges must be disjoint and ascending", expr)
		}
		prev = to
		out = append(out, yangtypes.Range{Min: from, Max: to})
	}
	return out, nil
}

func parseBound(s string) (uint64, error) {
	switch s = strings.TrimSpace(s); s {
	case "min":
		return 0, nil
	case "max":
		return ^uint64(0), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bound %q", s)
	}
	return n, nil
}
