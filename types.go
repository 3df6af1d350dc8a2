package yangtypes

import "github.com/sirupsen/logrus"

// Format identifies the representation of a value handed to Store or
// requested from Print.
type Format int

const (
	FormatCanonical      Format = iota // Canonical text; stored input is cached as the canonical string.
	FormatSchema                       // Text with schema (module) prefixes.
	FormatSchemaResolved               // Text with prefixes already resolved.
	FormatXML                          // XML element text.
	FormatJSON                         // JSON member text.
	FormatLYB                          // Compact binary LYB.
	FormatStrNS                        // Text with namespace-qualified prefixes.
)

var formatNames = [...]string{
	FormatCanonical:      "canonical",
	FormatSchema:         "schema",
	FormatSchemaResolved: "schema-resolved",
	FormatXML:            "xml",
	FormatJSON:           "json",
	FormatLYB:            "lyb",
	FormatStrNS:          "str-ns",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, bool) {
	for i, n := range formatNames {
		if n == s {
			return Format(i), true
		}
	}
	return 0, false
}

// IsText reports whether f is one of the textual formats.
func (f Format) IsText() bool { return f != FormatLYB }

// StoreOption is a bitmask passed to Store.
type StoreOption uint32

const (
	// StoreDynamic transfers ownership of the input slice to the plugin, which
	// may keep it (for example as the canonical string) without copying. The
	// caller must not use the slice after Store returns, even on failure.
	StoreDynamic StoreOption = 1 << iota
)

// Hints describe the syntactic context a textual value was extracted from.
type Hints uint32

const (
	HintString  Hints = 1 << iota // Value was a string (quoted in JSON).
	HintDecNum                    // Value was a decimal number.
	HintOctNum                    // Value may be an octal number.
	HintHexNum                    // Value may be a hexadecimal number.
	HintNum64                     // Value was a 64-bit number encoded as a string.
	HintBoolean                   // Value was a boolean literal.
	HintEmpty                     // Value was the empty-type encoding.

	// HintData is used by untyped formats (XML) where any encoding is possible.
	HintData = HintString | HintDecNum | HintOctNum | HintHexNum | HintNum64 | HintBoolean | HintEmpty
)

// PrefixData is the format-specific prefix resolution context. Types whose
// values never carry prefixes ignore it.
type PrefixData any

// Options configure a Context.
type Options struct {
	// TimeZone is the IANA zone used when printing local times. Empty or
	// "Local" selects the process zone.
	TimeZone string
	// MaxDictEntries bounds the dictionary; zero means unlimited.
	MaxDictEntries int
	// Logger receives diagnostics; nil selects the logrus standard logger.
	Logger *logrus.Entry
}
