package yangtypes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/yangtypes/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeLength        = "length"
	CodePattern       = "pattern"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidLYB    = "invalid_lyb"
	CodeOutOfMemory   = "out_of_memory"
	CodeSystem        = "system"
	CodeNotFound      = "not_found"
	CodeDuplicate     = "duplicate"
)

// Error kinds. Issues match them with errors.Is according to their codes.
var (
	ErrInvalid  = errors.New("yangtypes: invalid value")
	ErrMemory   = errors.New("yangtypes: out of memory")
	ErrSystem   = errors.New("yangtypes: system failure")
	ErrNotFound = errors.New("yangtypes: plugin not found")
)

// Issue represents a single diagnostic.
type Issue struct {
	Path    string // Data path of the value when known.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input value (-1 when unknown).
	// InputFragment is an optional snippet of the offending input.
	InputFragment string
	// Params carries structured parameters (e.g., {"size": 7, "min": 8})
	// for i18n and observability.
	Params map[string]any
	// AppTag is the error-app-tag of the violated restriction, if any.
	AppTag string
}

// Kind returns the error kind for the issue code.
func (it Issue) Kind() error {
	switch it.Code {
	case CodeOutOfMemory:
		return ErrMemory
	case CodeSystem:
		return ErrSystem
	case CodeNotFound:
		return ErrNotFound
	default:
		return ErrInvalid
	}
}

// Issues is a collection of diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_lyb: Invalid LYB date-and-time value size 7 (expected at least 8).
		fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		if it.Path != "" {
			fmt.Fprintf(b, " at %s", it.Path)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue is of the target kind.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.Kind() == target {
			return true
		}
	}
	return false
}

// Unwrap exposes the causes of the issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// NewIssue builds a single-issue error with a translated message. key selects
// the message; data fills its placeholders.
func NewIssue(code, key string, data map[string]string) Issues {
	return Issues{{Code: code, Message: i18n.T(key, data), Offset: -1}}
}

// OutOfMemory reports an allocation failure caused by cause.
func OutOfMemory(cause error) Issues {
	iss := NewIssue(CodeOutOfMemory, "out_of_memory", nil)
	iss[0].Cause = cause
	return iss
}

// SystemFailure reports a failed system facility such as time zone loading.
func SystemFailure(cause error) Issues {
	iss := NewIssue(CodeSystem, "system", map[string]string{"cause": cause.Error()})
	iss[0].Cause = cause
	return iss
}
