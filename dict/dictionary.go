// Package dict provides the interned-string store used for canonical values.
//
// A Dictionary maps string content to one shared, reference-counted entry.
// Every Insert, InsertZC and Dup hands out a Ref holding one reference; the
// entry disappears once every reference was passed back to Remove.
package dict

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/reoring/yangtypes/internal/metrics"
)

// ErrLimit is returned when an insert would exceed the configured entry limit.
var ErrLimit = errors.New("dict: entry limit reached")

type entry struct {
	value string
	refs  int
}

// Ref is a handle to an interned string. The zero Ref holds nothing and is
// accepted (and ignored) by Remove.
type Ref struct {
	e *entry
}

// String returns the interned content, "" for the zero Ref.
func (r Ref) String() string {
	if r.e == nil {
		return ""
	}
	return r.e.value
}

// IsZero reports whether the Ref holds no reference.
func (r Ref) IsZero() bool { return r.e == nil }

// Len returns the byte length of the interned content.
func (r Ref) Len() int { return len(r.String()) }

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithMaxEntries limits the number of distinct strings. Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(d *Dictionary) { d.maxEntries = n }
}

// Dictionary is a context-scoped interned-string store.
type Dictionary struct {
	mu         sync.Mutex
	entries    map[string]*entry
	maxEntries int
}

// New returns an empty Dictionary.
func New(opts ...Option) *Dictionary {
	d := &Dictionary{entries: make(map[string]*entry)}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Insert interns a copy of b.
func (d *Dictionary) Insert(b []byte) (Ref, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.entries[string(b)]; ok {
		e.refs++
		return Ref{e: e}, nil
	}
	return d.add(string(b))
}

// InsertString interns s. Strings are immutable so no copy is made.
func (d *Dictionary) InsertString(s string) (Ref, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.acquire(s)
}

// InsertZC interns b without copying it. The dictionary takes ownership of
// b: the caller must not modify it afterwards, whether or not an error is
// returned.
func (d *Dictionary) InsertZC(b []byte) (Ref, error) {
	if len(b) == 0 {
		return d.InsertString("")
	}
	return d.InsertString(unsafe.String(unsafe.SliceData(b), len(b)))
}

// Dup acquires a new reference to the content of r in this dictionary. If r
// was issued by another dictionary the content is inserted here. Duplicating
// the zero Ref yields the zero Ref.
func (d *Dictionary) Dup(r Ref) (Ref, error) {
	if r.e == nil {
		return Ref{}, nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.acquire(r.e.value)
}

// Remove releases one reference. The entry is dropped with its last
// reference. Zero Refs and Refs issued by other dictionaries are ignored.
func (d *Dictionary) Remove(r Ref) {
	if r.e == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[r.e.value]
	if !ok || e != r.e {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(d.entries, e.value)
		metrics.DictionaryEntries.Dec()
	}
}

// Len returns the number of distinct interned strings.
func (d *Dictionary) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Refs returns the reference count of s, 0 when s is not interned.
func (d *Dictionary) Refs(s string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.entries[s]; ok {
		return e.refs
	}
	return 0
}

func (d *Dictionary) acquire(s string) (Ref, error) {
	if e, ok := d.entries[s]; ok {
		e.refs++
		return Ref{e: e}, nil
	}
	return d.add(s)
}

// add must be called with mu held and s absent.
func (d *Dictionary) add(s string) (Ref, error) {
	if d.maxEntries > 0 && len(d.entries) >= d.maxEntries {
		return Ref{}, ErrLimit
	}
	e := &entry{value: s, refs: 1}
	d.entries[s] = e
	metrics.DictionaryEntries.Inc()
	return Ref{e: e}, nil
}
