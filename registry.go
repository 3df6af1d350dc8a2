package yangtypes

import (
	"sort"
	"sync"
)

// Record registers a Plugin for a typedef. An empty Revision matches every
// revision of the module.
type Record struct {
	Module   string
	Revision string
	Name     string
	Plugin   Plugin
}

type recordKey struct {
	module, revision, name string
}

func (r Record) key() recordKey { return recordKey{r.Module, r.Revision, r.Name} }

// Registry maps (module, revision, type name) to plugins.
type Registry struct {
	mu      sync.RWMutex
	records map[recordKey]Record
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[recordKey]Record)}
}

// Register adds records. Registering the same (module, revision, name) twice
// is an error; records before the conflicting one stay registered.
func (r *Registry) Register(recs ...Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range recs {
		if _, dup := r.records[rec.key()]; dup {
			iss := NewIssue(CodeDuplicate, "duplicate_plugin", map[string]string{"type": rec.Module + ":" + rec.Name})
			iss[0].Params = map[string]any{"revision": rec.Revision}
			return iss
		}
		r.records[rec.key()] = rec
	}
	return nil
}

// Find returns the plugin registered for the typedef. A record with the exact
// revision wins over one registered for any revision.
func (r *Registry) Find(module, revision, name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.records[recordKey{module, revision, name}]; ok {
		return rec.Plugin, true
	}
	if rec, ok := r.records[recordKey{module, "", name}]; ok {
		return rec.Plugin, true
	}
	return nil, false
}

// Lookup returns the plugin for typ or a not_found issue.
func (r *Registry) Lookup(typ *Type) (Plugin, error) {
	if typ != nil {
		if p, ok := r.Find(typ.Module, typ.Revision, typ.Name); ok {
			return p, nil
		}
	}
	name := "<nil>"
	if typ != nil {
		name = typ.QName()
	}
	return nil, NewIssue(CodeNotFound, "not_found", map[string]string{"type": name})
}

// Records returns a snapshot sorted by module, name and revision.
func (r *Registry) Records() []Record {
	r.mu.RLock()
	out := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Revision < b.Revision
	})
	return out
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
