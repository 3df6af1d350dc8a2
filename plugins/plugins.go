// Package plugins is the catalogue of built-in type plugins.
package plugins

import (
	"github.com/reoring/yangtypes"
	"github.com/reoring/yangtypes/plugins/dateandtime"
)

// Builtin returns the registration records of every built-in plugin.
func Builtin() []yangtypes.Record {
	return []yangtypes.Record{
		dateandtime.Record(),
	}
}

// Types returns the descriptors shipped with the built-in plugins.
func Types() []*yangtypes.Type {
	return []*yangtypes.Type{
		dateandtime.Type(),
	}
}

// NewRegistry returns a registry holding the built-in plugins.
func NewRegistry() *yangtypes.Registry {
	r := yangtypes.NewRegistry()
	if err := r.Register(Builtin()...); err != nil {
		panic(err)
	}
	return r
}
