package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/yangtypes"
)

// Parse reads a descriptor document. JSON is detected by a leading '{';
// everything else is read as YAML.
func Parse(data []byte) (*Document, error) {
	if t := strings.TrimSpace(string(data)); strings.HasPrefix(t, "{") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// LoadFile reads and compiles the descriptors of a file. The extension
// selects the syntax (.json, .yaml or .yml); other files are sniffed.
func LoadFile(path string) ([]*yangtypes.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err = ParseJSON(data)
	case ".yaml", ".yml":
		doc, err = ParseYAML(data)
	default:
		doc, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	types, err := doc.Compile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return types, nil
}

// Find returns the descriptor named "module:name" or "name" from types.
func Find(types []*yangtypes.Type, qname string) (*yangtypes.Type, bool) {
	module, name, qualified := strings.Cut(qname, ":")
	for _, t := range types {
		if qualified && t.Module == module && t.Name == name {
			return t, true
		}
		if !qualified && t.Name == qname {
			return t, true
		}
	}
	return nil, false
}
