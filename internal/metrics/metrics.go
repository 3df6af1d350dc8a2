package metrics

import "github.com/docker/go-metrics"

const (
	// NamespacePrefix is the namespace of prometheus metrics
	NamespacePrefix = "yangtypes"
)

var (
	// PluginNamespace is the prometheus namespace of type plugin operations
	PluginNamespace = metrics.NewNamespace(NamespacePrefix, "plugin", nil)

	// DictionaryNamespace is the prometheus namespace of the interned string dictionaries
	DictionaryNamespace = metrics.NewNamespace(NamespacePrefix, "dictionary", nil)
)

var (
	// Operations counts plugin operations by plugin ID, operation and result.
	Operations = PluginNamespace.NewLabeledCounter("operations", "The number of type plugin operations", "plugin", "operation", "result")

	// DictionaryEntries measures the interned strings alive across all dictionaries.
	DictionaryEntries = DictionaryNamespace.NewGauge("entries", "The number of interned strings", metrics.Total)
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

func init() {
	metrics.Register(PluginNamespace)
	metrics.Register(DictionaryNamespace)
}

// Observe counts one operation of plugin id.
func Observe(id, operation string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	Operations.WithValues(id, operation, result).Inc()
}
