package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// counter returns the value of the operations counter for the label set.
func counter(t *testing.T, plugin, operation, result string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "yangtypes_plugin_operations") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["plugin"] == plugin && labels["operation"] == operation && labels["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestObserve(t *testing.T) {
	before := counter(t, "test-plugin", "store", ResultError)
	Observe("test-plugin", "store", errors.New("boom"))
	Observe("test-plugin", "store", errors.New("boom"))
	Observe("test-plugin", "store", nil)

	require.Equal(t, before+2, counter(t, "test-plugin", "store", ResultError))
	require.GreaterOrEqual(t, counter(t, "test-plugin", "store", ResultOK), 1.0)
}
