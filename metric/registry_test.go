package metric_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/metric"
)

func TestNewMetricsRegistryRegistersCoreMetrics(t *testing.T) {
	reg := metric.NewMetricsRegistry()
	require.NotNil(t, reg.CoreMetrics())

	reg.CoreMetrics().RecordEncode("en", "ok", 5*time.Millisecond)
	reg.CoreMetrics().RecordDegradation("rootmap")
	reg.CoreMetrics().RecordCSCsEmitted(3)

	families, err := reg.PrometheusRegistry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRegisterCounterRejectsDuplicate(t *testing.T) {
	reg := metric.NewMetricsRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "ptil_test_counter"})
	require.NoError(t, reg.RegisterCounter("batch", "test_counter", c))

	c2 := prometheus.NewCounter(prometheus.CounterOpts{Name: "ptil_test_counter_2"})
	err := reg.RegisterCounter("batch", "test_counter", c2)
	assert.Error(t, err)
}

func TestUnregister(t *testing.T) {
	reg := metric.NewMetricsRegistry()
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: "ptil_test_gauge"})
	require.NoError(t, reg.RegisterGauge("batch", "test_gauge", g))
	assert.True(t, reg.Unregister("batch", "test_gauge"))
	assert.False(t, reg.Unregister("batch", "test_gauge"))
}
