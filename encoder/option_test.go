package encoder_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/c360/ptil/encoder"
	"github.com/c360/ptil/metric"
)

func TestWithMetricsRecordsEncodeOutcome(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	e, err := encoder.New("en", encoder.WithMetrics(registry.CoreMetrics()))
	require.NoError(t, err)

	_, _, err = e.Encode(context.Background(), "The boy will not go to school tomorrow.")
	require.NoError(t, err)

	got := testutil.ToFloat64(registry.CoreMetrics().EncodeTotal.WithLabelValues("en", "ok"))
	require.Equal(t, float64(1), got)
}
