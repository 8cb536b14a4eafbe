package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/internal/observability"
)

func TestInit_NoEndpointUsesNoops(t *testing.T) {
	t.Parallel()

	providers, err := observability.Init(observability.DefaultConfig())
	require.NoError(t, err)

	require.NotNil(t, providers.Tracer)
	require.NotNil(t, providers.Meter)
	require.NotNil(t, providers.Logger)
	require.NotNil(t, providers.Shutdown)

	// Spans and instruments work without an exporter.
	_, span := providers.Tracer.Start(context.Background(), "test")
	span.End()

	red, err := observability.NewREDMetrics(providers.Meter)
	require.NoError(t, err)
	assert.NotNil(t, red)

	require.NoError(t, providers.Shutdown(context.Background()))
}
