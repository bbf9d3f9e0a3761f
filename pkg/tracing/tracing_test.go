package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledIsNoop(t *testing.T) {
	shutdown, err := Init(Config{Enabled: false, ServiceName: "shareit"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
}

func TestInit_StdoutExporter(t *testing.T) {
	shutdown, err := Init(Config{
		Enabled:      true,
		ServiceName:  "shareit",
		Exporter:     ExporterStdout,
		SamplerRatio: 1,
	})
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
}
