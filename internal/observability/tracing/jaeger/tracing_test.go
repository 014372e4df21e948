package jaeger

import (
	"testing"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracerConfig(t *testing.T) {
	conf := config.Config{ServiceName: "attendance-guard"}
	conf.Server.Mode = "prod"
	conf.Server.Domain = "attendance.example.com"
	conf.Jaeger.Sampler.Type = "probabilistic"
	conf.Jaeger.Sampler.Param = 0.25
	conf.Jaeger.Reporter.LocalAgentHostPort = "jaeger:6831"

	cfg := tracerConfig(conf)
	assert.Equal(t, "attendance-guard", cfg.ServiceName)
	assert.Equal(
		t, []opentracing.Tag{
			{Key: "deployment.mode", Value: "prod"},
			{Key: "deployment.domain", Value: "attendance.example.com"},
		}, cfg.Tags,
	)

	require.NotNil(t, cfg.Sampler)
	assert.Equal(t, "probabilistic", cfg.Sampler.Type)
	assert.Equal(t, 0.25, cfg.Sampler.Param)

	require.NotNil(t, cfg.Reporter)
	assert.Equal(t, "jaeger:6831", cfg.Reporter.LocalAgentHostPort)
	assert.False(t, cfg.Reporter.LogSpans)
}
