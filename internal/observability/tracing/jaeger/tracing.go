// Package jaeger installs the global tracer used by the controller and
// middleware spans.
package jaeger

import (
	"context"
	"fmt"

	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// zapLogger routes reporter messages of the jaeger client to zap.
type zapLogger struct {
	l *zap.Logger
}

func (z zapLogger) Error(msg string) {
	z.l.Error(msg)
}

func (z zapLogger) Infof(msg string, args ...any) {
	z.l.Debug(fmt.Sprintf(msg, args...))
}

// tracerConfig tags every span with the deployment mode and domain.
func tracerConfig(conf config.Config) jaegercfg.Configuration {
	return jaegercfg.Configuration{
		ServiceName: conf.ServiceName,
		Tags: []opentracing.Tag{
			{Key: "deployment.mode", Value: conf.Server.Mode},
			{Key: "deployment.domain", Value: conf.Server.Domain},
		},
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Jaeger.Sampler.Type,
			Param: conf.Jaeger.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Jaeger.Reporter.LogSpans,
			LocalAgentHostPort: conf.Jaeger.Reporter.LocalAgentHostPort,
		},
	}
}

// Start sets the global tracer and flushes it once ctx is done. Without a
// reachable agent the no-op tracer stays in place and spans are dropped.
func Start(ctx context.Context, conf config.Config) {
	tracer, closer, err := tracerConfig(conf).NewTracer(
		jaegercfg.Logger(zapLogger{l: zap.L().Named("jaeger")}),
	)
	if err != nil {
		zap.L().Error("Failed to start tracing, risk and geofence spans are dropped", zap.Error(err))
		return
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info(
		"Tracing started",
		zap.String("service", conf.ServiceName),
		zap.String("agent", conf.Jaeger.Reporter.LocalAgentHostPort),
	)
	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("Failed to flush spans", zap.Error(err))
	}
	zap.L().Info("Tracing stopped")
}
