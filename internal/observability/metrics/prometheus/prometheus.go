package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Total number of handled requests",
		},
		[]string{"code", "op"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Duration of handled requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"code", "op"},
	)

	riskDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_risk_decisions_total",
			Help: "Device registration decisions by action and risk level",
		},
		[]string{"action", "level"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manager_notifications_total",
			Help: "Manager notification deliveries by outcome",
		},
		[]string{"status"},
	)
)

const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationDropped = "dropped"
)

type Metrics struct {
	srv *http.Server
}

func New(port int) *Metrics {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metrics{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves /metrics until ctx is done.
func (m *Metrics) Start(ctx context.Context) {
	go func() {
		zap.L().Info("Starting prometheus server", zap.String("addr", m.srv.Addr))
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("Prometheus server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Debug("Error shutting down prometheus server", zap.Error(err))
	}
	zap.L().Info("Prometheus server has been stopped")
}

func ObserveRequest(d time.Duration, code int, op string) {
	c := strconv.Itoa(code)
	requestsTotal.WithLabelValues(c, op).Inc()
	requestDuration.WithLabelValues(c, op).Observe(d.Seconds())
}

func ObserveRiskDecision(action, level string) {
	riskDecisions.WithLabelValues(action, level).Inc()
}

func ObserveNotification(status string) {
	notifications.WithLabelValues(status).Inc()
}
