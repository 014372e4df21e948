package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/attendance-guard/internal/auth/jwt"
	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/hdl"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	metrics "github.com/JMURv/attendance-guard/internal/observability/metrics/prometheus"
	"github.com/go-chi/chi/v5"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Auth puts the employee id from the access token into the request context.
// The token is read from the access cookie first, then from a bearer header.
func Auth(au jwt.Port) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token, err := accessToken(r)
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, err)
					return
				}

				claims, err := au.ParseClaims(r.Context(), token)
				if err != nil {
					utils.ErrResponse(w, http.StatusForbidden, err)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

func accessToken(r *http.Request) (string, error) {
	access, err := r.Cookie(config.AccessCookieName)
	if err == nil && access.Value != "" {
		return access.Value, nil
	}
	if err != nil && !errors.Is(err, http.ErrNoCookie) {
		zap.L().Debug("failed to read access cookie", zap.Error(err))
	}

	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && strings.TrimSpace(token) != "" {
		return strings.TrimSpace(token), nil
	}
	return "", hdl.ErrMissingToken
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// Prometheus labels requests by route pattern so path ids do not explode the
// label set.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			op := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				op = rctx.RoutePattern()
			}
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, fmt.Sprintf("%s %s", r.Method, op))
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
