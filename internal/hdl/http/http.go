package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/JMURv/attendance-guard/internal/auth/jwt"
	"github.com/JMURv/attendance-guard/internal/ctrl"
	mid "github.com/JMURv/attendance-guard/internal/hdl/http/middleware"
	"github.com/JMURv/attendance-guard/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	router     *chi.Mux
	once       sync.Once
	au         jwt.Port
	srv        *http.Server
	ctrl       ctrl.AppCtrl
	trustProxy bool
}

type Option func(h *Handler)

// WithTrustedProxy makes the device fingerprint use the IP forwarded by a
// reverse proxy instead of the connection address.
func WithTrustedProxy(trust bool) Option {
	return func(h *Handler) {
		h.trustProxy = trust
	}
}

func New(au jwt.Port, ctrl ctrl.AppCtrl, opts ...Option) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		au:     au,
		ctrl:   ctrl,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns the router with middlewares and every route mounted.
func (h *Handler) Router() http.Handler {
	h.once.Do(h.mount)
	return h.router
}

func (h *Handler) mount() {
	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
	)
	if h.trustProxy {
		h.router.Use(middleware.RealIP)
	}
	h.router.Use(
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterRoutes()
	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.Router(),
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
