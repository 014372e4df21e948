package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/attendance-guard/internal/auth/jwt"
	"github.com/JMURv/attendance-guard/internal/cache/redis"
	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/JMURv/attendance-guard/internal/ctrl"
	hdl "github.com/JMURv/attendance-guard/internal/hdl/http"
	"github.com/JMURv/attendance-guard/internal/notify"
	"github.com/JMURv/attendance-guard/internal/observability/metrics/prometheus"
	"github.com/JMURv/attendance-guard/internal/observability/tracing/jaeger"
	"github.com/JMURv/attendance-guard/internal/repo/db"
	"github.com/JMURv/attendance-guard/internal/repo/s3"
	"github.com/JMURv/attendance-guard/internal/smtp"
	"go.uber.org/zap"
)

const configPath = "config/.env"

const shutdownTimeout = 15 * time.Second

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf)

	cache := redis.New(conf)
	repo := db.New(conf)
	storage := s3.New(conf)

	worker := notify.New(conf.Notify, repo, smtp.New(conf))
	worker.Start(ctx)

	svc := ctrl.New(repo, cache, worker, storage, conf.Risk)
	h := hdl.New(jwt.New(conf), svc, hdl.WithTrustedProxy(conf.Server.TrustProxy))

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := worker.Close(shutdownCtx); err != nil {
		zap.L().Warn("Pending manager alerts were not delivered", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	cancel()
	zap.L().Info("Service stopped")
}
