package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WGledhill94/loadLab/internal/auth"
	"github.com/WGledhill94/loadLab/internal/catalog"
	"github.com/WGledhill94/loadLab/internal/checkout"
	"github.com/WGledhill94/loadLab/internal/config"
	"github.com/WGledhill94/loadLab/internal/domain"
	h "github.com/WGledhill94/loadLab/internal/http"
	"github.com/WGledhill94/loadLab/internal/logger"
	"github.com/WGledhill94/loadLab/internal/notify"
	"github.com/WGledhill94/loadLab/internal/store"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	catalogSvc, err := catalog.NewFromSeed()
	if err != nil {
		zl.Fatal("failed to seed catalog", zap.Error(err))
	}

	users := store.New[domain.User]()
	orders := store.New[domain.Order]()

	authSvc := auth.NewService(users, cfg.JWTSecret, cfg.TokenTTL)

	sender, err := notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	if err != nil {
		zl.Fatal("failed to create mail sender", zap.Error(err))
	}
	notifier := notify.New(notify.NewBreakerSender(sender), cfg.NotifyQueueSize, cfg.NotifySendTimeout, zl)

	checkoutSvc := checkout.NewService(orders, notifier, zl)

	router := h.NewRouter(h.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	}, catalogSvc, authSvc, checkoutSvc)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "loadlab-server"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	notifyCtx, stopNotifier := context.WithCancel(context.Background())
	go notifier.Run(notifyCtx)

	go func() {
		zl.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}
	stopNotifier()

	zl.Info("server exited")
}
