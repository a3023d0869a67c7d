package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/api-sage/bank-account/src/internal/adapter/http/controller"
	"github.com/api-sage/bank-account/src/internal/adapter/http/middleware"
	"github.com/api-sage/bank-account/src/internal/adapter/http/router"
	"github.com/api-sage/bank-account/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-account/src/internal/config"
	"github.com/api-sage/bank-account/src/internal/logger"
	"github.com/api-sage/bank-account/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DefaultChannelKey {
		logger.Warn("CHANNEL_KEY and CHANNEL_KEY_HASH are unset; the API accepts the built-in default channel key", logger.Fields{
			"channelId": cfg.ChannelID,
		})
	}

	accountRepo := memory.NewAccountRepository()
	locker := services.NewAccountLocker()
	accountService := services.NewAccountService(accountRepo, locker)
	transferService := services.NewTransferService(accountRepo, locker)

	handler := router.New(
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKeyHash),
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bank account server starting", logger.Fields{"addr": cfg.HTTPAddr})
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("bank account server shutting down", logger.Fields{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("bank account server shutdown failed", err, nil)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("bank account server failed", err, nil)
			_ = logger.Sync()
			os.Exit(1)
		}
	}
}
