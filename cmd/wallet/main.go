// walletd is the local wallet daemon.
//
// @title        walletd API
// @version      1.0
// @description  Local wallet daemon: secure key storage, password lock and remote wallet operations.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/walletd/docs"
	"github.com/AlexZinkM/walletd/internal/api"
	"github.com/AlexZinkM/walletd/internal/client"
	"github.com/AlexZinkM/walletd/internal/config"
	"github.com/AlexZinkM/walletd/internal/kvstore"
	badgerstore "github.com/AlexZinkM/walletd/internal/kvstore/badger"
	filestore "github.com/AlexZinkM/walletd/internal/kvstore/file"
	inmemorystore "github.com/AlexZinkM/walletd/internal/kvstore/inmemory"
	"github.com/AlexZinkM/walletd/internal/lock"
	"github.com/AlexZinkM/walletd/internal/logger"
	"github.com/AlexZinkM/walletd/internal/notify"
	"github.com/AlexZinkM/walletd/internal/vault"
	"github.com/AlexZinkM/walletd/internal/wallet"

	"go.uber.org/zap"
)

const notificationCapacity = 64

func main() {
	if err := run(); err != nil {
		logger.Get().Error("walletd stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before main exits
func run() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Get()

	log := logger.Init(cfg.Environment, cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	store, err := openStore(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", config.GetStoreDriver(), err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close store", zap.Error(err))
		}
	}()

	engine := lock.New(store, lock.WithLogger(log))
	if _, err := engine.Initialize(context.Background()); err != nil {
		return fmt.Errorf("failed to load security state: %w", err)
	}

	notifier := notify.New(notificationCapacity)
	defer notifier.Close()

	svc := wallet.NewService(
		client.NewWalletAPIClient(config.GetWalletAPIURL(), cfg.WalletAPITimeout),
		vault.New(store, log),
		engine,
		notifier,
		config.GetLedgerNetwork(),
		log,
	)

	router := api.SetupRouter(api.Deps{
		Wallet:   svc,
		Engine:   engine,
		Notifier: notifier,
		Logger:   log,
	})

	server := &http.Server{
		Addr:              net.JoinHostPort("127.0.0.1", config.GetPort()),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.WalletAPITimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Info("server started",
		zap.String("environment", cfg.Environment),
		zap.String("address", server.Addr),
		zap.String("store_driver", config.GetStoreDriver()),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited")
	return nil
}

func openStore(cfg *config.Config, log *zap.Logger) (kvstore.Store, error) {
	if config.GetStoreDriver() == kvstore.InMemoryStore {
		if cfg.IsProduction() {
			return nil, errors.New("the memory store driver is not allowed in production")
		}
		log.Warn("using in-memory store: wallet data is lost on exit")
		return inmemorystore.NewStore()
	}

	if err := config.PromptForPassphrase(); err != nil {
		return nil, err
	}
	passphrase, err := config.GetStorePassphraseBytes()
	if err != nil {
		return nil, err
	}
	defer clear(passphrase)

	switch config.GetStoreDriver() {
	case kvstore.BadgerStore:
		return badgerstore.NewStore(config.GetStorePath(), passphrase, badgerstore.Options{
			CostLog2: cfg.ScryptCostLog2,
			Logger:   log,
		})
	default:
		return filestore.NewStore(config.GetStorePath(), passphrase, filestore.Options{
			Network:  config.GetLedgerNetwork(),
			CostLog2: cfg.ScryptCostLog2,
		})
	}
}
