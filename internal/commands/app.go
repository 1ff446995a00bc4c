package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cleared-dev/bursar/internal/accounts"
	"github.com/cleared-dev/bursar/internal/config"
	"github.com/cleared-dev/bursar/internal/journal"
	"github.com/cleared-dev/bursar/internal/ledger"
	"github.com/cleared-dev/bursar/internal/logging"
	"github.com/cleared-dev/bursar/internal/store"
	"github.com/cleared-dev/bursar/internal/store/sqlite"
)

// app bundles what a command needs once the project config is loaded.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store store.Store
}

// openApp loads the project at configPath, applying .env and BURSAR_*
// overrides, and opens its store.
func openApp(ctx context.Context, configPath string) (*app, error) {
	dir := filepath.Dir(configPath)
	if err := config.LoadDotEnv(filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	s, err := openStore(ctx, dir, cfg.Store)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	log.Debug("store opened",
		zap.String("driver", cfg.Store.Driver),
		zap.Duration("cache_ttl", cfg.Store.CacheTTL),
	)
	return &app{cfg: cfg, log: log, store: s}, nil
}

// openStore opens the configured store. A relative sqlite DSN is resolved
// against the project directory.
func openStore(ctx context.Context, dir string, cfg config.StoreConfig) (store.Store, error) {
	var s store.Store
	switch cfg.Driver {
	case "memory":
		s = store.NewMemory()
	case "", "sqlite":
		path := cfg.DSN
		if path == "" {
			path = "bursar.db"
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		s = db
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if cfg.CacheTTL > 0 {
		s = store.NewCached(s, cfg.CacheTTL)
	}
	return s, nil
}

func (a *app) Close() error {
	_ = a.log.Sync()
	return a.store.Close()
}

func (a *app) reporter() *ledger.Reporter {
	return ledger.NewReporter(a.store, a.log)
}

// entries returns the journal service, checking account codes against the
// stored chart when strict_accounts is set.
func (a *app) entries(ctx context.Context) (*journal.Service, error) {
	if !a.cfg.Ledger.StrictAccounts {
		return journal.NewService(a.store, nil, a.log), nil
	}
	chart, err := accounts.Load(ctx, a.store)
	if err != nil {
		return nil, err
	}
	return journal.NewService(a.store, chart, a.log), nil
}
