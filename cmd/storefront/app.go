package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storefront"
)

// app is one initialised storefront session plus the storage it owns.
type app struct {
	session *storefront.Session
	kv      storage.KV
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	kv, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	loader := catalog.NewLoader(catalogSource(cfg.Catalog), cfg.Catalog.Timeout, logger.Named("catalog"))
	store := cart.NewStore(kv, logger.Named("cart"))

	session := storefront.New(loader, store, logger)
	session.Init(ctx)

	return &app{session: session, kv: kv}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}

func openStorage(ctx context.Context, sc config.StorageConfig, logger *zap.Logger) (storage.KV, error) {
	switch sc.Driver {
	case config.DriverMemory:
		return storage.NewMemory(), nil

	case config.DriverSQLite:
		kv, err := storage.OpenSQLite(ctx, sc.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		logger.Debug("sqlite storage", zap.String("path", kv.Path()))
		return kv, nil

	case config.DriverPostgres:
		if sc.RunMigrations {
			if err := db.RunMigrations(sc.DatabaseDSN, logger); err != nil {
				return nil, fmt.Errorf("db migrate: %w", err)
			}
		}
		pool, err := db.NewPool(ctx, sc.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		return storage.NewPostgres(pool), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", sc.Driver)
	}
}

func catalogSource(cc config.CatalogConfig) catalog.Source {
	switch {
	case cc.URL != "":
		return catalog.HTTPSource{URL: cc.URL, Client: &http.Client{Timeout: cc.Timeout}}
	case cc.Path != "":
		return catalog.FileSource{Path: cc.Path}
	default:
		return nil
	}
}
