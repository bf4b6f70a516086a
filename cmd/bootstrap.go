package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lab-admin/core/config"
	"lab-admin/core/database"
	"lab-admin/core/docstore"
	"lab-admin/core/storage"
	"lab-admin/feature/events"
	"lab-admin/feature/members"
	"lab-admin/feature/publications/models"
	"lab-admin/feature/upload"

	"go.uber.org/zap"
)

// documentNames are the collections seeded into a fresh sql store.
var documentNames = []string{models.DocumentName, members.DocumentName, events.DocumentName}

// openStore builds the configured document store.
func openStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (docstore.Store, error) {
	switch cfg.Store.Driver {
	case "", "file":
		store, err := docstore.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, err
		}
		l.Info("Using file document store", zap.String("dir", cfg.Store.Dir))
		return store, nil

	case "sql":
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		store := docstore.NewSQLStore(db)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		if err := seedStore(ctx, store, cfg.Store.Dir, l); err != nil {
			return nil, err
		}
		l.Info("Using sql document store", zap.String("driver", cfg.Database.Driver))
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// seedStore imports dataset files for documents the database does not have yet.
func seedStore(ctx context.Context, store *docstore.SQLStore, dir string, l *zap.Logger) error {
	for _, name := range documentNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading seed %s: %w", name, err)
		}
		imported, err := store.Import(ctx, name, data)
		if err != nil {
			return err
		}
		if imported {
			l.Info("Seeded document from dataset", zap.String("document", name))
		}
	}
	return nil
}

// openUploads builds the configured upload backend.
func openUploads(ctx context.Context, cfg *config.Config, l *zap.Logger) (upload.Backend, error) {
	switch cfg.Upload.Backend {
	case "", "local":
		return upload.NewLocalBackend(cfg.Upload.Dir)

	case "s3":
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		l.Info("Using s3 upload backend", zap.String("bucket", cfg.Storage.Bucket))
		return upload.NewS3Backend(client, cfg.Storage.Bucket), nil

	default:
		return nil, fmt.Errorf("unsupported upload backend %q", cfg.Upload.Backend)
	}
}
