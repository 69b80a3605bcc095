package cmd

import (
	"errors"
	"fmt"

	"record-importer/core/config"
	"record-importer/core/database"
	"record-importer/core/logger"
	"record-importer/core/reconcile"
	"record-importer/core/remote"
	"record-importer/core/storage"
	"record-importer/feature/posts"
	"record-importer/feature/users"

	"go.uber.org/zap"
)

// runtime bundles the dependencies shared by every command.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *database.Store
	remote   *remote.Client
	archiver *storage.Archiver
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{
		cfg:    cfg,
		logger: logg,
		store:  database.NewStore(cfg.Database),
		remote: remote.NewClient(cfg.Remote),
	}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.archiver = storage.NewArchiver(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
	}

	return rt, nil
}

func (rt *runtime) Close() {
	if err := rt.store.Close(); err != nil {
		rt.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = rt.logger.Sync()
}

// source picks the remote API, or a stored snapshot when one is named.
func (rt *runtime) source(resource, entity, snapshot string) (reconcile.Source, bool, error) {
	if snapshot == "" {
		return remote.Resource(rt.remote, resource), rt.archiver != nil, nil
	}
	if rt.archiver == nil {
		return nil, false, errors.New("--from-snapshot requires STORAGE_ENABLED=true")
	}
	return rt.archiver.Source(entity, snapshot), false, nil
}

func (rt *runtime) users(snapshot string) (*users.Service, error) {
	src, archive, err := rt.source(remote.ResourceUsers, users.Spec.Name, snapshot)
	if err != nil {
		return nil, err
	}
	svc := users.NewService(src, rt.store, rt.logger)
	if archive {
		svc.WithArchiver(rt.archiver)
	}
	return svc, nil
}

func (rt *runtime) posts(snapshot string) (*posts.Service, error) {
	src, archive, err := rt.source(remote.ResourcePosts, posts.Spec.Name, snapshot)
	if err != nil {
		return nil, err
	}
	svc := posts.NewService(src, rt.store, rt.logger)
	if archive {
		svc.WithArchiver(rt.archiver)
	}
	return svc, nil
}
