package integrity

import (
	"context"
	"errors"

	"record-importer/core/database"
	"record-importer/core/storage"
	"record-importer/feature/integrity/checks"
	"record-importer/feature/posts"
	postModels "record-importer/feature/posts/models"
	"record-importer/feature/users"
	userModels "record-importer/feature/users/models"

	"go.uber.org/zap"
)

// ErrArchivingDisabled is returned by snapshot checks when no archiver is configured.
var ErrArchivingDisabled = errors.New("snapshot archiving is disabled")

// Service handles integrity checks.
type Service struct {
	store    *database.Store
	archiver *storage.Archiver
	logger   *zap.Logger
}

// NewService creates a new integrity service. archiver may be nil.
func NewService(store *database.Store, archiver *storage.Archiver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		archiver: archiver,
		logger:   logger,
	}
}

// CheckSchema inspects the user and post tables.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	h, err := s.store.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	return checks.CheckSchema(h.DB(), userModels.User{}, postModels.Post{})
}

// CheckSnapshots inspects the snapshot bucket.
func (s *Service) CheckSnapshots(ctx context.Context) (*checks.SnapshotReport, error) {
	if s.archiver == nil {
		return nil, ErrArchivingDisabled
	}
	return checks.CheckSnapshots(ctx, s.archiver, users.Spec.Name, posts.Spec.Name)
}

// FixSnapshots creates the snapshot bucket.
func (s *Service) FixSnapshots(ctx context.Context) error {
	if s.archiver == nil {
		return ErrArchivingDisabled
	}
	if err := s.archiver.EnsureBucket(ctx); err != nil {
		return err
	}
	s.logger.Info("Snapshot bucket ready", zap.String("bucket", s.archiver.Bucket()))
	return nil
}
