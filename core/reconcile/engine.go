package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

// Pipeline imports, lists and removes one entity kind.
// Concurrent calls are safe; the store runs their database work one at a time.
type Pipeline[E Entity] struct {
	spec     Spec[E]
	source   Source
	store    Acquirer
	archiver Archiver
	logger   *zap.Logger
}

// NewPipeline creates a pipeline for the given entity spec.
func NewPipeline[E Entity](spec Spec[E], source Source, store Acquirer, logger *zap.Logger) *Pipeline[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline[E]{
		spec:   spec,
		source: source,
		store:  store,
		logger: logger.With(zap.String("entity", spec.Name)),
	}
}

// WithArchiver makes every import keep a copy of the fetched payload.
func (p *Pipeline[E]) WithArchiver(a Archiver) *Pipeline[E] {
	p.archiver = a
	return p
}

// Name returns the entity kind handled by this pipeline.
func (p *Pipeline[E]) Name() string {
	return p.spec.Name
}

// Import fetches the remote collection and upserts every valid record in a
// single transaction.
//
// An empty or failed fetch returns ErrEmptySource and an unreachable store
// returns an error wrapping database.ErrStoreUnavailable; neither writes
// anything. Records that fail to map or to write are collected in
// ImportResult.Failures and do not fail the import.
func (p *Pipeline[E]) Import(ctx context.Context) (*ImportResult, error) {
	raw, err := p.source.Fetch(ctx)
	if err != nil {
		p.logger.Warn("Remote fetch failed, nothing to import", zap.Error(err))
		raw = nil
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", p.spec.Name, ErrEmptySource)
	}

	result := &ImportResult{Fetched: len(raw)}

	type mapped struct {
		entity E
		record Record
	}
	entities := make([]mapped, 0, len(raw))
	for i, rec := range raw {
		entity, err := p.spec.Map(rec)
		if err != nil {
			result.Failures = append(result.Failures, Failure{Stage: StageMap, Record: rec, Err: err})
			p.logger.Warn("Skipping malformed record", zap.Int("index", i), zap.Error(err))
			continue
		}
		entities = append(entities, mapped{entity: entity, record: rec})
	}

	if p.archiver != nil {
		if err := p.archiver.Archive(ctx, p.spec.Name, raw); err != nil {
			p.logger.Warn("Failed to archive fetched payload", zap.Error(err))
		}
	}

	h, err := p.store.Acquire(ctx)
	if err != nil {
		p.logger.Error("Store unavailable, import aborted", zap.Error(err))
		return nil, err
	}
	defer h.Release()

	if err := h.Begin(); err != nil {
		return nil, err
	}

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: p.spec.KeyColumn}},
		DoUpdates: clause.AssignmentColumns(p.spec.UpdateColumns),
	}

	for _, m := range entities {
		entity := m.entity
		if err := h.DB().Table(p.spec.Table).Clauses(upsert).Create(&entity).Error; err != nil {
			werr := &StoreWriteError{Table: p.spec.Table, Key: entity.Key(), Err: err}
			result.Failures = append(result.Failures, Failure{Stage: StageWrite, Record: m.record, Err: werr})
			p.logger.Warn("Upsert failed, record skipped", zap.Int("id", entity.Key()), zap.Error(err))
			continue
		}
		result.Count++
	}

	if err := h.Commit(); err != nil {
		p.logger.Error("Import commit failed", zap.Error(err))
		return nil, err
	}

	p.logger.Info("Import completed",
		zap.Int("fetched", result.Fetched),
		zap.Int("count", result.Count),
		zap.Int("failed", len(result.Failures)),
	)

	return result, nil
}

// List returns every persisted entity in the store's natural row order.
// Store failures are logged and yield an empty slice.
func (p *Pipeline[E]) List(ctx context.Context) []E {
	h, err := p.store.Acquire(ctx)
	if err != nil {
		p.logger.Error("Store unavailable, returning empty list", zap.Error(err))
		return []E{}
	}
	defer h.Release()

	var rows []E
	if err := h.DB().Table(p.spec.Table).Find(&rows).Error; err != nil {
		qerr := &StoreQueryError{Table: p.spec.Table, Err: err}
		p.logger.Error("List query failed, returning empty list", zap.Error(qerr))
		return []E{}
	}
	if rows == nil {
		rows = []E{}
	}
	return rows
}

// Remove deletes the entity with the given id. It reports true when exactly
// one row was deleted and false when no row matched.
func (p *Pipeline[E]) Remove(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	h, err := p.store.Acquire(ctx)
	if err != nil {
		p.logger.Error("Store unavailable, remove aborted", zap.Error(err))
		return false, err
	}
	defer h.Release()

	res := h.DB().Table(p.spec.Table).Where(clause.Eq{Column: clause.Column{Name: p.spec.KeyColumn}, Value: id}).Delete(new(E))
	if res.Error != nil {
		werr := &StoreWriteError{Table: p.spec.Table, Key: id, Err: res.Error}
		p.logger.Error("Delete failed", zap.Error(werr))
		return false, werr
	}

	if res.RowsAffected != 1 {
		p.logger.Info("No row matched id", zap.Int("id", id))
		return false, nil
	}

	p.logger.Info("Removed", zap.Int("id", id))
	return true, nil
}
