package reconcile

import (
	"context"

	"record-importer/core/database"
)

// Record is one raw, untyped record as decoded from the remote collection.
type Record map[string]any

// Entity is a domain value persisted in a table keyed by a positive integer id.
type Entity interface {
	Key() int
}

// Mapper converts one raw record into a validated entity.
// It must be pure and fail without a partially built entity.
type Mapper[E Entity] func(raw Record) (E, error)

// Source yields the full raw collection of one remote resource.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]Record, error)

// Fetch calls f(ctx).
func (f SourceFunc) Fetch(ctx context.Context) ([]Record, error) { return f(ctx) }

// Acquirer hands out store handles scoped to a single operation.
type Acquirer interface {
	Acquire(ctx context.Context) (*database.Handle, error)
}

// Archiver keeps a copy of the raw payload fetched for an import.
type Archiver interface {
	Archive(ctx context.Context, resource string, records []Record) error
}

// Spec describes how one entity kind is stored.
type Spec[E Entity] struct {
	// Name identifies the entity kind in logs and errors (e.g. "user").
	Name string

	// Table is the pre-existing table holding the entities.
	Table string

	// KeyColumn is the primary key column, matched on upsert and delete.
	KeyColumn string

	// UpdateColumns are overwritten when an upsert hits an existing key.
	UpdateColumns []string

	// Map builds an entity from a raw remote record.
	Map Mapper[E]
}

// Stage tells where in the import a record was dropped.
type Stage string

const (
	// StageMap means the raw record could not be mapped to an entity.
	StageMap Stage = "map"
	// StageWrite means the upsert statement for the entity failed.
	StageWrite Stage = "write"
)

// Failure is one record skipped by an import.
type Failure struct {
	Stage  Stage
	Record Record
	Err    error
}

// ImportResult accumulates the outcome of one import.
type ImportResult struct {
	// Fetched is the number of raw records returned by the source.
	Fetched int

	// Count is the number of entities written.
	Count int

	// Failures lists every record skipped at the map or write stage.
	Failures []Failure
}
