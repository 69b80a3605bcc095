package records

import (
	"context"
	"errors"

	"record-importer/core/database"
	"record-importer/core/reconcile"
)

// Service is the set of operations exposed for one entity kind.
// *reconcile.Pipeline satisfies it.
type Service[E reconcile.Entity] interface {
	Name() string
	Import(ctx context.Context) (*reconcile.ImportResult, error)
	List(ctx context.Context) []E
	Remove(ctx context.Context, id int) (bool, error)
}

// FailureView is the JSON form of one skipped record.
type FailureView struct {
	Stage string `json:"stage"`
	ID    any    `json:"id,omitempty"`
	Error string `json:"error"`
}

// ImportResponse is the JSON form of an import result.
type ImportResponse struct {
	Fetched  int           `json:"fetched"`
	Count    int           `json:"count"`
	Failures []FailureView `json:"failures"`
}

// RemoveResponse reports whether a row was deleted.
type RemoveResponse struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

// NewImportResponse converts an import result for the API and the CLI.
func NewImportResponse(r *reconcile.ImportResult) ImportResponse {
	resp := ImportResponse{
		Fetched:  r.Fetched,
		Count:    r.Count,
		Failures: make([]FailureView, 0, len(r.Failures)),
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, FailureView{
			Stage: string(f.Stage),
			ID:    f.Record["id"],
			Error: f.Err.Error(),
		})
	}
	return resp
}

// StatusFor maps a pipeline error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrInvalidID):
		return 400
	case errors.Is(err, reconcile.ErrEmptySource):
		return 502
	case errors.Is(err, database.ErrStoreUnavailable):
		return 503
	default:
		return 500
	}
}
