// Package database owns the relational store used by the import pipelines.
//
// It wraps GORM to open MySQL (production) or SQLite (local runs and tests)
// connection pools from the application configuration.
//
// # Store and Handle
//
// A Store opens its pool lazily on the first Acquire and pings it on every
// acquisition. Each top-level operation acquires its own Handle and releases
// it on every exit path; releasing a handle with an uncommitted transaction
// rolls the transaction back. Store and Handle are not safe for concurrent use.
//
// # Schema Inspection
//
// The import pipelines assume their tables already exist. GetTableColumns and
// MissingColumns let the integrity feature verify that assumption.
//
// # Usage
//
//	store := database.NewStore(cfg.Database)
//	defer store.Close()
//
//	h, err := store.Acquire(ctx)
//	if err != nil {
//	    return err // wraps ErrStoreUnavailable
//	}
//	defer h.Release()
//
// A Store is shared by every HTTP handler. Only one handle is outstanding at
// a time, so concurrent operations queue in Acquire.
package database
