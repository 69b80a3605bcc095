// Package reconcile provides the generic import/list/remove pipeline shared by
// every entity kind pulled from the remote API.
//
// A Pipeline is parameterized by the entity type, a pure Mapper that turns a
// raw remote Record into that type, and a Spec naming the table, key column
// and the columns overwritten on upsert. Feature packages (users, posts) only
// declare their Spec; the fetch → map → upsert flow lives here once.
//
// # Import
//
//  1. Fetch the full raw collection. A failed fetch counts as empty, and an
//     empty collection fails the import with ErrEmptySource.
//  2. Map every record. Mapping failures are recorded and skipped.
//  3. Optionally archive the raw payload (see Archiver).
//  4. Acquire a store handle; ErrStoreUnavailable aborts before any write.
//  5. Upsert every mapped entity inside one transaction, recording and
//     skipping per-record write failures.
//  6. Commit once and report the number of written records.
//
// # List and Remove
//
// List never fails: store errors are logged and an empty slice is returned.
// Remove rejects non-positive ids with ErrInvalidID before touching the store
// and reports false, not an error, when no row matched.
//
// # Usage Example
//
//	spec := reconcile.Spec[models.User]{
//	    Name:          "user",
//	    Table:         "user",
//	    KeyColumn:     "id",
//	    UpdateColumns: []string{"name", "email"},
//	    Map:           users.Map,
//	}
//	p := reconcile.NewPipeline(spec, remote.Resource(client, "users"), store, logger)
//	result, err := p.Import(ctx)
package reconcile
