// Package integrity checks that the environment an import depends on is in place.
//
// # Checks Provided
//
//   - Schema: Verifies that the user and post tables carry every column the
//     entity models map to.
//   - Snapshots: When archiving is enabled, verifies that the snapshot bucket
//     exists and reports the newest snapshot per resource.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/snapshots : Runs the snapshot check (supports ?fix=true to create the bucket).
package integrity
