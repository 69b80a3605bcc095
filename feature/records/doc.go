// Package records exposes an entity pipeline over HTTP.
//
// It is the generic half of the users and posts features: those packages
// declare their model, mapper and reconcile.Spec, and wrap the resulting
// pipeline in a records.Feature to get the same three routes.
//
// # HTTP Endpoints (per entity route, e.g. /users)
//
//   - POST   /<route>/import : Fetch the remote collection and upsert it.
//   - GET    /<route>        : List every stored entity (supports ?limit=N).
//   - DELETE /<route>/:id    : Delete one entity by id.
package records
