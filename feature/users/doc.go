// Package users imports, lists and removes users fetched from the remote API.
//
// # Remote Shape
//
// Each remote record must carry "id" (positive integer), "name" and "email"
// (strings). Anything else in the record is ignored.
//
// # Storage
//
// Users are upserted into the "user" table keyed by id; an import refreshes
// name and email of existing rows.
package users
