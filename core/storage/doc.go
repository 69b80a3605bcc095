// Package storage keeps snapshots of fetched remote payloads in object storage.
//
// It wraps the MinIO Go client behind the small Client interface (mocked in
// core/storage/mocks) and builds an Archiver on top of it. When archiving is
// enabled every import writes the raw collection it fetched as a JSON object,
// and any snapshot can later be replayed as the source of an import.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	archiver := storage.NewArchiver(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
//	pipeline.WithArchiver(archiver)
//
//	// Re-import the newest users snapshot
//	source := archiver.Source("user", storage.Latest)
package storage
