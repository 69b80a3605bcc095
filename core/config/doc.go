// Package config provides configuration management for the record importer.
//
// Values come from environment variables, optionally loaded from a .env file,
// with defaults taken from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and request timeout (SERVER_*)
//   - Log: level and format (LOG_*)
//   - Database: driver, MySQL connection details or sqlite path (DATABASE_*)
//   - Remote: REST API base URL and timeout (REMOTE_*)
//   - Storage: optional MinIO/S3 snapshot archive (STORAGE_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.BaseURL)
package config
