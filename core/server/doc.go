// Package server holds the HTTP server configuration.
//
// The serve command starts the Fiber application; this package only defines
// the listening port, the API key protecting every route, and the per-request
// deadline handed to the pipelines.
package server
