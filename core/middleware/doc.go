// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: Implements API key validation to protect endpoints.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally by the serve command.
package middleware
