// Package remote is the Remote Source: a read-only client for the public REST
// API the importer pulls users and posts from.
//
// Requests go through fiber's HTTP client Agent with the configured timeout
// (tightened by the context deadline when one is set). There is no retry and
// no pagination: each Fetch returns the whole collection or one of
// NetworkError, HTTPError or DecodeError.
//
// # Usage
//
//	client := remote.NewClient(cfg.Remote)
//	source := remote.Resource(client, remote.ResourceUsers)
//	records, err := source.Fetch(ctx)
package remote
