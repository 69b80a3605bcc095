// Package hashing produces and checks SHA-256 digests of text.
//
// Digests are 64 lowercase hexadecimal characters. Verify accepts digests in
// either case.
package hashing
