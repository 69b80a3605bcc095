// Package posts imports, lists and removes posts fetched from the remote API.
//
// Remote records carry "id", "userId", "title" and "body". The author id is
// stored in the owner_id column and is not checked against the user table.
package posts
