package posts

import (
	"record-importer/core/reconcile"
	"record-importer/feature/posts/models"
)

// Map converts one remote record into a Post.
func Map(raw reconcile.Record) (models.Post, error) {
	if err := raw.Require("id", "userId", "title", "body"); err != nil {
		return models.Post{}, err
	}

	id, err := raw.PositiveInt("id")
	if err != nil {
		return models.Post{}, err
	}
	owner, err := raw.Int("userId")
	if err != nil {
		return models.Post{}, err
	}
	title, err := raw.Text("title")
	if err != nil {
		return models.Post{}, err
	}
	body, err := raw.Text("body")
	if err != nil {
		return models.Post{}, err
	}

	return models.Post{ID: id, OwnerID: owner, Title: title, Body: body}, nil
}
