package users

import (
	"record-importer/core/reconcile"
	"record-importer/feature/users/models"
)

// Map converts one remote record into a User.
func Map(raw reconcile.Record) (models.User, error) {
	if err := raw.Require("id", "name", "email"); err != nil {
		return models.User{}, err
	}

	id, err := raw.PositiveInt("id")
	if err != nil {
		return models.User{}, err
	}
	name, err := raw.Text("name")
	if err != nil {
		return models.User{}, err
	}
	email, err := raw.Text("email")
	if err != nil {
		return models.User{}, err
	}

	return models.User{ID: id, Name: name, Email: email}, nil
}
