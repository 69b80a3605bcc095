package users

import (
	"record-importer/core/reconcile"
	"record-importer/feature/users/models"

	"go.uber.org/zap"
)

// Spec describes how users are imported.
var Spec = reconcile.Spec[models.User]{
	Name:          "user",
	Table:         models.User{}.TableName(),
	KeyColumn:     "id",
	UpdateColumns: []string{"name", "email"},
	Map:           Map,
}

// Service imports, lists and removes users.
type Service = reconcile.Pipeline[models.User]

// NewService creates the user pipeline reading from source and writing to store.
func NewService(source reconcile.Source, store reconcile.Acquirer, logger *zap.Logger) *Service {
	return reconcile.NewPipeline(Spec, source, store, logger)
}
