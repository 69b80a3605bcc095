package posts

import (
	"record-importer/core/reconcile"
	"record-importer/feature/posts/models"

	"go.uber.org/zap"
)

// Spec describes how posts are imported. An import overwrites every
// non-key column, owner included.
var Spec = reconcile.Spec[models.Post]{
	Name:          "post",
	Table:         models.Post{}.TableName(),
	KeyColumn:     "id",
	UpdateColumns: []string{"owner_id", "title", "body"},
	Map:           Map,
}

// Service imports, lists and removes posts.
type Service = reconcile.Pipeline[models.Post]

// NewService creates the post pipeline reading from source and writing to store.
func NewService(source reconcile.Source, store reconcile.Acquirer, logger *zap.Logger) *Service {
	return reconcile.NewPipeline(Spec, source, store, logger)
}
