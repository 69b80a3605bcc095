package posts

import (
	"time"

	"record-importer/feature/posts/models"
	"record-importer/feature/records"

	"go.uber.org/zap"
)

// Route is the HTTP prefix of the posts feature.
const Route = "/posts"

// NewFeature exposes svc under /posts.
func NewFeature(svc *Service, logger *zap.Logger, timeout time.Duration) *records.Feature[models.Post] {
	return records.NewFeature[models.Post]("posts", Route, svc, logger, timeout)
}
