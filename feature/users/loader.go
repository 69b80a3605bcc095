package users

import (
	"time"

	"record-importer/feature/records"
	"record-importer/feature/users/models"

	"go.uber.org/zap"
)

// Route is the HTTP prefix of the users feature.
const Route = "/users"

// NewFeature exposes svc under /users.
func NewFeature(svc *Service, logger *zap.Logger, timeout time.Duration) *records.Feature[models.User] {
	return records.NewFeature[models.User]("users", Route, svc, logger, timeout)
}
