package records

import (
	"time"

	"record-importer/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface for one entity kind.
type Feature[E reconcile.Entity] struct {
	name    string
	service Service[E]
	handler *Handler[E]
}

// NewFeature creates a feature serving service under route.
func NewFeature[E reconcile.Entity](name, route string, service Service[E], logger *zap.Logger, timeout time.Duration) *Feature[E] {
	return &Feature[E]{
		name:    name,
		service: service,
		handler: NewHandler(service, logger, route, timeout),
	}
}

// Name returns the name of the feature.
func (f *Feature[E]) Name() string {
	return f.name
}

// IsEnabled checks if the feature is enabled.
func (f *Feature[E]) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature[E]) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
