package explorer

import (
	"genie-graph/core/convert"
	"genie-graph/core/source"
	"genie-graph/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Explorer feature.
func NewFeature(src source.DumpSource, client storage.Client, bucket string, cfg convert.Config, logger *zap.Logger) *Feature {
	svc := NewService(src, client, bucket, cfg, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "explorer"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the underlying service so the server startup can warm
// the graph before accepting traffic.
func (f *Feature) Service() *Service {
	return f.service
}
