package openapifx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

type Handler struct {
	config Config
	spec   *swag.Spec

	logger *zap.Logger
}

func New(config Config, spec *swag.Spec, logger *zap.Logger) *Handler {
	return &Handler{
		config: config,
		spec:   spec,

		logger: logger,
	}
}

// Register mounts the Swagger UI on r. Nothing is mounted when disabled.
func (h *Handler) Register(r fiber.Router) {
	if !h.config.Enabled {
		h.logger.Info("openapi docs disabled")
		return
	}

	if h.config.PublicHost != "" {
		h.spec.Host = h.config.PublicHost
	}
	if h.config.PublicPath != "" {
		h.spec.BasePath = h.config.PublicPath
	}

	r.Get("/*", swagger.New(swagger.Config{
		InstanceName: h.spec.InstanceName(),
	}))
}
