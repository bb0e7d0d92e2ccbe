package server

import (
	"github.com/careersim/gitcoach/pkg/openapifx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/gofiber/fiber/v2"
)

const apiPrefix = "/api/v1"

// registerRoutes mounts health at the root and everything else under the versioned API group.
func registerRoutes(handlers []handler.Handler, healthHandler handler.Handler, openapiHandler *openapifx.Handler, app *fiber.App) {
	healthHandler.Register(app)

	v1 := app.Group(apiPrefix)
	openapiHandler.Register(v1.Group("/docs"))

	v1.Use(validation.Middleware)

	for _, h := range handlers {
		h.Register(v1)
	}
}
