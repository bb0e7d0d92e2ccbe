package openapifx

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Module expects a *swag.Spec and a Config in the graph.
func Module() fx.Option {
	return fx.Module(
		"openapifx",
		logger.WithNamedLogger("openapifx"),
		fx.Provide(New),
	)
}
