package server

import (
	"github.com/careersim/gitcoach/internal/server/docs"
	"github.com/careersim/gitcoach/internal/server/handlers/coach"
	"github.com/careersim/gitcoach/internal/server/handlers/sessions"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),
		fx.Supply(docs.SwaggerInfo),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(sessions.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(coach.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				registerRoutes,
				fx.ParamTags(`group:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
