package internal

import (
	"context"

	"github.com/careersim/gitcoach/internal/config"
	"github.com/careersim/gitcoach/internal/server"
	"github.com/careersim/gitcoach/internal/sessions"
	"github.com/careersim/gitcoach/pkg/badgerfx"
	"github.com/careersim/gitcoach/pkg/openapifx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		openapifx.Module(),
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "1.0.0", ReleaseID: 1} }),
		sessions.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 gitcoach starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 gitcoach shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
