package sessions

import (
	"context"
	"fmt"

	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"sessions",
		logger.WithNamedLogger("sessions"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(func(config Config) *gitsim.Simulator {
			return gitsim.NewSimulator(gitsim.WithAuthor(config.Author))
		}, fx.Private),
		fx.Provide(func() *Metrics { return NewMetrics(prometheus.DefaultRegisterer) }, fx.Private),
		fx.Provide(NewService),
		fx.Invoke(func(lc fx.Lifecycle, svc *Service) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if err := svc.syncActive(ctx); err != nil {
						return fmt.Errorf("failed to count sessions: %w", err)
					}
					return nil
				},
			})
		}),
	)
}
