package components

import (
	"context"
	"log/slog"
	"net/http"

	"brainbox-retailplus/internal/infra/notify"
	"brainbox-retailplus/internal/pkg/clock"
	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		func() *http.Client {
			return &http.Client{}
		},
		notify.NewChannels,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, channels []notify.Channel) *notify.Dispatcher {
			return notify.NewDispatcher(uow, clk, cfg.Notifier, channels)
		},
	),
	fx.Invoke(startNotifier),
)

func startNotifier(lc fx.Lifecycle, cfg config.Config, dispatcher *notify.Dispatcher) {
	if !cfg.Notifier.Enabled {
		slog.Info("notifier disabled; completion jobs stay queued")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return dispatcher.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})
}
