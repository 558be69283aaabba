package bootstrap

import (
	"context"
	"log/slog"

	"brainbox-retailplus/internal/infra/db"
	"brainbox-retailplus/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool eagerly so a bad DSN fails startup, and closes it after the
// HTTP server and notifier have stopped.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			slog.Info("database pool stats",
				"acquired_total", stat.AcquireCount(),
				"canceled_acquires", stat.CanceledAcquireCount(),
				"max_conns", stat.MaxConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
