package bootstrap

import (
	"log/slog"

	"brainbox-retailplus/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the non-secret settings once the logger is installed.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"gin_mode", cfg.Server.GinMode,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"notifier_enabled", cfg.Notifier.Enabled,
		"notifier_channels", cfg.Notifier.Channels,
		"access_token_ttl", cfg.JWT.AccessDuration.String())
}
