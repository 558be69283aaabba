package components

import (
	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/infra/export"
	"brainbox-retailplus/internal/pkg/clock"
	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/usecase"
	"brainbox-retailplus/internal/usecase/commands"
	"brainbox-retailplus/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reward.NewRandomSlipGenerator,
		fx.As(new(reward.SlipGenerator)),
	),
	fx.Annotate(
		export.NewReportWorkbook,
		fx.As(new(queries.ReportRenderer)),
	),
	func(cfg config.Config) commands.CompletionChannels {
		return commands.CompletionChannels(cfg.Notifier.Channels)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRewardCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStaffQueries,
		queries.NewRewardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
