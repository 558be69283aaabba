package components

import (
	"brainbox-retailplus/internal/infra/readstore"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/infra/uow"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Staff
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StaffReadQueries)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
		// Reward views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RewardViewQueries)),
		),
		fx.Annotate(
			readstore.NewRewardReadStore,
			fx.As(new(queries.RewardReadStore)),
		),
		// Reward report
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RewardReportQueries)),
		),
		fx.Annotate(
			readstore.NewRewardReportStore,
			fx.As(new(queries.RewardReportReadStore)),
		),
	),
)

// repositories are built per transaction by the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
