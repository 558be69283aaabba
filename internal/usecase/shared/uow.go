package shared

import (
	"context"
	"time"

	"brainbox-retailplus/internal/domain/reward"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Requests() RewardRequestRepository
	Redemptions() RewardRedemptionRepository
	Products() ProductRepository
	Notifications() NotificationRepository
	Staff() StaffRepository
	DB() sqlc.DBTX
}

type RewardRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *reward.Request) error
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reward.Request, error)
	Approve(ctx context.Context, tx sqlc.DBTX, req *reward.Request) error
}

type RewardRedemptionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, red *reward.Redemption) error
	FindBySlipForUpdate(ctx context.Context, tx sqlc.DBTX, slip reward.Slip) (*reward.Redemption, error)
	MarkApplied(ctx context.Context, tx sqlc.DBTX, red *reward.Redemption) error
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, red *reward.Redemption) error
}

type ProductRepository interface {
	SetStock(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, stock int) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, staffID uuid.UUID) error
}
