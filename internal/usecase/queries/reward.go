package queries

import (
	"context"
	"fmt"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/infra"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reward.go -destination=../../../tests/mock/queries/reward.go -package=queriesmock

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrInvalidStatusFilter = errs.NewMarked("invalid status filter", errs.ErrValidation)

type RewardReadStore interface {
	FindRequestByID(ctx context.Context, id uuid.UUID) (*RewardRequestView, error)
	ListRequestsByStatus(ctx context.Context, status string, limit int32) ([]*RewardRequestView, error)
	FindRedemptionBySlip(ctx context.Context, slip string) (*RedemptionView, error)
	ListRedemptionsByStatus(ctx context.Context, status string, limit int32) ([]*RedemptionView, error)
}

// RewardReportReadStore reads report inputs on a caller-supplied connection so
// they can share one snapshot.
type RewardReportReadStore interface {
	CountRequestsBetween(ctx context.Context, db sqlc.DBTX, period reward.Period) (reward.RequestCounts, error)
	ListRedemptionsBetween(ctx context.Context, db sqlc.DBTX, period reward.Period) ([]*reward.Redemption, error)
	StaffDisplayNames(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type ReportRenderer interface {
	Render(report reward.Report) ([]byte, error)
}

type RewardQueries interface {
	ListRequests(ctx context.Context, status string, limit int) ([]*RewardRequestView, error)
	ListPendingRequests(ctx context.Context, limit int) ([]*RewardRequestView, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*RewardRequestView, error)
	ListRedemptions(ctx context.Context, status string, limit int) ([]*RedemptionView, error)
	ListApprovedRedemptions(ctx context.Context, limit int) ([]*RedemptionView, error)
	GetRedemptionBySlip(ctx context.Context, slip string) (*RedemptionView, error)
	GenerateReport(ctx context.Context, period reward.Period) (*reward.Report, error)
	ExportReport(ctx context.Context, period reward.Period) (*ReportFile, error)
}

type rewardQueriesImpl struct {
	uow      shared.UnitOfWork
	store    RewardReadStore
	reports  RewardReportReadStore
	renderer ReportRenderer
}

func NewRewardQueries(uow shared.UnitOfWork, store RewardReadStore, reports RewardReportReadStore, renderer ReportRenderer) RewardQueries {
	return &rewardQueriesImpl{
		uow:      uow,
		store:    store,
		reports:  reports,
		renderer: renderer,
	}
}

// ListRequests returns requests in the given status, newest first. An empty status
// means pending.
func (q *rewardQueriesImpl) ListRequests(ctx context.Context, status string, limit int) ([]*RewardRequestView, error) {
	if status == "" {
		status = reward.RequestPending.String()
	}
	parsed, err := reward.NewRequestStatus(status)
	if err != nil {
		return nil, ErrInvalidStatusFilter
	}

	// #nosec G115 -- ValidateLimit bounds the value to MaxListLimit
	return q.store.ListRequestsByStatus(ctx, parsed.String(), int32(ValidateLimit(limit)))
}

func (q *rewardQueriesImpl) ListPendingRequests(ctx context.Context, limit int) ([]*RewardRequestView, error) {
	return q.ListRequests(ctx, reward.RequestPending.String(), limit)
}

func (q *rewardQueriesImpl) GetRequest(ctx context.Context, id uuid.UUID) (*RewardRequestView, error) {
	view, err := q.store.FindRequestByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reward.ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListRedemptions returns redemptions in the given status. An empty status means
// approved, the slips still waiting for checkout.
func (q *rewardQueriesImpl) ListRedemptions(ctx context.Context, status string, limit int) ([]*RedemptionView, error) {
	if status == "" {
		status = reward.RedemptionApproved.String()
	}
	parsed, err := reward.NewRedemptionStatus(status)
	if err != nil {
		return nil, ErrInvalidStatusFilter
	}

	// #nosec G115 -- ValidateLimit bounds the value to MaxListLimit
	return q.store.ListRedemptionsByStatus(ctx, parsed.String(), int32(ValidateLimit(limit)))
}

func (q *rewardQueriesImpl) ListApprovedRedemptions(ctx context.Context, limit int) ([]*RedemptionView, error) {
	return q.ListRedemptions(ctx, reward.RedemptionApproved.String(), limit)
}

func (q *rewardQueriesImpl) GetRedemptionBySlip(ctx context.Context, slip string) (*RedemptionView, error) {
	view, err := q.store.FindRedemptionBySlip(ctx, reward.ParseSlip(slip).String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reward.ErrRedemptionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rewardQueriesImpl) GenerateReport(ctx context.Context, period reward.Period) (*reward.Report, error) {
	var report reward.Report

	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		counts, err := q.reports.CountRequestsBetween(ctx, db, period)
		if err != nil {
			return err
		}

		redemptions, err := q.reports.ListRedemptionsBetween(ctx, db, period)
		if err != nil {
			return err
		}

		names, err := q.reports.StaffDisplayNames(ctx, db, approverIDs(redemptions))
		if err != nil {
			return err
		}

		report = reward.BuildReport(period, counts, redemptions, names)
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "generate reward report")
	}

	return &report, nil
}

func (q *rewardQueriesImpl) ExportReport(ctx context.Context, period reward.Period) (*ReportFile, error) {
	report, err := q.GenerateReport(ctx, period)
	if err != nil {
		return nil, err
	}

	body, err := q.renderer.Render(*report)
	if err != nil {
		return nil, errs.Wrap(err, "render reward report")
	}

	return &ReportFile{
		Filename: fmt.Sprintf("reward-report_%s_%s.xlsx",
			period.From.Format("20060102"), period.To.Format("20060102")),
		ContentType: XLSXContentType,
		Body:        body,
	}, nil
}

func approverIDs(redemptions []*reward.Redemption) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(redemptions))
	ids := make([]uuid.UUID, 0, len(redemptions))
	for _, r := range redemptions {
		if _, ok := seen[r.ApprovedBy()]; ok {
			continue
		}
		seen[r.ApprovedBy()] = struct{}{}
		ids = append(ids, r.ApprovedBy())
	}
	return ids
}
