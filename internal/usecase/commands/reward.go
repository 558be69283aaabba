package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/domain/staff"
	reqdto "brainbox-retailplus/internal/handler/dto/request"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/pkg/clock"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/pkg/patch"
	"brainbox-retailplus/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=reward.go -destination=../../../tests/mock/commands/reward.go -package=commandsmock

// Actor is the authenticated staff member performing a command.
type Actor struct {
	StaffID uuid.UUID
	Role    staff.Role
}

type ApproveResult struct {
	RequestID    uuid.UUID
	RedemptionID uuid.UUID
	Slip         reward.Slip
}

type ApplyResult struct {
	Slip          reward.Slip
	FreeItems     []reward.FreeItem
	PaidItems     []reward.SaleItem
	TotalDiscount decimal.Decimal
}

type RewardCommands interface {
	RequestReward(ctx context.Context, req reqdto.CreateRewardRequest, requestedBy uuid.UUID) (uuid.UUID, error)
	ApproveReward(ctx context.Context, requestID uuid.UUID, req reqdto.ApproveRewardRequest, approver Actor) (*ApproveResult, error)
	ApplyRewardToSale(ctx context.Context, slip string, req reqdto.ApplyRewardRequest) (*ApplyResult, error)
	CompleteReward(ctx context.Context, slip string, req reqdto.CompleteRewardRequest) error
}

// CompletionChannels lists the outbox channels a RewardCompleted event fans out to.
type CompletionChannels []string

type rewardCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	slips    reward.SlipGenerator
	channels CompletionChannels
}

func NewRewardCommands(uow shared.UnitOfWork, clock clock.Clock, slips reward.SlipGenerator, channels CompletionChannels) RewardCommands {
	return &rewardCommandsImpl{
		uow:      uow,
		clock:    clock,
		slips:    slips,
		channels: channels,
	}
}

func (c *rewardCommandsImpl) RequestReward(ctx context.Context, req reqdto.CreateRewardRequest, requestedBy uuid.UUID) (uuid.UUID, error) {
	params, err := req.ToDomain(requestedBy)
	if err != nil {
		return uuid.Nil, err
	}

	request, err := reward.NewRequest(params, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, tx.DB(), request)
	})
	if err != nil {
		return uuid.Nil, finish(err)
	}

	slog.Info("reward requested",
		"request_id", request.ID(),
		"reward_type", request.RewardType().String(),
		"requested_by", requestedBy)

	return request.ID(), nil
}

func (c *rewardCommandsImpl) ApproveReward(ctx context.Context, requestID uuid.UUID, req reqdto.ApproveRewardRequest, approver Actor) (*ApproveResult, error) {
	// role is checked before any read so a cashier learns nothing about the request
	if !reward.CanApprove(approver.Role) {
		return nil, reward.ErrUnauthorizedApprover
	}

	finalItems, err := req.ToFreeItems()
	if err != nil {
		return nil, err
	}
	approval := reward.Approval{
		ApprovedBy:        approver.StaffID,
		Role:              approver.Role,
		FinalRewardAmount: req.FinalRewardAmount,
		FinalFreeItems:    finalItems,
		Notes:             req.ApprovalNotes,
	}

	var redemption *reward.Redemption
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		request, err := tx.Requests().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return reward.ErrRequestNotFound
			}
			return err
		}

		now := c.clock.Now()
		slip, err := c.slips.Generate(now)
		if err != nil {
			return errs.Wrap(err, "generate redemption slip")
		}

		redemption, err = request.Approve(approval, slip, now)
		if err != nil {
			return err
		}

		if err := tx.Requests().Approve(ctx, tx.DB(), request); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return reward.ErrAlreadyProcessed
			}
			return err
		}

		if err := tx.Redemptions().Create(ctx, tx.DB(), redemption); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return reward.ErrAlreadyProcessed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, finish(err)
	}

	slog.Info("reward approved",
		"request_id", requestID,
		"redemption_id", redemption.ID(),
		"approved_by", approver.StaffID,
		"value", redemption.Value().StringFixed(2),
		"notes", patch.Coalesce(req.ApprovalNotes, ""))

	return &ApproveResult{
		RequestID:    requestID,
		RedemptionID: redemption.ID(),
		Slip:         redemption.Slip(),
	}, nil
}

func (c *rewardCommandsImpl) ApplyRewardToSale(ctx context.Context, slip string, req reqdto.ApplyRewardRequest) (*ApplyResult, error) {
	saleItems, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	parsed := reward.ParseSlip(slip)

	var application reward.Application
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redemption, err := c.loadRedemption(ctx, tx, parsed)
		if err != nil {
			return err
		}

		application, err = redemption.Apply(saleItems, c.clock.Now())
		if err != nil {
			return err
		}

		for _, adj := range application.StockAdjustments {
			if err := tx.Products().SetStock(ctx, tx.DB(), adj.ProductID, adj.NewStock); err != nil {
				return errs.Wrap(err, "update product stock")
			}
		}

		if err := tx.Redemptions().MarkApplied(ctx, tx.DB(), redemption); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return reward.ErrRedemptionNotApproved
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, finish(err)
	}

	slog.Info("reward applied to sale",
		"slip", parsed.String(),
		"total_discount", application.TotalDiscount.String(),
		"stock_adjustments", len(application.StockAdjustments))

	return &ApplyResult{
		Slip:          parsed,
		FreeItems:     application.FreeItems,
		PaidItems:     application.PaidItems,
		TotalDiscount: application.TotalDiscount,
	}, nil
}

// CompleteReward ties an applied redemption to its sale and queues the owner
// notification. An unknown slip is ignored.
func (c *rewardCommandsImpl) CompleteReward(ctx context.Context, slip string, req reqdto.CompleteRewardRequest) error {
	parsed := reward.ParseSlip(slip)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redemption, err := c.loadRedemption(ctx, tx, parsed)
		if err != nil {
			if errs.Is(err, reward.ErrRedemptionNotFound) {
				slog.Warn("complete requested for unknown slip", "slip", parsed.String())
				return nil
			}
			return err
		}

		now := c.clock.Now()
		completed, err := redemption.Complete(req.SaleID, now)
		if err != nil {
			return err
		}

		if err := tx.Redemptions().MarkCompleted(ctx, tx.DB(), redemption); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return reward.ErrRedemptionAlreadyFinal
			}
			return err
		}

		return c.enqueueCompleted(ctx, tx, completed)
	})
	return finish(err)
}

func (c *rewardCommandsImpl) loadRedemption(ctx context.Context, tx shared.Tx, slip reward.Slip) (*reward.Redemption, error) {
	redemption, err := tx.Redemptions().FindBySlipForUpdate(ctx, tx.DB(), slip)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reward.ErrRedemptionNotFound
		}
		return nil, err
	}
	return redemption, nil
}

func (c *rewardCommandsImpl) enqueueCompleted(ctx context.Context, tx shared.Tx, completed reward.Completed) error {
	payload, err := json.Marshal(shared.RewardCompletedEvent{
		RedemptionID:    completed.RedemptionID,
		Slip:            completed.Slip.String(),
		CustomerName:    completed.CustomerName,
		RewardType:      completed.RewardType.String(),
		AppliedDiscount: completed.AppliedDiscount.StringFixed(2),
		SaleID:          completed.SaleID,
		ApprovedBy:      completed.ApprovedBy,
		CompletedAt:     completed.CompletedAt,
	})
	if err != nil {
		return errs.Wrap(err, "encode reward completed event")
	}

	for _, channel := range c.channels {
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), channel, shared.TopicRewardCompleted, payload, completed.CompletedAt); err != nil {
			return errs.Wrap(err, "enqueue reward completed notification")
		}
	}
	return nil
}

// finish passes categorized errors through and marks everything else as a
// storage failure.
func finish(err error) error {
	if err == nil {
		return nil
	}
	for _, category := range []error{errs.ErrValidation, errs.ErrAuthorization, errs.ErrNotFound, errs.ErrStateConflict} {
		if errs.Is(err, category) {
			return err
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
