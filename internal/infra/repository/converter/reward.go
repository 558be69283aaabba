package converter

import (
	"brainbox-retailplus/internal/domain/reward"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/pkg/pgconv"
)

func RequestToCreateParams(r *reward.Request) (sqlc.CreateRewardRequestParams, error) {
	freeItems, err := pgconv.JSONFromSlice(r.FreeItems())
	if err != nil {
		return sqlc.CreateRewardRequestParams{}, errs.Wrap(err, "encode free items")
	}

	return sqlc.CreateRewardRequestParams{
		ID:            r.ID(),
		CustomerID:    r.Customer().ID,
		CustomerName:  r.Customer().Name,
		RequestedBy:   r.RequestedBy(),
		RewardType:    r.RewardType().String(),
		RewardAmount:  pgconv.DecimalPtrToNumeric(r.RewardAmount()),
		FreeItems:     freeItems,
		PercentageOff: pgconv.DecimalPtrToNumeric(r.PercentageOff()),
		Reason:        r.Reason(),
		Status:        r.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}

func RequestFromRow(row sqlc.RewardRequests) (*reward.Request, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.RewardAmount)
	if err != nil {
		return nil, errs.Wrap(err, "decode reward amount")
	}
	percentageOff, err := pgconv.DecimalPtrFromNumeric(row.PercentageOff)
	if err != nil {
		return nil, errs.Wrap(err, "decode percentage off")
	}
	freeItems, err := pgconv.SliceFromJSON[reward.FreeItem](row.FreeItems)
	if err != nil {
		return nil, errs.Wrap(err, "decode free items")
	}

	return reward.ReconstructRequest(reward.RequestSnapshot{
		ID:            row.ID,
		Customer:      reward.Customer{ID: row.CustomerID, Name: row.CustomerName},
		RequestedBy:   row.RequestedBy,
		RewardType:    reward.RewardType(row.RewardType),
		RewardAmount:  amount,
		FreeItems:     freeItems,
		PercentageOff: percentageOff,
		Reason:        row.Reason,
		Status:        reward.RequestStatus(row.Status),
		ApprovedBy:    pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		ApprovalNotes: pgconv.StringPtrFromPgtype(row.ApprovalNotes),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		ApprovedAt:    pgconv.TimePtrFromPgtype(row.ApprovedAt),
	})
}

func RedemptionToCreateParams(r *reward.Redemption) (sqlc.CreateRewardRedemptionParams, error) {
	freeItems, err := pgconv.JSONFromSlice(r.FreeItems())
	if err != nil {
		return sqlc.CreateRewardRedemptionParams{}, errs.Wrap(err, "encode free items")
	}

	return sqlc.CreateRewardRedemptionParams{
		ID:             r.ID(),
		RequestID:      r.RequestID(),
		CustomerID:     r.Customer().ID,
		CustomerName:   r.Customer().Name,
		RewardType:     r.RewardType().String(),
		RewardAmount:   pgconv.DecimalPtrToNumeric(r.RewardAmount()),
		FreeItems:      freeItems,
		RequestedBy:    r.RequestedBy(),
		ApprovedBy:     r.ApprovedBy(),
		Status:         r.Status().String(),
		RedemptionSlip: r.Slip().String(),
		StockDeducted:  r.StockDeducted(),
		Notes:          pgconv.StringPtrToPgtype(r.Notes()),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
	}, nil
}

func RedemptionFromRow(row sqlc.RewardRedemptions) (*reward.Redemption, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.RewardAmount)
	if err != nil {
		return nil, errs.Wrap(err, "decode reward amount")
	}
	applied, err := pgconv.DecimalPtrFromNumeric(row.AppliedDiscount)
	if err != nil {
		return nil, errs.Wrap(err, "decode applied discount")
	}
	freeItems, err := pgconv.SliceFromJSON[reward.FreeItem](row.FreeItems)
	if err != nil {
		return nil, errs.Wrap(err, "decode free items")
	}

	return reward.ReconstructRedemption(reward.RedemptionSnapshot{
		ID:              row.ID,
		RequestID:       row.RequestID,
		Customer:        reward.Customer{ID: row.CustomerID, Name: row.CustomerName},
		RewardType:      reward.RewardType(row.RewardType),
		RewardAmount:    amount,
		FreeItems:       freeItems,
		RequestedBy:     row.RequestedBy,
		ApprovedBy:      row.ApprovedBy,
		Status:          reward.RedemptionStatus(row.Status),
		Slip:            reward.Slip(row.RedemptionSlip),
		StockDeducted:   row.StockDeducted,
		AppliedDiscount: applied,
		AppliedToSale:   pgconv.StringPtrFromPgtype(row.AppliedToSale),
		Notes:           pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		AppliedAt:       pgconv.TimePtrFromPgtype(row.AppliedAt),
		CompletedAt:     pgconv.TimePtrFromPgtype(row.CompletedAt),
	})
}

func RedemptionsFromRows(rows []sqlc.RewardRedemptions) ([]*reward.Redemption, error) {
	out := make([]*reward.Redemption, 0, len(rows))
	for _, row := range rows {
		r, err := RedemptionFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
