package response

import (
	"time"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/usecase/commands"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type FreeItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

type SaleItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type RewardRequestResponse struct {
	ID              uuid.UUID          `json:"id"`
	CustomerID      uuid.UUID          `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	RequestedBy     uuid.UUID          `json:"requested_by"`
	RequestedByName string             `json:"requested_by_name"`
	RewardType      string             `json:"reward_type"`
	RewardAmount    *decimal.Decimal   `json:"reward_amount,omitempty"`
	FreeItems       []FreeItemResponse `json:"free_items,omitempty"`
	PercentageOff   *decimal.Decimal   `json:"percentage_off,omitempty"`
	Reason          string             `json:"reason"`
	Status          string             `json:"status"`
	ApprovedBy      *uuid.UUID         `json:"approved_by,omitempty"`
	ApprovedByName  *string            `json:"approved_by_name,omitempty"`
	ApprovalNotes   *string            `json:"approval_notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	ApprovedAt      *time.Time         `json:"approved_at,omitempty"`
}

type RedemptionResponse struct {
	ID              uuid.UUID          `json:"id"`
	RequestID       uuid.UUID          `json:"request_id"`
	CustomerID      uuid.UUID          `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	RewardType      string             `json:"reward_type"`
	RewardAmount    *decimal.Decimal   `json:"reward_amount,omitempty"`
	FreeItems       []FreeItemResponse `json:"free_items,omitempty"`
	ApprovedBy      uuid.UUID          `json:"approved_by"`
	ApprovedByName  string             `json:"approved_by_name"`
	Status          string             `json:"status"`
	RedemptionSlip  string             `json:"redemption_slip"`
	StockDeducted   bool               `json:"stock_deducted"`
	AppliedDiscount *decimal.Decimal   `json:"applied_discount,omitempty"`
	AppliedToSale   *string            `json:"applied_to_sale,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	AppliedAt       *time.Time         `json:"applied_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
}

type CreateRewardResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type ApproveRewardResponse struct {
	RequestID      uuid.UUID `json:"request_id"`
	RedemptionID   uuid.UUID `json:"redemption_id"`
	RedemptionSlip string    `json:"redemption_slip"`
}

type ApplyRewardResponse struct {
	RedemptionSlip string             `json:"redemption_slip"`
	FreeItems      []FreeItemResponse `json:"free_items"`
	PaidItems      []SaleItemResponse `json:"paid_items"`
	TotalDiscount  decimal.Decimal    `json:"total_discount"`
}

type ReportTotalsResponse struct {
	Requests    int             `json:"requests"`
	Pending     int             `json:"pending"`
	Approved    int             `json:"approved"`
	Redemptions int             `json:"redemptions"`
	Completed   int             `json:"completed"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

type ReportTypeResponse struct {
	RewardType string          `json:"reward_type"`
	Count      int             `json:"count"`
	Value      decimal.Decimal `json:"value"`
}

type ReportApproverResponse struct {
	ApproverID   uuid.UUID       `json:"approver_id"`
	ApproverName string          `json:"approver_name"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
}

type ReportStockImpactResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

type RewardReportResponse struct {
	From        time.Time                   `json:"from"`
	To          time.Time                   `json:"to"`
	Totals      ReportTotalsResponse        `json:"totals"`
	ByType      []ReportTypeResponse        `json:"by_type"`
	ByApprover  []ReportApproverResponse    `json:"by_approver"`
	StockImpact []ReportStockImpactResponse `json:"stock_impact"`
}

func FromRewardRequestView(v *queries.RewardRequestView) (*RewardRequestResponse, error) {
	var res RewardRequestResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRewardRequestViews(vs []*queries.RewardRequestView) ([]RewardRequestResponse, error) {
	res := make([]RewardRequestResponse, 0, len(vs))
	if err := copyNonEmpty(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRedemptionView(v *queries.RedemptionView) (*RedemptionResponse, error) {
	var res RedemptionResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRedemptionViews(vs []*queries.RedemptionView) ([]RedemptionResponse, error) {
	res := make([]RedemptionResponse, 0, len(vs))
	if err := copyNonEmpty(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromApproveResult(r *commands.ApproveResult) *ApproveRewardResponse {
	return &ApproveRewardResponse{
		RequestID:      r.RequestID,
		RedemptionID:   r.RedemptionID,
		RedemptionSlip: r.Slip.String(),
	}
}

func FromApplyResult(r *commands.ApplyResult) (*ApplyRewardResponse, error) {
	res := ApplyRewardResponse{
		RedemptionSlip: r.Slip.String(),
		FreeItems:      []FreeItemResponse{},
		PaidItems:      []SaleItemResponse{},
		TotalDiscount:  r.TotalDiscount,
	}
	if err := copyNonEmpty(&res.FreeItems, r.FreeItems); err != nil {
		return nil, err
	}
	if err := copyNonEmpty(&res.PaidItems, r.PaidItems); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromReport(r *reward.Report) (*RewardReportResponse, error) {
	res := RewardReportResponse{
		From:        r.Period.From,
		To:          r.Period.To,
		ByType:      []ReportTypeResponse{},
		ByApprover:  []ReportApproverResponse{},
		StockImpact: []ReportStockImpactResponse{},
	}
	if err := copier.Copy(&res.Totals, &r.Totals); err != nil {
		return nil, err
	}
	if err := copyNonEmpty(&res.ByType, r.ByType); err != nil {
		return nil, err
	}
	if err := copyNonEmpty(&res.ByApprover, r.ByApprover); err != nil {
		return nil, err
	}
	if err := copyNonEmpty(&res.StockImpact, r.StockImpact); err != nil {
		return nil, err
	}
	return &res, nil
}

// copyNonEmpty leaves dst untouched for an empty src so lists render as [] rather than null.
func copyNonEmpty[S ~[]E, E any](dst any, src S) error {
	if len(src) == 0 {
		return nil
	}
	return copier.Copy(dst, src)
}
