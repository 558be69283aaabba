package request

import (
	"time"

	"brainbox-retailplus/internal/domain/reward"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FreeItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required,max=200"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

type CreateRewardRequest struct {
	CustomerID    uuid.UUID         `json:"customer_id" binding:"required"`
	CustomerName  string            `json:"customer_name" binding:"required,max=200"`
	RewardType    string            `json:"reward_type" binding:"required,oneof=cash_discount free_items percentage_off"`
	RewardAmount  *decimal.Decimal  `json:"reward_amount"`
	FreeItems     []FreeItemRequest `json:"free_items" binding:"omitempty,dive"`
	PercentageOff *decimal.Decimal  `json:"percentage_off"`
	Reason        string            `json:"reason" binding:"max=1000"`
}

func (r *CreateRewardRequest) ToDomain(requestedBy uuid.UUID) (reward.RequestParams, error) {
	customer, err := reward.NewCustomer(r.CustomerID, r.CustomerName)
	if err != nil {
		return reward.RequestParams{}, err
	}

	rewardType, err := reward.NewRewardType(r.RewardType)
	if err != nil {
		return reward.RequestParams{}, err
	}

	items, err := toFreeItems(r.FreeItems)
	if err != nil {
		return reward.RequestParams{}, err
	}

	return reward.RequestParams{
		Customer:      customer,
		RequestedBy:   requestedBy,
		RewardType:    rewardType,
		RewardAmount:  r.RewardAmount,
		FreeItems:     items,
		PercentageOff: r.PercentageOff,
		Reason:        r.Reason,
	}, nil
}

type ApproveRewardRequest struct {
	FinalRewardAmount *decimal.Decimal  `json:"final_reward_amount"`
	FinalFreeItems    []FreeItemRequest `json:"final_free_items" binding:"omitempty,dive"`
	ApprovalNotes     *string           `json:"approval_notes" binding:"omitempty,max=1000"`
}

// ToFreeItems returns nil when no override was sent so the requested items carry over.
func (r *ApproveRewardRequest) ToFreeItems() ([]reward.FreeItem, error) {
	if r.FinalFreeItems == nil {
		return nil, nil
	}
	return toFreeItems(r.FinalFreeItems)
}

type SaleItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"max=200"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	Stock       int             `json:"stock"`
}

type ApplyRewardRequest struct {
	SaleItems []SaleItemRequest `json:"sale_items" binding:"required,min=1,dive"`
}

func (r *ApplyRewardRequest) ToDomain() ([]reward.SaleItem, error) {
	items := make([]reward.SaleItem, 0, len(r.SaleItems))
	for _, it := range r.SaleItems {
		item, err := reward.NewSaleItem(it.ProductID, it.ProductName, it.UnitPrice, it.Quantity, it.Stock)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type CompleteRewardRequest struct {
	SaleID string `json:"sale_id" binding:"required,max=100"`
}

type RewardReportQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// ToDomain makes the period inclusive of the whole "to" day.
func (q *RewardReportQuery) ToDomain() (reward.Period, error) {
	return reward.NewPeriod(q.From, q.To.Add(24*time.Hour-time.Nanosecond))
}

func toFreeItems(in []FreeItemRequest) ([]reward.FreeItem, error) {
	if in == nil {
		return nil, nil
	}
	items := make([]reward.FreeItem, 0, len(in))
	for _, it := range in {
		item, err := reward.NewFreeItem(it.ProductID, it.ProductName, it.Quantity, it.TotalValue)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}
