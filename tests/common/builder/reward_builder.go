//go:build unit || e2e

package builder

import (
	"time"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/domain/staff"
	reqdto "brainbox-retailplus/internal/handler/dto/request"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var RewardFixedNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

// RewardRequestBuilder builds reward requests in their domain, DTO and view shapes.
type RewardRequestBuilder struct {
	CustomerID    uuid.UUID
	CustomerName  string
	RequestedBy   uuid.UUID
	RewardType    string
	RewardAmount  *decimal.Decimal
	FreeItems     []reward.FreeItem
	PercentageOff *decimal.Decimal
	Reason        string
	Now           time.Time
}

func NewRewardRequestBuilder() *RewardRequestBuilder {
	amount := decimal.NewFromInt(500)
	return &RewardRequestBuilder{
		CustomerID:   uuid.New(),
		CustomerName: "Chioma Okafor",
		RequestedBy:  uuid.New(),
		RewardType:   reward.TypeCashDiscount.String(),
		RewardAmount: &amount,
		Reason:       "loyal customer",
		Now:          RewardFixedNow,
	}
}

func (b *RewardRequestBuilder) With(mutate func(*RewardRequestBuilder)) *RewardRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RewardRequestBuilder) BuildParams() (reward.RequestParams, error) {
	rewardType, err := reward.NewRewardType(b.RewardType)
	if err != nil {
		return reward.RequestParams{}, err
	}
	return reward.RequestParams{
		Customer:      reward.Customer{ID: b.CustomerID, Name: b.CustomerName},
		RequestedBy:   b.RequestedBy,
		RewardType:    rewardType,
		RewardAmount:  b.RewardAmount,
		FreeItems:     b.FreeItems,
		PercentageOff: b.PercentageOff,
		Reason:        b.Reason,
	}, nil
}

func (b *RewardRequestBuilder) BuildDomain() (*reward.Request, error) {
	params, err := b.BuildParams()
	if err != nil {
		return nil, err
	}
	return reward.NewRequest(params, b.Now)
}

func (b *RewardRequestBuilder) MustBuildDomain() *reward.Request {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RewardRequestBuilder) BuildCreateRequestDTO() reqdto.CreateRewardRequest {
	dto := reqdto.CreateRewardRequest{
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		RewardType:    b.RewardType,
		RewardAmount:  b.RewardAmount,
		PercentageOff: b.PercentageOff,
		Reason:        b.Reason,
	}
	for _, it := range b.FreeItems {
		dto.FreeItems = append(dto.FreeItems, reqdto.FreeItemRequest{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			TotalValue:  it.TotalValue,
		})
	}
	return dto
}

func (b *RewardRequestBuilder) BuildView() *queries.RewardRequestView {
	return &queries.RewardRequestView{
		ID:              uuid.New(),
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		RequestedBy:     b.RequestedBy,
		RequestedByName: "Tunde Cashier",
		RewardType:      b.RewardType,
		RewardAmount:    b.RewardAmount,
		FreeItems:       b.FreeItems,
		PercentageOff:   b.PercentageOff,
		Reason:          b.Reason,
		Status:          reward.RequestPending.String(),
		CreatedAt:       b.Now,
	}
}

// Fluent builder methods
func (b *RewardRequestBuilder) WithCustomer(id uuid.UUID, name string) *RewardRequestBuilder {
	b.CustomerID = id
	b.CustomerName = name
	return b
}

func (b *RewardRequestBuilder) WithRequestedBy(id uuid.UUID) *RewardRequestBuilder {
	b.RequestedBy = id
	return b
}

func (b *RewardRequestBuilder) WithRewardType(t string) *RewardRequestBuilder {
	b.RewardType = t
	return b
}

func (b *RewardRequestBuilder) WithReason(reason string) *RewardRequestBuilder {
	b.Reason = reason
	return b
}

func (b *RewardRequestBuilder) WithNow(now time.Time) *RewardRequestBuilder {
	b.Now = now
	return b
}

func (b *RewardRequestBuilder) AsCashDiscount(amount string) *RewardRequestBuilder {
	b.RewardType = reward.TypeCashDiscount.String()
	b.RewardAmount = Dec(amount)
	b.FreeItems = nil
	b.PercentageOff = nil
	return b
}

func (b *RewardRequestBuilder) AsPercentageOff(percent string) *RewardRequestBuilder {
	b.RewardType = reward.TypePercentageOff.String()
	b.RewardAmount = Dec(percent)
	b.FreeItems = nil
	b.PercentageOff = nil
	return b
}

// AsPercentageOffOnly leaves rewardAmount empty and carries the rate in percentageOff.
func (b *RewardRequestBuilder) AsPercentageOffOnly(percent string) *RewardRequestBuilder {
	b.RewardType = reward.TypePercentageOff.String()
	b.RewardAmount = nil
	b.FreeItems = nil
	b.PercentageOff = Dec(percent)
	return b
}

func (b *RewardRequestBuilder) AsFreeItems(items ...reward.FreeItem) *RewardRequestBuilder {
	b.RewardType = reward.TypeFreeItems.String()
	b.RewardAmount = nil
	b.FreeItems = items
	b.PercentageOff = nil
	return b
}

// ApprovalBuilder builds a manager decision on a request.
type ApprovalBuilder struct {
	ApprovedBy        uuid.UUID
	Role              string
	FinalRewardAmount *decimal.Decimal
	FinalFreeItems    []reward.FreeItem
	Notes             *string
}

func NewApprovalBuilder() *ApprovalBuilder {
	return &ApprovalBuilder{
		ApprovedBy: uuid.New(),
		Role:       staff.RoleManager.String(),
	}
}

func (b *ApprovalBuilder) With(mutate func(*ApprovalBuilder)) *ApprovalBuilder {
	mutate(b)
	return b
}

func (b *ApprovalBuilder) BuildDomain() reward.Approval {
	return reward.Approval{
		ApprovedBy:        b.ApprovedBy,
		Role:              staff.Role(b.Role),
		FinalRewardAmount: b.FinalRewardAmount,
		FinalFreeItems:    b.FinalFreeItems,
		Notes:             b.Notes,
	}
}

func (b *ApprovalBuilder) BuildDTO() reqdto.ApproveRewardRequest {
	dto := reqdto.ApproveRewardRequest{
		FinalRewardAmount: b.FinalRewardAmount,
		ApprovalNotes:     b.Notes,
	}
	for _, it := range b.FinalFreeItems {
		dto.FinalFreeItems = append(dto.FinalFreeItems, reqdto.FreeItemRequest{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			TotalValue:  it.TotalValue,
		})
	}
	return dto
}

func (b *ApprovalBuilder) WithApprover(id uuid.UUID, role string) *ApprovalBuilder {
	b.ApprovedBy = id
	b.Role = role
	return b
}

func (b *ApprovalBuilder) WithRole(role string) *ApprovalBuilder {
	b.Role = role
	return b
}

func (b *ApprovalBuilder) WithFinalAmount(amount string) *ApprovalBuilder {
	b.FinalRewardAmount = Dec(amount)
	return b
}

func (b *ApprovalBuilder) WithFinalFreeItems(items ...reward.FreeItem) *ApprovalBuilder {
	b.FinalFreeItems = items
	return b
}

func (b *ApprovalBuilder) WithNotes(notes string) *ApprovalBuilder {
	b.Notes = &notes
	return b
}

// SaleBuilder builds the in-progress sale a slip is applied to.
type SaleBuilder struct {
	Items []reward.SaleItem
}

func NewSaleBuilder() *SaleBuilder {
	return &SaleBuilder{}
}

func (b *SaleBuilder) WithItem(productID uuid.UUID, name, unitPrice string, quantity, stock int) *SaleBuilder {
	b.Items = append(b.Items, reward.SaleItem{
		ProductID:   productID,
		ProductName: name,
		UnitPrice:   decimal.RequireFromString(unitPrice),
		Quantity:    quantity,
		Stock:       stock,
	})
	return b
}

func (b *SaleBuilder) BuildDomain() []reward.SaleItem {
	return b.Items
}

func (b *SaleBuilder) BuildDTO() reqdto.ApplyRewardRequest {
	dto := reqdto.ApplyRewardRequest{}
	for _, it := range b.Items {
		dto.SaleItems = append(dto.SaleItems, reqdto.SaleItemRequest{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Stock:       it.Stock,
		})
	}
	return dto
}

// RedemptionViewBuilder builds read-side redemptions for handler tests.
type RedemptionViewBuilder struct {
	view queries.RedemptionView
}

func NewRedemptionViewBuilder() *RedemptionViewBuilder {
	amount := decimal.NewFromInt(500)
	return &RedemptionViewBuilder{view: queries.RedemptionView{
		ID:             uuid.New(),
		RequestID:      uuid.New(),
		CustomerID:     uuid.New(),
		CustomerName:   "Chioma Okafor",
		RewardType:     reward.TypeCashDiscount.String(),
		RewardAmount:   &amount,
		RequestedBy:    uuid.New(),
		ApprovedBy:     uuid.New(),
		ApprovedByName: "Ada Manager",
		Status:         reward.RedemptionApproved.String(),
		RedemptionSlip: "RW-20260314-ABC234",
		CreatedAt:      RewardFixedNow,
	}}
}

func (b *RedemptionViewBuilder) WithSlip(slip string) *RedemptionViewBuilder {
	b.view.RedemptionSlip = slip
	return b
}

func (b *RedemptionViewBuilder) WithStatus(status string) *RedemptionViewBuilder {
	b.view.Status = status
	return b
}

func (b *RedemptionViewBuilder) Build() *queries.RedemptionView {
	v := b.view
	return &v
}

func FreeItem(productID uuid.UUID, name string, quantity int, totalValue string) reward.FreeItem {
	return reward.FreeItem{
		ProductID:   productID,
		ProductName: name,
		Quantity:    quantity,
		TotalValue:  decimal.RequireFromString(totalValue),
	}
}

func Dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
