package reward

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Redemption is the spendable grant issued when a request is approved.
type Redemption struct {
	id              uuid.UUID
	requestID       uuid.UUID
	customer        Customer
	rewardType      RewardType
	rewardAmount    *decimal.Decimal
	freeItems       []FreeItem
	requestedBy     uuid.UUID
	approvedBy      uuid.UUID
	status          RedemptionStatus
	slip            Slip
	stockDeducted   bool
	appliedDiscount *decimal.Decimal
	appliedToSale   *string
	notes           *string
	createdAt       time.Time
	appliedAt       *time.Time
	completedAt     *time.Time
}

func newRedemption(r *Request, a Approval, slip Slip, now time.Time) *Redemption {
	return &Redemption{
		id:           uuid.New(),
		requestID:    r.id,
		customer:     r.customer,
		rewardType:   r.rewardType,
		rewardAmount: r.grantedAmount(a.FinalRewardAmount),
		freeItems:    r.grantedFreeItems(a.FinalFreeItems),
		requestedBy:  r.requestedBy,
		approvedBy:   a.ApprovedBy,
		status:       RedemptionApproved,
		slip:         slip,
		notes:        a.Notes,
		createdAt:    now,
	}
}

type RedemptionSnapshot struct {
	ID              uuid.UUID
	RequestID       uuid.UUID
	Customer        Customer
	RewardType      RewardType
	RewardAmount    *decimal.Decimal
	FreeItems       []FreeItem
	RequestedBy     uuid.UUID
	ApprovedBy      uuid.UUID
	Status          RedemptionStatus
	Slip            Slip
	StockDeducted   bool
	AppliedDiscount *decimal.Decimal
	AppliedToSale   *string
	Notes           *string
	CreatedAt       time.Time
	AppliedAt       *time.Time
	CompletedAt     *time.Time
}

func ReconstructRedemption(s RedemptionSnapshot) (*Redemption, error) {
	if !s.RewardType.IsValid() {
		return nil, ErrInvalidRewardType
	}
	if _, err := NewRedemptionStatus(s.Status.String()); err != nil {
		return nil, err
	}
	return &Redemption{
		id:              s.ID,
		requestID:       s.RequestID,
		customer:        s.Customer,
		rewardType:      s.RewardType,
		rewardAmount:    s.RewardAmount,
		freeItems:       s.FreeItems,
		requestedBy:     s.RequestedBy,
		approvedBy:      s.ApprovedBy,
		status:          s.Status,
		slip:            s.Slip,
		stockDeducted:   s.StockDeducted,
		appliedDiscount: s.AppliedDiscount,
		appliedToSale:   s.AppliedToSale,
		notes:           s.Notes,
		createdAt:       s.CreatedAt,
		appliedAt:       s.AppliedAt,
		completedAt:     s.CompletedAt,
	}, nil
}

func (r *Redemption) ID() uuid.UUID                     { return r.id }
func (r *Redemption) RequestID() uuid.UUID              { return r.requestID }
func (r *Redemption) Customer() Customer                { return r.customer }
func (r *Redemption) RewardType() RewardType            { return r.rewardType }
func (r *Redemption) RewardAmount() *decimal.Decimal    { return cloneDecimal(r.rewardAmount) }
func (r *Redemption) FreeItems() []FreeItem             { return cloneFreeItems(r.freeItems) }
func (r *Redemption) RequestedBy() uuid.UUID            { return r.requestedBy }
func (r *Redemption) ApprovedBy() uuid.UUID             { return r.approvedBy }
func (r *Redemption) Status() RedemptionStatus          { return r.status }
func (r *Redemption) Slip() Slip                        { return r.slip }
func (r *Redemption) StockDeducted() bool               { return r.stockDeducted }
func (r *Redemption) AppliedDiscount() *decimal.Decimal { return cloneDecimal(r.appliedDiscount) }
func (r *Redemption) AppliedToSale() *string            { return r.appliedToSale }
func (r *Redemption) Notes() *string                    { return r.notes }
func (r *Redemption) CreatedAt() time.Time              { return r.createdAt }
func (r *Redemption) AppliedAt() *time.Time             { return r.appliedAt }
func (r *Redemption) CompletedAt() *time.Time           { return r.completedAt }

// Application is what the checkout needs to finish a sale with the reward.
type Application struct {
	FreeItems        []FreeItem
	PaidItems        []SaleItem
	TotalDiscount    decimal.Decimal
	StockAdjustments []StockAdjustment
}

// Apply redeems the grant against the in-progress sale. Stock adjustments are
// returned for the caller to write; free items whose product is not in the sale
// produce no adjustment.
func (r *Redemption) Apply(saleItems []SaleItem, now time.Time) (Application, error) {
	if r.status != RedemptionApproved {
		return Application{}, ErrRedemptionNotApproved
	}
	for _, item := range saleItems {
		if item.ProductID == uuid.Nil || item.Quantity <= 0 {
			return Application{}, ErrInvalidSaleItem
		}
	}

	var adjustments []StockAdjustment
	if r.rewardType == TypeFreeItems {
		adjustments = freeItemStockAdjustments(r.freeItems, saleItems)
	}
	discount := Discount(r.rewardType, r.rewardAmount, r.freeItems, saleItems)

	appliedAt := now
	r.status = RedemptionApplied
	r.stockDeducted = true
	r.appliedDiscount = &discount
	r.appliedAt = &appliedAt

	paid := make([]SaleItem, len(saleItems))
	copy(paid, saleItems)

	return Application{
		FreeItems:        cloneFreeItems(r.freeItems),
		PaidItems:        paid,
		TotalDiscount:    discount,
		StockAdjustments: adjustments,
	}, nil
}

// Completed is emitted once a redemption is tied to a finished sale.
type Completed struct {
	RedemptionID    uuid.UUID
	Slip            Slip
	CustomerName    string
	RewardType      RewardType
	AppliedDiscount decimal.Decimal
	SaleID          string
	ApprovedBy      uuid.UUID
	CompletedAt     time.Time
}

func (r *Redemption) Complete(saleID string, now time.Time) (Completed, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return Completed{}, ErrInvalidSaleID
	}
	switch r.status {
	case RedemptionApplied:
	case RedemptionCompleted:
		return Completed{}, ErrRedemptionAlreadyFinal
	default:
		return Completed{}, ErrRedemptionNotApplied
	}

	completedAt := now
	r.status = RedemptionCompleted
	r.appliedToSale = &saleID
	r.completedAt = &completedAt

	return Completed{
		RedemptionID:    r.id,
		Slip:            r.slip,
		CustomerName:    r.customer.Name,
		RewardType:      r.rewardType,
		AppliedDiscount: r.Value(),
		SaleID:          saleID,
		ApprovedBy:      r.approvedBy,
		CompletedAt:     completedAt,
	}, nil
}

// Value is the monetary worth of the grant for reporting. Applied grants report
// the discount actually given; percentage grants are worth nothing until applied
// because their value depends on the sale.
func (r *Redemption) Value() decimal.Decimal {
	if r.appliedDiscount != nil {
		return *r.appliedDiscount
	}
	switch r.rewardType {
	case TypeCashDiscount:
		if r.rewardAmount != nil {
			return *r.rewardAmount
		}
	case TypeFreeItems:
		return sumFreeItemValue(r.freeItems)
	}
	return decimal.Zero
}
