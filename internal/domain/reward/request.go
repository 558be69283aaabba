package reward

import (
	"strings"
	"time"

	"brainbox-retailplus/internal/domain/staff"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request is a customer's ask for a reward, raised by staff on the customer's behalf.
// The payload fields are not cross-checked against the reward type.
type Request struct {
	id            uuid.UUID
	customer      Customer
	requestedBy   uuid.UUID
	rewardType    RewardType
	rewardAmount  *decimal.Decimal
	freeItems     []FreeItem
	percentageOff *decimal.Decimal
	reason        string
	status        RequestStatus
	approvedBy    *uuid.UUID
	approvalNotes *string
	createdAt     time.Time
	approvedAt    *time.Time
}

type RequestParams struct {
	Customer      Customer
	RequestedBy   uuid.UUID
	RewardType    RewardType
	RewardAmount  *decimal.Decimal
	FreeItems     []FreeItem
	PercentageOff *decimal.Decimal
	Reason        string
}

func NewRequest(p RequestParams, now time.Time) (*Request, error) {
	if p.Customer.ID == uuid.Nil || strings.TrimSpace(p.Customer.Name) == "" {
		return nil, ErrInvalidCustomer
	}
	if p.RequestedBy == uuid.Nil {
		return nil, ErrInvalidRequester
	}
	if !p.RewardType.IsValid() {
		return nil, ErrInvalidRewardType
	}
	for _, item := range p.FreeItems {
		if item.ProductID == uuid.Nil || item.Quantity <= 0 {
			return nil, ErrInvalidFreeItem
		}
	}

	return &Request{
		id:            uuid.New(),
		customer:      p.Customer,
		requestedBy:   p.RequestedBy,
		rewardType:    p.RewardType,
		rewardAmount:  cloneDecimal(p.RewardAmount),
		freeItems:     cloneFreeItems(p.FreeItems),
		percentageOff: cloneDecimal(p.PercentageOff),
		reason:        strings.TrimSpace(p.Reason),
		status:        RequestPending,
		createdAt:     now,
	}, nil
}

// RequestSnapshot carries persisted request state back into the domain.
type RequestSnapshot struct {
	ID            uuid.UUID
	Customer      Customer
	RequestedBy   uuid.UUID
	RewardType    RewardType
	RewardAmount  *decimal.Decimal
	FreeItems     []FreeItem
	PercentageOff *decimal.Decimal
	Reason        string
	Status        RequestStatus
	ApprovedBy    *uuid.UUID
	ApprovalNotes *string
	CreatedAt     time.Time
	ApprovedAt    *time.Time
}

func ReconstructRequest(s RequestSnapshot) (*Request, error) {
	if !s.RewardType.IsValid() {
		return nil, ErrInvalidRewardType
	}
	if _, err := NewRequestStatus(s.Status.String()); err != nil {
		return nil, err
	}
	return &Request{
		id:            s.ID,
		customer:      s.Customer,
		requestedBy:   s.RequestedBy,
		rewardType:    s.RewardType,
		rewardAmount:  s.RewardAmount,
		freeItems:     s.FreeItems,
		percentageOff: s.PercentageOff,
		reason:        s.Reason,
		status:        s.Status,
		approvedBy:    s.ApprovedBy,
		approvalNotes: s.ApprovalNotes,
		createdAt:     s.CreatedAt,
		approvedAt:    s.ApprovedAt,
	}, nil
}

func (r *Request) ID() uuid.UUID                   { return r.id }
func (r *Request) Customer() Customer              { return r.customer }
func (r *Request) RequestedBy() uuid.UUID          { return r.requestedBy }
func (r *Request) RewardType() RewardType          { return r.rewardType }
func (r *Request) RewardAmount() *decimal.Decimal  { return cloneDecimal(r.rewardAmount) }
func (r *Request) FreeItems() []FreeItem           { return cloneFreeItems(r.freeItems) }
func (r *Request) PercentageOff() *decimal.Decimal { return cloneDecimal(r.percentageOff) }
func (r *Request) Reason() string                  { return r.reason }
func (r *Request) Status() RequestStatus           { return r.status }
func (r *Request) ApprovedBy() *uuid.UUID          { return r.approvedBy }
func (r *Request) ApprovalNotes() *string          { return r.approvalNotes }
func (r *Request) CreatedAt() time.Time            { return r.createdAt }
func (r *Request) ApprovedAt() *time.Time          { return r.approvedAt }

// Approval is a manager's decision on a pending request. Final values replace the
// requested ones when present.
type Approval struct {
	ApprovedBy        uuid.UUID
	Role              staff.Role
	FinalRewardAmount *decimal.Decimal
	FinalFreeItems    []FreeItem
	Notes             *string
}

// Approve moves the request to approved and issues its redemption. The request is
// left untouched when any check fails.
func (r *Request) Approve(a Approval, slip Slip, now time.Time) (*Redemption, error) {
	if !CanApprove(a.Role) {
		return nil, ErrUnauthorizedApprover
	}
	if r.status != RequestPending {
		return nil, ErrAlreadyProcessed
	}
	for _, item := range a.FinalFreeItems {
		if item.ProductID == uuid.Nil || item.Quantity <= 0 {
			return nil, ErrInvalidFreeItem
		}
	}

	redemption := newRedemption(r, a, slip, now)

	approvedBy := a.ApprovedBy
	approvedAt := now
	r.status = RequestApproved
	r.approvedBy = &approvedBy
	r.approvedAt = &approvedAt
	r.approvalNotes = a.Notes

	return redemption, nil
}

// grantedAmount resolves the amount carried onto the redemption. Percentage rewards
// may have been requested with only percentageOff set.
func (r *Request) grantedAmount(final *decimal.Decimal) *decimal.Decimal {
	if final != nil {
		return cloneDecimal(final)
	}
	if r.rewardAmount != nil {
		return cloneDecimal(r.rewardAmount)
	}
	if r.rewardType == TypePercentageOff {
		return cloneDecimal(r.percentageOff)
	}
	return nil
}

func (r *Request) grantedFreeItems(final []FreeItem) []FreeItem {
	if final != nil {
		return cloneFreeItems(final)
	}
	return cloneFreeItems(r.freeItems)
}
