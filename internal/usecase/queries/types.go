package queries

import (
	"time"

	"brainbox-retailplus/internal/domain/reward"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// AuthorizedStaffView represents read-optimized staff data with authorization info
type AuthorizedStaffView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

// RewardRequestView is a request joined with the names of the staff involved.
type RewardRequestView struct {
	ID              uuid.UUID         `json:"id"`
	CustomerID      uuid.UUID         `json:"customer_id"`
	CustomerName    string            `json:"customer_name"`
	RequestedBy     uuid.UUID         `json:"requested_by"`
	RequestedByName string            `json:"requested_by_name"`
	RewardType      string            `json:"reward_type"`
	RewardAmount    *decimal.Decimal  `json:"reward_amount,omitempty"`
	FreeItems       []reward.FreeItem `json:"free_items,omitempty"`
	PercentageOff   *decimal.Decimal  `json:"percentage_off,omitempty"`
	Reason          string            `json:"reason"`
	Status          string            `json:"status"`
	ApprovedBy      *uuid.UUID        `json:"approved_by,omitempty"`
	ApprovedByName  *string           `json:"approved_by_name,omitempty"`
	ApprovalNotes   *string           `json:"approval_notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty"`
}

// RedemptionView is a redemption joined with its approver's name.
type RedemptionView struct {
	ID              uuid.UUID         `json:"id"`
	RequestID       uuid.UUID         `json:"request_id"`
	CustomerID      uuid.UUID         `json:"customer_id"`
	CustomerName    string            `json:"customer_name"`
	RewardType      string            `json:"reward_type"`
	RewardAmount    *decimal.Decimal  `json:"reward_amount,omitempty"`
	FreeItems       []reward.FreeItem `json:"free_items,omitempty"`
	RequestedBy     uuid.UUID         `json:"requested_by"`
	ApprovedBy      uuid.UUID         `json:"approved_by"`
	ApprovedByName  string            `json:"approved_by_name"`
	Status          string            `json:"status"`
	RedemptionSlip  string            `json:"redemption_slip"`
	StockDeducted   bool              `json:"stock_deducted"`
	AppliedDiscount *decimal.Decimal  `json:"applied_discount,omitempty"`
	AppliedToSale   *string           `json:"applied_to_sale,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	AppliedAt       *time.Time        `json:"applied_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReportFile is a rendered report ready to be streamed to the client.
type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
