package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationStatusQueued  = "queued"
	NotificationStatusSending = "sending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"

	TopicRewardCompleted = "reward_completed"
)

// NotificationJob is an outbox row claimed for delivery.
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}

// RewardCompletedEvent is the outbox payload written when a redemption is tied to a
// finished sale.
type RewardCompletedEvent struct {
	RedemptionID    uuid.UUID `json:"redemption_id"`
	Slip            string    `json:"slip"`
	CustomerName    string    `json:"customer_name"`
	RewardType      string    `json:"reward_type"`
	AppliedDiscount string    `json:"applied_discount"`
	SaleID          string    `json:"sale_id"`
	ApprovedBy      uuid.UUID `json:"approved_by"`
	CompletedAt     time.Time `json:"completed_at"`
}
