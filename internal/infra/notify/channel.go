package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/usecase/shared"
)

const (
	ChannelLog      = config.ChannelLog
	ChannelEmail    = config.ChannelEmail
	ChannelSMS      = config.ChannelSMS
	ChannelWhatsApp = config.ChannelWhatsApp
)

var (
	ErrUnknownChannel   = errs.New("unknown notification channel")
	ErrMissingRecipient = errs.New("notification channel has no recipient configured")
	ErrDeliveryRejected = errs.New("notification provider rejected the message")
)

// Message is a rendered notification ready for a channel.
type Message struct {
	Subject string
	Body    string
}

// Channel delivers a message to the business owner over one medium.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// RenderRewardCompleted turns an outbox payload into the owner notice.
func RenderRewardCompleted(payload []byte) (Message, error) {
	var event shared.RewardCompletedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return Message{}, errs.Wrap(err, "decode reward completed payload")
	}

	subject := fmt.Sprintf("Reward redeemed: %s", event.Slip)
	body := fmt.Sprintf(
		"Reward %s for %s was redeemed on sale %s. Type: %s. Discount given: %s. Completed at %s.",
		event.Slip,
		event.CustomerName,
		event.SaleID,
		strings.ReplaceAll(event.RewardType, "_", " "),
		event.AppliedDiscount,
		event.CompletedAt.Format("2006-01-02 15:04"),
	)
	return Message{Subject: subject, Body: body}, nil
}

// deliveryError keeps transport failures as plain wrapped errors and marks
// everything the provider SDK reports about the reply as ErrDeliveryRejected.
func deliveryError(err error, action string) error {
	var transport *url.Error
	if errors.As(err, &transport) {
		return errs.Wrap(err, action)
	}
	return errs.Mark(errs.Wrap(err, action), ErrDeliveryRejected)
}
