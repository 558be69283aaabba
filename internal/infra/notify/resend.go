package notify

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/pkg/errs"

	"github.com/resend/resend-go/v2"
)

// EmailChannel sends through the Resend API.
type EmailChannel struct {
	client *resend.Client
	from   string
	to     string
}

// NewEmailChannel points the SDK at cfg.BaseURL, which lets tests and local twins
// stand in for api.resend.com.
func NewEmailChannel(httpClient *http.Client, cfg config.ResendConfig, to string) *EmailChannel {
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		// the SDK resolves "emails" relative to the base, so it must end in a slash
		if base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/"); err == nil {
			client.BaseURL = base
		}
	}
	return &EmailChannel{client: client, from: cfg.From, to: to}
}

func (c *EmailChannel) Name() string { return ChannelEmail }

func (c *EmailChannel) Send(ctx context.Context, msg Message) error {
	if c.to == "" {
		return ErrMissingRecipient
	}

	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return deliveryError(err, "send email")
	}
	if sent == nil || sent.Id == "" {
		return errs.Mark(errs.New("resend returned no email id"), ErrDeliveryRejected)
	}
	return nil
}
