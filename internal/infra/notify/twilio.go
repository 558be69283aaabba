package notify

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"brainbox-retailplus/internal/pkg/config"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	twapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	whatsAppPrefix    = "whatsapp:"
	twilioDefaultBase = "https://api.twilio.com"
)

// TwilioChannel sends SMS or WhatsApp messages through the Twilio Messages API.
type TwilioChannel struct {
	name   string
	client *twilio.RestClient
	from   string
	to     string
}

func NewSMSChannel(httpClient *http.Client, cfg config.TwilioConfig, to string) *TwilioChannel {
	return newTwilioChannel(ChannelSMS, httpClient, cfg, cfg.FromNumber, to)
}

// NewWhatsAppChannel addresses both ends with the whatsapp: scheme Twilio expects.
func NewWhatsAppChannel(httpClient *http.Client, cfg config.TwilioConfig, to string) *TwilioChannel {
	return newTwilioChannel(ChannelWhatsApp, httpClient, cfg, withWhatsApp(cfg.WhatsAppFrom), withWhatsApp(to))
}

func newTwilioChannel(name string, httpClient *http.Client, cfg config.TwilioConfig, from, to string) *TwilioChannel {
	base := &twclient.Client{
		Credentials: twclient.NewCredentials(cfg.AccountSID, cfg.AuthToken),
		HTTPClient:  rebasedClient(httpClient, cfg.BaseURL),
	}
	base.SetAccountSid(cfg.AccountSID)

	return &TwilioChannel{
		name:   name,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{Client: base}),
		from:   from,
		to:     to,
	}
}

func (c *TwilioChannel) Name() string { return c.name }

// Send is bounded by the HTTP client's timeout; the SDK call takes no context.
func (c *TwilioChannel) Send(ctx context.Context, msg Message) error {
	if c.to == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twapi.CreateMessageParams{}
	params.SetTo(c.to)
	params.SetFrom(c.from)
	params.SetBody(msg.Body)

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return deliveryError(err, "send "+c.name)
	}
	return nil
}

func withWhatsApp(number string) string {
	if number == "" || strings.HasPrefix(number, whatsAppPrefix) {
		return number
	}
	return whatsAppPrefix + number
}

// rebasedClient redirects the SDK's fixed api.twilio.com host to baseURL, for
// twins and test servers. The default base leaves the client untouched.
func rebasedClient(httpClient *http.Client, baseURL string) *http.Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	trimmed := strings.TrimRight(baseURL, "/")
	if trimmed == "" || trimmed == twilioDefaultBase {
		return httpClient
	}
	target, err := url.Parse(trimmed)
	if err != nil || target.Host == "" {
		return httpClient
	}

	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	rebased := *httpClient
	rebased.Transport = rebaseTransport{target: target, next: next}
	return &rebased
}

type rebaseTransport struct {
	target *url.URL
	next   http.RoundTripper
}

func (t rebaseTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	out.URL.Path = t.target.Path + req.URL.Path
	out.Host = ""
	return t.next.RoundTrip(out)
}
