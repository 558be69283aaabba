//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/usecase/shared"
	"brainbox-retailplus/tests/common/errtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMessage = Message{Subject: "Reward redeemed: RW-20260314-ABC234", Body: "Reward RW-20260314-ABC234 was redeemed."}

func TestRenderRewardCompleted(t *testing.T) {
	payload, err := json.Marshal(shared.RewardCompletedEvent{
		RedemptionID:    uuid.New(),
		Slip:            "RW-20260314-ABC234",
		CustomerName:    "Chioma Okafor",
		RewardType:      "percentage_off",
		AppliedDiscount: "200.00",
		SaleID:          "SALE-1001",
		ApprovedBy:      uuid.New(),
		CompletedAt:     time.Date(2026, 3, 14, 11, 5, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	msg, err := RenderRewardCompleted(payload)

	require.NoError(t, err)
	assert.Equal(t, "Reward redeemed: RW-20260314-ABC234", msg.Subject)
	assert.Equal(t,
		"Reward RW-20260314-ABC234 for Chioma Okafor was redeemed on sale SALE-1001. Type: percentage off. Discount given: 200.00. Completed at 2026-03-14 11:05.",
		msg.Body)

	_, err = RenderRewardCompleted([]byte("{"))
	assert.Error(t, err)
}

func TestEmailChannel_Send(t *testing.T) {
	t.Run("posts to the emails endpoint", func(t *testing.T) {
		var got struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			Text    string   `json:"text"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"email_1"}`))
		}))
		defer srv.Close()

		ch := NewEmailChannel(srv.Client(), config.ResendConfig{BaseURL: srv.URL + "/", APIKey: "re_test", From: "rewards@shop.test"}, "owner@shop.test")

		require.NoError(t, ch.Send(context.Background(), testMessage))
		assert.Equal(t, "rewards@shop.test", got.From)
		assert.Equal(t, []string{"owner@shop.test"}, got.To)
		assert.Equal(t, testMessage.Subject, got.Subject)
		assert.Equal(t, testMessage.Body, got.Text)
	})

	t.Run("provider rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
		}))
		defer srv.Close()

		ch := NewEmailChannel(srv.Client(), config.ResendConfig{BaseURL: srv.URL}, "owner@shop.test")

		err := ch.Send(context.Background(), testMessage)
		errtest.RequireIs(t, err, ErrDeliveryRejected)
		assert.Contains(t, err.Error(), "Invalid from field")
	})

	t.Run("unreachable provider is not a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		ch := NewEmailChannel(http.DefaultClient, config.ResendConfig{BaseURL: srv.URL}, "owner@shop.test")

		err := ch.Send(context.Background(), testMessage)
		require.Error(t, err)
		errtest.AssertNotIs(t, err, ErrDeliveryRejected)
	})

	t.Run("no recipient", func(t *testing.T) {
		ch := NewEmailChannel(http.DefaultClient, config.ResendConfig{BaseURL: "http://unused"}, "")

		errtest.AssertIs(t, ch.Send(context.Background(), testMessage), ErrMissingRecipient)
	})
}

func TestTwilioChannels_Send(t *testing.T) {
	cfg := config.TwilioConfig{
		AccountSID:   "AC123",
		AuthToken:    "token",
		FromNumber:   "+15550001111",
		WhatsAppFrom: "+15550002222",
	}

	testCases := []struct {
		name     string
		build    func(*http.Client, config.TwilioConfig) *TwilioChannel
		wantFrom string
		wantTo   string
	}{
		{
			name: "sms",
			build: func(c *http.Client, cfg config.TwilioConfig) *TwilioChannel {
				return NewSMSChannel(c, cfg, "+2348000000000")
			},
			wantFrom: "+15550001111",
			wantTo:   "+2348000000000",
		},
		{
			name: "whatsapp",
			build: func(c *http.Client, cfg config.TwilioConfig) *TwilioChannel {
				return NewWhatsAppChannel(c, cfg, "+2348000000000")
			},
			wantFrom: "whatsapp:+15550002222",
			wantTo:   "whatsapp:+2348000000000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "AC123", user)
				assert.Equal(t, "token", pass)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, tc.wantFrom, r.PostForm.Get("From"))
				assert.Equal(t, tc.wantTo, r.PostForm.Get("To"))
				assert.Equal(t, testMessage.Body, r.PostForm.Get("Body"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
			}))
			defer srv.Close()

			c := cfg
			c.BaseURL = srv.URL
			ch := tc.build(srv.Client(), c)

			assert.Equal(t, tc.name, ch.Name())
			require.NoError(t, ch.Send(context.Background(), testMessage))
		})
	}

	t.Run("provider rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number","status":400}`))
		}))
		defer srv.Close()

		c := cfg
		c.BaseURL = srv.URL
		ch := NewSMSChannel(srv.Client(), c, "+2348000000000")

		err := ch.Send(context.Background(), testMessage)
		errtest.RequireIs(t, err, ErrDeliveryRejected)
		assert.Contains(t, err.Error(), "Invalid 'To' Phone Number")
	})

	t.Run("missing whatsapp recipient", func(t *testing.T) {
		ch := NewWhatsAppChannel(http.DefaultClient, cfg, "")

		errtest.AssertIs(t, ch.Send(context.Background(), testMessage), ErrMissingRecipient)
	})
}
