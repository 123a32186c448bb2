// Package sms sends text messages through the Twilio REST API.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Sender defines the interface for SMS delivery
type Sender interface {
	Send(ctx context.Context, toE164, body string) error
}

// TwilioConfig holds credentials for the Twilio messaging API
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// TwilioSender implements Sender against the Twilio Messages endpoint
type TwilioSender struct {
	config TwilioConfig
	client *http.Client
	logger zerolog.Logger
}

// NewTwilioSender creates a new TwilioSender
func NewTwilioSender(config TwilioConfig, logger zerolog.Logger) *TwilioSender {
	return &TwilioSender{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Send delivers an SMS to the given E.164 number. When credentials are not
// configured, the message is logged instead and delivery is reported as
// successful so that local development works without a Twilio account.
func (s *TwilioSender) Send(ctx context.Context, toE164, body string) error {
	if s.config.AccountSID == "" || s.config.AuthToken == "" {
		s.logger.Warn().
			Str("to", toE164).
			Str("body", body).
			Msg("Twilio credentials not configured - SMS not sent. Use the logged code for testing.")
		return nil
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.config.AccountSID)

	form := url.Values{}
	form.Set("To", toE164)
	form.Set("From", s.config.FromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build Twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.config.AccountSID, s.config.AuthToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("to", toE164).Msg("Twilio request failed")
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("to", toE164).
			Str("response", string(respBody)).
			Msg("Twilio rejected the message")
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	s.logger.Info().Str("to", toE164).Msg("SMS sent")
	return nil
}
