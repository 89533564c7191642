package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMailerNotConfigured is returned when no provider credentials are
// present. Sends short-circuit without network I/O so local development
// works without a live API key.
var ErrMailerNotConfigured = errors.New("email provider not configured")

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer sends a single email through a transactional-email provider and
// returns the provider's message id. It is the external collaborator
// boundary of the notifier; tests substitute a fake.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// ResendMailer sends email through the Resend HTTPS API.
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// NewResendMailer creates a Resend client. An empty apiKey produces a
// client whose sends fail with ErrMailerNotConfigured.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: "https://api.resend.com/emails",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// resendRequest represents a Resend send-email call
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// resendResponse represents the response from the Resend API
type resendResponse struct {
	ID string `json:"id"`
}

// Send dispatches one email and returns the provider message id.
func (m *ResendMailer) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if m.apiKey == "" {
		return "", ErrMailerNotConfigured
	}

	payload := resendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var result resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse email provider response: %w", err)
	}

	return result.ID, nil
}
