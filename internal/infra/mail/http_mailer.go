// Package mail contains the outbound mail collaborator client.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"authd/config"
	"authd/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultMailTimeout = 30 * time.Second

// httpMailer implements service.Mailer by posting messages to the remote
// mail service. The mail service owns templates and SMTP; this client only
// hands over recipient, subject and body.
type httpMailer struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// mailRequest is the mail service's submission payload.
type mailRequest struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// NewHTTPMailer creates the mail collaborator client.
func NewHTTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	timeout := cfg.Mail.Timeout
	if timeout <= 0 {
		timeout = defaultMailTimeout
	}

	return &httpMailer{
		endpoint: cfg.Mail.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Send delivers one message to a recipient.
func (m *httpMailer) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(mailRequest{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach mail service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("mail service returned non-success status: %d", resp.StatusCode)
	}

	m.logger.Info("[Mail] Message submitted",
		slog.String("subject", subject),
	)

	return nil
}
