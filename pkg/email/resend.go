package email

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendConfig configures the Resend API client.
type ResendConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// ResendSender sends messages through the Resend HTTP API
// (POST {BaseURL}emails with a bearer token).
type ResendSender struct {
	client *resend.Client
	apiKey string
	logger *zap.Logger
}

func NewResendSender(cfg ResendConfig, logger *zap.Logger) (*ResendSender, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)

	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid resend base url %q", cfg.BaseURL)
		}
		client.BaseURL = baseURL
	}

	return &ResendSender{
		client: client,
		apiKey: cfg.APIKey,
		logger: logger.Named("resend"),
	}, nil
}

// IsConfigured reports whether an API key is present. An unconfigured
// sender still attempts delivery; the provider rejects it.
func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != ""
}

// Send delivers msg and returns the Resend message id.
func (s *ResendSender) Send(ctx context.Context, msg *Message) (string, error) {
	if msg == nil {
		return "", errors.New("nil message")
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "contact"},
			{Name: "kind", Value: string(msg.Kind)},
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.String("kind", string(msg.Kind)),
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject))
		return "", errors.Wrapf(err, "send %s email", msg.Kind)
	}

	s.logger.Debug("email accepted by provider",
		zap.String("email_id", sent.Id),
		zap.String("kind", string(msg.Kind)),
		zap.Strings("to", msg.To))

	return sent.Id, nil
}
