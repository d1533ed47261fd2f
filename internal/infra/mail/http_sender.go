// Package mail forwards transactional emails to the hosted mail function.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"enginex/config"
	"enginex/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Request is the body accepted by the mail function.
type Request struct {
	Type string            `json:"type"`
	To   string            `json:"to"`
	From string            `json:"from,omitempty"`
	Data map[string]string `json:"data,omitempty"`
}

// StatusError reports a non-2xx answer. 5xx and 429 answers are retryable.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "mail endpoint returned status " + http.StatusText(e.StatusCode) + ": " + e.Body
}

// Retryable reports whether the worker should ask Pub/Sub to redeliver.
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type httpSender struct {
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

type noopSender struct {
	logger *slog.Logger
}

// New returns an HTTP sender, or a sender that only logs when mail.endpoint is empty.
func New(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.Mail == nil || cfg.Mail.Endpoint == "" {
		logger.Warn("Mail endpoint not configured, emails will only be logged")

		return &noopSender{logger: logger}
	}

	timeout := cfg.Mail.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpSender{
		endpoint:   cfg.Mail.Endpoint,
		apiKey:     cfg.Mail.APIKey,
		from:       cfg.Mail.From,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (s *httpSender) Send(ctx context.Context, template, to string, data map[string]string) error {
	body, err := json.Marshal(Request{Type: template, To: to, From: s.from, Data: data})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call mail endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.WithStack(&StatusError{StatusCode: resp.StatusCode, Body: string(snippet)})
	}

	s.logger.InfoContext(ctx, "Email sent", slog.String("template", template))

	return nil
}

func (s *noopSender) Send(ctx context.Context, template, _ string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "Email skipped, no endpoint configured", slog.String("template", template))

	return nil
}
