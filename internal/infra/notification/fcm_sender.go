// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"enginex/config"
	"enginex/internal/domain/service"
	"enginex/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastLimit is the most tokens FCM accepts in one multicast request.
const multicastLimit = 500

// multicaster is the part of *messaging.Client the sender needs.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmSender struct {
	client multicaster
}

// New returns the FCM sender, or a sender that only logs when no credentials are configured.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications are disabled")

		return &logOnlySender{logger: logger}, nil
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}
	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "create messaging client")
	}

	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Push(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{}

	for start := 0; start < len(tokens); start += multicastLimit {
		chunk := tokens[start:min(start+multicastLimit, len(tokens))]
		resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
			Data:         msg.Data,
		})
		if err != nil {
			return report, errors.Wrapf(err, "multicast to %d tokens", len(chunk))
		}

		report.Delivered += resp.SuccessCount
		report.Failed += resp.FailureCount
		report.StaleTokens = append(report.StaleTokens, staleTokens(chunk, resp.Responses)...)
	}

	return report, nil
}

// staleTokens picks the tokens FCM answered as malformed or no longer registered.
func staleTokens(tokens []string, responses []*messaging.SendResponse) []string {
	var stale []string
	for i, r := range responses {
		if i >= len(tokens) || r == nil || r.Error == nil {
			continue
		}
		if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
			stale = append(stale, tokens[i])
		}
	}

	return stale
}

// logOnlySender stands in for FCM in local setups.
type logOnlySender struct {
	logger *slog.Logger
}

func (s *logOnlySender) Push(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	s.logger.DebugContext(ctx, "Push notification dropped", slog.String("title", msg.Title), slog.Int("tokens", len(tokens)))

	return &service.PushReport{Delivered: len(tokens)}, nil
}
