package impl

import (
	"context"
	"log/slog"

	deliverycontext "enginex/internal/delivery/context"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"
	"enginex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var emailTemplates = map[string]bool{
	service.EmailTemplateRegistration:  true,
	service.EmailTemplatePasswordReset: true,
	service.EmailTemplateNewListing:    true,
}

// retryable is implemented by sender errors that know whether a retry can succeed.
type retryable interface {
	Retryable() bool
}

type deliveryService struct {
	deviceRepo repository.DeviceRepository
	push       service.PushSender
	mailSender service.MailSender
	logger     *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Push       service.PushSender
	MailSender service.MailSender
	Logger     *slog.Logger
}

// NewDeliveryService is the constructor used by the worker.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		deviceRepo: params.DeviceRepo,
		push:       params.Push,
		mailSender: params.MailSender,
		logger:     params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeliverNotification pushes the event to every active device of its recipient.
func (srv *deliveryService) DeliverNotification(ctx context.Context, event *service.NotificationEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid user_id in notification event")
	}

	devices, err := srv.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrServiceUnavailable, "failed to load devices: "+err.Error())
	}
	if len(devices) == 0 {
		srv.log(ctx).Debug("No active devices, push skipped", slog.String("user_id", event.UserID))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["type"] = event.Type
	if event.NotificationID != "" {
		data["notification_id"] = event.NotificationID
	}

	report, err := srv.push.Push(ctx, tokens, &service.PushMessage{Title: event.Title, Body: event.Body, Data: data})
	if err != nil {
		return errors.Wrap(domainerrors.ErrServiceUnavailable, "push provider failed: "+err.Error())
	}

	if len(report.StaleTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, report.StaleTokens)
		if err != nil {
			srv.log(ctx).Warn("Failed to deactivate stale tokens", slog.Any("error", err))
		} else {
			srv.log(ctx).Info("Deactivated devices with stale tokens", slog.Int64("count", deactivated))
		}
	}

	srv.log(ctx).Info("Push notification delivered",
		slog.String("user_id", event.UserID),
		slog.String("type", event.Type),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed),
	)

	return nil
}

// DeliverEmail forwards the event to the mail function. Rejections the function
// marks as permanent are returned without the transient marker so they are not redelivered.
func (srv *deliveryService) DeliverEmail(ctx context.Context, event *service.EmailEvent) error {
	if event.To == "" || !emailTemplates[event.Template] {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid email event %q", event.Template)
	}

	if err := srv.mailSender.Send(ctx, event.Template, event.To, event.Data); err != nil {
		var r retryable
		if errors.As(err, &r) && !r.Retryable() {
			srv.log(ctx).Error("Email rejected", slog.String("template", event.Template), slog.Any("error", err))

			return errors.Wrap(err, "email rejected")
		}

		return errors.Wrap(domainerrors.ErrServiceUnavailable, "mail function failed: "+err.Error())
	}

	srv.log(ctx).Info("Email delivered", slog.String("template", event.Template))

	return nil
}
