package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "enginex/internal/delivery/context"
	"enginex/internal/domain/constants"
	"enginex/internal/domain/entity"
	"enginex/internal/domain/repository"
	"enginex/internal/domain/service"

	"github.com/pkg/errors"
)

// dateLayout formats dates in notification bodies.
const dateLayout = "02/01/2006"

// notifier stores in-app notifications inside the caller's transaction and,
// once the transaction has committed, publishes the matching push and email events.
type notifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newNotifier(publisher service.EventPublisher, logger *slog.Logger) *notifier {
	return &notifier{publisher: publisher, logger: logger}
}

func (n *notifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// record inserts the notification with the transaction-bound repository.
func (n *notifier) record(ctx context.Context, repo repository.NotificationRepository, notification *entity.Notification) error {
	if err := repo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to store notification")
	}

	return nil
}

// push publishes a delivery event per committed notification. Failures are logged and swallowed:
// the in-app notification is already stored and remains the source of truth.
func (n *notifier) push(ctx context.Context, notifications ...*entity.Notification) {
	if n.publisher == nil {
		return
	}
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, notification := range notifications {
		event := &service.NotificationEvent{
			RequestID:      requestID,
			NotificationID: notification.ID.String(),
			UserID:         notification.UserID.String(),
			Type:           string(notification.Type),
			Title:          notification.Title,
			Body:           notification.Message,
		}
		if notification.ListingID != nil {
			event.ListingID = notification.ListingID.String()
			event.Data = map[string]string{"listing_id": event.ListingID}
		}

		if err := n.publisher.PublishNotificationEvent(ctx, event); err != nil {
			n.log(ctx).Warn("Failed to publish notification event",
				slog.String("notification_id", event.NotificationID),
				slog.Any("error", err),
			)
		}
	}
}

// email publishes a transactional email event. Failures are logged and swallowed.
func (n *notifier) email(ctx context.Context, template, to string, data map[string]string) {
	if n.publisher == nil || to == "" {
		return
	}

	event := &service.EmailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Template:  template,
		To:        to,
		Data:      data,
	}
	if err := n.publisher.PublishEmailEvent(ctx, event); err != nil {
		n.log(ctx).Warn("Failed to publish email event",
			slog.String("template", template),
			slog.Any("error", err),
		)
	}
}

// contactAddress is where listing emails go: the contact email, or a synthetic address derived from the phone.
func contactAddress(email, phone string) string {
	if email != "" {
		return email
	}
	if phone == "" {
		return ""
	}

	return phone + "@" + constants.TempEmailDomain
}

// --- Notification builders ---

func moderationNotification(listing *entity.Listing) *entity.Notification {
	listingID := listing.ID
	notification := &entity.Notification{
		UserID:    *listing.UserID,
		ListingID: &listingID,
	}

	switch listing.Status {
	case entity.ListingStatusApproved:
		notification.Type = entity.NotificationListingApproved
		notification.Title = "Annonce approuvée"
		notification.Message = fmt.Sprintf("Votre annonce « %s » est maintenant en ligne.", listing.Title)
	default:
		notification.Type = entity.NotificationListingRejected
		notification.Title = "Annonce refusée"
		notification.Message = fmt.Sprintf("Votre annonce « %s » n'a pas été validée par la modération.", listing.Title)
	}

	return notification
}

func expiringNotification(listing *entity.Listing) *entity.Notification {
	listingID := listing.ID

	return &entity.Notification{
		UserID:    *listing.UserID,
		ListingID: &listingID,
		Type:      entity.NotificationListingExpiring,
		Title:     "Annonce bientôt expirée",
		Message:   fmt.Sprintf("Votre annonce « %s » expire le %s.", listing.Title, listing.ExpiresAt.Format(dateLayout)),
	}
}

func expiredNotification(listing *entity.Listing) *entity.Notification {
	listingID := listing.ID

	return &entity.Notification{
		UserID:    *listing.UserID,
		ListingID: &listingID,
		Type:      entity.NotificationListingExpired,
		Title:     "Annonce expirée",
		Message:   fmt.Sprintf("Votre annonce « %s » a expiré et n'est plus visible.", listing.Title),
	}
}

func subscriptionActivatedNotification(profile *entity.Profile, until time.Time) *entity.Notification {
	return &entity.Notification{
		UserID:  profile.ID,
		Type:    entity.NotificationSubscriptionActivated,
		Title:   "Abonnement activé",
		Message: fmt.Sprintf("Votre abonnement %s est actif jusqu'au %s.", profile.AccountType, until.Format(dateLayout)),
	}
}

func subscriptionExpiredNotification(profile *entity.Profile) *entity.Notification {
	return &entity.Notification{
		UserID:  profile.ID,
		Type:    entity.NotificationSubscriptionExpired,
		Title:   "Abonnement expiré",
		Message: "Votre abonnement a expiré. Votre compte est repassé au plan gratuit.",
	}
}
