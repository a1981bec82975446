package notifier

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/store"
	pkglog "github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/pubsub"
)

// Notifier writes follow notifications and announces them on the event bus.
type Notifier struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	publisher     pubsub.Publisher
	storeTimeout  time.Duration
	now           func() time.Time
}

// New creates a Notifier. A nil publisher disables announcements.
func New(users repository.UserRepository, notifications repository.NotificationRepository, publisher pubsub.Publisher, storeTimeout time.Duration) *Notifier {
	if publisher == nil {
		publisher = pubsub.NopPublisher{}
	}
	return &Notifier{
		users:         users,
		notifications: notifications,
		publisher:     publisher,
		storeTimeout:  storeTimeout,
		now:           time.Now,
	}
}

// NotifyFollow records that actorID started following recipientID.
// Every call writes a new record.
func (n *Notifier) NotifyFollow(ctx context.Context, actorID, recipientID string) (*domain.Notification, error) {
	actor, err := store.Call(ctx, n.storeTimeout, func(ctx context.Context) (*domain.User, error) {
		return n.users.GetByID(ctx, actorID)
	}, repository.ErrUserNotFound)
	if err != nil {
		return nil, fmt.Errorf("lookup actor %s: %w", actorID, err)
	}

	now := n.now().UTC()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate notification id: %w", err)
	}

	note := &domain.Notification{
		ID:        id.String(),
		Type:      domain.NotificationTypeFollow,
		UserID:    recipientID,
		ActorID:   actorID,
		Message:   domain.FollowMessage(actor.DisplayName()),
		CreatedAt: now,
	}

	err = store.Exec(ctx, n.storeTimeout, func(ctx context.Context) error {
		return n.notifications.Create(ctx, note)
	})
	if err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	n.announce(ctx, note)
	return note, nil
}

// announce is best-effort; the stored row is the source of truth.
func (n *Notifier) announce(ctx context.Context, note *domain.Notification) {
	l := pkglog.Ctx(ctx)

	event, err := pubsub.NewEvent(pubsub.EventNotificationCreated, note.UserID, note)
	if err != nil {
		l.Warn().Err(err).Str("notification_id", note.ID).Msg("failed to encode notification event")
		return
	}

	if err := n.publisher.Publish(ctx, pubsub.UserNotificationsChannel(note.UserID), event); err != nil {
		l.Warn().Err(err).
			Str("notification_id", note.ID).
			Str(pkglog.FieldUserID, note.UserID).
			Msg("failed to publish notification event")
	}
}
