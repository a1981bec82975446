package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/consumer"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/store"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrConflict is a lost create/delete race. Toggles absorb it into an
	// idempotent result; it never reaches callers.
	ErrConflict  = errors.New("conflict")
	ErrTransient = store.ErrTransient

	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("%w: project not found", ErrNotFound)
	ErrPostNotFound    = fmt.Errorf("%w: post not found", ErrNotFound)

	ErrSelfFollow      = fmt.Errorf("%w: cannot follow yourself", ErrInvalidOperation)
	ErrInvalidCursor   = fmt.Errorf("%w: invalid cursor", ErrInvalidOperation)
	ErrMissingActor    = fmt.Errorf("%w: missing actor", ErrInvalidOperation)
	ErrMissingTarget   = fmt.Errorf("%w: missing target", ErrInvalidOperation)
	ErrUnknownEdgeKind = fmt.Errorf("%w: unknown edge kind", ErrInvalidOperation)
	ErrTooManyTargets  = fmt.Errorf("%w: too many targets", ErrInvalidOperation)
	ErrInvalidAction   = fmt.Errorf("%w: invalid action", ErrInvalidOperation)
)

//go:generate mockgen -destination=mocks/service.mock.go -package=servicemocks . GraphService,FollowNotifier

// GraphService defines the business logic for the social graph.
type GraphService interface {
	// ToggleFollow follows or unfollows targetID on behalf of actorID.
	ToggleFollow(ctx context.Context, actorID, targetID string, action domain.Action) (*domain.FollowResult, error)
	// ToggleEdge is ToggleFollow for any edge kind.
	ToggleEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string, action domain.Action) (*domain.ToggleResult, error)

	ListFollowers(ctx context.Context, userID, cursor string, limit int) (*domain.UserPage, error)
	ListFollowing(ctx context.Context, userID, cursor string, limit int) (*domain.UserPage, error)
	RecommendUsers(ctx context.Context, actorID, cursor string, limit int) (*domain.UserPage, error)

	GetFollowCounts(ctx context.Context, userID string) (*domain.FollowCounts, error)
	BatchIsFollowing(ctx context.Context, followerID string, targetIDs []string) (map[string]bool, error)

	// PurgeUser removes every edge touching userID.
	PurgeUser(ctx context.Context, userID string) (int64, error)
	HandleCDCEvent(ctx context.Context, event *consumer.DebeziumMessage) error
}

// FollowNotifier fans a follow out to the followed user.
type FollowNotifier interface {
	NotifyFollow(ctx context.Context, actorID, recipientID string) (*domain.Notification, error)
}
