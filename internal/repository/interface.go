package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/pagination"
)

var (
	ErrEdgeNotFound = errors.New("edge not found")
	ErrEdgeExists   = errors.New("edge already exists")
	ErrUserNotFound = errors.New("user not found")
)

//go:generate mockgen -destination=mocks/repository.mock.go -package=repomocks . EdgeRepository,UserRepository,NotificationRepository,TargetChecker

// EdgeRepository defines persistence operations for directed edges.
type EdgeRepository interface {
	Exists(ctx context.Context, kind domain.EdgeKind, sourceID, targetID string) (bool, error)
	// Create inserts an edge. A duplicate (kind, source, target) returns ErrEdgeExists.
	Create(ctx context.Context, kind domain.EdgeKind, sourceID, targetID string) (*domain.Edge, error)
	// Delete removes an edge. A non-zero createdBefore only matches edges created in
	// an earlier microsecond.
	// Zero rows affected returns ErrEdgeNotFound.
	Delete(ctx context.Context, kind domain.EdgeKind, sourceID, targetID string, createdBefore time.Time) error
	BatchExists(ctx context.Context, kind domain.EdgeKind, sourceID string, targetIDs []string) (map[string]bool, error)
	// CountIncoming, CountOutgoing and OutgoingTargets skip edges whose user
	// endpoint is soft-deleted, matching what ListUsers returns.
	CountIncoming(ctx context.Context, kind domain.EdgeKind, targetID string) (int64, error)
	CountOutgoing(ctx context.Context, kind domain.EdgeKind, sourceID string) (int64, error)
	OutgoingTargets(ctx context.Context, kind domain.EdgeKind, sourceID string) ([]string, error)
	// ListUsers walks follow edges of userID in (created_at DESC, id DESC) order.
	ListUsers(ctx context.Context, userID string, dir domain.Direction, after *pagination.Cursor, limit int) ([]domain.EdgeUser, error)
	DeleteTouching(ctx context.Context, userID string) (int64, error)
	PurgeDangling(ctx context.Context) (int64, error)
}

// UserRepository reads the users table.
type UserRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	// ListRecommended returns users other than actorID and exclude, ordered by
	// (follower_count DESC, created_at DESC, id DESC).
	ListRecommended(ctx context.Context, actorID string, exclude []string, after *pagination.Cursor, limit int) ([]domain.RankedUser, error)
	CountRecommended(ctx context.Context, actorID string, exclude []string) (int64, error)
}

// NotificationRepository persists notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// TargetChecker reports whether an edge target exists.
type TargetChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}
