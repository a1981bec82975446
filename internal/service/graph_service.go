package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/audit"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/consumer"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/pagination"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/store"
	pkglog "github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/storage"
)

// MsgFollowingEveryone is the empty state of RecommendUsers.
const MsgFollowingEveryone = "You're already following everyone"

// Config tunes the graph service.
type Config struct {
	StoreTimeout      time.Duration
	DefaultPageSize   int
	MaxPageSize       int
	RecommendPageSize int
	ImageURLTTL       time.Duration
}

// Deps are the collaborators of the graph service.
type Deps struct {
	Edges    repository.EdgeRepository
	Users    repository.UserRepository
	Projects repository.TargetChecker
	Posts    repository.TargetChecker
	Notifier FollowNotifier
	// Images resolves stored avatar keys. Nil returns stored values as-is.
	Images storage.URLSigner
}

// graphService implements GraphService.
type graphService struct {
	edges    repository.EdgeRepository
	users    repository.UserRepository
	notifier FollowNotifier
	images   storage.URLSigner
	kinds    map[domain.EdgeKind]edgeKind
	cfg      Config
	now      func() time.Time
}

// NewGraphService creates a new GraphService instance.
func NewGraphService(deps Deps, cfg Config) GraphService {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.RecommendPageSize <= 0 {
		cfg.RecommendPageSize = 12
	}

	s := &graphService{
		edges:    deps.Edges,
		users:    deps.Users,
		notifier: deps.Notifier,
		images:   deps.Images,
		cfg:      cfg,
		now:      time.Now,
	}

	s.kinds = map[domain.EdgeKind]edgeKind{
		domain.KindFollow: {
			kind:         domain.KindFollow,
			target:       deps.Users,
			notFound:     ErrUserNotFound,
			notify:       true,
			messages:     followMessages,
			createAction: audit.ActionFollow,
			deleteAction: audit.ActionUnfollow,
		},
	}
	if deps.Projects != nil {
		s.kinds[domain.KindProjectFollow] = edgeKind{
			kind:         domain.KindProjectFollow,
			target:       deps.Projects,
			notFound:     ErrProjectNotFound,
			messages:     projectFollowMessages,
			createAction: audit.ActionEdgeCreate,
			deleteAction: audit.ActionEdgeDelete,
		}
		s.kinds[domain.KindProjectStar] = edgeKind{
			kind:         domain.KindProjectStar,
			target:       deps.Projects,
			notFound:     ErrProjectNotFound,
			messages:     projectStarMessages,
			createAction: audit.ActionEdgeCreate,
			deleteAction: audit.ActionEdgeDelete,
		}
	}
	if deps.Posts != nil {
		s.kinds[domain.KindPostLike] = edgeKind{
			kind:         domain.KindPostLike,
			target:       deps.Posts,
			notFound:     ErrPostNotFound,
			messages:     postLikeMessages,
			createAction: audit.ActionEdgeCreate,
			deleteAction: audit.ActionEdgeDelete,
		}
	}

	return s
}

// ListFollowers returns the users following userID, most recent follow first.
func (s *graphService) ListFollowers(ctx context.Context, userID, cursor string, limit int) (*domain.UserPage, error) {
	return s.listEdgeUsers(ctx, userID, domain.DirectionFollowers, cursor, limit)
}

// ListFollowing returns the users userID follows, most recent follow first.
func (s *graphService) ListFollowing(ctx context.Context, userID, cursor string, limit int) (*domain.UserPage, error) {
	return s.listEdgeUsers(ctx, userID, domain.DirectionFollowing, cursor, limit)
}

func (s *graphService) listEdgeUsers(ctx context.Context, userID string, dir domain.Direction, token string, limit int) (*domain.UserPage, error) {
	l := pkglog.Ctx(ctx)

	after, err := decodeCursor(token)
	if err != nil {
		return nil, err
	}
	if after != nil {
		if _, err := after.UintID(); err != nil {
			return nil, ErrInvalidCursor
		}
	}
	limit = pagination.Limit(limit, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	var (
		rows  []domain.EdgeUser
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) ([]domain.EdgeUser, error) {
			return s.edges.ListUsers(ctx, userID, dir, after, pagination.Window(limit))
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) (int64, error) {
			if dir == domain.DirectionFollowing {
				return s.edges.CountOutgoing(ctx, domain.KindFollow, userID)
			}
			return s.edges.CountIncoming(ctx, domain.KindFollow, userID)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Str(pkglog.FieldUserID, userID).Str("direction", string(dir)).Msg("failed to list edge users")
		return nil, err
	}

	page, next, more := pagination.Trim(rows, limit, func(r domain.EdgeUser) pagination.Cursor {
		return pagination.Cursor{Time: r.EdgeCreatedAt, ID: pagination.FromUint(r.EdgeID)}
	})

	return &domain.UserPage{
		Items: lo.Map(page, func(r domain.EdgeUser, _ int) domain.UserProjection {
			return s.project(ctx, &r.User)
		}),
		Pagination: domain.Pagination{
			NextCursor:  next,
			HasNextPage: more,
			Total:       total,
		},
	}, nil
}

// RecommendUsers returns users actorID does not follow yet, most followed first.
func (s *graphService) RecommendUsers(ctx context.Context, actorID, token string, limit int) (*domain.UserPage, error) {
	l := pkglog.Ctx(ctx)

	if actorID == "" {
		return nil, ErrMissingActor
	}
	after, err := decodeCursor(token)
	if err != nil {
		return nil, err
	}
	limit = pagination.Limit(limit, s.cfg.RecommendPageSize, s.cfg.MaxPageSize)

	var (
		following  []string
		totalUsers int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		following, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) ([]string, error) {
			return s.edges.OutgoingTargets(ctx, domain.KindFollow, actorID)
		})
		return err
	})
	g.Go(func() error {
		var err error
		totalUsers, err = store.Call(gctx, s.cfg.StoreTimeout, s.users.Count)
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Str(pkglog.FieldActorID, actorID).Msg("failed to load recommendation exclusions")
		return nil, err
	}

	if int64(len(following)) >= totalUsers-1 {
		return &domain.UserPage{
			Items:   []domain.UserProjection{},
			Message: MsgFollowingEveryone,
		}, nil
	}

	var (
		rows  []domain.RankedUser
		total int64
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) ([]domain.RankedUser, error) {
			return s.users.ListRecommended(ctx, actorID, following, after, pagination.Window(limit))
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) (int64, error) {
			return s.users.CountRecommended(ctx, actorID, following)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Str(pkglog.FieldActorID, actorID).Msg("failed to list recommended users")
		return nil, err
	}

	page, next, more := pagination.Trim(rows, limit, func(r domain.RankedUser) pagination.Cursor {
		return pagination.Cursor{Score: r.FollowerCount, Time: r.User.CreatedAt, ID: r.User.ID}
	})

	return &domain.UserPage{
		Items: lo.Map(page, func(r domain.RankedUser, _ int) domain.UserProjection {
			p := s.project(ctx, &r.User)
			p.FollowerCount = lo.ToPtr(r.FollowerCount)
			return p
		}),
		Pagination: domain.Pagination{
			NextCursor:  next,
			HasNextPage: more,
			Total:       total,
		},
	}, nil
}

// GetFollowCounts returns how many users follow userID and how many it follows.
func (s *graphService) GetFollowCounts(ctx context.Context, userID string) (*domain.FollowCounts, error) {
	l := pkglog.Ctx(ctx)

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	var counts domain.FollowCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts.Followers, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) (int64, error) {
			return s.edges.CountIncoming(ctx, domain.KindFollow, userID)
		})
		return err
	})
	g.Go(func() error {
		var err error
		counts.Following, err = store.Call(gctx, s.cfg.StoreTimeout, func(ctx context.Context) (int64, error) {
			return s.edges.CountOutgoing(ctx, domain.KindFollow, userID)
		})
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Str(pkglog.FieldUserID, userID).Msg("failed to count follows")
		return nil, err
	}
	return &counts, nil
}

// BatchIsFollowing checks whether followerID follows each of the given targetIDs.
func (s *graphService) BatchIsFollowing(ctx context.Context, followerID string, targetIDs []string) (map[string]bool, error) {
	targetIDs = lo.Uniq(lo.Compact(targetIDs))
	if len(targetIDs) > s.cfg.MaxPageSize {
		return nil, ErrTooManyTargets
	}
	return store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (map[string]bool, error) {
		return s.edges.BatchExists(ctx, domain.KindFollow, followerID, targetIDs)
	})
}

// PurgeUser removes every edge touching userID.
func (s *graphService) PurgeUser(ctx context.Context, userID string) (int64, error) {
	n, err := store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (int64, error) {
		return s.edges.DeleteTouching(ctx, userID)
	})
	if err != nil {
		return 0, err
	}
	audit.LogCount(ctx, audit.ActionPurgeUser, userID, n, "edges of deleted user purged")
	return n, nil
}

// HandleCDCEvent purges the edges of users deleted upstream.
func (s *graphService) HandleCDCEvent(ctx context.Context, event *consumer.DebeziumMessage) error {
	l := pkglog.Ctx(ctx)
	op := event.Payload.Op

	switch op {
	case "r", "c":
		// Snapshot reads and new users never touch existing edges.
		return nil

	case "u":
		after := event.Payload.After
		if after == nil {
			l.Warn().Msg("CDC update event missing 'after' field")
			return nil
		}
		if !after.IsDeleted() {
			return nil
		}
		if _, err := s.PurgeUser(ctx, after.ID); err != nil {
			l.Error().Err(err).Str(pkglog.FieldUserID, after.ID).Msg("failed to purge edges (soft delete)")
			return err
		}

	case "d":
		before := event.Payload.Before
		if before == nil {
			l.Warn().Msg("CDC hard-delete event missing 'before' field")
			return nil
		}
		if _, err := s.PurgeUser(ctx, before.ID); err != nil {
			l.Error().Err(err).Str(pkglog.FieldUserID, before.ID).Msg("failed to purge edges (hard delete)")
			return err
		}

	default:
		l.Warn().Str("op", op).Msg("unknown CDC operation, skipping")
	}

	return nil
}

// requireUser returns ErrUserNotFound unless userID is a live user.
func (s *graphService) requireUser(ctx context.Context, userID string) error {
	ok, err := store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (bool, error) {
		return s.users.Exists(ctx, userID)
	})
	if err != nil {
		l := pkglog.Ctx(ctx)
		l.Error().Err(err).Str(pkglog.FieldUserID, userID).Msg("failed to look up user")
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// project converts a user into its API shape, resolving stored image keys.
func (s *graphService) project(ctx context.Context, u *domain.User) domain.UserProjection {
	return domain.UserProjection{
		ID:     u.ID,
		Name:   u.Name,
		Handle: u.Handle,
		Image:  s.imageURL(ctx, u.Image),
		Bio:    u.Bio,
	}
}

func (s *graphService) imageURL(ctx context.Context, image string) string {
	if s.images == nil || image == "" || storage.IsAbsoluteURL(image) {
		return image
	}
	url, err := s.images.GetURL(ctx, image, s.cfg.ImageURLTTL)
	if err != nil {
		l := pkglog.Ctx(ctx)
		l.Warn().Err(err).Str("key", image).Msg("failed to resolve image url")
		return image
	}
	return url
}

func decodeCursor(token string) (*pagination.Cursor, error) {
	c, err := pagination.Decode(token)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return c, nil
}

// Ensure interface is satisfied at compile time.
var _ GraphService = (*graphService)(nil)
