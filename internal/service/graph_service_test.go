package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/consumer"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/notifier"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
	repomocks "github.com/yeabnoah/nerdspace/social-graph-service/internal/repository/mocks"
	servicemocks "github.com/yeabnoah/nerdspace/social-graph-service/internal/service/mocks"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/testutil"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/storage"
)

func newTestService(t *testing.T, opts ...func(*Deps)) (*graphService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)

	users := repository.NewGormUserRepository(db)
	deps := Deps{
		Edges:    repository.NewGormEdgeRepository(db),
		Users:    users,
		Projects: repository.NewProjectChecker(db),
		Posts:    repository.NewPostChecker(db),
		Notifier: notifier.New(users, repository.NewGormNotificationRepository(db), nil, time.Second),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	svc := NewGraphService(deps, Config{StoreTimeout: time.Second}).(*graphService)
	return svc, db
}

func TestToggleFollow_FollowThenUnfollow(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "a", "Alice", 0)
	testutil.SeedUser(t, db, "b", "Bob", 0)

	res, err := svc.ToggleFollow(ctx, "a", "b", domain.ActionToggle)
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowResult{Followed: true, Message: "Followed successfully"}, res)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))

	notes := testutil.Notifications(t, db, "b")
	require.Len(t, notes, 1)
	assert.Equal(t, domain.NotificationTypeFollow, notes[0].Type)
	assert.Equal(t, "a", notes[0].ActorID)
	assert.Equal(t, "Alice started following you", notes[0].Message)

	res, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionToggle)
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowResult{Followed: false, Message: "Unfollowed successfully"}, res)
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
	assert.Len(t, testutil.Notifications(t, db, "b"), 1)

	// Every follow transition notifies again.
	res, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionToggle)
	require.NoError(t, err)
	assert.True(t, res.Followed)
	assert.Len(t, testutil.Notifications(t, db, "b"), 2)
}

func TestToggleFollow_ExplicitActions(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "a", "Alice", 0)
	testutil.SeedUser(t, db, "b", "Bob", 0)

	res, err := svc.ToggleFollow(ctx, "a", "b", domain.ActionRemove)
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowResult{Followed: false, Message: "Not following"}, res)

	res, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionAdd)
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowResult{Followed: true, Message: "Followed successfully"}, res)

	res, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionAdd)
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowResult{Followed: true, Message: "Already following"}, res)
	assert.Len(t, testutil.Notifications(t, db, "b"), 1)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))

	res, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionRemove)
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowResult{Followed: false, Message: "Unfollowed successfully"}, res)
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
}

func TestToggleFollow_Rejections(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "a", "Alice", 0)

	tests := []struct {
		name    string
		actor   string
		target  string
		action  domain.Action
		wantErr error
		wantIs  error
	}{
		{name: "self follow", actor: "a", target: "a", wantErr: ErrSelfFollow, wantIs: ErrInvalidOperation},
		{name: "self follow of unknown user", actor: "ghost", target: "ghost", wantErr: ErrSelfFollow, wantIs: ErrInvalidOperation},
		{name: "unknown target", actor: "a", target: "ghost", wantErr: ErrUserNotFound, wantIs: ErrNotFound},
		{name: "missing actor", actor: "", target: "a", wantErr: ErrMissingActor, wantIs: ErrInvalidOperation},
		{name: "missing target", actor: "a", target: "", wantErr: ErrMissingTarget, wantIs: ErrInvalidOperation},
		{name: "bad action", actor: "a", target: "b", action: domain.Action("sideways"), wantErr: ErrInvalidAction, wantIs: ErrInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ToggleFollow(ctx, tt.actor, tt.target, tt.action)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}

	var edges int64
	require.NoError(t, db.Model(&domain.EdgeModel{}).Count(&edges).Error)
	assert.Zero(t, edges)
	assert.Empty(t, testutil.Notifications(t, db, "a"))
}

func TestToggleFollow_ConcurrentTogglesLeaveOneEdge(t *testing.T) {
	svc, db := newTestService(t)
	testutil.SeedUser(t, db, "a", "Alice", 0)
	testutil.SeedUser(t, db, "b", "Bob", 0)

	// Both toggles begin before either edge write lands.
	started := time.Now().UTC()
	svc.now = func() time.Time { return started }

	const racers = 2
	results := make([]*domain.FollowResult, racers)
	errs := make([]error, racers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = svc.ToggleFollow(context.Background(), "a", "b", domain.ActionToggle)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < racers; i++ {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Followed)
	}
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
	assert.Len(t, testutil.Notifications(t, db, "b"), 1)
}

func TestToggleFollow_ConcurrentFollowsNotifyOnce(t *testing.T) {
	svc, db := newTestService(t)
	testutil.SeedUser(t, db, "a", "Alice", 0)
	testutil.SeedUser(t, db, "b", "Bob", 0)

	const racers = 8
	var wg sync.WaitGroup
	errs := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.ToggleFollow(context.Background(), "a", "b", domain.ActionAdd)
			if err == nil && !res.Followed {
				err = errors.New("follow reported not followed")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
	assert.Len(t, testutil.Notifications(t, db, "b"), 1)
}

func TestToggleFollow_NotificationFailureKeepsEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifications := repomocks.NewMockNotificationRepository(ctrl)
	notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("notifications table locked"))

	svc, db := newTestService(t, func(d *Deps) {
		d.Notifier = notifier.New(d.Users, notifications, nil, time.Second)
	})
	testutil.SeedUser(t, db, "a", "Alice", 0)
	testutil.SeedUser(t, db, "b", "Bob", 0)

	res, err := svc.ToggleFollow(context.Background(), "a", "b", domain.ActionToggle)
	require.NoError(t, err)
	assert.True(t, res.Followed)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
}

func TestListFollowers_PagesAreComplete(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "star", "Star", 0)

	const n = 25
	want := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("fan-%02d", i)
		testutil.SeedUser(t, db, id, id, 0)
		// Pairs share a timestamp so the id tiebreak is exercised.
		testutil.SeedEdge(t, db, domain.KindFollow, id, "star", testutil.Base.Add(time.Duration(i/2)*time.Minute))
		want[id] = true
	}

	seen := make(map[string]bool, n)
	var sizes []int
	cursor := ""
	for {
		page, err := svc.ListFollowers(ctx, "star", cursor, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(n), page.Pagination.Total)
		sizes = append(sizes, len(page.Items))
		for _, item := range page.Items {
			assert.False(t, seen[item.ID], "duplicate %s", item.ID)
			seen[item.ID] = true
		}
		if !page.Pagination.HasNextPage {
			assert.Nil(t, page.Pagination.NextCursor)
			break
		}
		require.NotNil(t, page.Pagination.NextCursor)
		cursor = *page.Pagination.NextCursor
	}

	assert.Equal(t, []int{10, 10, 5}, sizes)
	assert.Equal(t, want, seen)
}

func TestListFollowers_Ordering(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	for _, id := range []string{"me", "x", "y", "z"} {
		testutil.SeedUser(t, db, id, id, 0)
	}
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "y", testutil.Base.Add(1*time.Minute))
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "x", testutil.Base.Add(3*time.Minute))
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "z", testutil.Base.Add(2*time.Minute))

	page, err := svc.ListFollowing(ctx, "me", "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "x", page.Items[0].ID)
	assert.Equal(t, "z", page.Items[1].ID)
	assert.Equal(t, "y", page.Items[2].ID)
	assert.False(t, page.Pagination.HasNextPage)
	assert.Equal(t, int64(3), page.Pagination.Total)
}

func TestListFollowers_Errors(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "a", "Alice", 0)

	_, err := svc.ListFollowers(ctx, "ghost", "", 10)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ListFollowers(ctx, "a", "not-a-cursor!", 10)
	assert.ErrorIs(t, err, ErrInvalidCursor)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	empty, err := svc.ListFollowing(ctx, "a", "", 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Nil(t, empty.Pagination.NextCursor)
}

func TestListFollowers_ResolvesImageKeys(t *testing.T) {
	svc, db := newTestService(t, func(d *Deps) {
		d.Images = storage.NewLocalStorage(storage.LocalConfig{BaseURL: "https://cdn.example.com/"})
	})
	ctx := context.Background()

	testutil.SeedUser(t, db, "star", "Star", 0)
	require.NoError(t, db.Create(&domain.UserModel{ID: "k", Username: "k", Image: "avatars/k.png", CreatedAt: testutil.Base}).Error)
	require.NoError(t, db.Create(&domain.UserModel{ID: "u", Username: "u", Image: "https://github.com/u.png", CreatedAt: testutil.Base}).Error)
	testutil.SeedEdge(t, db, domain.KindFollow, "k", "star", testutil.Base.Add(time.Minute))
	testutil.SeedEdge(t, db, domain.KindFollow, "u", "star", testutil.Base)

	page, err := svc.ListFollowers(ctx, "star", "", 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "https://cdn.example.com/avatars/k.png", page.Items[0].Image)
	assert.Equal(t, "https://github.com/u.png", page.Items[1].Image)
}

func TestRecommendUsers_ExcludesSelfAndFollowed(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	testutil.SeedUser(t, db, "me", "Me", 0)
	for i := 0; i < 15; i++ {
		testutil.SeedUser(t, db, fmt.Sprintf("u%02d", i), "", time.Duration(i)*time.Minute)
	}
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "u03", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "u07", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "u01", "u00", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "u02", "u00", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "u02", "u05", testutil.Base)

	page, err := svc.RecommendUsers(ctx, "me", "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 12)
	assert.True(t, page.Pagination.HasNextPage)
	assert.Equal(t, int64(13), page.Pagination.Total)
	assert.Empty(t, page.Message)

	assert.Equal(t, "u00", page.Items[0].ID)
	assert.Equal(t, int64(2), *page.Items[0].FollowerCount)
	assert.Equal(t, "u05", page.Items[1].ID)
	// Zero-follower users come newest first.
	assert.Equal(t, "u14", page.Items[2].ID)

	seen := map[string]bool{}
	for _, item := range page.Items {
		seen[item.ID] = true
	}
	require.NotNil(t, page.Pagination.NextCursor)
	rest, err := svc.RecommendUsers(ctx, "me", *page.Pagination.NextCursor, 0)
	require.NoError(t, err)
	require.Len(t, rest.Items, 1)
	assert.False(t, rest.Pagination.HasNextPage)
	seen[rest.Items[0].ID] = true

	assert.Len(t, seen, 13)
	for _, excluded := range []string{"me", "u03", "u07"} {
		assert.False(t, seen[excluded], excluded)
	}
}

func TestRecommendUsers_FollowingEveryone(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "me", "Me", 0)
	testutil.SeedUser(t, db, "a", "A", 0)
	testutil.SeedUser(t, db, "b", "B", 0)
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "a", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "b", testutil.Base)

	page, err := svc.RecommendUsers(ctx, "me", "", 0)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, MsgFollowingEveryone, page.Message)
	assert.False(t, page.Pagination.HasNextPage)
}

func TestRecommendUsers_DeletedFolloweeDoesNotHideCandidates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "me", "Me", 0)
	testutil.SeedUser(t, db, "a", "A", 0)
	gone := testutil.SeedUser(t, db, "b", "B", 0)
	testutil.SeedUser(t, db, "c", "C", 0)
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "a", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "me", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "c", "a", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "b", "a", testutil.Base)

	// b is soft-deleted upstream; its edges linger until CDC or the reconciler purges them.
	require.NoError(t, db.Delete(gone).Error)

	page, err := svc.RecommendUsers(ctx, "me", "", 0)
	require.NoError(t, err)
	assert.Empty(t, page.Message)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "c", page.Items[0].ID)
	assert.Equal(t, int64(1), page.Pagination.Total)

	counts, err := svc.GetFollowCounts(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowCounts{Followers: 0, Following: 1}, counts)

	followers, err := svc.ListFollowers(ctx, "a", "", 0)
	require.NoError(t, err)
	assert.Len(t, followers.Items, 2)
	assert.Equal(t, int64(2), followers.Pagination.Total)
}

// Three users A, B and C walk through follow, recommendation and unfollow.
func TestGraph_ThreeUserScenario(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "A", "Ann", 0)
	testutil.SeedUser(t, db, "B", "Ben", time.Minute)
	testutil.SeedUser(t, db, "C", "Cid", 2*time.Minute)

	res, err := svc.ToggleFollow(ctx, "A", "B", domain.ActionToggle)
	require.NoError(t, err)
	assert.True(t, res.Followed)

	followers, err := svc.ListFollowers(ctx, "B", "", 10)
	require.NoError(t, err)
	require.Len(t, followers.Items, 1)
	assert.Equal(t, "A", followers.Items[0].ID)

	notes := testutil.Notifications(t, db, "B")
	require.Len(t, notes, 1)
	assert.Equal(t, "Ann started following you", notes[0].Message)

	recs, err := svc.RecommendUsers(ctx, "A", "", 0)
	require.NoError(t, err)
	require.Len(t, recs.Items, 1)
	assert.Equal(t, "C", recs.Items[0].ID)

	res, err = svc.ToggleFollow(ctx, "A", "C", domain.ActionToggle)
	require.NoError(t, err)
	assert.True(t, res.Followed)

	recs, err = svc.RecommendUsers(ctx, "A", "", 0)
	require.NoError(t, err)
	assert.Empty(t, recs.Items)
	assert.Equal(t, MsgFollowingEveryone, recs.Message)

	res, err = svc.ToggleFollow(ctx, "A", "B", domain.ActionToggle)
	require.NoError(t, err)
	assert.False(t, res.Followed)

	followers, err = svc.ListFollowers(ctx, "B", "", 10)
	require.NoError(t, err)
	assert.Empty(t, followers.Items)
	assert.Len(t, testutil.Notifications(t, db, "B"), 1)
	assert.Len(t, testutil.Notifications(t, db, "C"), 1)
}

func TestToggleEdge_OtherKinds(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	testutil.SeedUser(t, db, "a", "Alice", 0)
	require.NoError(t, db.Create(&domain.ProjectModel{ID: "p1", OwnerID: "a"}).Error)
	require.NoError(t, db.Create(&domain.PostModel{ID: "post-1", AuthorID: "a"}).Error)

	star, err := svc.ToggleEdge(ctx, domain.KindProjectStar, "a", "p1", domain.ActionToggle)
	require.NoError(t, err)
	assert.True(t, star.Active)
	assert.Equal(t, "Project starred", star.Message)

	follow, err := svc.ToggleEdge(ctx, domain.KindProjectFollow, "a", "p1", domain.ActionAdd)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCreated, follow.Outcome)

	like, err := svc.ToggleEdge(ctx, domain.KindPostLike, "a", "post-1", domain.ActionToggle)
	require.NoError(t, err)
	assert.Equal(t, "Post liked", like.Message)

	unlike, err := svc.ToggleEdge(ctx, domain.KindPostLike, "a", "post-1", domain.ActionToggle)
	require.NoError(t, err)
	assert.False(t, unlike.Active)
	assert.Equal(t, "Post unliked", unlike.Message)

	_, err = svc.ToggleEdge(ctx, domain.KindPostLike, "a", "p1", domain.ActionToggle)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.ToggleEdge(ctx, domain.EdgeKind("block"), "a", "p1", domain.ActionToggle)
	assert.ErrorIs(t, err, ErrUnknownEdgeKind)

	// Only follows between users notify.
	assert.Empty(t, testutil.Notifications(t, db, "a"))
	assert.Empty(t, testutil.Notifications(t, db, "p1"))
}

func TestGetFollowCountsAndBatch(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		testutil.SeedUser(t, db, id, id, 0)
	}
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "c", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "b", "a", testutil.Base)

	counts, err := svc.GetFollowCounts(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, &domain.FollowCounts{Followers: 2, Following: 1}, counts)

	_, err = svc.GetFollowCounts(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	status, err := svc.BatchIsFollowing(ctx, "a", []string{"b", "c", "b", ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"b": true, "c": false}, status)

	many := make([]string, 101)
	for i := range many {
		many[i] = fmt.Sprintf("t%d", i)
	}
	_, err = svc.BatchIsFollowing(ctx, "a", many)
	assert.ErrorIs(t, err, ErrTooManyTargets)
}

func TestHandleCDCEvent_PurgesDeletedUsers(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		testutil.SeedUser(t, db, id, id, 0)
	}
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "b", "a", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "c", "b", testutil.Base)

	update := func(id string, deletedAt string) *consumer.DebeziumMessage {
		return &consumer.DebeziumMessage{Payload: consumer.DebeziumPayload{
			Op:    "u",
			After: &consumer.DebeziumUserRecord{ID: id, DeletedAt: []byte(deletedAt)},
		}}
	}

	require.NoError(t, svc.HandleCDCEvent(ctx, update("a", "null")))
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))

	require.NoError(t, svc.HandleCDCEvent(ctx, update("a", `"2024-05-01T00:00:00Z"`)))
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "b", "a"))
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "c", "b"))

	hardDelete := &consumer.DebeziumMessage{Payload: consumer.DebeziumPayload{
		Op:     "d",
		Before: &consumer.DebeziumUserRecord{ID: "c"},
	}}
	require.NoError(t, svc.HandleCDCEvent(ctx, hardDelete))
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "c", "b"))

	require.NoError(t, svc.HandleCDCEvent(ctx, &consumer.DebeziumMessage{Payload: consumer.DebeziumPayload{Op: "d"}}))
	require.NoError(t, svc.HandleCDCEvent(ctx, &consumer.DebeziumMessage{Payload: consumer.DebeziumPayload{Op: "t"}}))
}

func TestToggleEdge_NotifiesOnlyOnFollowCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := servicemocks.NewMockFollowNotifier(ctrl)
	svc, db := newTestService(t, func(d *Deps) { d.Notifier = n })
	ctx := context.Background()
	testutil.SeedUser(t, db, "a", "Alice", 0)
	testutil.SeedUser(t, db, "b", "Bob", 0)
	require.NoError(t, db.Create(&domain.ProjectModel{ID: "p1", OwnerID: "b"}).Error)

	n.EXPECT().NotifyFollow(gomock.Any(), "a", "b").Return(&domain.Notification{}, nil).Times(1)

	_, err := svc.ToggleFollow(ctx, "a", "b", domain.ActionAdd)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionAdd)
	require.NoError(t, err)
	_, err = svc.ToggleFollow(ctx, "a", "b", domain.ActionRemove)
	require.NoError(t, err)
	_, err = svc.ToggleEdge(ctx, domain.KindProjectFollow, "a", "p1", domain.ActionToggle)
	require.NoError(t, err)
}
