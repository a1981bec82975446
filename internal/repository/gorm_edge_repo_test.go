package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/pagination"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/testutil"
)

func TestGormEdgeRepository_CreateExistsDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, domain.KindFollow, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	edge, err := repo.Create(ctx, domain.KindFollow, "a", "b")
	require.NoError(t, err)
	assert.NotZero(t, edge.ID)
	assert.False(t, edge.CreatedAt.IsZero())

	_, err = repo.Create(ctx, domain.KindFollow, "a", "b")
	assert.ErrorIs(t, err, ErrEdgeExists)

	// Same pair under another kind is a different edge.
	_, err = repo.Create(ctx, domain.KindProjectStar, "a", "b")
	require.NoError(t, err)

	ok, err = repo.Exists(ctx, domain.KindFollow, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, domain.KindFollow, "a", "b", time.Time{}))
	assert.ErrorIs(t, repo.Delete(ctx, domain.KindFollow, "a", "b", time.Time{}), ErrEdgeNotFound)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindProjectStar, "a", "b"))
}

func TestGormEdgeRepository_DeleteCreatedBefore(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	at := testutil.Base.Add(time.Hour)
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "b", at)

	err := repo.Delete(ctx, domain.KindFollow, "a", "b", at.Add(-time.Second))
	assert.ErrorIs(t, err, ErrEdgeNotFound)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))

	require.NoError(t, repo.Delete(ctx, domain.KindFollow, "a", "b", at.Add(time.Second)))
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
}

func TestGormEdgeRepository_BatchExistsAndCounts(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		testutil.SeedUser(t, db, id, id, 0)
	}
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "c", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "d", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindProjectStar, "a", "p1", testutil.Base)

	status, err := repo.BatchExists(ctx, domain.KindFollow, "a", []string{"b", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"b": true, "c": true, "d": false}, status)

	empty, err := repo.BatchExists(ctx, domain.KindFollow, "a", nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	in, err := repo.CountIncoming(ctx, domain.KindFollow, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), in)

	out, err := repo.CountOutgoing(ctx, domain.KindFollow, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), out)

	targets, err := repo.OutgoingTargets(ctx, domain.KindFollow, "a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, targets)

	// Non-user targets are counted as they are.
	stars, err := repo.CountOutgoing(ctx, domain.KindProjectStar, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stars)
}

func TestGormEdgeRepository_CountsIgnoreDeletedUsers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	testutil.SeedUser(t, db, "a", "a", 0)
	testutil.SeedUser(t, db, "b", "b", 0)
	gone := testutil.SeedUser(t, db, "c", "c", 0)
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "c", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "c", "b", testutil.Base)
	require.NoError(t, db.Delete(gone).Error)

	in, err := repo.CountIncoming(ctx, domain.KindFollow, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), in)

	out, err := repo.CountOutgoing(ctx, domain.KindFollow, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out)

	targets, err := repo.OutgoingTargets(ctx, domain.KindFollow, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, targets)

	// Counts agree with what the listings show.
	followers, err := repo.ListUsers(ctx, "b", domain.DirectionFollowers, nil, 10)
	require.NoError(t, err)
	assert.Len(t, followers, int(in))
}

func TestGormEdgeRepository_ListUsers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	testutil.SeedUser(t, db, "target", "Target", 0)
	for _, id := range []string{"u1", "u2", "u3", "u4"} {
		testutil.SeedUser(t, db, id, id, 0)
	}

	// u2 and u3 share a timestamp; the edge id breaks the tie.
	testutil.SeedEdge(t, db, domain.KindFollow, "u1", "target", testutil.Base.Add(1*time.Minute))
	testutil.SeedEdge(t, db, domain.KindFollow, "u2", "target", testutil.Base.Add(2*time.Minute))
	testutil.SeedEdge(t, db, domain.KindFollow, "u3", "target", testutil.Base.Add(2*time.Minute))
	testutil.SeedEdge(t, db, domain.KindFollow, "u4", "target", testutil.Base.Add(3*time.Minute))
	testutil.SeedEdge(t, db, domain.KindProjectFollow, "u1", "target", testutil.Base)

	rows, err := repo.ListUsers(ctx, "target", domain.DirectionFollowers, nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"u4", "u3", "u2", "u1"}, userIDs(rows))

	// Resume after u3: the tie partner u2 must not be skipped.
	after := &pagination.Cursor{Time: rows[1].EdgeCreatedAt, ID: pagination.FromUint(rows[1].EdgeID)}
	rest, err := repo.ListUsers(ctx, "target", domain.DirectionFollowers, after, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2", "u1"}, userIDs(rest))

	following, err := repo.ListUsers(ctx, "u1", domain.DirectionFollowing, nil, 10)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "target", following[0].User.ID)
	assert.Equal(t, "Target", following[0].User.Name)
}

func TestGormEdgeRepository_ListUsersHidesDeletedUsers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	testutil.SeedUser(t, db, "target", "Target", 0)
	testutil.SeedUser(t, db, "live", "Live", 0)
	gone := testutil.SeedUser(t, db, "gone", "Gone", 0)
	require.NoError(t, db.Delete(gone).Error)

	testutil.SeedEdge(t, db, domain.KindFollow, "live", "target", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "gone", "target", testutil.Base)

	rows, err := repo.ListUsers(ctx, "target", domain.DirectionFollowers, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"live"}, userIDs(rows))
}

func TestGormEdgeRepository_DeleteTouchingAndPurge(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	testutil.SeedUser(t, db, "a", "A", 0)
	testutil.SeedUser(t, db, "b", "B", 0)
	testutil.SeedEdge(t, db, domain.KindFollow, "a", "b", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "b", "a", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindPostLike, "a", "post-1", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "b", "ghost", testutil.Base)
	testutil.SeedEdge(t, db, domain.KindFollow, "ghost", "b", testutil.Base)

	purged, err := repo.PurgeDangling(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindPostLike, "a", "post-1"))

	n, err := repo.DeleteTouching(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	var left int64
	require.NoError(t, db.Model(&domain.EdgeModel{}).Count(&left).Error)
	assert.Zero(t, left)
}

func userIDs(rows []domain.EdgeUser) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.User.ID)
	}
	return ids
}

func TestGormEdgeRepository_DeleteComparesAtMicroseconds(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormEdgeRepository(db)
	ctx := context.Background()

	written := time.Date(2024, 1, 1, 12, 0, 0, 123456789, time.UTC)
	db.NowFunc = func() time.Time { return written }

	edge, err := repo.Create(ctx, domain.KindFollow, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, written.Truncate(time.Microsecond), edge.CreatedAt)

	// Same microsecond as the write: indistinguishable from a concurrent create.
	err = repo.Delete(ctx, domain.KindFollow, "a", "b", written.Add(200*time.Nanosecond))
	assert.ErrorIs(t, err, ErrEdgeNotFound)
	assert.Equal(t, int64(1), testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))

	require.NoError(t, repo.Delete(ctx, domain.KindFollow, "a", "b", written.Add(time.Microsecond)))
	assert.Zero(t, testutil.CountEdges(t, db, domain.KindFollow, "a", "b"))
}
