package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/pagination"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/database"
)

// edgeTimePrecision is the resolution edge timestamps are written and compared at.
// Every supported store keeps it exactly, so no driver rounds a created_at upward.
const edgeTimePrecision = time.Microsecond

// GormEdgeRepository implements EdgeRepository using GORM.
type GormEdgeRepository struct {
	db *gorm.DB
}

// NewGormEdgeRepository creates a new GORM-backed edge repository.
func NewGormEdgeRepository(db *gorm.DB) *GormEdgeRepository {
	return &GormEdgeRepository{db: db}
}

// Exists reports whether sourceID has an edge of kind to targetID.
func (r *GormEdgeRepository) Exists(ctx context.Context, kind domain.EdgeKind, sourceID, targetID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.EdgeModel{}).
		Where("kind = ? AND source_id = ? AND target_id = ?", string(kind), sourceID, targetID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check edge: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new edge. The unique index on (kind, source_id, target_id)
// decides concurrent creates; the loser gets ErrEdgeExists.
func (r *GormEdgeRepository) Create(ctx context.Context, kind domain.EdgeKind, sourceID, targetID string) (*domain.Edge, error) {
	model := domain.EdgeModel{
		Kind:      string(kind),
		SourceID:  sourceID,
		TargetID:  targetID,
		CreatedAt: r.db.NowFunc().UTC().Truncate(edgeTimePrecision),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEdgeExists
		}
		return nil, fmt.Errorf("create edge: %w", err)
	}
	return model.ToDomain(), nil
}

// Delete hard-deletes an edge so a later create gets a fresh created_at.
// createdBefore is compared at edgeTimePrecision: an edge written in the same
// microsecond is treated as concurrent and left alone.
func (r *GormEdgeRepository) Delete(ctx context.Context, kind domain.EdgeKind, sourceID, targetID string, createdBefore time.Time) error {
	q := r.db.WithContext(ctx).
		Where("kind = ? AND source_id = ? AND target_id = ?", string(kind), sourceID, targetID)
	if !createdBefore.IsZero() {
		q = q.Where("created_at < ?", createdBefore.UTC().Truncate(edgeTimePrecision))
	}
	result := q.Delete(&domain.EdgeModel{})
	if result.Error != nil {
		return fmt.Errorf("delete edge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEdgeNotFound
	}
	return nil
}

// BatchExists checks whether sourceID has an edge of kind to each of targetIDs.
func (r *GormEdgeRepository) BatchExists(ctx context.Context, kind domain.EdgeKind, sourceID string, targetIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		result[id] = false
	}

	if len(targetIDs) == 0 {
		return result, nil
	}

	var found []string
	err := r.db.WithContext(ctx).Model(&domain.EdgeModel{}).
		Where("kind = ? AND source_id = ? AND target_id IN ?", string(kind), sourceID, targetIDs).
		Pluck("target_id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("batch check edges: %w", err)
	}

	for _, id := range found {
		result[id] = true
	}
	return result, nil
}

// CountIncoming returns the number of edges of kind pointing at targetID
// from live users.
func (r *GormEdgeRepository) CountIncoming(ctx context.Context, kind domain.EdgeKind, targetID string) (int64, error) {
	var count int64
	err := joinLiveUser(r.db.WithContext(ctx).Model(&domain.EdgeModel{}), "edges.source_id").
		Where("edges.kind = ? AND edges.target_id = ?", string(kind), targetID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count incoming edges: %w", err)
	}
	return count, nil
}

// CountOutgoing returns the number of edges of kind leaving sourceID.
// Follows of users who are gone are not counted.
func (r *GormEdgeRepository) CountOutgoing(ctx context.Context, kind domain.EdgeKind, sourceID string) (int64, error) {
	var count int64
	err := r.outgoing(ctx, kind, sourceID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count outgoing edges: %w", err)
	}
	return count, nil
}

// OutgoingTargets returns every target sourceID points at with kind.
// Follows of users who are gone are left out.
func (r *GormEdgeRepository) OutgoingTargets(ctx context.Context, kind domain.EdgeKind, sourceID string) ([]string, error) {
	var ids []string
	err := r.outgoing(ctx, kind, sourceID).Pluck("edges.target_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list edge targets: %w", err)
	}
	return ids, nil
}

func (r *GormEdgeRepository) outgoing(ctx context.Context, kind domain.EdgeKind, sourceID string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.EdgeModel{})
	if kind == domain.KindFollow {
		q = joinLiveUser(q, "edges.target_id")
	}
	return q.Where("edges.kind = ? AND edges.source_id = ?", string(kind), sourceID)
}

// edgeUserRow is the scan target of ListUsers.
type edgeUserRow struct {
	ID            string
	Username      string
	DisplayName   string
	Image         string
	Bio           string
	CreatedAt     time.Time
	EdgeID        uint
	EdgeCreatedAt time.Time
}

// ListUsers returns the users on the other end of userID's follow edges.
// Followers are edge sources, following are edge targets.
func (r *GormEdgeRepository) ListUsers(ctx context.Context, userID string, dir domain.Direction, after *pagination.Cursor, limit int) ([]domain.EdgeUser, error) {
	joinCol, filterCol := "edges.source_id", "edges.target_id"
	if dir == domain.DirectionFollowing {
		joinCol, filterCol = "edges.target_id", "edges.source_id"
	}

	q := r.db.WithContext(ctx).Table("edges").
		Select("users.id, users.username, users.display_name, users.image, users.bio, users.created_at, " +
			"edges.id AS edge_id, edges.created_at AS edge_created_at").
		Joins("JOIN users ON users.id = " + joinCol + " AND users.deleted_at IS NULL").
		Where("edges.kind = ? AND "+filterCol+" = ?", string(domain.KindFollow), userID)

	if after != nil {
		afterID, err := after.UintID()
		if err != nil {
			return nil, err
		}
		at := after.Time.UTC()
		q = q.Where("(edges.created_at < ? OR (edges.created_at = ? AND edges.id < ?))", at, at, afterID)
	}

	var rows []edgeUserRow
	err := q.Order("edges.created_at DESC").Order("edges.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	out := make([]domain.EdgeUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.EdgeUser{
			User: domain.User{
				ID:        row.ID,
				Name:      row.DisplayName,
				Handle:    row.Username,
				Image:     row.Image,
				Bio:       row.Bio,
				CreatedAt: row.CreatedAt,
			},
			EdgeID:        row.EdgeID,
			EdgeCreatedAt: row.EdgeCreatedAt,
		})
	}
	return out, nil
}

// DeleteTouching removes every edge created by userID and every follow pointing at it.
func (r *GormEdgeRepository) DeleteTouching(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("source_id = ? OR (kind = ? AND target_id = ?)", userID, string(domain.KindFollow), userID).
		Delete(&domain.EdgeModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete edges of user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// PurgeDangling removes edges whose source user, or followed user, is gone or soft-deleted.
func (r *GormEdgeRepository) PurgeDangling(ctx context.Context) (int64, error) {
	live := r.db.Table("users").Select("id").Where("deleted_at IS NULL")
	result := r.db.WithContext(ctx).
		Where("source_id NOT IN (?) OR (kind = ? AND target_id NOT IN (?))", live, string(domain.KindFollow), live).
		Delete(&domain.EdgeModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("purge dangling edges: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Ensure interface is satisfied at compile time.
var _ EdgeRepository = (*GormEdgeRepository)(nil)
