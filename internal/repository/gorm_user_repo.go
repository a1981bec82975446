package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/pagination"
)

// GormUserRepository implements UserRepository over the users read model.
// Soft-deleted users are invisible to every query.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-backed user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Exists reports whether a live user with id exists.
func (r *GormUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return count > 0, nil
}

// GetByID returns the user with id or ErrUserNotFound.
func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model domain.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return model.ToDomain(), nil
}

// Count returns the number of live users.
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

type rankedUserRow struct {
	ID            string
	Username      string
	DisplayName   string
	Image         string
	Bio           string
	CreatedAt     time.Time
	FollowerCount int64
}

// candidates selects live users that are neither actorID nor in exclude,
// joined with their follower count.
func (r *GormUserRepository) candidates(ctx context.Context, actorID string, exclude []string) *gorm.DB {
	followers := joinLiveUser(r.db.Table("edges"), "edges.source_id").
		Select("edges.target_id, COUNT(*) AS cnt").
		Where("edges.kind = ?", string(domain.KindFollow)).
		Group("edges.target_id")

	q := r.db.WithContext(ctx).Table("users").
		Joins("LEFT JOIN (?) AS fc ON fc.target_id = users.id", followers).
		Where("users.deleted_at IS NULL").
		Where("users.id <> ?", actorID)
	if len(exclude) > 0 {
		q = q.Where("users.id NOT IN ?", exclude)
	}
	return q
}

// ListRecommended returns recommendation candidates most-followed first,
// newest first among equals.
func (r *GormUserRepository) ListRecommended(ctx context.Context, actorID string, exclude []string, after *pagination.Cursor, limit int) ([]domain.RankedUser, error) {
	q := r.candidates(ctx, actorID, exclude).
		Select("users.id, users.username, users.display_name, users.image, users.bio, users.created_at, " +
			"COALESCE(fc.cnt, 0) AS follower_count")

	if after != nil {
		at := after.Time.UTC()
		q = q.Where("(COALESCE(fc.cnt, 0) < ? "+
			"OR (COALESCE(fc.cnt, 0) = ? AND users.created_at < ?) "+
			"OR (COALESCE(fc.cnt, 0) = ? AND users.created_at = ? AND users.id < ?))",
			after.Score, after.Score, at, after.Score, at, after.ID)
	}

	var rows []rankedUserRow
	err := q.Order("follower_count DESC").
		Order("users.created_at DESC").
		Order("users.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recommended users: %w", err)
	}

	out := make([]domain.RankedUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RankedUser{
			User: domain.User{
				ID:        row.ID,
				Name:      row.DisplayName,
				Handle:    row.Username,
				Image:     row.Image,
				Bio:       row.Bio,
				CreatedAt: row.CreatedAt,
			},
			FollowerCount: row.FollowerCount,
		})
	}
	return out, nil
}

// CountRecommended returns the size of the candidate set.
func (r *GormUserRepository) CountRecommended(ctx context.Context, actorID string, exclude []string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.UserModel{}).Where("id <> ?", actorID)
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count recommended users: %w", err)
	}
	return count, nil
}

// joinLiveUser keeps only rows whose col references a user that is not soft-deleted.
func joinLiveUser(q *gorm.DB, col string) *gorm.DB {
	return q.Joins("JOIN users ON users.id = " + col + " AND users.deleted_at IS NULL")
}

// isNotFound checks if the error is a "record not found" error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Ensure interface is satisfied at compile time.
var _ UserRepository = (*GormUserRepository)(nil)
