package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM-backed notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create appends a notification. Records are never deduplicated.
func (r *GormNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if err := r.db.WithContext(ctx).Create(n.ToModel()).Error; err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// Ensure interface is satisfied at compile time.
var _ NotificationRepository = (*GormNotificationRepository)(nil)
