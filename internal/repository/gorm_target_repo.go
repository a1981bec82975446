package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
)

// GormTargetChecker checks existence of rows in a read model table.
type GormTargetChecker struct {
	db    *gorm.DB
	model interface{}
	name  string
}

// NewProjectChecker checks the projects table.
func NewProjectChecker(db *gorm.DB) *GormTargetChecker {
	return &GormTargetChecker{db: db, model: &domain.ProjectModel{}, name: "project"}
}

// NewPostChecker checks the posts table.
func NewPostChecker(db *gorm.DB) *GormTargetChecker {
	return &GormTargetChecker{db: db, model: &domain.PostModel{}, name: "post"}
}

// Exists reports whether a live row with id exists.
func (r *GormTargetChecker) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(r.model).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check %s: %w", r.name, err)
	}
	return count > 0, nil
}

// Ensure interface is satisfied at compile time.
var (
	_ TargetChecker = (*GormTargetChecker)(nil)
	_ TargetChecker = (*GormUserRepository)(nil)
)
