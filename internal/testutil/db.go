// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/database"
)

// NewDB opens a private in-memory sqlite database with every table migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), "disabled")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	models := append([]interface{}{&domain.EdgeModel{}, &domain.NotificationModel{}}, domain.ReadModels()...)
	require.NoError(t, database.AutoMigrate(db, models...))
	return db
}

// Base is the reference instant seeded rows are placed around.
var Base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// SeedUser inserts a live user created offset after Base.
func SeedUser(t *testing.T, db *gorm.DB, id, name string, offset time.Duration) *domain.UserModel {
	t.Helper()
	u := &domain.UserModel{
		ID:          id,
		Username:    id,
		DisplayName: name,
		CreatedAt:   Base.Add(offset),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// SeedEdge inserts an edge with an explicit created_at.
func SeedEdge(t *testing.T, db *gorm.DB, kind domain.EdgeKind, src, dst string, at time.Time) *domain.EdgeModel {
	t.Helper()
	e := &domain.EdgeModel{Kind: string(kind), SourceID: src, TargetID: dst, CreatedAt: at.UTC()}
	require.NoError(t, db.Create(e).Error)
	return e
}

// CountEdges counts edges of kind from src to dst.
func CountEdges(t *testing.T, db *gorm.DB, kind domain.EdgeKind, src, dst string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.EdgeModel{}).
		Where("kind = ? AND source_id = ? AND target_id = ?", string(kind), src, dst).
		Count(&n).Error)
	return n
}

// Notifications returns every notification addressed to userID, oldest first.
func Notifications(t *testing.T, db *gorm.DB, userID string) []domain.NotificationModel {
	t.Helper()
	var out []domain.NotificationModel
	require.NoError(t, db.Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error)
	return out
}
