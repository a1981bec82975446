package domain

import (
	"time"

	"gorm.io/gorm"
)

// EdgeModel is the GORM model for the edges table.
// One row per (kind, source, target); a follow is kind=follow, source=follower, target=following.
type EdgeModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Kind      string    `gorm:"column:kind;type:varchar(32);not null;uniqueIndex:uidx_edge_pair,priority:1;index:idx_edge_target,priority:1"`
	SourceID  string    `gorm:"column:source_id;type:varchar(36);not null;uniqueIndex:uidx_edge_pair,priority:2"`
	TargetID  string    `gorm:"column:target_id;type:varchar(36);not null;uniqueIndex:uidx_edge_pair,priority:3;index:idx_edge_target,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;precision:6;not null;index"`
}

func (EdgeModel) TableName() string { return "edges" }

// ToDomain converts EdgeModel to a domain Edge.
func (m *EdgeModel) ToDomain() *Edge {
	return &Edge{
		ID:        m.ID,
		Kind:      EdgeKind(m.Kind),
		SourceID:  m.SourceID,
		TargetID:  m.TargetID,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationModel is the GORM model for the notifications table.
type NotificationModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Type      string    `gorm:"type:varchar(30);not null;index"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index:idx_notification_recipient,priority:1"`
	ActorID   string    `gorm:"column:actor_id;type:varchar(36);not null"`
	Message   string    `gorm:"type:varchar(255);not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:idx_notification_recipient,priority:2"`
}

func (NotificationModel) TableName() string { return "notifications" }

// UserModel is a read model over the users table owned by the account service.
// Only the columns surfaced in listings are mapped.
type UserModel struct {
	ID          string         `gorm:"type:varchar(36);primaryKey"`
	Username    string         `gorm:"type:varchar(50)"`
	DisplayName string         `gorm:"type:varchar(100)"`
	Image       string         `gorm:"type:varchar(512)"`
	Bio         string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string { return "users" }

// ToDomain converts UserModel to a domain User.
func (m *UserModel) ToDomain() *User {
	return &User{
		ID:        m.ID,
		Name:      m.DisplayName,
		Handle:    m.Username,
		Image:     m.Image,
		Bio:       m.Bio,
		CreatedAt: m.CreatedAt,
	}
}

// ProjectModel is a read model over the projects table. Only existence matters here.
type ProjectModel struct {
	ID        string         `gorm:"type:varchar(36);primaryKey"`
	OwnerID   string         `gorm:"type:varchar(36);index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ProjectModel) TableName() string { return "projects" }

// PostModel is a read model over the posts table. Only existence matters here.
type PostModel struct {
	ID        string         `gorm:"type:varchar(36);primaryKey"`
	AuthorID  string         `gorm:"type:varchar(36);index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (PostModel) TableName() string { return "posts" }

// ReadModels lists the tables this service reads but does not own.
func ReadModels() []interface{} {
	return []interface{}{&UserModel{}, &ProjectModel{}, &PostModel{}}
}
