package domain

import (
	"fmt"
	"time"
)

// NotificationTypeFollow is the only notification variant written by this service.
const NotificationTypeFollow = "FOLLOW"

// Notification is an append-only record addressed to UserID.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	ActorID   string    `json:"actorId"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// FollowMessage composes the recipient-facing text for a follow.
func FollowMessage(actorName string) string {
	return fmt.Sprintf("%s started following you", actorName)
}

// ToModel converts a Notification to its GORM model.
func (n *Notification) ToModel() *NotificationModel {
	return &NotificationModel{
		ID:        n.ID,
		Type:      n.Type,
		UserID:    n.UserID,
		ActorID:   n.ActorID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
