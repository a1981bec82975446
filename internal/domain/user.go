package domain

import "time"

// User is the subset of the account profile surfaced by graph listings.
type User struct {
	ID        string
	Name      string
	Handle    string
	Image     string
	Bio       string
	CreatedAt time.Time
}

// DisplayName returns the name shown in notifications, falling back to the handle.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Handle
}

// EdgeUser is a user reached through an edge, with the edge's position.
type EdgeUser struct {
	User          User
	EdgeID        uint
	EdgeCreatedAt time.Time
}

// RankedUser is a recommendation candidate.
type RankedUser struct {
	User          User
	FollowerCount int64
}

// UserProjection is a user in API responses.
type UserProjection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Handle        string `json:"handle"`
	Image         string `json:"image,omitempty"`
	Bio           string `json:"bio,omitempty"`
	FollowerCount *int64 `json:"followerCount,omitempty"`
}

// Pagination describes where a page sits in a listing.
type Pagination struct {
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
	Total       int64   `json:"total"`
}

// UserPage is a page of user projections.
// Message is set for first-class empty states such as "already following everyone".
type UserPage struct {
	Items      []UserProjection `json:"items"`
	Pagination Pagination       `json:"pagination"`
	Message    string           `json:"message,omitempty"`
}
