package domain

import (
	"strings"
	"time"
)

// EdgeKind names a directed relation stored in the edges table.
type EdgeKind string

const (
	KindFollow        EdgeKind = "follow"         // user -> user
	KindProjectFollow EdgeKind = "project_follow" // user -> project
	KindProjectStar   EdgeKind = "project_star"   // user -> project
	KindPostLike      EdgeKind = "post_like"      // user -> post
)

// Edge is the domain representation of a directed relation.
type Edge struct {
	ID        uint
	Kind      EdgeKind
	SourceID  string
	TargetID  string
	CreatedAt time.Time
}

// Direction selects which side of a follow edge a listing walks.
type Direction string

const (
	DirectionFollowers Direction = "followers"
	DirectionFollowing Direction = "following"
)

// Action is the requested transition. The empty action toggles.
type Action string

const (
	ActionToggle Action = ""
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// ParseAction accepts the verbs used by the different call sites.
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toggle":
		return ActionToggle, true
	case "add", "follow", "star", "like":
		return ActionAdd, true
	case "remove", "unfollow", "unstar", "unlike":
		return ActionRemove, true
	default:
		return "", false
	}
}

// Outcome records what a toggle actually did.
type Outcome int

const (
	OutcomeCreated Outcome = iota + 1
	OutcomeDeleted
	OutcomeAlreadyActive
	OutcomeAlreadyInactive
)

// Active reports whether the edge exists after the operation.
func (o Outcome) Active() bool {
	return o == OutcomeCreated || o == OutcomeAlreadyActive
}

// ToggleResult is returned by the generic edge toggle.
type ToggleResult struct {
	Active  bool    `json:"active"`
	Message string  `json:"message"`
	Outcome Outcome `json:"-"`
}

// FollowResult is the follow-specific view of a toggle.
type FollowResult struct {
	Followed bool   `json:"followed"`
	Message  string `json:"message"`
}

// FollowCounts holds point-in-time edge counts for one user.
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
