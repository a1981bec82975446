package service

import (
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
)

// toggleMessages are the user-facing texts for each outcome of a toggle.
type toggleMessages struct {
	created         string
	deleted         string
	alreadyActive   string
	alreadyInactive string
}

func (m toggleMessages) For(o domain.Outcome) string {
	switch o {
	case domain.OutcomeCreated:
		return m.created
	case domain.OutcomeDeleted:
		return m.deleted
	case domain.OutcomeAlreadyActive:
		return m.alreadyActive
	default:
		return m.alreadyInactive
	}
}

// edgeKind describes how one kind of edge is validated and announced.
type edgeKind struct {
	kind      domain.EdgeKind
	target    repository.TargetChecker
	notFound  error
	allowSelf bool
	notify    bool
	messages  toggleMessages
	// audit actions for create and delete
	createAction string
	deleteAction string
}

var followMessages = toggleMessages{
	created:         "Followed successfully",
	deleted:         "Unfollowed successfully",
	alreadyActive:   "Already following",
	alreadyInactive: "Not following",
}

var projectFollowMessages = toggleMessages{
	created:         "Project followed",
	deleted:         "Project unfollowed",
	alreadyActive:   "Already following project",
	alreadyInactive: "Not following project",
}

var projectStarMessages = toggleMessages{
	created:         "Project starred",
	deleted:         "Project unstarred",
	alreadyActive:   "Already starred",
	alreadyInactive: "Not starred",
}

var postLikeMessages = toggleMessages{
	created:         "Post liked",
	deleted:         "Post unliked",
	alreadyActive:   "Already liked",
	alreadyInactive: "Not liked",
}
