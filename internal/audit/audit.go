package audit

import (
	"context"

	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
)

// Audit actions for social-graph-service.
const (
	ActionFollow        = "graph.follow"
	ActionUnfollow      = "graph.unfollow"
	ActionEdgeCreate    = "graph.edge_create"
	ActionEdgeDelete    = "graph.edge_delete"
	ActionPurgeUser     = "graph.purge_user"
	ActionPurgeDangling = "graph.purge_dangling"
)

// Field constants for audit entries.
const (
	FieldAction   = "action"
	FieldTargetID = "target_id"
	FieldDetail   = "detail"
	FieldCount    = "count"
)

// Log emits a structured audit log entry via the context logger.
func Log(ctx context.Context, action string, userID string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldUserID, userID).
		Msg(msg)
}

// LogEdge emits an audit entry for an edge transition.
func LogEdge(ctx context.Context, action string, actorID string, kind string, targetID string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldUserID, actorID).
		Str(log.FieldEdgeKind, kind).
		Str(FieldTargetID, targetID).
		Msg(msg)
}

// LogCount emits an audit entry for a bulk operation.
func LogCount(ctx context.Context, action string, userID string, count int64, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(log.FieldUserID, userID).
		Int64(FieldCount, count).
		Msg(msg)
}
