package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/audit"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/store"
	pkglog "github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
)

// ToggleFollow follows or unfollows targetID on behalf of actorID.
func (s *graphService) ToggleFollow(ctx context.Context, actorID, targetID string, action domain.Action) (*domain.FollowResult, error) {
	res, err := s.ToggleEdge(ctx, domain.KindFollow, actorID, targetID, action)
	if err != nil {
		return nil, err
	}
	return &domain.FollowResult{Followed: res.Active, Message: res.Message}, nil
}

// ToggleEdge creates or deletes the (kind, actorID, targetID) edge.
//
// The unique index is the only arbiter between concurrent callers: a create
// that loses reports the edge as already present, a delete that loses reports
// whatever state the winner left. A plain toggle only deletes edges created
// before it started, so two toggles racing from "no edge" leave exactly one.
func (s *graphService) ToggleEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string, action domain.Action) (*domain.ToggleResult, error) {
	ek, ok := s.kinds[kind]
	if !ok {
		return nil, ErrUnknownEdgeKind
	}
	switch action {
	case domain.ActionToggle, domain.ActionAdd, domain.ActionRemove:
	default:
		return nil, ErrInvalidAction
	}
	if actorID == "" {
		return nil, ErrMissingActor
	}
	if targetID == "" {
		return nil, ErrMissingTarget
	}
	if !ek.allowSelf && actorID == targetID {
		return nil, ErrSelfFollow
	}

	l := pkglog.Ctx(ctx).With().
		Str(pkglog.FieldEdgeKind, string(kind)).
		Str(pkglog.FieldActorID, actorID).
		Str(pkglog.FieldTargetID, targetID).
		Logger()
	startedAt := s.now().UTC()

	found, err := store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (bool, error) {
		return ek.target.Exists(ctx, targetID)
	})
	if err != nil {
		l.Error().Err(err).Msg("failed to look up edge target")
		return nil, err
	}
	if !found {
		return nil, ek.notFound
	}

	active, err := store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (bool, error) {
		return s.edges.Exists(ctx, kind, actorID, targetID)
	})
	if err != nil {
		l.Error().Err(err).Msg("failed to read edge")
		return nil, err
	}

	var outcome domain.Outcome
	switch {
	case action == domain.ActionAdd && active:
		outcome = domain.OutcomeAlreadyActive
	case action == domain.ActionRemove && !active:
		outcome = domain.OutcomeAlreadyInactive
	case action == domain.ActionAdd, action == domain.ActionToggle && !active:
		outcome, err = s.addEdge(ctx, l, kind, actorID, targetID)
	case action == domain.ActionRemove:
		outcome, err = s.removeEdge(ctx, l, kind, actorID, targetID, time.Time{})
	default:
		outcome, err = s.removeEdge(ctx, l, kind, actorID, targetID, startedAt)
	}
	if err != nil {
		l.Error().Err(err).Msg("failed to toggle edge")
		return nil, err
	}

	switch outcome {
	case domain.OutcomeCreated:
		audit.LogEdge(ctx, ek.createAction, actorID, string(kind), targetID, ek.messages.created)
		if ek.notify {
			s.notify(ctx, l, actorID, targetID)
		}
	case domain.OutcomeDeleted:
		audit.LogEdge(ctx, ek.deleteAction, actorID, string(kind), targetID, ek.messages.deleted)
	}

	return &domain.ToggleResult{
		Active:  outcome.Active(),
		Message: ek.messages.For(outcome),
		Outcome: outcome,
	}, nil
}

func (s *graphService) addEdge(ctx context.Context, l zerolog.Logger, kind domain.EdgeKind, actorID, targetID string) (domain.Outcome, error) {
	err := s.createEdge(ctx, kind, actorID, targetID)
	if errors.Is(err, ErrConflict) {
		l.Debug().Msg("edge created concurrently")
		return domain.OutcomeAlreadyActive, nil
	}
	if err != nil {
		return 0, err
	}
	return domain.OutcomeCreated, nil
}

func (s *graphService) removeEdge(ctx context.Context, l zerolog.Logger, kind domain.EdgeKind, actorID, targetID string, createdBefore time.Time) (domain.Outcome, error) {
	err := s.deleteEdge(ctx, kind, actorID, targetID, createdBefore)
	if err == nil {
		return domain.OutcomeDeleted, nil
	}
	if !errors.Is(err, ErrConflict) {
		return 0, err
	}

	// Lost the race: report the state the winner left behind.
	l.Debug().Msg("edge changed concurrently")
	still, err := store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (bool, error) {
		return s.edges.Exists(ctx, kind, actorID, targetID)
	})
	if err != nil {
		return 0, err
	}
	if still {
		return domain.OutcomeAlreadyActive, nil
	}
	return domain.OutcomeAlreadyInactive, nil
}

// createEdge maps a duplicate insert to ErrConflict.
func (s *graphService) createEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string) error {
	_, err := store.Call(ctx, s.cfg.StoreTimeout, func(ctx context.Context) (*domain.Edge, error) {
		return s.edges.Create(ctx, kind, actorID, targetID)
	}, repository.ErrEdgeExists)
	if errors.Is(err, repository.ErrEdgeExists) {
		return ErrConflict
	}
	return err
}

// deleteEdge maps a delete that matched nothing to ErrConflict.
func (s *graphService) deleteEdge(ctx context.Context, kind domain.EdgeKind, actorID, targetID string, createdBefore time.Time) error {
	err := store.Exec(ctx, s.cfg.StoreTimeout, func(ctx context.Context) error {
		return s.edges.Delete(ctx, kind, actorID, targetID, createdBefore)
	}, repository.ErrEdgeNotFound)
	if errors.Is(err, repository.ErrEdgeNotFound) {
		return ErrConflict
	}
	return err
}

// notify runs the fan-out synchronously. The edge stays whatever happens here.
func (s *graphService) notify(ctx context.Context, l zerolog.Logger, actorID, recipientID string) {
	if s.notifier == nil {
		return
	}
	// The edge is committed; a client disconnect must not drop its notification.
	nctx := context.WithoutCancel(ctx)
	if _, err := s.notifier.NotifyFollow(nctx, actorID, recipientID); err != nil {
		l.Error().Err(err).Msg("failed to create follow notification")
	}
}
