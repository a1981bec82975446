package reconciler

import (
	"context"
	"time"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/audit"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/config"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
	pkglog "github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
)

// Reconciler periodically deletes edges whose user endpoint is gone, so
// listings and counts converge after missed CDC events.
type Reconciler struct {
	edges  repository.EdgeRepository
	cfg    config.ReconcilerConfig
	quit   chan struct{}
	doneCh chan struct{}
}

// New creates a new Reconciler.
func New(edges repository.EdgeRepository, cfg config.ReconcilerConfig) *Reconciler {
	return &Reconciler{
		edges:  edges,
		cfg:    cfg,
		quit:   make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start launches the reconciler in a background goroutine.
func (r *Reconciler) Start(ctx context.Context) {
	go r.run(ctx)
}

// Stop signals the reconciler to stop and returns immediately.
// Call Done() to wait for it to exit.
func (r *Reconciler) Stop() {
	close(r.quit)
}

// Done returns a channel that is closed when the reconciler has fully stopped.
func (r *Reconciler) Done() <-chan struct{} {
	return r.doneCh
}

func (r *Reconciler) run(ctx context.Context) {
	defer close(r.doneCh)

	interval := r.cfg.Interval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				l := pkglog.L()
				l.Error().Err(err).Msg("reconciler: failed to purge dangling edges")
			}
		}
	}
}

// RunOnce performs a single reconciliation pass and returns the number of
// edges removed.
func (r *Reconciler) RunOnce(ctx context.Context) (int64, error) {
	l := pkglog.L()
	l.Debug().Msg("reconciler: scanning for dangling edges")

	n, err := r.edges.PurgeDangling(ctx)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		audit.LogCount(ctx, audit.ActionPurgeDangling, "", n, "dangling edges purged")
	}
	return n, nil
}
