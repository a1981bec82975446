// Package store bounds repository calls with the per-call store timeout and
// classifies the failures callers may retry.
package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrTransient marks failures worth retrying: timeouts, cancellations and
// connection-level errors.
var ErrTransient = errors.New("store temporarily unavailable")

// Call runs fn under a timeout derived from ctx. A zero timeout only inherits ctx.
// Errors in passthrough are returned untouched.
func Call[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error), passthrough ...error) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	v, err := fn(ctx)
	if err == nil {
		return v, nil
	}
	for _, known := range passthrough {
		if errors.Is(err, known) {
			return v, err
		}
	}
	if IsTransient(ctx, err) {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return v, err
}

// Exec is Call for functions without a result.
func Exec(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error, passthrough ...error) error {
	_, err := Call(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, passthrough...)
	return err
}

// IsTransient reports whether err came from an expired or cancelled ctx, or
// from the connection rather than the statement.
func IsTransient(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
