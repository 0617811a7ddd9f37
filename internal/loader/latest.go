// Package loader keeps list views from committing responses that arrive after
// a newer request was issued or after the view went away.
package loader

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrSuperseded is returned to a fetch whose result was discarded because a
	// newer fetch started.
	ErrSuperseded = errors.New("loader: superseded by a newer request")
	// ErrClosed is returned once the loader has been closed.
	ErrClosed = errors.New("loader: closed")
)

// Option configures a Latest.
type Option[T any] func(*Latest[T])

// WithLogger logs discarded responses at debug level.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(l *Latest[T]) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// OnCommit registers fn to receive every committed value. fn runs while the
// loader is locked and must not call back into it.
func OnCommit[T any](fn func(T)) Option[T] {
	return func(l *Latest[T]) { l.onCommit = fn }
}

// Latest runs fetches one after another and only commits the most recent.
// Starting a fetch cancels the context of the one before it.
type Latest[T any] struct {
	name     string
	parent   context.Context
	logger   *zap.Logger
	onCommit func(T)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
	loaded bool
	value  T
	err    error
}

// New creates a loader whose fetch contexts derive from parent.
func New[T any](parent context.Context, name string, opts ...Option[T]) *Latest[T] {
	if parent == nil {
		parent = context.Background()
	}
	l := &Latest[T]{name: name, parent: parent, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load runs fetch with a fresh context. The result is committed and returned
// only when no newer Load started meanwhile and the loader is still open.
func (l *Latest[T]) Load(fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return zero, ErrClosed
	}
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(l.parent)
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	v, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		l.logger.Debug("stale_response_dropped", zap.String("loader", l.name), zap.String("reason", "closed"))
		return zero, ErrClosed
	}
	if seq != l.seq {
		l.logger.Debug("stale_response_dropped", zap.String("loader", l.name), zap.Uint64("seq", seq), zap.Uint64("latest", l.seq))
		return zero, ErrSuperseded
	}
	cancel()
	l.cancel = nil
	if err != nil {
		l.err = err
		return zero, err
	}
	l.value, l.err, l.loaded = v, nil, true
	if l.onCommit != nil {
		l.onCommit(v)
	}
	return v, nil
}

// Value returns the last committed value and whether one exists.
func (l *Latest[T]) Value() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.loaded
}

// Err returns the error of the most recent completed fetch, if it failed.
func (l *Latest[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close cancels any in-flight fetch and refuses further commits.
func (l *Latest[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
