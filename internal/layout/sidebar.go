// Package layout keeps persisted UI layout state.
package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/pkg/kvstore"
)

// MobileBreakpoint is the viewport width below which the sidebar starts closed.
const MobileBreakpoint = 1024

// Sidebar is the open/closed navigation drawer flag.
type Sidebar struct {
	store  kvstore.Store
	logger *zap.Logger

	mu   sync.RWMutex
	open bool
}

// NewSidebar restores the persisted flag. Without one, the default is open on
// desktop widths and closed below MobileBreakpoint.
func NewSidebar(ctx context.Context, store kvstore.Store, viewportWidth int, logger *zap.Logger) *Sidebar {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sidebar{store: store, logger: logger, open: viewportWidth >= MobileBreakpoint}
	if store == nil {
		return s
	}
	raw, err := store.Get(ctx, kvstore.KeySidebarOpen)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			logger.Warn("read sidebar state", zap.Error(err))
		}
		return s
	}
	var open bool
	if err := json.Unmarshal([]byte(raw), &open); err != nil {
		logger.Warn("ignore malformed sidebar state", zap.String("value", raw))
		return s
	}
	s.open = open
	return s
}

// IsOpen reports the current flag.
func (s *Sidebar) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// SetOpen sets and persists the flag.
func (s *Sidebar) SetOpen(ctx context.Context, open bool) error {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
	return s.persist(ctx, open)
}

// Toggle flips the flag and returns the new value.
func (s *Sidebar) Toggle(ctx context.Context) (bool, error) {
	s.mu.Lock()
	s.open = !s.open
	open := s.open
	s.mu.Unlock()
	return open, s.persist(ctx, open)
}

func (s *Sidebar) persist(ctx context.Context, open bool) error {
	if s.store == nil {
		return nil
	}
	raw, _ := json.Marshal(open)
	if err := s.store.Set(ctx, kvstore.KeySidebarOpen, string(raw)); err != nil {
		return fmt.Errorf("persist sidebar state: %w", err)
	}
	return nil
}
