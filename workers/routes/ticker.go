package routes

import (
	"context"
	"fleet-dashboard-service/session"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Sink receives the refreshed elapsed time of the route in progress.
type Sink func(route session.ActiveRoute, elapsed string)

// Ticker redisplays the running time of the route in progress once a second.
// It does nothing while no route is in progress.
type Ticker struct {
	tracker *Tracker
	sink    Sink
	logger  *zap.Logger
	mu      sync.Mutex
	busy    bool
	lastID  int64
	last    string
}

func NewTicker(tracker *Tracker, sink Sink, logger *zap.Logger) *Ticker {
	return &Ticker{tracker: tracker, sink: sink, logger: logger}
}

func (t *Ticker) Schedule() string {
	return "@every 1s"
}

// Ready claims the ticker for one run. It stays claimed until Execute returns,
// so overlapping schedule ticks are skipped.
func (t *Ticker) Ready(time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.busy {
		return false
	}
	t.busy = true
	return true
}

func (t *Ticker) Execute() {
	t.mu.Lock()
	t.busy = true
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.busy = false
		t.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 900*time.Millisecond)
	defer cancel()

	route, elapsed, err := t.tracker.Elapsed(ctx)
	if err != nil {
		t.logger.Warn("Failed to read route in progress", zap.Error(err))
		return
	}

	t.mu.Lock()
	t.lastID, t.last = 0, elapsed
	if route != nil {
		t.lastID = route.ID
	}
	t.mu.Unlock()

	if route == nil {
		return
	}
	if t.sink != nil {
		t.sink(*route, elapsed)
	}
}

// Shown reports the last display if it belongs to routeID.
func (t *Ticker) Shown(routeID int64) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last == "" || t.lastID != routeID {
		return "", false
	}
	return t.last, true
}
