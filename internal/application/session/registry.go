package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

// Registry owns the live sessions. Sessions are addressed by UUID and
// expire after a period of inactivity; the cart snapshot outlives the
// session in durable storage
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	deps     Deps
	ttl      time.Duration
}

// NewRegistry creates an empty registry. A non-positive ttl disables
// expiry
func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		deps:     deps,
		ttl:      ttl,
	}
}

// Create boots a new session from the URL the visitor arrived with and
// registers it
func (r *Registry) Create(ctx context.Context, rawQuery string) (*Session, *Result) {
	s := New(uuid.New(), r.deps)
	result := s.Boot(ctx, rawQuery)

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.deps.Logger.Info("session created",
		zap.String("session_id", s.ID().String()),
		zap.String("view", s.Current().Snapshot.State.Current.String()),
	)
	return s, result
}

// Get looks up a live session by its string id and marks it as used
func (r *Registry) Get(id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.ErrSessionNotFound
	}

	r.mu.RLock()
	s, ok := r.sessions[parsed]
	r.mu.RUnlock()
	if !ok {
		return nil, shared.ErrSessionNotFound
	}

	s.Touch()
	return s, nil
}

// Len reports the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle past the registry TTL and returns how many
// were removed
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen()) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on the given interval until the context is cancelled
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := r.Sweep(now); removed > 0 {
				r.deps.Logger.Info("expired sessions swept",
					zap.Int("removed", removed),
					zap.Int("remaining", r.Len()),
				)
			}
		}
	}
}
