package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eduplus/backend/models"
	"eduplus/backend/utils"
)

// Session is the caller identity handlers work with. It is resolved once per
// request and passed along explicitly.
type Session struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"nombre"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

func FromUser(u models.User) Session {
	return Session{
		UserID:  u.ID,
		Email:   u.Email,
		Name:    u.DisplayName(),
		Role:    u.Role,
		IsAdmin: u.IsAdmin(),
	}
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

type entry struct {
	session  Session
	loadedAt time.Time
}

// Manager caches sessions by user id. Auth events from the bus evict entries
// so a role change is seen on the next request.
type Manager struct {
	users UserLookup
	bus   Bus
	ttl   time.Duration
	log   *utils.Logger
	now   func() time.Time

	mu    sync.RWMutex
	cache map[string]entry
	// gen counts evictions per user; a lookup that raced one is not cached
	gen map[string]uint64
}

func NewManager(users UserLookup, bus Bus, ttl time.Duration, log *utils.Logger) *Manager {
	return &Manager{
		users: users,
		bus:   bus,
		ttl:   ttl,
		log:   log.With("service", "SessionManager"),
		now:   time.Now,
		cache: make(map[string]entry),
		gen:   make(map[string]uint64),
	}
}

// Start subscribes to the auth event stream until ctx is done.
func (m *Manager) Start(ctx context.Context) error {
	return m.bus.StartForwarder(ctx, m.handle)
}

func (m *Manager) Resolve(ctx context.Context, userID string) (Session, error) {
	m.mu.RLock()
	e, ok := m.cache[userID]
	gen := m.gen[userID]
	m.mu.RUnlock()
	if ok && (m.ttl <= 0 || m.now().Sub(e.loadedAt) < m.ttl) {
		return e.session, nil
	}

	user, err := m.users.GetByID(ctx, userID)
	if err != nil {
		return Session{}, fmt.Errorf("resolve session: %w", err)
	}
	s := FromUser(user)

	m.mu.Lock()
	if m.gen[userID] == gen {
		m.cache[userID] = entry{session: s, loadedAt: m.now()}
	}
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) Invalidate(userID string) {
	m.mu.Lock()
	delete(m.cache, userID)
	m.gen[userID]++
	m.mu.Unlock()
}

// Notify evicts locally and publishes the event for other instances.
func (m *Manager) Notify(ctx context.Context, ev Event) error {
	m.Invalidate(ev.UserID)
	if err := m.bus.Publish(ctx, ev); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Kind, err)
	}
	return nil
}

func (m *Manager) handle(ev Event) {
	m.log.Debug("auth event", "kind", ev.Kind, "user_id", ev.UserID)
	m.Invalidate(ev.UserID)
}

func (m *Manager) cached(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cache[userID]
	return ok
}
