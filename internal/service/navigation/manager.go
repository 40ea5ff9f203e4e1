package navigation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fl-jobs/internal/domain"
)

// Manager keys Controllers by client id so every HTTP client gets
// exactly one state machine. Controllers live for the process; the
// only state that survives a restart is the persisted session record.
type Manager struct {
	mu          sync.Mutex
	controllers map[string]*Controller

	store SessionStore
	ttl   time.Duration
	seed  func() []domain.Notification
}

func NewManager(store SessionStore, ttl time.Duration, seed func() []domain.Notification) *Manager {
	return &Manager{
		controllers: make(map[string]*Controller),
		store:       store,
		ttl:         ttl,
		seed:        seed,
	}
}

// NewClientID issues the opaque id a client presents on every call.
func NewClientID() string {
	return uuid.NewString()
}

// GetOrCreate returns the client's controller, creating a fresh one
// at role selection on first contact.
func (m *Manager) GetOrCreate(clientID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.controllers[clientID]; ok {
		return c
	}
	c := NewController(clientID, m.store, m.ttl, m.seed())
	m.controllers[clientID] = c
	return c
}

// Restore installs a controller for a client whose persisted session
// record was found at startup: logged in, initial screen home.
func (m *Manager) Restore(clientID string, user *domain.UserData) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.controllers[clientID]; ok {
		return c
	}
	c := RestoredController(clientID, m.store, m.ttl, user, m.seed())
	m.controllers[clientID] = c
	return c
}

// Get returns the controller if the client has one.
func (m *Manager) Get(clientID string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.controllers[clientID]
	return c, ok
}
