package session

import (
	"errors"
	"sync"

	"storycrew/llm"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager keeps the live sessions by id. Sessions are independent; the
// lock only guards the map itself.
type Manager struct {
	mu       sync.Mutex
	client   *llm.Client
	sessions map[string]*Session
}

func NewManager(client *llm.Client) *Manager {
	return &Manager{
		client:   client,
		sessions: make(map[string]*Session),
	}
}

// Start creates a session for the given creative name
func (m *Manager) Start(creativeName string) (*Session, error) {
	s, err := New(m.client, creativeName)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

// Get returns the session with the given id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End discards a session and everything it owns
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
