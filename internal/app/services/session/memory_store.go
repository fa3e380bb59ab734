package session

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"sync"
)

// MemoryStore keeps sessions in process, one per visitor id found in the
// context. Callers without a visitor id share the empty id.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
	}
}

func (m *MemoryStore) Load(ctx context.Context) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[visitorID(ctx)], nil
}

func (m *MemoryStore) Save(ctx context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[visitorID(ctx)] = session
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, visitorID(ctx))
	return nil
}

func visitorID(ctx context.Context) string {
	id, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return id
}

// WithVisitor returns a context carrying the visitor id stores key on.
func WithVisitor(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
}
