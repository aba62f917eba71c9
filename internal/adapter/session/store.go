package session

import (
	"errors"
	"sync"
	"time"

	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// DefaultTTL is how long an idle session stays valid. Every read refreshes
// the deadline.
const DefaultTTL = 8 * time.Hour

// Session is the per-login server state: the authenticated user plus the
// report composition in progress. Workflow is stored by value; handlers read
// it, run a transition and write the result back with SetWorkflow.
type Session struct {
	Token     string
	User      entities.User
	Workflow  usecase.WorkflowContext
	CreatedAt time.Time
	expiresAt time.Time
}

// Store keeps sessions in process memory, keyed by an opaque uuid token.
// Restarting the server logs everyone out, which matches how the rest of the
// system treats local state as disposable.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create opens a session for the user and returns it with a fresh token.
func (s *Store) Create(user entities.User, workflow usecase.WorkflowContext) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		Token:     uuid.NewString(),
		User:      user,
		Workflow:  workflow,
		CreatedAt: now,
		expiresAt: now.Add(s.ttl),
	}
	s.sessions[sess.Token] = sess
	return s.snapshot(sess)
}

// Get returns a copy of the session and slides its expiry forward.
func (s *Store) Get(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.now()
	if now.After(sess.expiresAt) {
		delete(s.sessions, token)
		return nil, ErrSessionNotFound
	}
	sess.expiresAt = now.Add(s.ttl)
	return s.snapshot(sess), nil
}

// SetWorkflow replaces the stored workflow context for the session.
func (s *Store) SetWorkflow(token string, workflow usecase.WorkflowContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok || s.now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return ErrSessionNotFound
	}
	sess.Workflow = workflow
	return nil
}

// Delete removes the session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *Store) snapshot(sess *Session) *Session {
	cp := *sess
	if sess.Workflow.Parts != nil {
		cp.Workflow.Parts = append([]usecase.PartEntry(nil), sess.Workflow.Parts...)
	}
	return &cp
}
