package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"clima_hogar/internal/domain/entities"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the transient state owned by one visitor: the quote form, the
// gallery selection and the submission state. Nothing here is persisted.
//
// The browser UI this service backs is single-threaded, but handlers run on
// goroutines, so every access goes through the session mutex.
type Session struct {
	mu sync.Mutex

	Quote         entities.QuoteRequest
	Gallery       entities.GallerySelection
	GalleryImages []string
	Submission    entities.SubmissionState
}

// SessionRegistry hands out sessions keyed by UUID and shared by the quote,
// gallery and handoff use cases.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Start() string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &Session{Submission: entities.SubmissionStateIdle}
	r.mu.Unlock()
	return id
}

func (r *SessionRegistry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	return s, ok
}

// ISessionUseCase exposes UI-session lifecycle operations.

type ISessionUseCase interface {
	StartSession(ctx context.Context) (string, error)
}

type SessionUseCase struct {
	registry *SessionRegistry
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(registry *SessionRegistry) *SessionUseCase {
	return &SessionUseCase{registry: registry}
}

func (u *SessionUseCase) StartSession(_ context.Context) (string, error) {
	id := u.registry.Start()
	log.Printf("[session][usecase] started session_id=%s", id)
	return id, nil
}
