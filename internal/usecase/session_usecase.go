package usecase

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
)

// SessionStore holds the zero-or-one authenticated user. Login and
// Register resolve behind a fixed artificial latency, mimicking the
// mock network call of the storefront; credential failures are
// ordinary results, never fatal.
type SessionStore interface {
	Login(email, password string) (*domain.User, error)
	Register(name, email, password string) (*domain.User, error)
	Logout()
	CurrentSession() *domain.User
	Subscribe(listener func())
}

type sessionStore struct {
	mu        sync.Mutex
	current   *domain.User
	users     domain.UserDirectory
	sessions  domain.SessionRepository
	verifier  domain.CredentialVerifier
	latency   time.Duration
	listeners []func()
	log       *logrus.Logger
}

// NewSessionStore rehydrates the active session from persistent
// storage; a missing or unreadable record starts logged out.
func NewSessionStore(
	users domain.UserDirectory,
	sessions domain.SessionRepository,
	verifier domain.CredentialVerifier,
	latency time.Duration,
	logger *logrus.Logger,
) SessionStore {
	s := &sessionStore{
		users:    users,
		sessions: sessions,
		verifier: verifier,
		latency:  latency,
		log:      logger,
	}
	current, err := sessions.Load()
	if err != nil {
		logger.Warnf("Use Case: Could not restore session, starting logged out: %v", err)
	} else if current != nil {
		s.current = current
		logger.Infof("Use Case: Restored session for user ID %d", current.ID)
	}
	return s
}

func (s *sessionStore) Login(email, password string) (*domain.User, error) {
	s.log.Infof("Use Case: Attempting login for email: %s", email)

	// Simulated network latency; not cancellable, resolves exactly once.
	time.Sleep(s.latency)

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		s.log.Warnf("Use Case: Login failed - no user for email %s", email)
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.verifier.Verify(user.Password, password); err != nil {
		s.log.Warnf("Use Case: Login failed - credential mismatch for %s", email)
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = user
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: Login successful for user ID %d", user.ID)
	return user, nil
}

func (s *sessionStore) Register(name, email, password string) (*domain.User, error) {
	s.log.Infof("Use Case: Attempting registration for email: %s", email)

	time.Sleep(s.latency)

	stored, err := s.verifier.Hash(password)
	if err != nil {
		s.log.Errorf("Use Case: Failed to process password for %s: %v", email, err)
		return nil, err
	}

	user, err := s.users.CreateUser(name, email, stored)
	if err != nil {
		s.log.Warnf("Use Case: Registration failed for %s: %v", email, err)
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.persistLocked()
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: User registered successfully. ID: %d, Email: %s", user.ID, user.Email)
	return user, nil
}

func (s *sessionStore) Logout() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	id := s.current.ID
	s.current = nil
	if err := s.sessions.Clear(); err != nil {
		s.log.Errorf("Use Case: Failed to clear persisted session: %v", err)
	}
	s.mu.Unlock()
	s.notify()

	s.log.Infof("Use Case: User ID %d logged out", id)
}

func (s *sessionStore) CurrentSession() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *sessionStore) Subscribe(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *sessionStore) persistLocked() {
	if err := s.sessions.Save(s.current); err != nil {
		s.log.Errorf("Use Case: Failed to persist session: %v", err)
	}
}

func (s *sessionStore) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}
