// Package session keeps per-visitor dialog state between requests.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rsinnovationhub/hub/internal/dialog"
	"github.com/rsinnovationhub/hub/internal/gateway"
	"github.com/rsinnovationhub/hub/internal/model"
)

const cleanupInterval = 1 * time.Minute

// Session is one visitor's dialogs and pending notifications.
type Session struct {
	ID string

	inbox   *Inbox
	dialogs map[model.FormKind]*dialog.Controller

	mu       sync.Mutex
	lastSeen time.Time
}

// Dialog returns the controller for kind.
func (s *Session) Dialog(kind model.FormKind) (*dialog.Controller, error) {
	c, ok := s.dialogs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown form kind %q", kind)
	}
	return c, nil
}

// Dialogs returns the state of every dialog keyed by kind.
func (s *Session) Dialogs() map[model.FormKind]dialog.State {
	states := make(map[model.FormKind]dialog.State, len(s.dialogs))
	for kind, c := range s.dialogs {
		states[kind] = c.State()
	}
	return states
}

// Inbox returns the session's notification inbox.
func (s *Session) Inbox() *Inbox {
	return s.inbox
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

func (s *Session) close() {
	for _, c := range s.dialogs {
		c.Close()
	}
}

// Store holds sessions in memory and expires idle ones.
type Store struct {
	ttl      time.Duration
	resolver dialog.Resolver
	gateway  gateway.Gateway
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session

	cleanupDone chan struct{}
	closeOnce   sync.Once
}

// StoreOption is a functional option for configuring a Store.
type StoreOption func(*Store)

// WithLogger sets a custom logger for the store and the dialogs it creates.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a session store whose sessions expire after ttl of
// inactivity.
//
// Close must be called on shutdown to stop the background janitor.
func NewStore(ttl time.Duration, resolver dialog.Resolver, gw gateway.Gateway, opts ...StoreOption) (*Store, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	if resolver == nil {
		return nil, errors.New("entity resolver is required")
	}
	if gw == nil {
		return nil, errors.New("submission gateway is required")
	}

	s := &Store{
		ttl:         ttl,
		resolver:    resolver,
		gateway:     gw,
		logger:      slog.Default(),
		now:         time.Now,
		sessions:    make(map[string]*Session),
		cleanupDone: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s, nil
}

// Get returns the live session with id and refreshes its expiry.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Create starts a new session with all dialogs closed.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		inbox:    &Inbox{},
		dialogs:  make(map[model.FormKind]*dialog.Controller, len(model.FormKinds)),
		lastSeen: s.now(),
	}
	for _, kind := range model.FormKinds {
		// New only fails on nil dependencies, which NewStore rules out.
		c, _ := dialog.New(kind, s.resolver, s.gateway,
			dialog.WithNotifier(sess.inbox),
			dialog.WithLogger(s.logger.With("session_id", sess.ID)),
		)
		sess.dialogs[kind] = c
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("session created", "session_id", sess.ID)
	return sess
}

// GetOrCreate returns the session with id, or a new one when id is unknown
// or expired. created reports whether a new session was started.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.cleanupDone:
			return
		}
	}
}

// cleanup drops sessions idle for longer than ttl. Their dialogs are closed
// so pending submissions resolve without effect.
func (s *Store) cleanup() {
	cutoff := s.now().Add(-s.ttl)

	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.expired(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
	}
	if len(expired) > 0 {
		s.logger.Debug("expired sessions removed", "count", len(expired))
	}
}

// Close stops the background janitor. Safe to call multiple times.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.cleanupDone)
	})
}
