package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MichalMitros/syntara-client/internal/platform"
	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/rs/zerolog"
)

// Keys under which session is persisted.
const (
	TokenKey = "authToken"
	UserKey  = "user"
)

// KV is durable key-value storage backing the session.
type KV interface {
	// Get returns value stored under key or platform.ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes provided keys, missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// Listener receives current user, nil means there is no logged in user.
// Listeners are called synchronously and must not call Store methods which publish.
type Listener func(user *models.User)

// Option is custom configuration of Store.
type Option func(s *Store)

// Store holds current user and token, persists them and broadcasts user changes.
type Store struct {
	kv     KV
	logger *zerolog.Logger

	// publishing serializes publications, so listeners observe changes in order.
	publishing sync.Mutex

	mu        sync.RWMutex
	user      *models.User
	token     string
	listeners []subscription
	nextID    int
}

type subscription struct {
	id       int
	listener Listener
}

// NewStore returns new empty Store. Call Restore to load persisted session.
func NewStore(kv KV, ops ...Option) *Store {
	nop := zerolog.Nop()
	store := &Store{
		kv:     kv,
		logger: &nop,
	}

	for _, op := range ops {
		op(store)
	}

	return store
}

// Restore loads persisted user and token.
// Malformed user record is treated as corrupted session and logged out.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.kv.Get(ctx, TokenKey)
	if err != nil && !errors.Is(err, platform.ErrKeyNotFound) {
		return fmt.Errorf("can't read token: %w", err)
	}

	rawUser, err := s.kv.Get(ctx, UserKey)
	if errors.Is(err, platform.ErrKeyNotFound) {
		s.set(nil, token)
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't read user: %w", err)
	}

	var user *models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.logger.Warn().
			Err(err).
			Msg("corrupted session, logging out")
		return s.Logout(ctx)
	}

	s.set(user, token)

	return nil
}

// Login persists user with token and publishes user to listeners.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	if err := s.kv.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("can't persist token: %w", err)
	}

	if err := s.persistUser(ctx, user); err != nil {
		return err
	}

	s.set(&user, token)

	return nil
}

// Logout removes persisted session and publishes nil to listeners.
// In-memory session is cleared even when storage fails.
func (s *Store) Logout(ctx context.Context) error {
	err := s.kv.Delete(ctx, TokenKey, UserKey)

	s.set(nil, "")

	if err != nil {
		return fmt.Errorf("can't delete persisted session: %w", err)
	}

	return nil
}

// UpdateUserLocal merges patch into current user, persists and publishes it.
// It does nothing when there is no current user.
func (s *Store) UpdateUserLocal(ctx context.Context, patch models.UserPatch) error {
	current := s.CurrentUser()
	if current == nil {
		return nil
	}

	updated := patch.Apply(*current)
	if err := s.persistUser(ctx, updated); err != nil {
		return err
	}

	s.set(&updated, s.Token())

	return nil
}

// IsLoggedIn reports whether both token and user are present.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != "" && s.user != nil
}

// CurrentUser returns copy of current user or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyUser(s.user)
}

// Token returns current token or empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Subscribe registers listener. Listener immediately receives current user and then every change.
// Returned function unregisters listener.
func (s *Store) Subscribe(listener Listener) func() {
	s.publishing.Lock()
	defer s.publishing.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, listener: listener})
	current := copyUser(s.user)
	s.mu.Unlock()

	listener(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for ix := range s.listeners {
			if s.listeners[ix].id == id {
				s.listeners = append(s.listeners[:ix:ix], s.listeners[ix+1:]...)
				return
			}
		}
	}
}

func (s *Store) persistUser(ctx context.Context, user models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("can't encode user: %w", err)
	}

	if err := s.kv.Set(ctx, UserKey, string(rawUser)); err != nil {
		return fmt.Errorf("can't persist user: %w", err)
	}

	return nil
}

// set replaces session state and publishes user to all listeners in registration order.
func (s *Store) set(user *models.User, token string) {
	s.publishing.Lock()
	defer s.publishing.Unlock()

	s.mu.Lock()
	s.user = copyUser(user)
	s.token = token
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.listener(copyUser(user))
	}
}

func copyUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}
	cp := *user
	return &cp
}

// WithLogger sets Store's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}
