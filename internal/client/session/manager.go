package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/client/storage"
	"github.com/dmitrijs2005/rentpred/internal/logging"
)

// ErrEmptyToken is returned by Establish when the server handed out no token.
var ErrEmptyToken = errors.New("empty bearer token")

// ErrNotLoggedIn is returned by UpdateProfile when there is no session, in
// memory or on disk, to update.
var ErrNotLoggedIn = errors.New("not logged in")

// Manager is the session owner described in the package doc.
//
// mu serialises every commit (store mutation + in-memory update) so the two
// copies never disagree. Network calls happen outside the manager, so
// concurrent logins and logouts still resolve as last writer wins.
type Manager struct {
	store storage.Store
	log   logging.Logger

	mu         sync.RWMutex
	user       *models.User
	loading    bool
	restored   bool
	generation uint64

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Event)
}

// NewManager returns a manager in the Restoring phase. Call Restore once
// before relying on State.
func NewManager(store storage.Store, log logging.Logger) *Manager {
	return &Manager{
		store:   store,
		log:     log.With("component", "session"),
		loading: true,
	}
}

// State returns a snapshot of the current session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Generation returns the current session generation.
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// Restore seeds the session from storage. It runs once; later calls are
// no-ops. Corrupted storage is cleared and the session starts anonymous
// without an error. A storage failure also leaves the session anonymous
// and is returned.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	if m.restored {
		m.mu.Unlock()
		return nil
	}
	m.restored = true

	user, err := m.readLocked(ctx)
	if err != nil {
		err = fmt.Errorf("restore session: %w", err)
		m.log.Error(ctx, "session restore failed", "error", err)
	}

	m.user = user
	m.loading = false
	ev := m.transitionLocked(EventRestored)
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "authenticated", user != nil)
	m.publish(ev)
	return err
}

// Establish records a successful login or signup: the pair is written to
// storage first, then mirrored in memory.
func (m *Manager) Establish(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	if err := m.store.Write(ctx, token, user); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}

	m.user = &user
	m.loading = false
	m.restored = true
	ev := m.transitionLocked(EventLoggedIn)
	m.mu.Unlock()

	m.log.Info(ctx, "session established", "email", user.Email, "generation", ev.Generation)
	m.publish(ev)
	return nil
}

// UpdateProfile replaces the name and mobile of the logged-in user and
// persists them with the stored token. Email and UID are kept. The
// generation does not change: requests already in flight still belong to
// this session.
func (m *Manager) UpdateProfile(ctx context.Context, name, mobile string) (models.User, error) {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return models.User{}, ErrNotLoggedIn
	}

	creds, err := m.store.Read(ctx)
	if err != nil {
		m.mu.Unlock()
		return models.User{}, fmt.Errorf("read session: %w", err)
	}
	if creds == nil || creds.User.Email != m.user.Email {
		m.mu.Unlock()
		return models.User{}, ErrNotLoggedIn
	}

	user := *m.user
	user.Name, user.Mobile = name, mobile
	if err := m.store.Write(ctx, creds.Token, user); err != nil {
		m.mu.Unlock()
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}

	m.user = &user
	ev := Event{Kind: EventProfileUpdated, State: m.snapshotLocked(), Generation: m.generation}
	m.mu.Unlock()

	m.log.Info(ctx, "profile updated locally", "email", user.Email)
	m.publish(ev)
	return user, nil
}

// End tears the session down. It always ends anonymous; a storage failure
// is logged, not returned.
func (m *Manager) End(ctx context.Context) {
	m.mu.Lock()
	ev := m.teardownLocked(ctx, EventLoggedOut)
	m.mu.Unlock()

	m.publish(ev)
}

// HandleUnauthorized performs the forced teardown for a 401 received by a
// request issued under generation. Storage is cleared on every call that
// matches the current generation; subscribers are told only when a user
// was actually logged in.
func (m *Manager) HandleUnauthorized(ctx context.Context, generation uint64) {
	m.mu.Lock()
	if generation != m.generation {
		current := m.generation
		m.mu.Unlock()
		m.log.Warn(ctx, "ignoring 401 from a previous session", "request_generation", generation, "current_generation", current)
		return
	}

	if m.user == nil {
		if err := m.store.Clear(context.WithoutCancel(ctx)); err != nil {
			m.log.Error(ctx, "failed to clear session storage", "error", err)
		}
		m.mu.Unlock()
		return
	}

	ev := m.teardownLocked(ctx, EventForcedLogout)
	m.mu.Unlock()

	m.log.Warn(ctx, "session revoked by server", "generation", ev.Generation)
	m.publish(ev)
}

// Token returns the stored bearer token, re-read on every call, with the
// generation it belongs to.
func (m *Manager) Token(ctx context.Context) (string, uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, err := m.store.Token(ctx)
	if err != nil {
		return "", m.generation, err
	}
	return token, m.generation, nil
}

// Reload re-reads storage and adopts its content when another process
// sharing the same store logged in or out. It restores first if needed.
func (m *Manager) Reload(ctx context.Context) error {
	m.mu.Lock()
	if !m.restored {
		m.mu.Unlock()
		return m.Restore(ctx)
	}

	user, err := m.readLocked(ctx)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("reload session: %w", err)
	}

	if sameUser(m.user, user) {
		m.mu.Unlock()
		return nil
	}

	m.user = user
	ev := m.transitionLocked(EventExternalChange)
	m.mu.Unlock()

	m.log.Info(ctx, "session changed outside this process", "authenticated", user != nil)
	m.publish(ev)
	return nil
}

// Subscribe registers fn for every future transition. Callbacks run
// synchronously after the transition is committed, outside the manager lock.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	m.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			defer m.subMu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// readLocked reads the stored pair, self-healing corrupted state.
func (m *Manager) readLocked(ctx context.Context) (*models.User, error) {
	creds, err := m.store.Read(ctx)
	switch {
	case errors.Is(err, storage.ErrCorruptedState):
		m.log.Warn(ctx, "discarding corrupted session state", "error", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear corrupted session state", "error", cerr)
		}
		return nil, nil
	case err != nil:
		return nil, err
	case creds == nil:
		return nil, nil
	}

	user := creds.User
	return &user, nil
}

// teardownLocked clears storage even when ctx is already cancelled: a
// logout must not leave the pair on disk for the next start to restore.
func (m *Manager) teardownLocked(ctx context.Context, kind EventKind) Event {
	if err := m.store.Clear(context.WithoutCancel(ctx)); err != nil {
		m.log.Error(ctx, "failed to clear session storage", "error", err)
	}
	m.user = nil
	m.loading = false
	m.restored = true
	return m.transitionLocked(kind)
}

func (m *Manager) transitionLocked(kind EventKind) Event {
	m.generation++
	return Event{Kind: kind, State: m.snapshotLocked(), Generation: m.generation}
}

func (m *Manager) snapshotLocked() State {
	s := State{Loading: m.loading}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

func (m *Manager) publish(ev Event) {
	m.subMu.Lock()
	fns := make([]func(Event), 0, len(m.subs))
	for _, s := range m.subs {
		fns = append(fns, s.fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func sameUser(a, b *models.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
