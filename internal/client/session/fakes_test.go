package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/client/storage"
)

// fakeStore is an in-memory storage.Store with injectable failures.
type fakeStore struct {
	mu sync.Mutex

	creds *storage.Credentials

	readErr  error
	writeErr error
	clearErr error
	tokenErr error

	clearCalls int
	writeCalls int
}

func (f *fakeStore) Write(_ context.Context, token string, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeCalls++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.creds = &storage.Credentials{Token: token, User: user}
	return nil
}

func (f *fakeStore) Read(context.Context) (*storage.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	if f.creds == nil {
		return nil, nil
	}
	c := *f.creds
	return &c, nil
}

func (f *fakeStore) Token(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	if f.creds == nil {
		return "", nil
	}
	return f.creds.Token, nil
}

func (f *fakeStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.creds = nil
	return nil
}

func (f *fakeStore) stored() *storage.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds
}

// recorder collects events delivered to a subscriber.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}
