// Package scope publishes the roster store to the parts of the program that
// run beneath a provider. Consumers resolve the provider from a context;
// resolving outside an active provider scope is a configuration error and
// fails immediately instead of silently defaulting.
package scope

import (
	"context"
	"errors"
	"sync"

	"github.com/kgrieve/rosterdeck/internal/roster"
	"github.com/kgrieve/rosterdeck/internal/store"
)

// ErrNoScope is returned when a consumer resolves the provider outside an
// active provider scope. This is a programmer error, not a recoverable
// runtime condition.
var ErrNoScope = errors.New("roster: no provider in scope")

type ctxKey struct{}

// Provider exposes the store's collection, selection, and operations to
// descendants. Its operation methods are identity-stable for the lifetime
// of the provider, and its snapshot is rebuilt only when the underlying
// store actually changed.
type Provider struct {
	store *store.Store

	mu     sync.Mutex
	cached store.Snapshot
	valid  bool
}

// NewProvider wraps a store.
func NewProvider(st *store.Store) *Provider {
	return &Provider{store: st}
}

// With installs the provider into the context, opening its scope.
func With(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// From resolves the provider from the context. It returns ErrNoScope when
// no provider is in scope.
func From(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoScope
	}
	return p, nil
}

// Snapshot returns the current shared state. Repeated calls without an
// intervening store change return the identical snapshot value, so
// downstream caches keyed on it stay warm.
func (p *Provider) Snapshot() store.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid && p.cached.Version == p.store.Version() {
		return p.cached
	}
	p.cached = p.store.Snapshot()
	p.valid = true
	return p.cached
}

// Users returns the current collection.
func (p *Provider) Users() roster.Collection {
	return p.Snapshot().Users
}

// CurrentUser returns the selected user, or nil when nothing is selected.
func (p *Provider) CurrentUser() *roster.User {
	return p.Snapshot().Selected
}

// AddUser appends a user, assigning its id, and returns the created entry.
func (p *Provider) AddUser(u roster.User) roster.User {
	return p.store.Add(u)
}

// RemoveUser drops the user with the given id; absent ids are a no-op.
func (p *Provider) RemoveUser(id int64) {
	p.store.Remove(id)
}

// UpdateUser merges the patch into the user with the given id; absent ids
// are a no-op.
func (p *Provider) UpdateUser(id int64, patch roster.Patch) {
	p.store.Update(id, patch)
}

// Select marks the user with the given id as current; zero clears.
func (p *Provider) Select(id int64) {
	p.store.Select(id)
}
