package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/kgrieve/rosterdeck/internal/roster"
	"github.com/kgrieve/rosterdeck/internal/store"
)

func newProvider() *Provider {
	st := store.New(roster.Collection{
		{ID: 1, Name: "Bob", Email: "b@x.com", Role: roster.RoleUser, Active: true},
		{ID: 2, Name: "Ann", Email: "a@x.com", Role: roster.RoleAdmin},
	})
	return NewProvider(st)
}

func TestFrom_OutsideScopeFails(t *testing.T) {
	_, err := From(context.Background())
	if !errors.Is(err, ErrNoScope) {
		t.Fatalf("From outside scope: err = %v, want ErrNoScope", err)
	}
}

func TestFrom_InsideScopeResolvesProvider(t *testing.T) {
	p := newProvider()
	ctx := With(context.Background(), p)

	got, err := From(ctx)
	if err != nil {
		t.Fatalf("From returned error: %v", err)
	}
	if got != p {
		t.Fatalf("From = %p, want %p", got, p)
	}
}

func TestSnapshot_StableUntilStoreChanges(t *testing.T) {
	p := newProvider()

	a := p.Snapshot()
	b := p.Snapshot()
	if a.Version != b.Version {
		t.Fatalf("versions differ without a change: %d vs %d", a.Version, b.Version)
	}
	if len(a.Users) == 0 || &a.Users[0] != &b.Users[0] {
		t.Fatalf("snapshot was rebuilt without a store change")
	}

	p.AddUser(roster.User{Name: "Cam"})
	c := p.Snapshot()
	if c.Version == a.Version {
		t.Fatalf("snapshot not republished after add")
	}
	if len(c.Users) != 3 {
		t.Fatalf("users after add = %d, want 3", len(c.Users))
	}
}

func TestProviderOperations(t *testing.T) {
	p := newProvider()

	created := p.AddUser(roster.User{Name: "Cam", Email: "c@x.com", Role: roster.RoleModerator})
	if created.ID != 3 {
		t.Fatalf("assigned id = %d, want 3", created.ID)
	}

	active := true
	p.UpdateUser(2, roster.Patch{Active: &active})
	u, ok := p.Users().Find(2)
	if !ok || !u.Active {
		t.Fatalf("user 2 after update = %+v, want Active true", u)
	}

	p.Select(2)
	if cur := p.CurrentUser(); cur == nil || cur.ID != 2 {
		t.Fatalf("CurrentUser = %+v, want user 2", cur)
	}

	p.RemoveUser(2)
	if cur := p.CurrentUser(); cur != nil {
		t.Fatalf("CurrentUser after remove = %+v, want nil", cur)
	}
	if _, ok := p.Users().Find(2); ok {
		t.Fatalf("user 2 still present after remove")
	}

	// Removing again is a silent no-op.
	before := len(p.Users())
	p.RemoveUser(2)
	if got := len(p.Users()); got != before {
		t.Fatalf("second remove changed collection: %d, want %d", got, before)
	}
}
