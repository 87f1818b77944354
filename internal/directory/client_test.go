package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

func TestCreate_FillsBlankFields(t *testing.T) {
	c := NewSimulated(0, 0)

	u, err := c.Create(context.Background(), roster.User{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.Name == "" || u.Email == "" {
		t.Fatalf("Create left blank fields: %+v", u)
	}
	if !u.Role.Valid() {
		t.Fatalf("Role = %q, want a valid role", u.Role)
	}
	if !u.Active {
		t.Fatalf("Active = false, want true")
	}
	if u.ID != 0 {
		t.Fatalf("ID = %d, want 0 (store assigns ids)", u.ID)
	}
}

func TestCreate_KeepsProvidedFields(t *testing.T) {
	c := NewSimulated(0, 0)

	draft := roster.User{Name: "Ann", Email: "a@x.com", Role: roster.RoleAdmin}
	u, err := c.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.Name != "Ann" || u.Email != "a@x.com" || u.Role != roster.RoleAdmin {
		t.Fatalf("Create changed provided fields: %+v", u)
	}
}

func TestCreate_AlwaysFailsAtRateOne(t *testing.T) {
	c := NewSimulated(0, 1)

	_, err := c.Create(context.Background(), roster.User{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestCreate_HonorsContextDuringLatency(t *testing.T) {
	c := NewSimulated(time.Minute, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Create(ctx, roster.User{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFailureRateClamped(t *testing.T) {
	if c := NewSimulated(0, -1); c.FailureRate != 0 {
		t.Fatalf("FailureRate = %v, want 0", c.FailureRate)
	}
	if c := NewSimulated(0, 2); c.FailureRate != 1 {
		t.Fatalf("FailureRate = %v, want 1", c.FailureRate)
	}
}
