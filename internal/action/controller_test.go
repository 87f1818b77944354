package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

func TestInvoke_SecondCallDuringFlightIsRejected(t *testing.T) {
	c := New(nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan Outcome, 1)

	committed := 0
	go func() {
		done <- c.Invoke(context.Background(), func(context.Context) (roster.User, error) {
			close(started)
			<-release
			return roster.User{Name: "Cam"}, nil
		}, func(roster.User) { committed++ })
	}()

	<-started
	if !c.Busy() {
		t.Fatalf("Busy = false during pending window, want true")
	}
	if got := c.Invoke(context.Background(), func(context.Context) (roster.User, error) {
		return roster.User{}, nil
	}, func(roster.User) { committed++ }); got != Rejected {
		t.Fatalf("second Invoke = %v, want Rejected", got)
	}

	close(release)
	if got := <-done; got != Completed {
		t.Fatalf("first Invoke = %v, want Completed", got)
	}
	if committed != 1 {
		t.Fatalf("committed %d users, want exactly 1", committed)
	}
	if c.Busy() {
		t.Fatalf("Busy = true after settlement, want false")
	}
}

func TestInvoke_FailureClearsBusyAndSkipsCommit(t *testing.T) {
	c := New(nil)

	committed := false
	got := c.Invoke(context.Background(), func(context.Context) (roster.User, error) {
		return roster.User{}, errors.New("boom")
	}, func(roster.User) { committed = true })

	if got != Failed {
		t.Fatalf("Invoke = %v, want Failed", got)
	}
	if committed {
		t.Fatalf("commit ran after a failed operation")
	}
	if c.Busy() {
		t.Fatalf("Busy = true after failure, want false")
	}
}

func TestTryBegin_AdmitsAgainAfterEnd(t *testing.T) {
	c := New(nil)

	if !c.TryBegin() {
		t.Fatalf("first TryBegin = false, want true")
	}
	if c.TryBegin() {
		t.Fatalf("second TryBegin = true while busy, want false")
	}
	c.End()
	if !c.TryBegin() {
		t.Fatalf("TryBegin after End = false, want true")
	}
}

func TestRun_PassesContextThrough(t *testing.T) {
	c := New(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if !c.TryBegin() {
		t.Fatalf("TryBegin = false, want true")
	}
	got := c.Run(ctx, func(opCtx context.Context) (roster.User, error) {
		if opCtx != ctx {
			t.Fatalf("operation received a different context")
		}
		return roster.User{Name: "Cam"}, nil
	}, func(roster.User) {})
	if got != Completed {
		t.Fatalf("Run = %v, want Completed", got)
	}
}
