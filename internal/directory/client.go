package directory

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

// ErrUnavailable is returned when the directory cannot service a request.
var ErrUnavailable = errors.New("directory unavailable")

// Client creates users in the external directory. Calls may take a while
// and may fail; callers are expected to gate and recover accordingly.
type Client interface {
	Create(ctx context.Context, draft roster.User) (roster.User, error)
}

// Simulated is a stand-in directory with configurable latency and failure
// rate. Blank draft fields are filled with generated values.
type Simulated struct {
	Latency     time.Duration
	FailureRate float64 // 0..1, probability a Create fails
}

var _ Client = (*Simulated)(nil)

// NewSimulated builds a simulated directory client.
func NewSimulated(latency time.Duration, failureRate float64) *Simulated {
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	return &Simulated{Latency: latency, FailureRate: failureRate}
}

var sampleNames = []string{
	"Harper Quinn", "Rowan Ellis", "Marlowe Reyes", "Sage Okafor",
	"Emerson Vale", "Dakota Lin", "Arden Moss", "Tatum Iqbal",
}

// Create waits out the configured latency, then either fails or returns the
// draft with blank fields filled in. The id is left for the store to assign.
func (s *Simulated) Create(ctx context.Context, draft roster.User) (roster.User, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return roster.User{}, ctx.Err()
		case <-timer.C:
		}
	}

	if s.FailureRate > 0 && rand.Float64() < s.FailureRate {
		return roster.User{}, fmt.Errorf("create user: %w", ErrUnavailable)
	}

	out := draft.Clone()
	if strings.TrimSpace(out.Name) == "" {
		out.Name = sampleNames[rand.IntN(len(sampleNames))]
	}
	if strings.TrimSpace(out.Email) == "" {
		out.Email = emailFor(out.Name)
	}
	if !out.Role.Valid() {
		out.Role = roster.RoleUser
	}
	out.Active = true
	out.ID = 0
	return out, nil
}

func emailFor(name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	return local + "@example.com"
}
