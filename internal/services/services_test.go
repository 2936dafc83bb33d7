package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"luxride/internal/changes"
	"luxride/internal/events"
	"luxride/internal/repository"
	"luxride/internal/testutil"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type recordingNotifier struct {
	mu  sync.Mutex
	got []changes.Change
}

func (r *recordingNotifier) Notify(_ context.Context, c changes.Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, c)
	return nil
}

func (r *recordingNotifier) collections() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, c := range r.got {
		out = append(out, c.Collection)
	}
	return out
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.BookingEvent
}

func (r *recordingPublisher) Publish(_ context.Context, ev events.BookingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.New(testutil.NewDB(t))
}

func signupRider(t *testing.T, store *repository.Store, email string) string {
	t.Helper()
	a := NewAccounts(store)
	u, err := a.Signup(context.Background(), SignupInput{
		Name: "Test Rider", Email: email, Phone: "555-0100",
		Password: "secret", ConfirmPassword: "secret",
	})
	require.NoError(t, err)
	return u.ID
}
