// File: /tracker/tracker.go
package tracker

import (
	"context"
	"errors"
	"sync"

	"cleanworld-api/client"
	"cleanworld-api/session"
	"cleanworld-api/workingset"
)

// ErrNotSignedIn means a registration action was attempted with no signed-in
// user. Callers route to authentication instead of issuing the request.
var ErrNotSignedIn = errors.New("tracker: no signed-in user")

// ErrRequestInFlight means a register/unregister request for the same event
// is still outstanding. The backend has no compare-and-swap, so a second
// concurrent mutation on one event is rejected here.
var ErrRequestInFlight = errors.New("tracker: request already in flight for event")

// API is the slice of the REST client the tracker uses.
type API interface {
	Attend(ctx context.Context, token string, eventID, userID client.ID) (*client.Event, error)
	Unattend(ctx context.Context, token string, eventID, userID client.ID) (*client.Event, error)
}

// Tracker applies register/unregister actions for the signed-in user.
// Local state changes only after the backend confirms; the working set's
// attendee list is then replaced with the server-returned set.
type Tracker struct {
	api      API
	session  session.Provider
	set      *workingset.Set
	mu       sync.Mutex
	inFlight map[client.ID]bool
}

func New(api API, sess session.Provider, set *workingset.Set) *Tracker {
	return &Tracker{
		api:      api,
		session:  sess,
		set:      set,
		inFlight: make(map[client.ID]bool),
	}
}

// IsUserRegistered reports whether the user appears in the event's
// attendee set. A nil user is never registered.
func IsUserRegistered(e *client.Event, u *client.User) bool {
	return u != nil && e.HasAttendee(u.ID)
}

// Register adds the signed-in user to the event. Idempotent from the
// caller's perspective: the server enforces set semantics and the returned
// attendee set is installed verbatim.
func (t *Tracker) Register(ctx context.Context, eventID client.ID) (*client.Event, error) {
	return t.mutate(ctx, eventID, t.api.Attend)
}

// Unregister removes the signed-in user from the event.
func (t *Tracker) Unregister(ctx context.Context, eventID client.ID) (*client.Event, error) {
	return t.mutate(ctx, eventID, t.api.Unattend)
}

func (t *Tracker) mutate(ctx context.Context, eventID client.ID, call func(context.Context, string, client.ID, client.ID) (*client.Event, error)) (*client.Event, error) {
	user := t.session.CurrentUser()
	if user == nil || user.Token == "" {
		return nil, ErrNotSignedIn
	}

	if !t.acquire(eventID) {
		return nil, ErrRequestInFlight
	}
	defer t.release(eventID)

	event, err := call(ctx, user.Token, eventID, user.ID)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			// Stale credentials must not be retried.
			t.session.Clear()
		}
		return nil, err
	}

	t.set.ReplaceEventAttendees(eventID, event.Attendees)
	return event, nil
}

func (t *Tracker) acquire(eventID client.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inFlight[eventID] {
		return false
	}
	t.inFlight[eventID] = true
	return true
}

func (t *Tracker) release(eventID client.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, eventID)
}

// InFlight reports whether a mutation for the event is outstanding, for
// disabling the triggering control.
func (t *Tracker) InFlight(eventID client.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight[eventID]
}
