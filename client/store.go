package client

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/fritterapp/fritter/server"
	"github.com/fritterapp/fritter/utils"
	"github.com/jinzhu/copier"
)

const alertTTL = 3 * time.Second

// State is everything the frontend needs between renders: the current freet
// filter, the last-fetched lists, the logged-in user's profile fields, and
// the transient alert messages keyed by message text.
type State struct {
	Filter     string                  `json:"filter"`
	Freets     []server.FreetResponse  `json:"freets"`
	Circles    []server.CircleResponse `json:"circles"`
	Username   string                  `json:"username"`
	FirstName  string                  `json:"firstName"`
	LastName   string                  `json:"lastName"`
	Email      string                  `json:"email"`
	Bio        string                  `json:"bio"`
	DateJoined string                  `json:"dateJoined"`
	Alerts     map[string]string       `json:"alerts"`
}

// Store holds client state behind explicit mutation entry points. Dependents
// subscribe for change notifications instead of polling; every mutation
// publishes a deep copy of the new state.
type Store struct {
	mu          sync.Mutex
	api         *Client
	state       State
	subscribers []chan State
	alertTimers map[string]*time.Timer
	alertTTL    time.Duration
}

func NewStore(api *Client) *Store {
	return &Store{
		api:         api,
		state:       State{Alerts: map[string]string{}},
		alertTimers: map[string]*time.Timer{},
		alertTTL:    alertTTL,
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Subscribe returns a channel receiving a state copy after every mutation.
// Slow consumers miss intermediate states rather than blocking mutations.
func (s *Store) Subscribe() <-chan State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 16)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// snapshot deep-copies the state. Callers must hold the lock.
func (s *Store) snapshot() State {
	var dup State
	copier.Copy(&dup, &s.state)
	if dup.Alerts == nil {
		dup.Alerts = map[string]string{}
	}
	return dup
}

// notify publishes the current state to subscribers. Callers must hold the
// lock.
func (s *Store) notify() {
	snapshot := s.snapshot()
	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Alert records a transient message. It disappears on its own after three
// seconds; re-raising the same message resets the clock.
func (s *Store) Alert(message, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Alerts[message] = status
	if timer, ok := s.alertTimers[message]; ok {
		timer.Stop()
	}
	s.alertTimers[message] = time.AfterFunc(s.alertTTL, func() {
		s.expireAlert(message)
	})
	s.notify()
}

func (s *Store) expireAlert(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.state.Alerts, message)
	delete(s.alertTimers, message)
	s.notify()
}

// UpdateFilter sets the username freet lists are filtered by. Empty shows all
// freets.
func (s *Store) UpdateFilter(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filter = filter
	s.notify()
}

// SetUser records the logged-in user's profile fields; nil clears them on
// logout.
func (s *Store) SetUser(user *server.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.state.Username = ""
		s.state.FirstName = ""
		s.state.LastName = ""
		s.state.Email = ""
		s.state.Bio = ""
		s.state.DateJoined = ""
	} else {
		s.state.Username = user.Username
		s.state.FirstName = user.FirstName
		s.state.LastName = user.LastName
		s.state.Email = user.Email
		s.state.Bio = user.Bio
		s.state.DateJoined = user.DateJoined
	}
	s.notify()
}

func (s *Store) setFreets(freets []server.FreetResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Freets = freets
	s.notify()
}

// RefreshFreets fetches the freet list from the server, honoring the current
// filter, and republishes it.
func (s *Store) RefreshFreets(ctx context.Context) error {
	s.mu.Lock()
	filter := s.state.Filter
	s.mu.Unlock()

	path := "/api/freets"
	if filter != "" {
		path += "?author=" + url.QueryEscape(filter)
	}

	var freets []server.FreetResponse
	if err := s.api.Get(ctx, path, &freets); err != nil {
		return err
	}
	s.setFreets(freets)
	return nil
}

// RefreshCircles fetches the circle list and republishes it.
func (s *Store) RefreshCircles(ctx context.Context) error {
	var circles []server.CircleResponse
	if err := s.api.Get(ctx, "/api/circles", &circles); err != nil {
		return err
	}

	s.mu.Lock()
	s.state.Circles = circles
	s.notify()
	s.mu.Unlock()
	return nil
}

// RefreshFollowingFreets shows only freets authored by accounts the named
// user follows. Two round trips: the follow list resolves to usernames, then
// the full freet list is filtered by author membership client-side.
func (s *Store) RefreshFollowingFreets(ctx context.Context, username string) error {
	var follows []server.FollowResponse
	if err := s.api.Get(ctx, "/api/follows?following="+url.QueryEscape(username), &follows); err != nil {
		return err
	}
	following := []string{}
	for _, follow := range follows {
		following = append(following, follow.Following)
	}

	var freets []server.FreetResponse
	if err := s.api.Get(ctx, "/api/freets", &freets); err != nil {
		return err
	}

	filtered := []server.FreetResponse{}
	for _, freet := range freets {
		if utils.ContainsString(following, freet.Author) {
			filtered = append(filtered, freet)
		}
	}
	s.setFreets(filtered)
	return nil
}

type sessionPayload struct {
	Message string               `json:"message"`
	User    *server.UserResponse `json:"user"`
}

// LogIn starts a session and records the profile fields.
func (s *Store) LogIn(ctx context.Context, username, password string) error {
	var resp sessionPayload
	err := s.api.Post(ctx, "/api/users/session", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	s.SetUser(resp.User)
	return nil
}

// LogOut ends the session and clears the profile fields.
func (s *Store) LogOut(ctx context.Context) error {
	if err := s.api.Delete(ctx, "/api/users/session", nil); err != nil {
		return err
	}
	s.SetUser(nil)
	return nil
}

// RestoreSession asks the server who is logged in, picking an existing
// session cookie back up after a restart.
func (s *Store) RestoreSession(ctx context.Context) error {
	var resp sessionPayload
	if err := s.api.Get(ctx, "/api/users/session", &resp); err != nil {
		return err
	}
	s.SetUser(resp.User)
	return nil
}

// Snapshot writes the full state as JSON, so it can be restored after a
// reload.
func (s *Store) Snapshot(w io.Writer) error {
	s.mu.Lock()
	snapshot := s.snapshot()
	s.mu.Unlock()
	return json.NewEncoder(w).Encode(snapshot)
}

// Restore replaces the state with a previously written snapshot. Alerts are
// transient and do not survive the round trip.
func (s *Store) Restore(r io.Reader) error {
	var state State
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return err
	}
	state.Alerts = map[string]string{}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, timer := range s.alertTimers {
		timer.Stop()
	}
	s.alertTimers = map[string]*time.Timer{}
	s.state = state
	s.notify()
	return nil
}
