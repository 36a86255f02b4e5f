package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fritterapp/fritter/server"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeGeolocator struct {
	lat, lng float64
	err      error
}

func (f fakeGeolocator) CurrentPosition(ctx context.Context) (float64, float64, error) {
	return f.lat, f.lng, f.err
}

type fakeGeocoder struct {
	locality string
	err      error
}

func (f fakeGeocoder) Locality(ctx context.Context, lat, lng float64) (string, error) {
	return f.locality, f.err
}

func TestAroundMeFiltersByLocalityCircle(t *testing.T) {
	s := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/circles":
			require.Equal(t, "Location", r.URL.Query().Get("category"))
			writeJSON(w, []server.CircleResponse{
				{ID: "c1", Title: "Cambridge", Category: "Location"},
			})
		case "/api/freets":
			writeJSON(w, []server.FreetResponse{
				{ID: "f1", Author: "alice", Circles: []string{"Cambridge"}},
				{ID: "f2", Author: "bob", Circles: []string{}},
			})
		default:
			http.NotFound(w, r)
		}
	})

	geo := fakeGeolocator{lat: 42.37, lng: -71.11}
	err := s.AroundMe(context.Background(), geo, fakeGeocoder{locality: "Cambridge"})
	require.NoError(t, err)

	state := s.State()
	require.Len(t, state.Freets, 1)
	require.Equal(t, "f1", state.Freets[0].ID)
}

func TestAroundMeCreatesMissingLocalityCircle(t *testing.T) {
	var created bool
	s := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/circles" && r.Method == http.MethodGet:
			// No locality circles exist yet.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Category Location does not exist."}`))
		case r.URL.Path == "/api/circles" && r.Method == http.MethodPost:
			created = true
			writeJSON(w, map[string]interface{}{
				"message": "Your circle was created successfully.",
				"circle":  server.CircleResponse{ID: "c1", Title: "Cambridge", Category: "Location"},
			})
		case r.URL.Path == "/api/freets":
			writeJSON(w, []server.FreetResponse{
				{ID: "f1", Author: "alice", Circles: []string{"Cambridge"}},
			})
		default:
			http.NotFound(w, r)
		}
	})

	geo := fakeGeolocator{lat: 42.37, lng: -71.11}
	err := s.AroundMe(context.Background(), geo, fakeGeocoder{locality: "Cambridge"})
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, s.State().Freets, 1)
}

func TestAroundMeFallsBackWhenGeolocationDenied(t *testing.T) {
	s := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/freets", r.URL.Path)
		require.Empty(t, r.URL.Query().Get("author"))
		writeJSON(w, []server.FreetResponse{
			{ID: "f1", Author: "alice", Circles: []string{}},
			{ID: "f2", Author: "bob", Circles: []string{}},
		})
	})
	s.UpdateFilter("alice")

	geo := fakeGeolocator{err: errors.New("permission denied")}
	err := s.AroundMe(context.Background(), geo, fakeGeocoder{locality: "unused"})
	require.NoError(t, err)

	state := s.State()
	require.Empty(t, state.Filter)
	require.Len(t, state.Freets, 2)
}
