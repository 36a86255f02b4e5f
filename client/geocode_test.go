package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newStubGeocoder(t *testing.T, handler http.HandlerFunc) *BigDataCloudGeocoder {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return &BigDataCloudGeocoder{
		BaseURL: ts.URL,
		HTTP:    &http.Client{Timeout: time.Second},
	}
}

func TestGeocoderPrefersCity(t *testing.T) {
	g := newStubGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "en", r.URL.Query().Get("localityLanguage"))
		writeJSON(w, map[string]string{
			"city":                 "Cambridge",
			"locality":             "Mid-Cambridge",
			"principalSubdivision": "Massachusetts",
		})
	})

	locality, err := g.Locality(context.Background(), 42.37, -71.11)
	require.NoError(t, err)
	require.Equal(t, "Cambridge", locality)
}

func TestGeocoderFallsBackToSubdivision(t *testing.T) {
	g := newStubGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"principalSubdivision": "Massachusetts"})
	})

	locality, err := g.Locality(context.Background(), 42.37, -71.11)
	require.NoError(t, err)
	require.Equal(t, "Massachusetts", locality)
}

func TestGeocoderErrors(t *testing.T) {
	g := newStubGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{})
	})
	_, err := g.Locality(context.Background(), 0, 0)
	require.Error(t, err)

	g = newStubGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err = g.Locality(context.Background(), 0, 0)
	require.Error(t, err)
}
