package client

import (
	"context"
	"net/url"

	"github.com/fritterapp/fritter/server"
	"github.com/fritterapp/fritter/utils"
)

// Geolocator reports the device's current position. The browser prompt has
// no timeout, so callers should pass a context they control.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (lat, lng float64, err error)
}

// ReverseGeocoder resolves coordinates to a locality name.
type ReverseGeocoder interface {
	Locality(ctx context.Context, lat, lng float64) (string, error)
}

// AroundMe shows the freets tagged with the circle for the user's locality,
// creating the circle if it does not exist yet. Each step completes before
// the next begins: geolocate, reverse-geocode, find-or-create the circle,
// fetch freets. When geolocation is unavailable or denied it falls back to
// the full freet list.
func (s *Store) AroundMe(ctx context.Context, geo Geolocator, coder ReverseGeocoder) error {
	lat, lng, err := geo.CurrentPosition(ctx)
	if err != nil {
		s.UpdateFilter("")
		return s.RefreshFreets(ctx)
	}

	locality, err := coder.Locality(ctx, lat, lng)
	if err != nil {
		return err
	}

	circle, err := s.findOrCreateLocalityCircle(ctx, locality)
	if err != nil {
		return err
	}

	var freets []server.FreetResponse
	if err := s.api.Get(ctx, "/api/freets", &freets); err != nil {
		return err
	}
	nearby := []server.FreetResponse{}
	for _, freet := range freets {
		if utils.ContainsString(freet.Circles, circle.Title) {
			nearby = append(nearby, freet)
		}
	}
	s.setFreets(nearby)
	return nil
}

func (s *Store) findOrCreateLocalityCircle(ctx context.Context, locality string) (*server.CircleResponse, error) {
	var circles []server.CircleResponse
	if err := s.api.Get(ctx, "/api/circles?category="+url.QueryEscape(localityCategory), &circles); err != nil {
		if apiErr, ok := err.(*APIError); !ok || apiErr.StatusCode != 404 {
			return nil, err
		}
		// No locality circles exist yet.
	}
	for i := range circles {
		if circles[i].Title == locality {
			return &circles[i], nil
		}
	}

	var resp struct {
		Message string                `json:"message"`
		Circle  server.CircleResponse `json:"circle"`
	}
	err := s.api.Post(ctx, "/api/circles", map[string]string{
		"title":    locality,
		"bio":      "Freets near " + locality,
		"category": localityCategory,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Circle, nil
}

const localityCategory = "Location"
