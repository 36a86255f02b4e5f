package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const bigDataCloudURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// BigDataCloudGeocoder resolves coordinates through the free BigDataCloud
// reverse geocoding endpoint, which needs no API key.
type BigDataCloudGeocoder struct {
	BaseURL string
	HTTP    *http.Client
}

func NewBigDataCloudGeocoder() *BigDataCloudGeocoder {
	return &BigDataCloudGeocoder{
		BaseURL: bigDataCloudURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *BigDataCloudGeocoder) Locality(ctx context.Context, lat, lng float64) (string, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&localityLanguage=en", g.BaseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "reverse geocode")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		City                 string `json:"city"`
		Locality             string `json:"locality"`
		PrincipalSubdivision string `json:"principalSubdivision"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrap(err, "reverse geocode")
	}

	for _, name := range []string{payload.City, payload.Locality, payload.PrincipalSubdivision} {
		if name != "" {
			return name, nil
		}
	}
	return "", errors.New("reverse geocode: no locality in response")
}
