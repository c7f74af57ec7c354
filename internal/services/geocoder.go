package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"jtaclogs/internal/models"
)

// Geocoder resolves a postal address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

// GoogleGeocoder calls the Google geocoding REST endpoint.
type GoogleGeocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/geocode/json",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GoogleGeocoder) SetBaseURL(u string) {
	if u != "" {
		g.baseURL = u
	}
}

func (g *GoogleGeocoder) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		g.httpClient = hc
	}
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.Location{}, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var body struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location models.Location `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Location{}, err
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return models.Location{}, fmt.Errorf("could not geocode address: %s", body.Status)
	}

	return body.Results[0].Geometry.Location, nil
}
