package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleGeocoder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("address") == "" {
			t.Error("expected address query param")
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("expected api key query param")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 40.7484, "lng": -73.9857}}}]
		}`))
	}))
	defer ts.Close()

	g := NewGoogleGeocoder("test-key")
	g.SetBaseURL(ts.URL)
	g.SetHTTPClient(ts.Client())

	location, err := g.Geocode(context.Background(), "20 W 34th St, New York")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if location.Lat != 40.7484 || location.Lng != -73.9857 {
		t.Fatalf("unexpected location: %+v", location)
	}
}

func TestGoogleGeocoderZeroResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer ts.Close()

	g := NewGoogleGeocoder("test-key")
	g.SetBaseURL(ts.URL)
	g.SetHTTPClient(ts.Client())

	if _, err := g.Geocode(context.Background(), "???"); err == nil {
		t.Fatal("expected an error for an unresolvable address")
	}
}

func TestGoogleGeocoderUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	g := NewGoogleGeocoder("test-key")
	g.SetBaseURL(ts.URL)
	g.SetHTTPClient(ts.Client())

	if _, err := g.Geocode(context.Background(), "anywhere"); err == nil {
		t.Fatal("expected an error on a non-200 response")
	}
}
