package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
)

func TestMapCondition(t *testing.T) {
	cases := map[string]string{
		"Rain":         model.WeatherRainy,
		"Drizzle":      model.WeatherRainy,
		"Thunderstorm": model.WeatherStormy,
		"Clear":        model.WeatherSunny,
		"Clouds":       model.WeatherCloudy,
		"Haze":         "haze",
	}
	for main, want := range cases {
		if got := mapCondition(main); got != want {
			t.Fatalf("mapCondition(%q) = %q, want %q", main, got, want)
		}
	}
}

func TestOpenCageGeocodeParsesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "Madrid" {
			t.Errorf("query = %q, want Madrid", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [{
				"formatted": "Madrid, Community of Madrid, Spain",
				"geometry": {"lat": 40.4168, "lng": -3.7038},
				"annotations": {"timezone": {"name": "Europe/Madrid"}}
			}],
			"status": {"code": 200, "message": "OK"}
		}`))
	}))
	defer srv.Close()

	c := NewOpenCageClient(config.GeocodingConfig{
		BaseURL:        srv.URL,
		APIKey:         "test",
		RequestTimeout: 2 * time.Second,
	})

	results, err := c.Geocode(context.Background(), "Madrid")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}
	r := results[0]
	if r.Formatted != "Madrid, Community of Madrid, Spain" {
		t.Fatalf("formatted = %q", r.Formatted)
	}
	if r.Coordinate.Lat != 40.4168 || r.Coordinate.Lng != -3.7038 {
		t.Fatalf("coordinate = %+v", r.Coordinate)
	}
	if r.Timezone != "Europe/Madrid" {
		t.Fatalf("timezone = %q", r.Timezone)
	}
}

func TestOpenCageGeocodeEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [], "status": {"code": 200, "message": "OK"}}`))
	}))
	defer srv.Close()

	c := NewOpenCageClient(config.GeocodingConfig{BaseURL: srv.URL, RequestTimeout: 2 * time.Second})
	results, err := c.Geocode(context.Background(), "xyzzy nowhere")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("len = %d, want 0", len(results))
	}
}

func TestOpenWeatherCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if units := r.URL.Query().Get("units"); units != "imperial" {
			t.Errorf("units = %q, want imperial", units)
		}
		w.Write([]byte(`{"weather": [{"main": "Rain"}], "main": {"temp": 58.3}}`))
	}))
	defer srv.Close()

	c := NewOpenWeatherClient(config.WeatherConfig{BaseURL: srv.URL, APIKey: "test", RequestTimeout: 2 * time.Second})
	report, err := c.Current(context.Background(), model.Coordinate{Lat: 40.4, Lng: -3.7})
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if report.Condition != model.WeatherRainy {
		t.Fatalf("condition = %q, want rainy", report.Condition)
	}
	if report.TempF == nil || *report.TempF != 58.3 {
		t.Fatalf("temp = %v, want 58.3", report.TempF)
	}
}

func TestOpenWeatherUpstreamErrorReturnsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewOpenWeatherClient(config.WeatherConfig{BaseURL: srv.URL, RequestTimeout: 2 * time.Second})
	report, err := c.Current(context.Background(), model.Coordinate{})
	if err == nil {
		t.Fatalf("expected error on upstream 401")
	}
	if report.Condition != model.WeatherUnknown || report.TempF != nil {
		t.Fatalf("report = %+v, want unknown sentinel", report)
	}
}

func TestPlacesNearestSite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if radius := r.URL.Query().Get("radius"); radius != "1500" {
			t.Errorf("radius = %q, want 1500", radius)
		}
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"name": "Almudena Cathedral",
				"vicinity": "Calle de Bailen 10, Madrid",
				"place_id": "abc123",
				"geometry": {"location": {"lat": 40.4154, "lng": -3.7145}},
				"opening_hours": {"open_now": true},
				"price_level": 0
			}]
		}`))
	}))
	defer srv.Close()

	c := NewPlacesClient(config.PlacesConfig{BaseURL: srv.URL, APIKey: "test", RequestTimeout: 2 * time.Second})
	site, err := c.NearestSite(context.Background(), model.Coordinate{Lat: 40.4168, Lng: -3.7038}, "cathedral", 1500)
	if err != nil {
		t.Fatalf("NearestSite: %v", err)
	}
	if site == nil {
		t.Fatalf("expected a site")
	}
	if site.Name != "Almudena Cathedral" || site.OpenStatus != model.SiteOpen || site.FeeStatus != model.SiteFree {
		t.Fatalf("site = %+v", site)
	}
	if site.Coordinate == nil || site.Coordinate.Lat != 40.4154 {
		t.Fatalf("site coordinate = %+v", site.Coordinate)
	}
}

func TestPlacesZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	c := NewPlacesClient(config.PlacesConfig{BaseURL: srv.URL, RequestTimeout: 2 * time.Second})
	site, err := c.NearestSite(context.Background(), model.Coordinate{}, "cathedral", 1500)
	if err != nil {
		t.Fatalf("NearestSite: %v", err)
	}
	if site != nil {
		t.Fatalf("site = %+v, want nil", site)
	}
}

func TestPlacesMissingMetadataStaysUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"name": "Old Fort",
				"vicinity": "Fort Road",
				"geometry": {"location": {"lat": 1, "lng": 2}}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewPlacesClient(config.PlacesConfig{BaseURL: srv.URL, RequestTimeout: 2 * time.Second})
	site, err := c.NearestSite(context.Background(), model.Coordinate{}, "fort", 1500)
	if err != nil {
		t.Fatalf("NearestSite: %v", err)
	}
	if site.OpenStatus != model.SiteOpenUnknown || site.FeeStatus != model.SiteFeeUnknown {
		t.Fatalf("site = %+v, want unknown open/fee", site)
	}
}
