package market

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/auth"
	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

// newTestService runs the service against a real station client and an
// httptest upstream so the per-call auth toggle is exercised end to
// end.
func newTestService(t *testing.T, upstream http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	client := station.NewClient(srv.URL, auth.StaticTokenSource("test-token"), zerolog.Nop())
	return NewService(client, zerolog.Nop()), srv
}

func TestCheckAvailabilitySendsSnakeCase(t *testing.T) {
	var gotBody string
	var gotAuth string
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"availability": "available"}`))
	})

	out, err := s.CheckAvailability(context.Background(), &AvailabilityRequest{
		MarketID:    160,
		Zipcode:     "80205",
		ServiceDate: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Availability != "available" {
		t.Errorf("availability = %q", out.Availability)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	for _, want := range []string{`"market_id":160`, `"zipcode":"80205"`, `"service_date":"2026-09-01"`} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("body %s missing %s", gotBody, want)
		}
	}
}

func TestListStatesOmitsToken(t *testing.T) {
	var gotAuth string
	var gotPath string
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Colorado", "abbreviation": "CO"}]`))
	})

	out, err := s.ListStates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/admin/states.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
	if len(out) != 1 || out[0].Abbreviation != "CO" {
		t.Errorf("out = %+v", out)
	}
}

func TestPlacesOfService(t *testing.T) {
	var gotPath string
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "place_of_service": "Home", "billing_city_id": 5}]`))
	})

	out, err := s.PlacesOfService(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/billing_cities/5/places_of_service" {
		t.Errorf("path = %q", gotPath)
	}
	if len(out) != 1 || out[0].PlaceOfService != "Home" || out[0].BillingCityID != 5 {
		t.Errorf("out = %+v", out)
	}
}

func TestPlacesOfServiceEmptyUpstream(t *testing.T) {
	s, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	out, err := s.PlacesOfService(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty slice, got %#v", out)
	}
}
