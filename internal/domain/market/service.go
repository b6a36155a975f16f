package market

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

type stationAPI interface {
	Get(ctx context.Context, path string, out interface{}, opts ...station.Option) error
	Post(ctx context.Context, path string, body, out interface{}, opts ...station.Option) error
}

type Service struct {
	station stationAPI
	logger  zerolog.Logger
}

func NewService(st stationAPI, logger zerolog.Logger) *Service {
	return &Service{station: st, logger: logger.With().Str("service", "market").Logger()}
}

func (s *Service) CheckAvailability(ctx context.Context, in *AvailabilityRequest) (*Availability, error) {
	var out StationAvailability
	if err := s.station.Post(ctx, "/api/markets/check_availability", AvailabilityToStation(in), &out); err != nil {
		return nil, err
	}
	return &Availability{Availability: out.Availability}, nil
}

// ListStates fetches the live state list. The admin endpoint is
// unauthenticated, so no bearer token is attached.
func (s *Service) ListStates(ctx context.Context) ([]State, error) {
	var out []StationState
	if err := s.station.Get(ctx, "/admin/states.json", &out, station.WithoutToken()); err != nil {
		return nil, err
	}
	return StationToStates(out), nil
}

func (s *Service) PlacesOfService(ctx context.Context, billingCityID int64) ([]PlaceOfService, error) {
	var out []StationPlaceOfService
	if err := s.station.Get(ctx, fmt.Sprintf("/api/billing_cities/%d/places_of_service", billingCityID), &out); err != nil {
		return nil, err
	}
	return StationToPlacesOfService(out), nil
}
