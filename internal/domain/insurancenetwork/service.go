package insurancenetwork

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
	return &Service{station: st, logger: logger.With().Str("service", "insurancenetwork").Logger()}
}

// Search lists networks matching the request; the sort enums travel as
// numbers upstream.
func (s *Service) Search(ctx context.Context, in *SearchRequest) ([]InsuranceNetwork, error) {
	var out []ServicesInsuranceNetwork
	if err := s.station.Post(ctx, "/api/insurance_networks/search", SearchToServices(in), &out); err != nil {
		return nil, err
	}
	return ServicesToNetworks(out), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*InsuranceNetwork, error) {
	var out ServicesInsuranceNetwork
	if err := s.station.Get(ctx, fmt.Sprintf("/api/insurance_networks/%d", id), &out); err != nil {
		return nil, err
	}
	return ServicesToNetwork(&out), nil
}

func (s *Service) ListClassifications(ctx context.Context) ([]InsuranceClassification, error) {
	var out []StationInsuranceClassification
	if err := s.station.Get(ctx, "/api/insurance_classifications", &out); err != nil {
		return nil, err
	}
	return StationToClassifications(out), nil
}
