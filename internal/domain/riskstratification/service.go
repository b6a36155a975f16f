package riskstratification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

type stationAPI interface {
	Get(ctx context.Context, path string, out interface{}, opts ...station.Option) error
}

// NotFoundError reports a protocol fetch whose response carried no id.
type NotFoundError struct {
	ProtocolID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("risk stratification protocol %d not found", e.ProtocolID)
}

type Service struct {
	station stationAPI
	logger  zerolog.Logger
}

func NewService(st stationAPI, logger zerolog.Logger) *Service {
	return &Service{station: st, logger: logger.With().Str("service", "riskstratification").Logger()}
}

func (s *Service) List(ctx context.Context) ([]Protocol, error) {
	var out []StationProtocol
	if err := s.station.Get(ctx, "/api/risk_stratification_protocols", &out); err != nil {
		return nil, err
	}
	return StationToProtocols(out), nil
}

// Get fetches a protocol with its questions. A response without an id
// is treated as not found; the check is presence only, not schema
// validation.
func (s *Service) Get(ctx context.Context, id int64) (*ProtocolWithQuestions, error) {
	var out StationProtocolWithQuestions
	if err := s.station.Get(ctx, fmt.Sprintf("/api/risk_stratification_protocols/%d", id), &out); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		return nil, &NotFoundError{ProtocolID: id}
	}
	return StationToProtocolWithQuestions(&out), nil
}

// SecondaryScreenings lists completed secondary screenings for a care
// request.
func (s *Service) SecondaryScreenings(ctx context.Context, careRequestID int64) ([]SecondaryScreening, error) {
	var out []StationSecondaryScreening
	if err := s.station.Get(ctx, fmt.Sprintf("/api/care_requests/%d/secondary_screenings", careRequestID), &out); err != nil {
		return nil, err
	}
	return StationToSecondaryScreenings(out), nil
}
