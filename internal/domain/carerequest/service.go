package carerequest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

// stationAPI is the slice of the Station client this package calls.
type stationAPI interface {
	Get(ctx context.Context, path string, out interface{}, opts ...station.Option) error
	Post(ctx context.Context, path string, body, out interface{}, opts ...station.Option) error
	Put(ctx context.Context, path string, body, out interface{}, opts ...station.Option) error
	Patch(ctx context.Context, path string, body, out interface{}, opts ...station.Option) error
}

// Service proxies care request operations to Station, mapping shapes
// in both directions. Each operation performs a single upstream call;
// the partner referral sub-resource is the one documented exception.
type Service struct {
	station stationAPI
	logger  zerolog.Logger
}

func NewService(st stationAPI, logger zerolog.Logger) *Service {
	return &Service{station: st, logger: logger.With().Str("service", "carerequest").Logger()}
}

func (s *Service) Create(ctx context.Context, in *CareRequest) (*CareRequest, error) {
	var out StationCareRequest
	if err := s.station.Post(ctx, "/api/care_requests", CareRequestToStation(in), &out); err != nil {
		return nil, err
	}
	return StationToCareRequest(&out)
}

func (s *Service) Get(ctx context.Context, id int64) (*CareRequest, error) {
	var out StationCareRequest
	if err := s.station.Get(ctx, fmt.Sprintf("/api/care_requests/%d", id), &out); err != nil {
		return nil, err
	}
	return StationToCareRequest(&out)
}

// Update replaces the care request with a PUT. When the payload names a
// partner referral the sub-resource patch is fired best-effort in the
// background so a slow or failing referral update never delays the care
// request itself.
func (s *Service) Update(ctx context.Context, id int64, in *CareRequest) (*CareRequest, error) {
	if in != nil && in.PartnerReferral != nil && in.PartnerReferral.ID != 0 {
		referral := in.PartnerReferral
		go s.PatchPartnerReferral(context.WithoutCancel(ctx), referral)
	}
	var out StationCareRequest
	if err := s.station.Put(ctx, fmt.Sprintf("/api/care_requests/%d", id), CareRequestToStation(in), &out); err != nil {
		return nil, err
	}
	return StationToCareRequest(&out)
}

// Patch partially updates the care request. Unlike Update, the partner
// referral patch completes before the main call so the response
// reflects the referral change.
func (s *Service) Patch(ctx context.Context, id int64, in *CareRequest) (*CareRequest, error) {
	if in != nil && in.PartnerReferral != nil && in.PartnerReferral.ID != 0 {
		s.PatchPartnerReferral(ctx, in.PartnerReferral)
	}
	var out StationCareRequest
	if err := s.station.Patch(ctx, fmt.Sprintf("/api/care_requests/%d", id), CareRequestToStation(in), &out); err != nil {
		return nil, err
	}
	return StationToCareRequest(&out)
}

// UpdateStatus transitions the care request through Station's status
// machine. Errors are returned unmapped so the handler can forward
// Station's status code and field errors.
func (s *Service) UpdateStatus(ctx context.Context, id int64, in *UpdateStatusPayload) error {
	return s.station.Patch(ctx, fmt.Sprintf("/api/care_requests/%d/update_status", id), UpdateStatusToStation(in), nil)
}

func (s *Service) AcceptIfFeasible(ctx context.Context, id int64, in *AcceptIfFeasiblePayload) error {
	return s.station.Patch(ctx, fmt.Sprintf("/api/care_requests/%d/accept_if_feasible", id), AcceptIfFeasibleToStation(in), nil)
}

func (s *Service) CreateEtaRange(ctx context.Context, id int64, in *EtaRange) (*EtaRange, error) {
	var out StationEtaRange
	if err := s.station.Post(ctx, fmt.Sprintf("/api/care_requests/%d/eta_ranges.json", id), EtaRangeToStation(in), &out); err != nil {
		return nil, err
	}
	return StationToEtaRange(&out), nil
}

func (s *Service) TimeWindowsAvailability(ctx context.Context, id int64) ([]TimeWindowsAvailability, error) {
	var out []StationTimeWindowsAvailability
	if err := s.station.Get(ctx, fmt.Sprintf("/api/care_requests/%d/time_windows_availability", id), &out); err != nil {
		return nil, err
	}
	return StationToTimeWindowsAvailabilities(out), nil
}

// PatchPartnerReferral updates the partner referral sub-resource. A
// failure is logged with the referral id and swallowed; callers always
// get nil rather than an error so a referral hiccup cannot fail the
// surrounding care request operation.
func (s *Service) PatchPartnerReferral(ctx context.Context, in *PartnerReferral) *PartnerReferral {
	if in == nil || in.ID == 0 {
		return nil
	}
	var out StationPartnerReferral
	err := s.station.Patch(ctx, fmt.Sprintf("/api/partner_referrals/%d", in.ID), PartnerReferralToStation(in), &out)
	if err != nil {
		s.logger.Error().Err(err).Int64("partner_referral_id", in.ID).Msg("partner referral patch failed")
		return nil
	}
	return &PartnerReferral{
		ID:           out.ID,
		FirstName:    optString(out.FirstName),
		LastName:     optString(out.LastName),
		Phone:        out.Phone,
		Email:        out.Email,
		Relationship: out.Relationship,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
