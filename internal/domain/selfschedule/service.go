package selfschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/sessioncache"
	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

// ErrNoCachedCareRequest is returned when a continuity endpoint needs a
// care request id and the user's session cache has none.
var ErrNoCachedCareRequest = errors.New("no care request in progress for user")

type stationAPI interface {
	Post(ctx context.Context, path string, body, out interface{}, opts ...station.Option) error
	Delete(ctx context.Context, path string, out interface{}, opts ...station.Option) error
}

// userCache is the slice of the session cache store this package uses.
type userCache interface {
	FetchCache(ctx context.Context, userID string) (*sessioncache.OSSUserCache, error)
	SetCache(ctx context.Context, userID string, cache *sessioncache.OSSUserCache) error
}

// Service handles the self-schedule flow: creating the bundled care
// request, persisting the per-user form state, and scheduling follow-up
// notifications.
type Service struct {
	station stationAPI
	cache   userCache
	logger  zerolog.Logger
}

func NewService(st stationAPI, cache userCache, logger zerolog.Logger) *Service {
	return &Service{station: st, cache: cache, logger: logger.With().Str("service", "selfschedule").Logger()}
}

func (s *Service) Create(ctx context.Context, in *OssCareRequest) (*OssCareRequest, error) {
	var out OssStationCareRequest
	if err := s.station.Post(ctx, "/api/self_schedule/care_requests", OssToStation(in), &out); err != nil {
		return nil, err
	}
	return StationToOss(&out)
}

func (s *Service) FetchUserCache(ctx context.Context, userID string) (*sessioncache.OSSUserCache, error) {
	return s.cache.FetchCache(ctx, userID)
}

func (s *Service) SaveUserCache(ctx context.Context, userID string, cache *sessioncache.OSSUserCache) error {
	return s.cache.SetCache(ctx, userID, cache)
}

// CachedCareRequestID resolves the in-progress care request for a user
// from the session cache. Both an absent cache and a cache without the
// id resolve to ErrNoCachedCareRequest.
func (s *Service) CachedCareRequestID(ctx context.Context, userID string) (int64, error) {
	cache, err := s.cache.FetchCache(ctx, userID)
	if err != nil {
		return 0, err
	}
	if cache == nil || cache.CareRequestID == 0 {
		return 0, ErrNoCachedCareRequest
	}
	return cache.CareRequestID, nil
}

// CreateNotification schedules an onboarding notification for the
// user's cached care request.
func (s *Service) CreateNotification(ctx context.Context, userID string) (*Notification, error) {
	careRequestID, err := s.CachedCareRequestID(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out StationNotification
	body := &StationNotification{CareRequestID: careRequestID}
	if err := s.station.Post(ctx, "/api/onboarding/notification", body, &out); err != nil {
		return nil, err
	}
	return &Notification{JobID: out.JobID, CareRequestID: out.CareRequestID}, nil
}

func (s *Service) DeleteNotification(ctx context.Context, jobID string) error {
	return s.station.Delete(ctx, fmt.Sprintf("/api/onboarding/notification/%s", jobID), nil)
}
