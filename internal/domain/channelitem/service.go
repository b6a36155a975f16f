package channelitem

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
	"github.com/Rukio/nx-repo-sub005/pkg/pagination"
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
	return &Service{station: st, logger: logger.With().Str("service", "channelitem").Logger()}
}

func (s *Service) Get(ctx context.Context, id int64) (*ChannelItem, error) {
	var out StationChannelItem
	if err := s.station.Get(ctx, fmt.Sprintf("/api/channel_items/%d", id), &out); err != nil {
		return nil, err
	}
	return StationToChannelItem(&out), nil
}

// Search lists channel items matching a free-text name query.
func (s *Service) Search(ctx context.Context, query string, page pagination.Params) ([]ChannelItem, error) {
	q := url.Values{}
	if query != "" {
		q.Set("search", query)
	}
	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(page.Offset))
	var out []StationChannelItem
	if err := s.station.Get(ctx, "/api/channel_items", &out, station.WithQuery(q)); err != nil {
		return nil, err
	}
	return StationToChannelItems(out), nil
}

func (s *Service) Create(ctx context.Context, in *ChannelItem) (*ChannelItem, error) {
	var out StationChannelItem
	if err := s.station.Post(ctx, "/api/channel_items", ChannelItemToStation(in), &out); err != nil {
		return nil, err
	}
	return StationToChannelItem(&out), nil
}
