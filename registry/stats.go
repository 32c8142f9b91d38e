package registry

import (
	"context"
	"encoding/json"
	"net/url"
)

// StatsService exposes the reporting endpoints of the registry backend.
// Payloads are opaque to the gateway and forwarded as-is.
type StatsService interface {
	Dashboard(ctx context.Context) (json.RawMessage, error)
	Reports(ctx context.Context, debut, fin string) (json.RawMessage, error)
	SyncDB(ctx context.Context, payload json.RawMessage) error
}

type statsService struct {
	client *Client
}

// NewStatsService returns the reporting endpoints backed by the given client
func NewStatsService(c *Client) StatsService {
	return &statsService{client: c}
}

func (s *statsService) Dashboard(ctx context.Context) (json.RawMessage, error) {
	var body json.RawMessage
	if err := s.client.do(ctx, "GET", "/stats/dashboard/", nil, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *statsService) Reports(ctx context.Context, debut, fin string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("debut", debut)
	q.Set("fin", fin)
	var body json.RawMessage
	if err := s.client.do(ctx, "GET", "/stats/reports/?"+q.Encode(), nil, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *statsService) SyncDB(ctx context.Context, payload json.RawMessage) error {
	return s.client.do(ctx, "POST", "/stats/sync-db/", requestBody{Request: payload}, nil)
}
