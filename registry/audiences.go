package registry

import (
	"context"
	"encoding/json"

	"github.com/siga-greffe/greffe-api/models"
)

// AudienceService exposes the hearing endpoints of the registry backend
type AudienceService interface {
	GetAll(ctx context.Context) ([]models.Audience, error)
	GetDaily(ctx context.Context, date string) ([]models.Audience, error)
	Create(ctx context.Context, audience models.Audience) (models.Audience, error)
}

type audienceService struct {
	client *Client
}

// NewAudienceService returns the hearing endpoints backed by the given client
func NewAudienceService(c *Client) AudienceService {
	return &audienceService{client: c}
}

func (s *audienceService) GetAll(ctx context.Context) ([]models.Audience, error) {
	return s.fetch(ctx, "/audiences/")
}

func (s *audienceService) GetDaily(ctx context.Context, date string) ([]models.Audience, error) {
	return s.fetch(ctx, "/audiences/daily/?date="+date)
}

func (s *audienceService) fetch(ctx context.Context, path string) ([]models.Audience, error) {
	var body json.RawMessage
	if err := s.client.do(ctx, "GET", path, nil, &body); err != nil {
		return nil, err
	}
	raws := decodeListEnvelope(body)
	out := make([]models.Audience, 0, len(raws))
	for _, raw := range raws {
		b, err := json.Marshal(raw)
		if err != nil {
			continue
		}
		var a models.Audience
		if err := json.Unmarshal(b, &a); err == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *audienceService) Create(ctx context.Context, audience models.Audience) (models.Audience, error) {
	var created models.Audience
	if err := s.client.do(ctx, "POST", "/audiences/", requestBody{Request: audience}, &created); err != nil {
		return models.Audience{}, err
	}
	return created, nil
}
