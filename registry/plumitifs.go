package registry

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/siga-greffe/greffe-api/models"
)

// PlumitifService exposes the docket-log endpoints of the registry backend
type PlumitifService interface {
	GetByAffaire(ctx context.Context, affaireID string) ([]models.PlumitifEntry, error)
	Create(ctx context.Context, entry models.PlumitifEntry) error
}

type plumitifService struct {
	client *Client
}

// NewPlumitifService returns the docket-log endpoints backed by the given client
func NewPlumitifService(c *Client) PlumitifService {
	return &plumitifService{client: c}
}

func (s *plumitifService) GetByAffaire(ctx context.Context, affaireID string) ([]models.PlumitifEntry, error) {
	var body json.RawMessage
	if err := s.client.do(ctx, "GET", "/plumitifs/?affaireId="+url.QueryEscape(affaireID), nil, &body); err != nil {
		return nil, err
	}
	raws := decodeListEnvelope(body)
	out := make([]models.PlumitifEntry, 0, len(raws))
	for _, raw := range raws {
		b, err := json.Marshal(raw)
		if err != nil {
			continue
		}
		var e models.PlumitifEntry
		if err := json.Unmarshal(b, &e); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *plumitifService) Create(ctx context.Context, entry models.PlumitifEntry) error {
	return s.client.do(ctx, "POST", "/plumitifs/", requestBody{Request: entry}, nil)
}
