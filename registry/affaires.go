package registry

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/siga-greffe/greffe-api/models"
)

// AffaireService exposes the case endpoints of the registry backend.
// Records come back raw; normalization is the caller's concern.
type AffaireService interface {
	GetAll(ctx context.Context, filters url.Values) ([]map[string]interface{}, error)
	GetByID(ctx context.Context, id string) (map[string]interface{}, error)
	Enroler(ctx context.Context, req models.EnrolementRequest) (map[string]interface{}, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Renvoyer(ctx context.Context, id string, req models.RenvoyerRequest) error
}

type affaireService struct {
	client *Client
}

// NewAffaireService returns the case endpoints backed by the given client
func NewAffaireService(c *Client) AffaireService {
	return &affaireService{client: c}
}

func (s *affaireService) GetAll(ctx context.Context, filters url.Values) ([]map[string]interface{}, error) {
	path := "/affaires/"
	if len(filters) > 0 {
		path += "?" + filters.Encode()
	}
	var body json.RawMessage
	if err := s.client.do(ctx, "GET", path, nil, &body); err != nil {
		return nil, err
	}
	return decodeListEnvelope(body), nil
}

func (s *affaireService) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	var body json.RawMessage
	if err := s.client.do(ctx, "GET", "/affaires/"+id+"/", nil, &body); err != nil {
		return nil, err
	}
	return decodeObjectEnvelope(body), nil
}

func (s *affaireService) Enroler(ctx context.Context, req models.EnrolementRequest) (map[string]interface{}, error) {
	var body json.RawMessage
	if err := s.client.do(ctx, "POST", "/affaires/enroler/", requestBody{Request: req}, &body); err != nil {
		return nil, err
	}
	return decodeObjectEnvelope(body), nil
}

func (s *affaireService) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.client.do(ctx, "PATCH", "/affaires/"+id+"/", requestBody{Request: fields}, nil)
}

func (s *affaireService) Renvoyer(ctx context.Context, id string, req models.RenvoyerRequest) error {
	return s.client.do(ctx, "POST", "/affaires/"+id+"/renvoyer/", requestBody{Request: req}, nil)
}
