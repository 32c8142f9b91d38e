package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/siga-greffe/greffe-api/models"
)

// AuthService exposes the authentication endpoint of the registry backend
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.AuthData, error)
}

type authService struct {
	client *Client
}

// NewAuthService returns the auth endpoints backed by the given client
func NewAuthService(c *Client) AuthService {
	return &authService{client: c}
}

func (s *authService) Login(ctx context.Context, email, password string) (models.AuthData, error) {
	payload := map[string]string{"email": email, "password": password}

	var body json.RawMessage
	if err := s.client.do(ctx, "POST", "/auth/login", payload, &body); err != nil {
		return models.AuthData{}, err
	}

	obj := decodeObjectEnvelope(body)
	if obj == nil {
		return models.AuthData{}, fmt.Errorf("réponse de connexion illisible")
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return models.AuthData{}, err
	}
	var data models.AuthData
	if err := json.Unmarshal(b, &data); err != nil {
		return models.AuthData{}, err
	}
	if data.AccessToken == "" {
		return models.AuthData{}, fmt.Errorf("la réponse de connexion ne contient pas de jeton d'accès")
	}
	return data, nil
}
