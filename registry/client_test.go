package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siga-greffe/greffe-api/models"
)

func jsonDecode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, func() string { return "jeton-123" }), srv
}

func TestGetAll_EnvelopeShapes(t *testing.T) {
	bodies := []string{
		`{"data":{"items":[{"id":"1"},{"id":"2"}]}}`,
		`[{"id":"1"},{"id":"2"}]`,
		`{"data":[{"id":"1"},{"id":"2"}]}`,
		`{"isSuccess":true,"value":[{"id":"1"},{"id":"2"}]}`,
	}
	for _, body := range bodies {
		body := body
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		})
		raws, err := NewAffaireService(client).GetAll(context.Background(), nil)
		srv.Close()
		require.NoError(t, err, body)
		require.Len(t, raws, 2, body)
		assert.Equal(t, "1", raws[0]["id"], body)
	}
}

func TestDo_BearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	_, err := NewAffaireService(client).GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer jeton-123", gotAuth)
}

func TestDo_EmptyBodyAndNoContentAreSuccess(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	err := NewAffaireService(client).Update(context.Background(), "1", map[string]interface{}{"etat": "RENVOYEE"})
	assert.NoError(t, err)
}

func TestDo_ErrorsArrayJoined(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":["nom requis","date invalide"]}`))
	})
	defer srv.Close()

	err := NewAffaireService(client).Update(context.Background(), "1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erreur de validation")
	assert.Contains(t, err.Error(), "nom requis")
	assert.Contains(t, err.Error(), "date invalide")
}

func TestDo_ErrorsFieldMapJoined(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"dateRenvoi":["doit être future"],"motif":"inconnu"}}`))
	})
	defer srv.Close()

	err := NewAffaireService(client).Update(context.Background(), "1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dateRenvoi: doit être future")
	assert.Contains(t, err.Error(), "motif: inconnu")
}

func TestDo_MessageAndTitleFallbacks(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"title":"Affaire déjà enrôlée"}`))
	})
	defer srv.Close()

	err := NewAffaireService(client).Update(context.Background(), "1", nil)
	require.Error(t, err)
	assert.Equal(t, "Affaire déjà enrôlée", err.Error())
}

func TestDo_GenericHTTPError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>gateway</html>`))
	})
	defer srv.Close()

	err := NewAffaireService(client).Update(context.Background(), "1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erreur 502")
}

func TestRenvoyer_WrapsRequestBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = jsonDecode(r, &gotBody)
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	err := NewAffaireService(client).Renvoyer(context.Background(), "42", models.RenvoyerRequest{
		AudienceActuelleID: "aud-1",
		Decision:           "RENVOI",
		Motif:              models.MotifNonComparution,
	})
	require.NoError(t, err)
	assert.Equal(t, "/affaires/42/renvoyer/", gotPath)
	request, ok := gotBody["request"].(map[string]interface{})
	require.True(t, ok, "payload must be wrapped in {request: …}")
	assert.Equal(t, "RENVOI", request["decision"])
	assert.Equal(t, "aud-1", request["audienceActuelleId"])
}

func TestLogin_ParsesEnvelope(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"isSuccess":true,"data":{"accessToken":"tok","nomComplet":"ADOM Jean-Paul","email":"adom@greffe.tg","roles":["MAGISTRAT"]}}`))
	})
	defer srv.Close()

	data, err := NewAuthService(client).Login(context.Background(), "adom@greffe.tg", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", data.AccessToken)
	assert.Equal(t, "ADOM Jean-Paul", data.NomComplet)
	assert.Equal(t, []string{"MAGISTRAT"}, data.Roles)
}

func TestLogin_MissingTokenFails(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"email":"x@y.tg"}}`))
	})
	defer srv.Close()

	_, err := NewAuthService(client).Login(context.Background(), "x@y.tg", "secret")
	assert.Error(t, err)
}
