package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/siga-greffe/greffe-api/api/handlers"
	"github.com/siga-greffe/greffe-api/models"
)

func TestPlumitif_PlumitifsByAffaireHandlerBackend(t *testing.T) {
	s, _, _, plumitifs := newHandlerStore(t)
	plumitifs.On("GetByAffaire", mock.Anything, "aff-1").Return([]models.PlumitifEntry{
		{ID: "e1", AffaireID: "aff-1", Evenement: "PV de Conciliation Totale"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/affaire/aff-1/plumitifs", nil)
	req = mux.SetURLVars(req, map[string]string{"affaire_id": "aff-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	u := handlers.Plumitif{Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.PlumitifsByAffaireHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var out []models.PlumitifEntry
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0].ID)
}

func TestPlumitif_PlumitifsByAffaireHandlerFallsBackToLocal(t *testing.T) {
	s, _, _, plumitifs := newHandlerStore(t)
	plumitifs.On("Create", mock.Anything, mock.Anything).Return(nil)
	require.NoError(t, s.AppendPlumitifEntry(context.Background(), models.PlumitifEntry{
		ID: "local-1", AffaireID: "aff-1", DateSeance: "2026-02-01",
	}))
	plumitifs.On("GetByAffaire", mock.Anything, "aff-1").Return(nil, errors.New("backend down"))

	req, _ := http.NewRequest("GET", "/api/v1/affaire/aff-1/plumitifs", nil)
	req = mux.SetURLVars(req, map[string]string{"affaire_id": "aff-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	u := handlers.Plumitif{Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.PlumitifsByAffaireHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var out []models.PlumitifEntry
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	require.Len(t, out, 1)
	assert.Equal(t, "local-1", out[0].ID)
}

func TestPlumitif_PlumitifsByAffaireHandlerEmptyResponse(t *testing.T) {
	s, _, _, plumitifs := newHandlerStore(t)
	plumitifs.On("GetByAffaire", mock.Anything, "aff-2").Return(nil, nil)

	req, _ := http.NewRequest("GET", "/api/v1/affaire/aff-2/plumitifs", nil)
	req = mux.SetURLVars(req, map[string]string{"affaire_id": "aff-2"})
	req.Header.Set("Authorization", "Bearer abc123")

	u := handlers.Plumitif{Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.PlumitifsByAffaireHandler).ServeHTTP(rr, req)

	expected := "[]"
	if rr.Body.String() != expected {
		t.Errorf("handler returned unexpected body: \ngot: %v \nwant: %v", rr.Body.String(), expected)
	}
}
