package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/config"
	"github.com/siga-greffe/greffe-api/store"
)

// Affaire exported for testing purposes
type Affaire struct {
	Store *store.Store
	Hub   *Hub
}

// AffaireHandler returns the active case list, optionally filtered by a
// search term over role numbers and party names. includeArchived=true
// returns the whole collection.
func (a Affaire) AffaireHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	if r.URL.Query().Get("includeArchived") == "true" {
		writeJSON(w, a.Store.AllAffaires())
		return
	}
	writeJSON(w, a.Store.ActiveAffaires(search))
}

// AffaireByIDHandler returns one case from the local collection
func (a Affaire) AffaireByIDHandler(w http.ResponseWriter, r *http.Request) {
	affaireID := mux.Vars(r)["affaire_id"]

	zap.S().Debugf("affaire_id: %v", affaireID)

	affaire, ok := a.Store.AffaireByID(affaireID)
	if !ok {
		config.ErrorStatus("failed to get affaire by ID", http.StatusNotFound, w, fmt.Errorf("affaire %s introuvable", affaireID))
		return
	}
	writeJSON(w, affaire)
}

// EnrolerAffaireHandler files a new case with the registry backend
func (a Affaire) EnrolerAffaireHandler(w http.ResponseWriter, r *http.Request) {
	var req enrolementForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.validate(); err != nil {
		config.ErrorStatus("invalid enrolement request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := a.Store.EnrolerAffaire(ctx, req.toRequest())
	if err != nil {
		config.ErrorStatus("failed to enroler affaire", http.StatusBadGateway, w, err)
		return
	}

	a.Hub.Broadcast(Event{Type: "affaire.enrolee", Payload: created})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// UpdateAffaireHandler forwards a partial case update to the backend and
// merges it locally
func (a Affaire) UpdateAffaireHandler(w http.ResponseWriter, r *http.Request) {
	affaireID := mux.Vars(r)["affaire_id"]

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(fields) == 0 {
		config.ErrorStatus("empty update", http.StatusBadRequest, w, fmt.Errorf("aucun champ à mettre à jour"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.Store.UpdateAffaire(ctx, affaireID, fields); err != nil {
		config.ErrorStatus("failed to update affaire", http.StatusBadGateway, w, err)
		return
	}

	affaire, _ := a.Store.AffaireByID(affaireID)
	a.Hub.Broadcast(Event{Type: "affaire.modifiee", Payload: affaire})

	writeJSON(w, affaire)
}

// RefreshAffairesHandler forces a full pull from the registry backend
func (a Affaire) RefreshAffairesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.Store.RefreshAffaires(ctx); err != nil {
		config.ErrorStatus("failed to refresh affaires", http.StatusBadGateway, w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"count": len(a.Store.AllAffaires()),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
