package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/config"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/store"
)

// Audience exported for testing purposes
type Audience struct {
	Store *store.Store
}

// AudienceHandler returns all scheduled hearing sessions, refreshing the
// local collection from the backend first
func (a Audience) AudienceHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	audiences, err := a.Store.Audiences.GetAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to get audiences", http.StatusBadGateway, w, err)
		return
	}
	if len(audiences) == 0 {
		audiences = []models.Audience{}
	}
	writeJSON(w, audiences)
}

// DailyDocketHandler returns the conciliations and public sessions called
// on one day. An empty date means today.
func (a Audience) DailyDocketHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	writeJSON(w, a.Store.DocketForDate(date))
}

// CreateAudienceHandler schedules a new hearing session with the backend
func (a Audience) CreateAudienceHandler(w http.ResponseWriter, r *http.Request) {
	var audience models.Audience
	if err := json.NewDecoder(r.Body).Decode(&audience); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := a.Store.Audiences.Create(ctx, audience)
	if err != nil {
		config.ErrorStatus("failed to create audience", http.StatusBadGateway, w, err)
		return
	}

	// best effort, the next scheduled refresh picks it up anyway
	if err := a.Store.RefreshAudiences(ctx); err != nil {
		config.ErrorStatus("failed to refresh audiences", http.StatusBadGateway, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
