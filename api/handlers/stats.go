package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/config"
	"github.com/siga-greffe/greffe-api/registry"
)

// Stats exported for testing purposes
type Stats struct {
	Stats registry.StatsService
}

// DashboardHandler proxies the backend's dashboard aggregates untouched
func (s Stats) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	body, err := s.Stats.Dashboard(ctx)
	if err != nil {
		config.ErrorStatus("failed to get dashboard stats", http.StatusBadGateway, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// ReportsHandler proxies the statistical returns for a period
func (s Stats) ReportsHandler(w http.ResponseWriter, r *http.Request) {
	debut := r.URL.Query().Get("debut")
	fin := r.URL.Query().Get("fin")
	if debut == "" || fin == "" {
		config.ErrorStatus("missing report period", http.StatusBadRequest, w,
			fmt.Errorf("les paramètres debut et fin sont obligatoires"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	body, err := s.Stats.Reports(ctx, debut, fin)
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusBadGateway, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// SyncHandler forwards a database synchronization payload to the backend
func (s Stats) SyncHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		config.ErrorStatus("failed to read request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := s.Stats.SyncDB(ctx, json.RawMessage(payload)); err != nil {
		config.ErrorStatus("failed to sync database", http.StatusBadGateway, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"synced": true}`))
}
