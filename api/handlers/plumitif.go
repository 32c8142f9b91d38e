package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/store"
)

// Plumitif exported for testing purposes
type Plumitif struct {
	Store *store.Store
}

// PlumitifsByAffaireHandler returns the procedural log of a case. The
// backend is the source of truth; when it is unreachable the handler
// serves the entries recorded locally this session.
func (p Plumitif) PlumitifsByAffaireHandler(w http.ResponseWriter, r *http.Request) {
	affaireID := mux.Vars(r)["affaire_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	entries, err := p.Store.Plumitifs.GetByAffaire(ctx, affaireID)
	if err != nil {
		zap.S().Warnw("registry unreachable, serving local plumitif entries",
			"affaireId", affaireID,
			"error", err)
		entries = p.Store.PlumitifsByAffaire(affaireID)
	}

	if len(entries) == 0 {
		entries = []models.PlumitifEntry{}
	}
	writeJSON(w, entries)
}
