package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/api"
	"github.com/siga-greffe/greffe-api/config"
	"github.com/siga-greffe/greffe-api/greffe"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/store"
)

// Decision exported for testing purposes
type Decision struct {
	Store *store.Store
	Hub   *Hub
}

// decisionForm is one docket decision submitted from a hearing view
type decisionForm struct {
	Domaine      string   `json:"domaine"`
	Decision     string   `json:"decision"`
	Mesures      []string `json:"mesures"`
	Observations string   `json:"observations"`
	Magistrat    string   `json:"magistrat"`
	Greffier     string   `json:"greffier"`
	DateSuivante string   `json:"dateSuivante"` // yyyy-mm-dd
	MotifRenvoi  string   `json:"motifRenvoi"`
}

// decisionResponse reports what the submission produced. RenvoiError is
// set when the docket entry was recorded but the backend rejected the
// referral itself.
type decisionResponse struct {
	Entry       models.PlumitifEntry `json:"entry"`
	Etat        models.EtatAffaire   `json:"etat"`
	RenvoiError string               `json:"renvoiError,omitempty"`
}

// VocabularyHandler returns the fixed decision and measure vocabulary for
// a docket domain
func (d Decision) VocabularyHandler(w http.ResponseWriter, r *http.Request) {
	domaine := mux.Vars(r)["domaine"]
	if domaine != greffe.DomaineConciliation && domaine != greffe.DomaineJugement {
		config.ErrorStatus("unknown decision domain", http.StatusNotFound, w, fmt.Errorf("domaine inconnu: %s", domaine))
		return
	}

	decisions := greffe.Decisions(domaine)
	labels := make([]string, 0, len(decisions))
	for _, dec := range decisions {
		labels = append(labels, dec.Label)
	}
	mesures := greffe.MesuresConciliation
	if domaine == greffe.DomaineJugement {
		mesures = greffe.MesuresJugement
	}

	writeJSON(w, map[string]interface{}{
		"decisions": labels,
		"mesures":   mesures,
	})
}

// SubmitDecisionHandler records one docket decision: it resolves the
// outcome, verifies the referral precondition before any write, appends
// the plumitif entry, issues the referral when one is required, and
// finally patches the case state.
func (d Decision) SubmitDecisionHandler(w http.ResponseWriter, r *http.Request) {
	affaireID := mux.Vars(r)["affaire_id"]

	var form decisionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	out, err := greffe.ResolveDecision(greffe.DecisionContext{
		Domaine:  form.Domaine,
		Decision: form.Decision,
		Mesures:  form.Mesures,
	})
	if err != nil {
		config.ErrorStatus("unknown decision", http.StatusBadRequest, w, err)
		return
	}
	if out.RequiresDate && form.DateSuivante == "" {
		config.ErrorStatus("missing follow-up date", http.StatusBadRequest, w,
			fmt.Errorf("la décision %q exige une date suivante", form.Decision))
		return
	}

	if _, ok := d.Store.AffaireByID(affaireID); !ok {
		config.ErrorStatus("failed to get affaire by ID", http.StatusNotFound, w, fmt.Errorf("affaire %s introuvable", affaireID))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// A referral needs a usable hearing association. The check runs on a
	// fresh copy of the case and happens before any write, so a case whose
	// associations are all placeholders is rejected without leaving a
	// half-recorded decision behind.
	var audience models.AffaireAudience
	if out.IsRenvoi {
		raw, err := d.Store.Affaires.GetByID(ctx, affaireID)
		if err != nil {
			config.ErrorStatus("failed to get affaire from registry", http.StatusBadGateway, w, err)
			return
		}
		fresh := greffe.Normalize(raw)
		audience, err = greffe.ActiveAudience(fresh)
		if err != nil {
			config.ErrorStatus("referral precondition failed", http.StatusConflict, w, err)
			return
		}
	}

	entry := greffe.BuildEntry(greffe.EntryParams{
		Domaine:      form.Domaine,
		AffaireID:    affaireID,
		Decision:     form.Decision,
		Mesures:      form.Mesures,
		Observations: form.Observations,
		Magistrat:    form.Magistrat,
		Greffier:     form.Greffier,
		DateSuivante: form.DateSuivante,
	})
	if err := d.Store.AppendPlumitifEntry(ctx, entry); err != nil {
		config.ErrorStatus("failed to record plumitif entry", http.StatusBadGateway, w, err)
		return
	}

	resp := decisionResponse{Entry: entry, Etat: out.NextEtat}

	// The referral is sent after the entry: a rejected referral leaves the
	// decision on the record and is surfaced to the clerk instead of being
	// rolled back.
	if out.IsRenvoi {
		renvoi := models.RenvoyerRequest{
			AudienceActuelleID: audience.AudienceID,
			DateRenvoi:         isoDate(form.DateSuivante),
			Decision:           "RENVOI",
			MesureInstruction:  strings.Join(form.Mesures, ", "),
			Motif:              motifOrDefault(form.MotifRenvoi),
			Observations:       observationsOrDefault(form.Observations),
		}
		if err := d.Store.SubmitRenvoi(ctx, affaireID, renvoi); err != nil {
			zap.S().Errorw("renvoi rejected by registry backend",
				"affaireId", affaireID,
				"audienceId", audience.AudienceID,
				"error", err)
			resp.RenvoiError = err.Error()
		}
	}

	patch := greffe.FollowUpPatch(greffe.DecisionContext{
		Domaine:  form.Domaine,
		Decision: form.Decision,
		Mesures:  form.Mesures,
	}, out, form.DateSuivante)
	if err := d.Store.UpdateAffaire(ctx, affaireID, patch); err != nil {
		config.ErrorStatus("failed to update affaire state", http.StatusBadGateway, w, err)
		return
	}

	affaire, _ := d.Store.AffaireByID(affaireID)
	d.Hub.Broadcast(Event{Type: "decision.enregistree", Payload: affaire})

	writeJSON(w, resp)
}

func motifOrDefault(motif string) string {
	switch motif {
	case models.MotifNonComparution, models.MotifDefautConseil, models.MotifNonPret, models.MotifDemandeParties:
		return motif
	}
	return models.MotifAutre
}

func observationsOrDefault(obs string) string {
	if strings.TrimSpace(obs) == "" {
		return "R.A.S"
	}
	return obs
}

// isoDate widens a yyyy-mm-dd form date into the ISO datetime the referral
// endpoint expects
func isoDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.UTC().Format(time.RFC3339)
}
