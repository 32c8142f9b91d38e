// Package store keeps the gateway's in-memory view of the registry: cases,
// hearings and plumitif entries pulled from the backend, plus the
// authenticated session. Mutations write to the backend first, then merge
// into the local collections; the local merge is authoritative until the
// next full refresh.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/greffe"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/registry"
)

// Store is the application state shared by all handlers. It is an explicit
// dependency, never a package-level singleton.
type Store struct {
	mu        sync.RWMutex
	affaires  []models.Affaire
	audiences []models.Audience
	plumitifs []models.PlumitifEntry

	Affaires  registry.AffaireService
	Audiences registry.AudienceService
	Plumitifs registry.PlumitifService
	Session   *Session
}

// New creates an empty store over the given registry services.
func New(affaires registry.AffaireService, audiences registry.AudienceService, plumitifs registry.PlumitifService, session *Session) *Store {
	return &Store{
		Affaires:  affaires,
		Audiences: audiences,
		Plumitifs: plumitifs,
		Session:   session,
	}
}

// RefreshAffaires pulls all raw case records from the backend, normalizes
// them and replaces the in-memory collection.
func (s *Store) RefreshAffaires(ctx context.Context) error {
	raws, err := s.Affaires.GetAll(ctx, nil)
	if err != nil {
		return err
	}
	affaires := make([]models.Affaire, 0, len(raws))
	for _, raw := range raws {
		affaires = append(affaires, greffe.Normalize(raw))
	}

	s.mu.Lock()
	s.affaires = affaires
	s.mu.Unlock()

	zap.S().Infow("case collection refreshed", "count", len(affaires))
	return nil
}

// RefreshAudiences pulls all hearings and replaces the local collection.
func (s *Store) RefreshAudiences(ctx context.Context) error {
	audiences, err := s.Audiences.GetAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.audiences = audiences
	s.mu.Unlock()
	return nil
}

// AllAffaires returns a copy of the case collection.
func (s *Store) AllAffaires() []models.Affaire {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Affaire, len(s.affaires))
	copy(out, s.affaires)
	return out
}

// ActiveAffaires returns the cases still on an active docket, with an
// optional case-insensitive search over the role number and party names.
func (s *Store) ActiveAffaires(search string) []models.Affaire {
	search = strings.ToLower(search)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Affaire
	for _, a := range s.affaires {
		if a.Etat.Archived() {
			continue
		}
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(a models.Affaire, search string) bool {
	if strings.Contains(strings.ToLower(a.NumRoleGeneral), search) {
		return true
	}
	for _, p := range a.Parties {
		if strings.Contains(strings.ToLower(p.Nom), search) {
			return true
		}
	}
	return false
}

// AffaireByID looks a case up in the local collection.
func (s *Store) AffaireByID(id string) (models.Affaire, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.affaires {
		if a.ID == id {
			return a, true
		}
	}
	return models.Affaire{}, false
}

// EnrolerAffaire sends a case-intake request to the backend and, when the
// backend echoes the created record, appends its normalized form locally.
func (s *Store) EnrolerAffaire(ctx context.Context, req models.EnrolementRequest) (models.Affaire, error) {
	raw, err := s.Affaires.Enroler(ctx, req)
	if err != nil {
		return models.Affaire{}, err
	}
	created := greffe.Normalize(raw)

	s.mu.Lock()
	s.affaires = append(s.affaires, created)
	s.mu.Unlock()
	return created, nil
}

// UpdateAffaire sends a partial update to the backend, then merges the
// same fields into the local record. There is no re-fetch.
func (s *Store) UpdateAffaire(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.Affaires.Update(ctx, id, fields); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.affaires {
		if s.affaires[i].ID != id {
			continue
		}
		mergeAffaire(&s.affaires[i], fields)
		return nil
	}
	zap.S().Warnw("updated case not present locally, skipping merge", "affaireId", id)
	return nil
}

// mergeAffaire applies the updatable fields of a PATCH payload onto the
// local record.
func mergeAffaire(a *models.Affaire, fields map[string]interface{}) {
	for key, v := range fields {
		value, _ := v.(string)
		switch key {
		case "etat":
			a.Etat = models.EtatAffaire(value)
		case "dateAudienceConciliation":
			a.DateAudienceConciliation = value
		case "dateAudienceJugement":
			a.DateAudienceJugement = value
		case "dateCloture":
			a.DateCloture = value
		case "magistratAssigne":
			a.MagistratAssigne = value
		case "resume":
			a.Resume = value
		}
	}
}

// AppendPlumitifEntry sends the entry to the backend, then appends it to
// the local log. Entries are immutable once written.
func (s *Store) AppendPlumitifEntry(ctx context.Context, entry models.PlumitifEntry) error {
	if err := s.Plumitifs.Create(ctx, entry); err != nil {
		return err
	}
	s.mu.Lock()
	s.plumitifs = append(s.plumitifs, entry)
	s.mu.Unlock()
	return nil
}

// PlumitifsByAffaire returns the local log lines for a case in descending
// session-date order, the order history views read them in.
func (s *Store) PlumitifsByAffaire(affaireID string) []models.PlumitifEntry {
	s.mu.RLock()
	var out []models.PlumitifEntry
	for _, e := range s.plumitifs {
		if e.AffaireID == affaireID {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateSeance > out[j].DateSeance
	})
	return out
}

// SubmitRenvoi records a referral with the backend. The caller has already
// verified the hearing-association precondition.
func (s *Store) SubmitRenvoi(ctx context.Context, affaireID string, req models.RenvoyerRequest) error {
	return s.Affaires.Renvoyer(ctx, affaireID, req)
}

// DailyDocket is the registry's docket for one day: conciliations called
// by their case-level hearing date, plus the scheduled public sessions.
type DailyDocket struct {
	Date          string            `json:"date"`
	Conciliations []models.Affaire  `json:"conciliations"`
	Audiences     []models.Audience `json:"audiences"`
}

// DocketForDate derives which cases sit on which docket on a given day.
func (s *Store) DocketForDate(date string) DailyDocket {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	docket := DailyDocket{Date: date, Conciliations: []models.Affaire{}, Audiences: []models.Audience{}}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.affaires {
		if a.DateAudienceConciliation == date {
			docket.Conciliations = append(docket.Conciliations, a)
		}
	}
	for _, aud := range s.audiences {
		if aud.Date == date {
			docket.Audiences = append(docket.Audiences, aud)
		}
	}
	return docket
}
