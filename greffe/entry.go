package greffe

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/siga-greffe/greffe-api/models"
)

// EntryParams carries one decision form submission into BuildEntry
type EntryParams struct {
	Domaine      string
	AffaireID    string
	Decision     string
	Mesures      []string
	Observations string
	Magistrat    string
	Greffier     string
	DateSuivante string // yyyy-mm-dd, empty when the decision needs none
}

// BuildEntry assembles the immutable plumitif record for a decision. The
// event text is the decision label, suffixed with the selected instruction
// measures; a supplied follow-up date is appended to the observations as a
// bracketed dd/mm/yyyy annotation with a domain-appropriate prefix.
func BuildEntry(p EntryParams) models.PlumitifEntry {
	today := time.Now().Format("2006-01-02")

	entry := models.PlumitifEntry{
		ID:           uuid.New().String(),
		AffaireID:    p.AffaireID,
		DateSeance:   today,
		DateActe:     today,
		Type:         models.PlumitifConciliation,
		Magistrat:    p.Magistrat,
		Greffier:     p.Greffier,
		Evenement:    p.Decision,
		Observations: p.Observations,
	}

	if p.Domaine == DomaineJugement {
		entry.Type = models.PlumitifAudiencePublique
		if len(p.Mesures) > 0 {
			entry.Evenement = fmt.Sprintf("%s [%s]", p.Decision, strings.Join(p.Mesures, ", "))
		}
	} else if len(p.Mesures) > 0 {
		entry.Evenement = fmt.Sprintf("%s (%s)", p.Decision, strings.Join(p.Mesures, ", "))
	}

	if p.DateSuivante != "" {
		entry.Observations += fmt.Sprintf(" [%s %s]", dateLabel(p), formatDateFR(p.DateSuivante))
	}
	return entry
}

// dateLabel picks the annotation prefix for the follow-up date.
func dateLabel(p EntryParams) string {
	if p.Domaine != DomaineJugement {
		return "Date suivante:"
	}
	switch {
	case strings.Contains(p.Decision, "Vider"):
		return "Jugement rendu le"
	case p.Decision == "Mise en Délibéré":
		return "Rendu prévu le"
	default:
		return "Prochaine audience le"
	}
}

// formatDateFR renders a yyyy-mm-dd date as dd/mm/yyyy; anything else is
// passed through untouched.
func formatDateFR(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
