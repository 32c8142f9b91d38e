package greffe

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/siga-greffe/greffe-api/models"
)

// Decision domains: a decision is taken either at the conciliation stage or
// at the public judgment hearing.
const (
	DomaineConciliation = "conciliation"
	DomaineJugement     = "jugement"
)

// ZeroGUID is the placeholder identifier the backend emits for hearing
// associations that were never materialized.
const ZeroGUID = "00000000-0000-0000-0000-000000000000"

// Conciliation-docket decisions and the state each one leads to.
var decisionsConciliation = []Decision{
	{Label: "PV de Conciliation Totale", NextEtat: models.EtatConcReussie},
	{Label: "PV de Non-Conciliation (Transfert)", NextEtat: models.EtatEnJugement},
	{Label: "PV de Conciliation Partielle (Transfert)", NextEtat: models.EtatEnJugement},
	{Label: "Renvoi (Procédure)", NextEtat: models.EtatRenvoyee},
	{Label: "Radiation", NextEtat: models.EtatRadiee},
}

// Judgment-docket decisions and the state each one leads to.
var decisionsJugement = []Decision{
	{Label: "Vider le délibéré (Jugement final)", NextEtat: models.EtatJugeePremier},
	{Label: "Mise en Délibéré", NextEtat: models.EtatEnDelibere},
	{Label: "Renvoi (Audience)", NextEtat: models.EtatRenvoyee},
	{Label: "Jugement Contradictoire (Sur le siège)", NextEtat: models.EtatJugeePremier},
	{Label: "Jugement par Défaut", NextEtat: models.EtatJugeePremier},
	{Label: "Radiation d'office", NextEtat: models.EtatRadiee},
	{Label: "Rabattre le délibéré (Réouverture)", NextEtat: models.EtatEnJugement},
}

// Instruction measures offered on the conciliation docket.
var MesuresConciliation = []string{
	"ADD : Enquête",
	"ADD : Expertise",
	"ADD : Production de pièces",
	"ADD : Transport sur les lieux",
}

// Instruction measures offered on the judgment docket.
var MesuresJugement = []string{
	"ADD : Expertise Médicale",
	"ADD : Enquête / Témoins",
	"ADD : Transport sur les lieux",
	"ADD : Communication de pièces",
	"Prorogation de délibéré",
}

// Decision is one entry of a docket decision vocabulary
type Decision struct {
	Label    string
	NextEtat models.EtatAffaire
}

// DecisionContext is the input of ResolveDecision
type DecisionContext struct {
	Domaine  string // DomaineConciliation | DomaineJugement
	Decision string // one of the fixed decision labels for the domain
	Mesures  []string
}

// Outcome is the resolved effect of a docket decision
type Outcome struct {
	NextEtat     models.EtatAffaire
	RequiresDate bool // a follow-up date must accompany the decision
	IsRenvoi     bool // a referral request must be sent to the backend
}

// Decisions returns the fixed decision vocabulary for a domain.
func Decisions(domaine string) []Decision {
	if domaine == DomaineJugement {
		return decisionsJugement
	}
	return decisionsConciliation
}

// ResolveDecision determines the resulting case state, whether a follow-up
// date is mandatory, and whether a referral request must be issued. It is a
// pure function; the caller performs all writes.
func ResolveDecision(ctx DecisionContext) (Outcome, error) {
	var next models.EtatAffaire
	found := false
	for _, d := range Decisions(ctx.Domaine) {
		if d.Label == ctx.Decision {
			next = d.NextEtat
			found = true
			break
		}
	}
	if !found {
		return Outcome{}, fmt.Errorf("décision inconnue pour le domaine %s: %q", ctx.Domaine, ctx.Decision)
	}

	out := Outcome{NextEtat: next}
	label := ctx.Decision
	hasMesures := len(ctx.Mesures) > 0
	out.IsRenvoi = strings.Contains(label, "Renvoi")

	switch ctx.Domaine {
	case DomaineJugement:
		out.RequiresDate = strings.Contains(label, "Vider") ||
			label == "Renvoi (Audience)" ||
			label == "Mise en Délibéré" ||
			strings.Contains(label, "Prorogation") ||
			hasMesures
		// A referral ordered together with an instruction measure keeps the
		// case on the judgment track rather than parking it as renvoyée.
		if out.IsRenvoi && anyContains(ctx.Mesures, "ADD") {
			out.NextEtat = models.EtatEnJugement
		}
	default:
		out.RequiresDate = strings.Contains(label, "Transfert") || out.IsRenvoi || hasMesures
	}
	return out, nil
}

// FollowUpPatch returns the case fields to merge after a decision: the new
// state plus, when a follow-up date was supplied, the hearing date it
// reschedules (judgment hearing for transfers and the whole judgment
// domain, conciliation hearing otherwise).
func FollowUpPatch(ctx DecisionContext, out Outcome, date string) map[string]interface{} {
	patch := map[string]interface{}{"etat": string(out.NextEtat)}
	if date == "" {
		return patch
	}
	if ctx.Domaine == DomaineJugement || strings.Contains(ctx.Decision, "Transfert") {
		patch["dateAudienceJugement"] = date
	} else {
		patch["dateAudienceConciliation"] = date
	}
	return patch
}

// ErrAudienceInvalide is returned when a referral is requested for a case
// that has no hearing association with a usable identifier.
var ErrAudienceInvalide = errors.New("l'affaire n'a pas d'audience avec un identifiant valide")

// ActiveAudience selects the currently-active hearing association of a
// case: among associations with a non-empty, non-placeholder identifier,
// the one with the most recent date. Referral submission is a hard
// precondition failure when none qualifies.
func ActiveAudience(a models.Affaire) (models.AffaireAudience, error) {
	valides := make([]models.AffaireAudience, 0, len(a.Audiences))
	for _, aud := range a.Audiences {
		if aud.AudienceID != "" && aud.AudienceID != ZeroGUID {
			valides = append(valides, aud)
		}
	}
	if len(valides) == 0 {
		return models.AffaireAudience{}, ErrAudienceInvalide
	}
	sort.SliceStable(valides, func(i, j int) bool {
		return parseDate(valides[i].DateAudience).After(parseDate(valides[j].DateAudience))
	})
	return valides[0], nil
}

// parseDate accepts the two date shapes the backend emits. Unparseable
// values sort last.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}
