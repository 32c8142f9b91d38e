// Package greffe implements the case-lifecycle logic of the registry:
// normalization of raw backend case records, decision resolution for the
// conciliation and judgment dockets, and plumitif entry construction.
package greffe

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/models"
)

// Known backend synonyms for case states. Values observed in the wild vary
// between producers; anything not listed here and not already canonical
// falls back to ENR, with the raw code preserved on the Affaire.
var etatSynonymes = map[string]models.EtatAffaire{
	"ENROLEE":              models.EtatEnrolee,
	"EN_CONCILIATION":      models.EtatEnConciliation,
	"CONCILIATION":         models.EtatEnConciliation,
	"CONCILIATION_REUSSIE": models.EtatConcReussie,
	"CONCILIATION_ECHOUEE": models.EtatConcEchouee,
	"EN_JUGEMENT":          models.EtatEnJugement,
	"JUGEMENT":             models.EtatEnJugement,
	"RENVOYEE":             models.EtatRenvoyee,
	"EN_DELIBERE":          models.EtatEnDelibere,
	"JUGEE":                models.EtatJugeePremier,
	"JUGEE_DEFINITIVEMENT": models.EtatJugeeDefinitive,
	"RADIATION":            models.EtatRadiee,
	"AFFAIRE_CLOTUREE":     models.EtatCloturee,
	"DESISTEMENT_INSTANCE": models.EtatDesistement,
}

// Known backend synonyms for dispute natures, including the PascalCase
// enrolment vocabulary echoed back by some endpoints.
var natureSynonymes = map[string]models.NatureAffaire{
	"LICENCIEMENT":    models.NatureLicenciement,
	"SALAIRE":         models.NatureSalaires,
	"SALAIRES":        models.NatureSalaires,
	"HARCELEMENT":     models.NatureHarcelement,
	"ACCIDENTTRAVAIL": models.NatureAccident,
	"ACCIDENT":        models.NatureAccident,
	"AUTRE":           models.NatureAutre,
}

var espaces = regexp.MustCompile(`\s+`)
var sepVS = regexp.MustCompile(`(?i) vs `)

// Normalize converts one raw backend case record into the canonical Affaire
// shape. It is pure and total: malformed input yields a best-effort value,
// never an error, and canonical input passes through unchanged.
func Normalize(raw map[string]interface{}) models.Affaire {
	a := models.Affaire{
		ID:               asString(raw["id"]),
		NumOrdre:         asString(raw["numOrdre"]),
		DateRequete:      asString(raw["dateRequete"]),
		DateArrivee:      asString(raw["dateArrivee"]),
		TypeDossier:      asString(raw["typeDossier"]),
		Resume:           asString(raw["resume"]),
		DateCloture:      asString(raw["dateCloture"]),
		MagistratAssigne: asString(raw["magistratAssigne"]),

		DateAudienceConciliation: asString(raw["dateAudienceConciliation"]),
		DateAudienceJugement:     asString(raw["dateAudienceJugement"]),

		IsADD:        asBool(raw["isADD"]),
		IsAppealed:   asBool(raw["isAppealed"]),
		IsPourvoi:    asBool(raw["isPourvoi"]),
		IsOpposition: asBool(raw["isOpposition"]),
		TypeOrd:      models.TypeOrdonnance(asString(raw["typeOrdonnance"])),
	}

	a.Etat, a.EtatBrut = resolveEtat(raw)
	a.Nature, a.NatureBrut = resolveNature(raw)
	a.Parties = resolveParties(raw["parties"], a.ID)

	// General-role number fallback chain.
	a.NumRoleGeneral = firstNonEmpty(asString(raw["numeroRole"]), asString(raw["numRoleGeneral"]), "N/A")
	a.DateCreation = firstNonEmpty(asString(raw["dateEnrolement"]), asString(raw["dateCreation"]))
	a.NatureAudienceConciliation = models.TypeAudienceConciliation(
		firstNonEmpty(asString(raw["typeAudience"]), asString(raw["natureAudienceConciliation"]), string(models.ConciliationNormale)))

	a.Audiences = resolveAudiences(raw["audiences"])
	if h, ok := raw["historiqueRenvois"].([]interface{}); ok {
		a.HistoriqueRenvois = h
	} else {
		a.HistoriqueRenvois = []interface{}{}
	}
	return a
}

// resolveEtat maps the raw state field to the canonical vocabulary. The
// second return value carries the raw code when it could not be mapped.
func resolveEtat(raw map[string]interface{}) (models.EtatAffaire, string) {
	code := strings.ToUpper(strings.TrimSpace(firstNonEmpty(asString(raw["etatAffaire"]), asString(raw["etat"]))))
	if code == "" {
		return models.EtatEnrolee, ""
	}
	if e := models.EtatAffaire(code); e.Valid() {
		return e, ""
	}
	if e, ok := etatSynonymes[code]; ok {
		return e, ""
	}
	zap.S().Warnw("unmapped case state, defaulting to ENR", "etat", code)
	return models.EtatEnrolee, code
}

// resolveNature maps the raw nature field to the canonical vocabulary.
func resolveNature(raw map[string]interface{}) (models.NatureAffaire, string) {
	code := strings.ToUpper(strings.TrimSpace(firstNonEmpty(asString(raw["natureLitige"]), asString(raw["nature"]))))
	if code == "" {
		return models.NatureAutre, ""
	}
	if n := models.NatureAffaire(code); n.Valid() {
		return n, ""
	}
	if n, ok := natureSynonymes[code]; ok {
		return n, ""
	}
	zap.S().Warnw("unmapped case nature, defaulting to AUT", "nature", code)
	return models.NatureAutre, code
}

// resolveParties accepts either a structured array of party records or the
// legacy "<demandeur> vs <defendeur>" combined string, where `^` is a
// whitespace artifact of the upstream export.
func resolveParties(v interface{}, affaireID string) []models.Partie {
	switch parties := v.(type) {
	case string:
		clean := espaces.ReplaceAllString(strings.ReplaceAll(parties, "^", " "), " ")
		parts := sepVS.Split(clean, 2)
		var out []models.Partie
		if len(parts) > 1 {
			if nom := strings.TrimSpace(parts[0]); nom != "" {
				out = append(out, models.Partie{ID: "dem_" + affaireID, Nom: nom, Type: "demandeur", Qualite: "Demandeur"})
			}
			if nom := strings.TrimSpace(parts[1]); nom != "" {
				out = append(out, models.Partie{ID: "def_" + affaireID, Nom: nom, Type: "defendeur", Qualite: "Défendeur"})
			}
		}
		if len(out) == 0 {
			if nom := strings.TrimSpace(clean); nom != "" {
				out = append(out, models.Partie{ID: "dem_" + affaireID, Nom: nom, Type: "demandeur", Qualite: "Partie"})
			}
		}
		if out == nil {
			out = []models.Partie{}
		}
		return out
	case []interface{}:
		out := make([]models.Partie, 0, len(parties))
		for _, e := range parties {
			p, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			role := "defendeur"
			rawType := firstNonEmpty(asString(p["type"]), asString(p["typePartie"]))
			if strings.Contains(strings.ToLower(rawType), "demandeur") {
				role = "demandeur"
			}
			out = append(out, models.Partie{
				ID:           asString(p["id"]),
				Type:         role,
				Qualite:      asString(p["qualite"]),
				Nom:          firstNonEmpty(asString(p["nom"]), asString(p["nomComplet"]), "Inconnu"),
				Prenom:       asString(p["prenom"]),
				Adresse:      asString(p["adresse"]),
				Telephone:    asString(p["telephone"]),
				Email:        asString(p["email"]),
				Representant: asString(p["representant"]),
			})
		}
		return out
	default:
		return []models.Partie{}
	}
}

func resolveAudiences(v interface{}) []models.AffaireAudience {
	arr, ok := v.([]interface{})
	if !ok {
		return []models.AffaireAudience{}
	}
	out := make([]models.AffaireAudience, 0, len(arr))
	for _, e := range arr {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		aa := models.AffaireAudience{
			AudienceID:   asString(m["audienceId"]),
			DateAudience: asString(m["dateAudience"]),
			TypeAudience: asString(m["typeAudience"]),
			Salle:        asString(m["salle"]),
		}
		if f, ok := m["ordreAppel"].(float64); ok {
			n := int(f)
			aa.OrdreAppel = &n
		}
		out = append(out, aa)
	}
	return out
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
