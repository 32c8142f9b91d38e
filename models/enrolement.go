package models

// Backend vocabulary for the enrolment payload. The registry API speaks
// PascalCase nature codes that differ from the canonical NatureAffaire set.
var natureEnrolement = map[NatureAffaire]string{
	NatureLicenciement: "Licenciement",
	NatureSalaires:     "Salaire",
	NatureHarcelement:  "Harcelement",
	NatureAccident:     "AccidentTravail",
	NatureAutre:        "Autre",
}

// NatureEnrolementCode translates a canonical nature into the backend
// enrolment vocabulary. Natures without a backend equivalent fall back
// to "Autre".
func NatureEnrolementCode(n NatureAffaire) string {
	if code, ok := natureEnrolement[n]; ok {
		return code
	}
	return "Autre"
}

// TypeAudienceEnrolementCode translates a conciliation-hearing regime into
// the backend enrolment vocabulary.
func TypeAudienceEnrolementCode(t TypeAudienceConciliation) string {
	switch t {
	case ConciliationNormale:
		return "CONCILIATION_NORMALE"
	case ConciliationRefere:
		return "CONCILIATION_ACCELEREE"
	default:
		return "CONCILIATION_URGENCE"
	}
}

// PartieEnrolement is one party of an enrolment request, in the backend's
// physical/legal-person classification.
type PartieEnrolement struct {
	NomComplet   string `json:"nomComplet"`
	NomEntite    string `json:"nomEntite"`
	NumeroRccm   string `json:"numeroRccm"`
	Email        string `json:"email"`
	Telephone    string `json:"telephone"`
	Adresse      string `json:"adresse"`
	TypePersonne string `json:"typePersonne"` // "PHYSIQUE" | "MORALE"
	TypePartie   string `json:"typePartie"`   // "DEMANDEUR" | "DEFENDEUR"
	Qualite      string `json:"qualite"`
	Observations string `json:"observations"`
}

// DocDocument references a filed document in the GED
type DocDocument struct {
	Titre        string `json:"titre"`
	TypeDocument string `json:"typeDocument"`
	CheminGED    string `json:"cheminGED"`
}

// EnrolementRequest is the case-intake payload sent to POST /affaires/enroler/
type EnrolementRequest struct {
	NatureLitige             string             `json:"natureLitige"`
	TypeDossier              string             `json:"typeDossier"` // "INDIVIDUEL" | "COLLECTIF"
	Observations             string             `json:"observations"`
	DateRequete              string             `json:"dateRequete"` // ISO timestamps
	DateArrivee              string             `json:"dateArrivee"`
	DateAudienceConciliation string             `json:"dateAudienceConciliation"`
	TypeAudience             string             `json:"typeAudience"`
	Parties                  []PartieEnrolement `json:"parties"`
	Documents                []DocDocument      `json:"documents"`
}

// Renvoi motive codes accepted by the backend
const (
	MotifNonComparution = "NON_COMPARUTION"
	MotifDefautConseil  = "DEFAUT_CONSEIL"
	MotifNonPret        = "NON_PRET"
	MotifDemandeParties = "DEMANDE_PARTIES"
	MotifAutre          = "AUTRE"
)

// RenvoyerRequest is the referral payload sent to POST /affaires/{id}/renvoyer/
type RenvoyerRequest struct {
	AudienceActuelleID string `json:"audienceActuelleId"`
	DateRenvoi         string `json:"dateRenvoi"` // ISO datetime
	Decision           string `json:"decision"`   // always "RENVOI"
	MesureInstruction  string `json:"mesureInstruction"`
	Motif              string `json:"motif"`
	Observations       string `json:"observations"`
}
