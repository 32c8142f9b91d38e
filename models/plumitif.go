package models

// Plumitif entry types
const (
	PlumitifConciliation     = "CONCILIATION"
	PlumitifAudiencePublique = "AUDIENCE_PUBLIQUE"
)

// PlumitifEntry holds one line of a case's procedural log. Entries are
// written once at decision time and never mutated afterward.
type PlumitifEntry struct {
	ID           string `json:"id"`
	AffaireID    string `json:"affaireId"`
	DateSeance   string `json:"dateSeance"`
	DateActe     string `json:"dateActe,omitempty"`
	Type         string `json:"type"` // CONCILIATION | AUDIENCE_PUBLIQUE
	Magistrat    string `json:"magistrat"`
	Greffier     string `json:"greffier"`
	Evenement    string `json:"evenement"`
	Observations string `json:"observations"`
}
