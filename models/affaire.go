package models

// Affaire holds the normalized structure for a case record ("dossier")
// as served by the registry backend. Dates are ISO strings as received.
type Affaire struct {
	ID             string        `json:"id"`
	NumOrdre       string        `json:"numOrdre"`
	NumRoleGeneral string        `json:"numRoleGeneral"`
	DateRequete    string        `json:"dateRequete"`
	DateArrivee    string        `json:"dateArrivee"`
	Nature         NatureAffaire `json:"nature"`
	TypeDossier    string        `json:"typeDossier"` // "individuel" | "collectif"
	Resume         string        `json:"resume"`
	Etat           EtatAffaire   `json:"etat"`
	Parties        []Partie      `json:"parties"`
	DateCreation   string        `json:"dateCreation"`

	NatureAudienceConciliation TypeAudienceConciliation `json:"natureAudienceConciliation"`
	DateAudienceConciliation   string                   `json:"dateAudienceConciliation"`
	DateAudienceJugement       string                   `json:"dateAudienceJugement,omitempty"`
	MagistratAssigne           string                   `json:"magistratAssigne,omitempty"`
	DateCloture                string                   `json:"dateCloture,omitempty"`

	IsADD        bool           `json:"isADD,omitempty"`
	IsAppealed   bool           `json:"isAppealed,omitempty"`
	IsPourvoi    bool           `json:"isPourvoi,omitempty"`
	IsOpposition bool           `json:"isOpposition,omitempty"`
	TypeOrd      TypeOrdonnance `json:"typeOrdonnance,omitempty"`

	Audiences         []AffaireAudience `json:"audiences"`
	HistoriqueRenvois []interface{}     `json:"historiqueRenvois"`

	// Raw backend codes kept when normalization could not map them to a
	// canonical value. Empty when the backend value was recognized.
	EtatBrut   string `json:"etatBrut,omitempty"`
	NatureBrut string `json:"natureBrut,omitempty"`
}

// Partie holds one litigant of a case
type Partie struct {
	ID           string `json:"id"`
	Type         string `json:"type"` // "demandeur" | "defendeur"
	Qualite      string `json:"qualite"`
	Nom          string `json:"nom"`
	Prenom       string `json:"prenom,omitempty"`
	Adresse      string `json:"adresse"`
	Telephone    string `json:"telephone,omitempty"`
	Email        string `json:"email,omitempty"`
	Representant string `json:"representant,omitempty"`
}

// AffaireAudience is a hearing association embedded in a case record
type AffaireAudience struct {
	AudienceID   string `json:"audienceId"`
	DateAudience string `json:"dateAudience"`
	TypeAudience string `json:"typeAudience"`
	Salle        string `json:"salle"`
	OrdreAppel   *int   `json:"ordreAppel"`
}
