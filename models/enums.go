package models

// EtatAffaire is the canonical lifecycle state of a case
type EtatAffaire string

// Canonical case states, in procedural order
const (
	EtatEnrolee         EtatAffaire = "ENR"
	EtatEnConciliation  EtatAffaire = "EN_CONCIL"
	EtatConcReussie     EtatAffaire = "CONC_REUSSIE"
	EtatConcEchouee     EtatAffaire = "CONC_ECHOUEE"
	EtatEnJugement      EtatAffaire = "EN_JUG"
	EtatRenvoyee        EtatAffaire = "RENVOYEE"
	EtatEnDelibere      EtatAffaire = "EN_DELIBERE"
	EtatJugeePremier    EtatAffaire = "JUGEE_1R"
	EtatJugeeDefinitive EtatAffaire = "JUGEE_DEF"
	EtatRadiee          EtatAffaire = "RADIEE"
	EtatExecutee        EtatAffaire = "EXECUTEE"
	EtatCloturee        EtatAffaire = "CLOTUREE"
	EtatDesistement     EtatAffaire = "DESISTEMENT"
)

// EtatLabels maps each canonical state to its display label
var EtatLabels = map[EtatAffaire]string{
	EtatEnrolee:         "Enrôlée",
	EtatEnConciliation:  "En conciliation",
	EtatConcReussie:     "Conciliation réussie",
	EtatConcEchouee:     "Conciliation échouée",
	EtatEnJugement:      "En jugement",
	EtatRenvoyee:        "Renvoyée",
	EtatEnDelibere:      "En délibéré",
	EtatJugeePremier:    "Jugée (1er ressort)",
	EtatJugeeDefinitive: "Jugée définitivement",
	EtatRadiee:          "Radiée",
	EtatExecutee:        "Exécutée",
	EtatCloturee:        "Clôturée",
	EtatDesistement:     "Désistement",
}

// Valid reports whether e is one of the canonical state codes
func (e EtatAffaire) Valid() bool {
	_, ok := EtatLabels[e]
	return ok
}

// Label returns the display label for the state
func (e EtatAffaire) Label() string {
	return EtatLabels[e]
}

// Archived reports whether the case has left the active docket
func (e EtatAffaire) Archived() bool {
	switch e {
	case EtatCloturee, EtatJugeeDefinitive, EtatExecutee, EtatRadiee:
		return true
	}
	return false
}

// NatureAffaire is the classification of the dispute
type NatureAffaire string

// Dispute natures
const (
	NatureLicenciement NatureAffaire = "LIC"
	NatureSalaires     NatureAffaire = "SAL"
	NatureHarcelement  NatureAffaire = "HAR"
	NatureAccident     NatureAffaire = "ACC"
	NatureConges       NatureAffaire = "CONG"
	NatureDommages     NatureAffaire = "DOM"
	NatureDiscipline   NatureAffaire = "DISC"
	NatureCollectif    NatureAffaire = "COL"
	NatureTravaux      NatureAffaire = "TRAVAUX"
	NatureAutre        NatureAffaire = "AUT"
)

// NatureLabels maps each dispute nature to its display label
var NatureLabels = map[NatureAffaire]string{
	NatureLicenciement: "Licenciement",
	NatureSalaires:     "Salaires impayés",
	NatureHarcelement:  "Harcèlement",
	NatureAccident:     "Accident du travail",
	NatureConges:       "Congés/RTT",
	NatureDommages:     "Dommages-intérêts",
	NatureDiscipline:   "Discipline",
	NatureCollectif:    "Conflit collectif",
	NatureTravaux:      "Conditions de travail",
	NatureAutre:        "Autre",
}

// Valid reports whether n is one of the canonical nature codes
func (n NatureAffaire) Valid() bool {
	_, ok := NatureLabels[n]
	return ok
}

// Label returns the display label for the nature
func (n NatureAffaire) Label() string {
	return NatureLabels[n]
}

// TypeOrdonnance classifies ordinances for the statistical returns
type TypeOrdonnance string

// Ordinance types
const (
	OrdonnanceRefere  TypeOrdonnance = "REFERE"
	OrdonnanceRequete TypeOrdonnance = "REQUETE"
	OrdonnanceCNSS    TypeOrdonnance = "CNSS"
	OrdonnanceAutre   TypeOrdonnance = "AUTRE"
)

// TypeAudienceConciliation is the conciliation-hearing regime of a case
type TypeAudienceConciliation string

// Conciliation hearing regimes
const (
	ConciliationNormale   TypeAudienceConciliation = "NORMAL"
	ConciliationRefere    TypeAudienceConciliation = "REFERE"
	ConciliationUrgence   TypeAudienceConciliation = "URGENCE"
	ConciliationAcceleree TypeAudienceConciliation = "CONCILIATION_ACCELEREE"
)

// TypeAudience is the kind of a scheduled hearing session
type TypeAudience string

// Hearing session types
const (
	AudienceConciliationNormale TypeAudience = "CONC_N"
	AudienceConciliationRefere  TypeAudience = "CONC_R"
	AudienceConciliationUrgence TypeAudience = "CONC_U"
	AudienceJugement            TypeAudience = "JUG"
)

// TypeAudienceLabels maps hearing session types to display labels
var TypeAudienceLabels = map[TypeAudience]string{
	AudienceConciliationNormale: "Conciliation normale",
	AudienceConciliationRefere:  "Conciliation référé",
	AudienceConciliationUrgence: "Conciliation urgence",
	AudienceJugement:            "Audience de Jugement",
}

// UserRole is the registry role attached to a session
type UserRole string

// Registry roles
const (
	RoleGreffierAccueil  UserRole = "GREFFIER_ACCUEIL"
	RoleGreffierAudience UserRole = "GREFFIER_AUDIENCE"
	RoleMagistrat        UserRole = "MAGISTRAT"
	RoleChefGreffe       UserRole = "CHEF_GREFFE"
	RoleInspecteur       UserRole = "INSPECTEUR"
	RoleDGT              UserRole = "DGT"
)
