package handlers

import (
	"fmt"

	"github.com/siga-greffe/greffe-api/models"
)

// enrolementForm is the intake form posted by the registry desk. It speaks
// the canonical vocabulary; translation into the backend's enrolment codes
// happens in toRequest.
type enrolementForm struct {
	Nature                   models.NatureAffaire            `json:"nature"`
	TypeDossier              string                          `json:"typeDossier"`
	TypeAudience             models.TypeAudienceConciliation `json:"typeAudience"`
	DateRequete              string                          `json:"dateRequete"`
	DateArrivee              string                          `json:"dateArrivee"`
	DateAudienceConciliation string                          `json:"dateAudienceConciliation"`
	Observations             string                          `json:"observations"`
	Parties                  []models.PartieEnrolement       `json:"parties"`
	Documents                []models.DocDocument            `json:"documents"`
}

func (f enrolementForm) validate() error {
	var demandeur, defendeur bool
	for _, p := range f.Parties {
		switch p.TypePartie {
		case "DEMANDEUR":
			demandeur = true
		case "DEFENDEUR":
			defendeur = true
		}
	}
	if !demandeur || !defendeur {
		return fmt.Errorf("l'enrôlement exige au moins un demandeur et un défendeur")
	}
	if f.DateAudienceConciliation == "" {
		return fmt.Errorf("la date d'audience de conciliation est obligatoire")
	}
	return nil
}

func (f enrolementForm) toRequest() models.EnrolementRequest {
	typeDossier := f.TypeDossier
	if typeDossier == "" {
		typeDossier = "INDIVIDUEL"
	}
	return models.EnrolementRequest{
		NatureLitige:             models.NatureEnrolementCode(f.Nature),
		TypeDossier:              typeDossier,
		Observations:             f.Observations,
		DateRequete:              f.DateRequete,
		DateArrivee:              f.DateArrivee,
		DateAudienceConciliation: f.DateAudienceConciliation,
		TypeAudience:             models.TypeAudienceEnrolementCode(f.TypeAudience),
		Parties:                  f.Parties,
		Documents:                f.Documents,
	}
}
