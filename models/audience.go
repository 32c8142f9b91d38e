package models

// Audience holds the structure for a scheduled hearing session
type Audience struct {
	ID         string       `json:"id"`
	Date       string       `json:"date"`
	HeureDebut string       `json:"heureDebut"`
	Type       TypeAudience `json:"type"`
	Salle      string       `json:"salle"`
	Magistrats []string     `json:"magistrats"`
	Greffier   string       `json:"greffier"`
	Affaires   []string     `json:"affaires"` // case ids called at this session
}
