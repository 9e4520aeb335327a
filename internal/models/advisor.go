package models

// Advisor is an academic advisor with assignment rules: which semesters
// they cover, which last-name ranges (e.g. "א-י"), and which tracks.
type Advisor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Semesters      []int    `json:"semesters"`
	LastNameRanges []string `json:"lastNameRanges"`
	Tracks         []string `json:"tracks"`
}
