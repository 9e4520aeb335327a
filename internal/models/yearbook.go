package models

// Yearbook is a versioned curriculum document scoping required courses.
type Yearbook struct {
	ID          string `db:"id" json:"id"`
	DisplayName string `db:"display_name" json:"label"`
}
