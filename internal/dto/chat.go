package dto

import "github.com/nadeen-odeh/dept-assistant-api/internal/models"

// AskRequest is the free-text question payload.
type AskRequest struct {
	YearbookID string `json:"yearbookId"`
	Question   string `json:"question"`
}

// AskResponse carries the rendered HTML answer fragment.
type AskResponse struct {
	HTML string `json:"html"`
}

// SuggestResponse lists scored autocomplete candidates.
type SuggestResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
}
