package models

type SuggestionType string

const (
	SuggestionTypeMotorcycle SuggestionType = "motorcycle"
	SuggestionTypeBrand      SuggestionType = "brand"
	SuggestionTypeCritic     SuggestionType = "critic"
)

// Suggestion is one ranked autocomplete entry.
type Suggestion struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle,omitempty"`
	Image    string         `json:"image,omitempty"`
	Href     string         `json:"href"`
	Type     SuggestionType `json:"type"`
	Score    int            `json:"score"`
}
