package models

// ValidationResult is the judge's verdict for a single submitted word
type ValidationResult struct {
	// Category is the category label the word was submitted under
	Category string `json:"category"`

	// Word is the submitted word as received
	Word string `json:"word"`

	// IsValid indicates whether the word was accepted for the category
	IsValid bool `json:"isValid"`

	// Points awarded for this word
	Points int `json:"points"`

	// Reason is an optional judge-provided explanation
	Reason string `json:"reason,omitempty"`
}

// PlayerRoundResult is a player's full scoring breakdown for one round
type PlayerRoundResult struct {
	// PlayerID identifies the player the results belong to
	PlayerID string `json:"playerId"`

	// Results holds one entry per submitted category
	Results []*ValidationResult `json:"results"`

	// TotalRoundPoints is the sum of points across Results
	TotalRoundPoints int `json:"totalRoundPoints"`
}
