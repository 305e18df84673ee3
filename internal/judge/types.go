package judge

import "github.com/KirkDiggler/quickmadu/internal/models"

// Submission is one player's answers for the round
type Submission struct {
	// PlayerID identifies the player
	PlayerID string `json:"playerId"`

	// Words maps category label to the submitted word
	Words map[string]string `json:"words"`
}

// ValidateWordsInput contains a finished round for judging
type ValidateWordsInput struct {
	// Letter is the required starting letter for the round
	Letter string

	// Categories is the round's category list
	Categories []string

	// Submissions holds every player's answers
	Submissions []*Submission
}

// ValidateWordsOutput contains the judge's verdicts
type ValidateWordsOutput struct {
	// PlayerResults holds one scoring breakdown per player
	PlayerResults []*models.PlayerRoundResult
}
