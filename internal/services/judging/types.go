package judging

import (
	"time"

	"github.com/KirkDiggler/quickmadu/internal/judge"
	"github.com/KirkDiggler/quickmadu/internal/models"
)

// Default judge call budget before the round falls back to flat scoring
const DefaultTimeout = 25 * time.Second

// Points awarded under the scoring contract
const (
	// PointsUnique is awarded for a valid word no other player submitted
	PointsUnique = 10

	// PointsShared is awarded when multiple players submitted the same
	// valid word for a category
	PointsShared = 5

	// PointsFallback is awarded per non-empty answer in degraded mode
	PointsFallback = 10
)

// Config holds configuration for the judging service
type Config struct {
	// Client is the external judge; may be nil, in which case every
	// round is scored by the fallback path
	Client judge.Client

	// Timeout bounds a single judge call
	Timeout time.Duration
}

// ScoreRoundInput contains a finished round for scoring
type ScoreRoundInput struct {
	// Letter is the required starting letter for the round
	Letter string

	// Categories is the round's category list
	Categories []string

	// Submissions holds every player's answers
	Submissions []*judge.Submission
}

// ScoreRoundOutput contains the scored round
type ScoreRoundOutput struct {
	// Results holds one breakdown per submitted player, in submission order
	Results []*models.PlayerRoundResult

	// Fallback indicates the degraded flat-scoring path was used
	Fallback bool
}
