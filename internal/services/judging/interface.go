package judging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/quickmadu/internal/services/judging Service

import "context"

// Service defines the interface for round scoring
type Service interface {
	// ScoreRound scores a finished round, consulting the external judge
	// and falling back to degraded flat scoring when it is unavailable
	ScoreRound(ctx context.Context, input *ScoreRoundInput) (*ScoreRoundOutput, error)
}
