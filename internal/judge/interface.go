package judge

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/quickmadu/internal/judge Client

import "context"

// Client defines the interface to the external word judge
type Client interface {
	// ValidateWords submits a finished round and returns the judge's
	// per-player verdicts
	ValidateWords(ctx context.Context, input *ValidateWordsInput) (*ValidateWordsOutput, error)
}
