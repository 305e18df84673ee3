package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/quickmadu/internal/services/game Service

import (
	"context"

	roomRepo "github.com/KirkDiggler/quickmadu/internal/repositories/room"
)

// Service defines the interface for room and round operations
type Service interface {
	// CreateRoom creates a new room with the caller as host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to an existing room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartRound begins a new round; host only
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// SubmitDraft records a player's in-progress answers
	SubmitDraft(ctx context.Context, input *SubmitDraftInput) (*SubmitDraftOutput, error)

	// StopRound ends the round for everyone; first valid stop wins
	StopRound(ctx context.Context, input *StopRoundInput) (*StopRoundOutput, error)

	// TriggerJudging scores the stopped round; host only
	TriggerJudging(ctx context.Context, input *TriggerJudgingInput) (*TriggerJudgingOutput, error)

	// NextRound returns the room to the lobby; host only
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)

	// GetRoom reads the current room snapshot
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// WatchRoom streams room snapshots, current one first
	WatchRoom(ctx context.Context, input *WatchRoomInput) (*roomRepo.Subscription, error)
}
