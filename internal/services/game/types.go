package game

import (
	"github.com/KirkDiggler/quickmadu/internal/common/clock"
	"github.com/KirkDiggler/quickmadu/internal/common/roomcode"
	"github.com/KirkDiggler/quickmadu/internal/common/uuid"
	"github.com/KirkDiggler/quickmadu/internal/letters"
	"github.com/KirkDiggler/quickmadu/internal/models"
	roomRepo "github.com/KirkDiggler/quickmadu/internal/repositories/room"
	"github.com/KirkDiggler/quickmadu/internal/services/judging"
)

// DefaultCategories is the category list installed at round start when no
// override is configured
var DefaultCategories = []string{"Nombre", "Animal", "Fruta", "País", "Color", "Cosa"}

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per room
	MaxPlayers int

	// Categories for each round; defaults to DefaultCategories
	Categories []string

	// Retries for optimistic-concurrency write loops
	MaxWriteRetries int

	// Repository dependencies
	RoomRepo roomRepo.Repository

	// Service dependencies
	JudgingService judging.Service
	LetterPicker   *letters.Picker
	Clock          clock.Clock
	UUIDGenerator  uuid.UUID
	CodeGenerator  roomcode.Generator
}

// CreateRoomInput contains parameters for creating a new room
type CreateRoomInput struct {
	// HostName is the display name of the player creating the room
	HostName string
}

// CreateRoomOutput contains the result of creating a new room
type CreateRoomOutput struct {
	// Room is the created room snapshot
	Room *models.Room

	// PlayerID is the host's player ID, to be retained by the client
	PlayerID string
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// RoomID is the shareable room code, case-insensitive
	RoomID string

	// PlayerName is the display name of the joining player
	PlayerName string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// Room is the updated room snapshot
	Room *models.Room

	// PlayerID is the new player's ID, to be retained by the client
	PlayerID string
}

// StartRoundInput contains parameters for starting a round
type StartRoundInput struct {
	// RoomID is the room code
	RoomID string

	// PlayerID must belong to the host
	PlayerID string
}

// StartRoundOutput contains the result of starting a round
type StartRoundOutput struct {
	// Room is the updated room snapshot
	Room *models.Room
}

// SubmitDraftInput contains a player's in-progress answers
type SubmitDraftInput struct {
	// RoomID is the room code
	RoomID string

	// PlayerID is the submitting player
	PlayerID string

	// Responses is the player's full current answer set; it replaces any
	// previous draft wholesale
	Responses map[string]string
}

// SubmitDraftOutput contains the result of submitting a draft
type SubmitDraftOutput struct {
	// Room is the updated room snapshot
	Room *models.Room
}

// StopRoundInput contains parameters for ending the round
type StopRoundInput struct {
	// RoomID is the room code
	RoomID string

	// PlayerID is the stopping player
	PlayerID string

	// Responses is the stopping player's final answer set
	Responses map[string]string
}

// StopRoundOutput contains the result of attempting to stop the round
type StopRoundOutput struct {
	// Room is the resulting room snapshot
	Room *models.Room

	// Stopped indicates whether this call won the stop; false means
	// another player stopped first and the call was a no-op
	Stopped bool
}

// TriggerJudgingInput contains parameters for scoring the stopped round
type TriggerJudgingInput struct {
	// RoomID is the room code
	RoomID string

	// PlayerID must belong to the host
	PlayerID string
}

// TriggerJudgingOutput contains the result of judging the round
type TriggerJudgingOutput struct {
	// Room is the updated room snapshot
	Room *models.Room

	// Fallback indicates the round was scored by the degraded path
	Fallback bool
}

// NextRoundInput contains parameters for returning the room to the lobby
type NextRoundInput struct {
	// RoomID is the room code
	RoomID string

	// PlayerID must belong to the host
	PlayerID string
}

// NextRoundOutput contains the result of returning to the lobby
type NextRoundOutput struct {
	// Room is the updated room snapshot
	Room *models.Room
}

// GetRoomInput contains parameters for reading a room snapshot
type GetRoomInput struct {
	// RoomID is the room code
	RoomID string
}

// GetRoomOutput contains the room snapshot
type GetRoomOutput struct {
	// Room is the current room snapshot
	Room *models.Room
}

// WatchRoomInput contains parameters for streaming room snapshots
type WatchRoomInput struct {
	// RoomID is the room code
	RoomID string
}
