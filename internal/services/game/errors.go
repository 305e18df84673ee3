package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound      GameError = "room not found"
	ErrPlayerNotFound    GameError = "player not found in room"
	ErrNotHost           GameError = "only the host can do that"
	ErrInvalidRoomState  GameError = "invalid room state for this action"
	ErrRoomFull          GameError = "room is at maximum capacity"
	ErrEmptyPlayerName   GameError = "player name cannot be empty"
	ErrIncompleteAnswers GameError = "every category needs an answer before stopping"
	ErrJudgingInProgress GameError = "judging is already in progress for this room"
	ErrConcurrentUpdate  GameError = "room was updated concurrently, retry the action"
	ErrNilConfig         GameError = "config cannot be nil"
	ErrNilRoomRepo       GameError = "room repository cannot be nil"
	ErrNilJudgingService GameError = "judging service cannot be nil"
	ErrNilLetterPicker   GameError = "letter picker cannot be nil"
	ErrNilClock          GameError = "clock cannot be nil"
	ErrNilUUIDGenerator  GameError = "UUID generator cannot be nil"
	ErrNilCodeGenerator  GameError = "room code generator cannot be nil"
)
