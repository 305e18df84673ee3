package web

import "github.com/KirkDiggler/quickmadu/internal/models"

// Client -> server message types
const (
	MessageTypeStartRound     = "start_round"
	MessageTypeSubmitDraft    = "submit_draft"
	MessageTypeStopRound      = "stop_round"
	MessageTypeTriggerJudging = "trigger_judging"
	MessageTypeNextRound      = "next_round"
)

// Server -> client message types
const (
	MessageTypeRoomState = "room_state"
	MessageTypeError     = "error"
)

// ClientMessage is the envelope for every inbound websocket message
type ClientMessage struct {
	Type      string            `json:"type"`
	Responses map[string]string `json:"responses,omitempty"`
}

// RoomStateMessage carries a full room snapshot to every connected client
type RoomStateMessage struct {
	Type string       `json:"type"`
	Room *models.Room `json:"room"`
}

// ErrorMessage reports a rejected action back to the client that sent it
type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newRoomState(room *models.Room) RoomStateMessage {
	return RoomStateMessage{
		Type: MessageTypeRoomState,
		Room: room,
	}
}

func newError(code string, err error) ErrorMessage {
	return ErrorMessage{
		Type:    MessageTypeError,
		Code:    code,
		Message: err.Error(),
	}
}
