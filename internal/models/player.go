package models

import (
	"time"
)

// PlayerStatus represents a player's state within the current round
type PlayerStatus string

const (
	// PlayerStatusActive indicates a player is still filling answers
	PlayerStatusActive PlayerStatus = "active"

	// PlayerStatusReady indicates a player has marked themselves done
	PlayerStatusReady PlayerStatus = "ready"

	// PlayerStatusStopped indicates the player who ended the round
	PlayerStatusStopped PlayerStatus = "stopped"
)

// Player represents a participant in a room
type Player struct {
	// ID is the opaque token assigned at creation, stable for the session
	ID string `json:"id"`

	// Name is the display name; not guaranteed unique
	Name string `json:"name"`

	// Score is the cumulative score across rounds
	Score int `json:"score"`

	// IsHost is set on exactly one player per room, the creator
	IsHost bool `json:"isHost"`

	// Status is the player's state within the current round
	Status PlayerStatus `json:"status"`

	// LastResponses maps category to the submitted word for the current
	// round, overwritten each round
	LastResponses map[string]string `json:"lastResponses,omitempty"`

	// LastRoundResults holds per-category validation detail from the most
	// recent judging pass
	LastRoundResults []*ValidationResult `json:"lastRoundResults,omitempty"`

	// JoinedAt is when the player joined the room
	JoinedAt time.Time `json:"joinedAt"`
}
