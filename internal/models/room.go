package models

import (
	"time"
)

// RoomStatus represents the current phase of a room's round lifecycle
type RoomStatus string

const (
	// RoomStatusLobby indicates a room is waiting for players between rounds
	RoomStatusLobby RoomStatus = "LOBBY"

	// RoomStatusPlaying indicates a round is in progress
	RoomStatusPlaying RoomStatus = "PLAYING"

	// RoomStatusJudging indicates a round has been stopped and awaits scoring
	RoomStatusJudging RoomStatus = "JUDGING"

	// RoomStatusResults indicates scores for the last round are published
	RoomStatusResults RoomStatus = "RESULTS"
)

// Room represents one game session and the whole of its shared state.
// Every write replaces the full snapshot; Version is the optimistic
// concurrency counter enforced by the room repository.
type Room struct {
	// ID is the shareable room code, uppercase alphanumeric
	ID string `json:"id"`

	// Status is the current phase of the round lifecycle
	Status RoomStatus `json:"status"`

	// Letter is the required starting letter for the active round,
	// empty while in the lobby
	Letter string `json:"letter"`

	// Categories is the ordered list of category labels for the active round
	Categories []string `json:"categories"`

	// Players is the ordered player list; insertion order is join order
	Players []*Player `json:"players"`

	// Round counts started rounds, incrementing on each LOBBY -> PLAYING
	Round int `json:"round"`

	// StoppedBy is the ID of the player who ended the current round,
	// empty otherwise
	StoppedBy string `json:"stoppedBy,omitempty"`

	// Version increments on every successful snapshot write
	Version int64 `json:"version"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the room was last written
	UpdatedAt time.Time `json:"updatedAt"`
}

// Player returns the player with the given ID, or nil if absent
func (r *Room) Player(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// Host returns the room's host player, or nil if the room is empty
func (r *Room) Host() *Player {
	for _, p := range r.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}
