package room

import "github.com/KirkDiggler/quickmadu/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type SubscribeRoomInput struct {
	RoomID string
}

type DeleteRoomInput struct {
	RoomID string
}

// Subscription is a live stream of room snapshots. The channel is closed
// when the subscription is closed or the underlying connection drops.
type Subscription struct {
	rooms  chan *models.Room
	closer func() error
}

// Rooms returns the snapshot channel
func (s *Subscription) Rooms() <-chan *models.Room {
	return s.rooms
}

// Close tears down the subscription and closes the snapshot channel
func (s *Subscription) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
