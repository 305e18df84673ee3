package room

import (
	"context"

	"github.com/KirkDiggler/quickmadu/internal/models"
)

// Repository defines the interface for room snapshot persistence.
// Writes are whole-snapshot with optimistic concurrency: a save succeeds
// only when the stored version matches the snapshot's version, and every
// successful save is published to the room's subscribers.
type Repository interface {
	// SaveRoom persists a full room snapshot and broadcasts it.
	// Returns the persisted snapshot with its version incremented.
	SaveRoom(ctx context.Context, input *SaveRoomInput) (*models.Room, error)

	// GetRoom retrieves a room by its code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// SubscribeRoom streams snapshots for a room, starting with the
	// current one if the room exists
	SubscribeRoom(ctx context.Context, input *SubscribeRoomInput) (*Subscription, error)

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
