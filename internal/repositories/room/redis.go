package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/quickmadu/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix     = "room:"
	roomChannelPrefix = "room_events:"

	// Buffered snapshots per subscription before a slow consumer blocks
	subscriptionBuffer = 8
)

// Define errors
var (
	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomAlreadyExists is returned when creating a room over a live code
	ErrRoomAlreadyExists = errors.New("room already exists")

	// ErrVersionConflict is returned when a snapshot write lost a race
	ErrVersionConflict = errors.New("room version conflict")
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func roomKey(roomID string) string {
	return fmt.Sprintf("%s%s", roomKeyPrefix, strings.ToUpper(roomID))
}

func roomChannel(roomID string) string {
	return fmt.Sprintf("%s%s", roomChannelPrefix, strings.ToUpper(roomID))
}

// SaveRoom persists a full room snapshot with a compare-and-swap on the
// snapshot version, then publishes the new snapshot to all subscribers.
// A room with Version 0 is a creation; everything else must match the
// stored version exactly or the write is rejected.
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) (*models.Room, error) {
	if input == nil || input.Room == nil {
		return nil, errors.New("input and room cannot be nil")
	}

	if input.Room.ID == "" {
		return nil, errors.New("room ID cannot be empty")
	}

	// Work on a copy so the caller's snapshot is untouched on failure
	next := *input.Room
	next.ID = strings.ToUpper(next.ID)

	key := roomKey(next.ID)

	txf := func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Result()
		switch {
		case err == redis.Nil:
			if next.Version != 0 {
				// The room vanished underneath an update
				return ErrRoomNotFound
			}
		case err != nil:
			return fmt.Errorf("failed to read current room: %w", err)
		default:
			var current models.Room
			if jsonErr := json.Unmarshal([]byte(stored), &current); jsonErr == nil {
				if next.Version == 0 {
					return ErrRoomAlreadyExists
				}
				if current.Version != next.Version {
					return ErrVersionConflict
				}
			}
			// A stored snapshot that fails to deserialize counts as
			// absent and is overwritten
		}

		next.Version++

		roomJSON, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, roomJSON, 0) // No expiration for now
			pipe.Publish(ctx, roomChannel(next.ID), roomJSON)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			// Another writer touched the key between read and exec
			return nil, ErrVersionConflict
		}
		return nil, err
	}

	return &next, nil
}

// GetRoom retrieves a room snapshot by code. Codes are case-insensitive.
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKey(input.RoomID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		// A corrupt snapshot is treated as an absent room rather than
		// surfacing a deserialization error to every caller
		return nil, ErrRoomNotFound
	}

	return &room, nil
}

// SubscribeRoom subscribes to a room's snapshot stream. The current
// snapshot, if any, is delivered first so new subscribers render
// immediately.
func (r *redisRepository) SubscribeRoom(ctx context.Context, input *SubscribeRoomInput) (*Subscription, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, roomChannel(input.RoomID))

	// Confirm the subscription is live before reading the current
	// snapshot, so no write between the two is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to room: %w", err)
	}

	rooms := make(chan *models.Room, subscriptionBuffer)

	if current, err := r.GetRoom(ctx, &GetRoomInput{RoomID: input.RoomID}); err == nil {
		rooms <- current
	}

	go func() {
		defer close(rooms)

		for msg := range pubsub.Channel() {
			var room models.Room
			if err := json.Unmarshal([]byte(msg.Payload), &room); err != nil {
				// Skip malformed payloads
				continue
			}
			rooms <- &room
		}
	}()

	return &Subscription{
		rooms:  rooms,
		closer: pubsub.Close,
	}, nil
}

// DeleteRoom removes a room snapshot
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, roomKey(input.RoomID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	if deleted == 0 {
		return ErrRoomNotFound
	}

	return nil
}
