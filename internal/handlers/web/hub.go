package web

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	roomRepo "github.com/KirkDiggler/quickmadu/internal/repositories/room"
	"github.com/KirkDiggler/quickmadu/internal/services/game"
)

// hubManager holds a set of hubs keyed by room code, so each room is its
// own isolated session backed by one snapshot subscription.
type hubManager struct {
	gameService game.Service

	mu   sync.Mutex
	hubs map[string]*hub
}

func newHubManager(gameService game.Service) *hubManager {
	return &hubManager{
		gameService: gameService,
		hubs:        make(map[string]*hub),
	}
}

// getHub returns the running hub for a room, starting one (and its
// snapshot subscription) if this is the first client.
func (m *hubManager) getHub(ctx context.Context, roomID string) (*hub, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.hubs[roomID]; ok {
		return h, nil
	}

	sub, err := m.gameService.WatchRoom(ctx, &game.WatchRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		return nil, err
	}

	h := &hub{
		roomID:     roomID,
		manager:    m,
		sub:        sub,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
	m.hubs[roomID] = h
	go h.run()

	return h, nil
}

func (m *hubManager) remove(roomID string) {
	m.mu.Lock()
	delete(m.hubs, roomID)
	m.mu.Unlock()
}

// closeAll tears down every hub; used on server shutdown.
func (m *hubManager) closeAll() {
	m.mu.Lock()
	hubs := make([]*hub, 0, len(m.hubs))
	for _, h := range m.hubs {
		hubs = append(hubs, h)
	}
	m.mu.Unlock()

	for _, h := range hubs {
		_ = h.sub.Close()
	}
}

type hub struct {
	roomID  string
	manager *hubManager
	sub     *roomRepo.Subscription

	clients    map[*client]bool
	register   chan *client
	unregister chan *client

	// Closed when run exits; register/unregister senders select on it
	// so a client never blocks against a dead hub
	done chan struct{}
}

func (h *hub) run() {
	defer func() {
		close(h.done)
		_ = h.sub.Close()
		h.manager.remove(h.roomID)
		for c := range h.clients {
			close(c.send)
		}
	}()

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			// The hub outlives an empty client set; it only winds down
			// when the snapshot stream itself closes. That keeps a hub
			// fetched concurrently from getHub always safe to register
			// against.
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case room, ok := <-h.sub.Rooms():
			if !ok {
				log.Warn().Str("room", h.roomID).Msg("snapshot stream closed")
				return
			}

			msg := newRoomState(room)
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}
