package web

import (
	"context"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/quickmadu/internal/services/game"
)

type client struct {
	conn        *websocket.Conn
	send        chan interface{}
	roomID      string
	playerID    string
	gameService game.Service
}

func (c *client) readPump(h *hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		c.handleMessage(&msg)
	}
}

func (c *client) writePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// handleMessage dispatches one inbound action to the game service. State
// changes come back to every client through the hub's snapshot stream, so
// only failures produce a direct reply.
func (c *client) handleMessage(msg *ClientMessage) {
	ctx := context.Background()

	var err error

	switch msg.Type {
	case MessageTypeStartRound:
		_, err = c.gameService.StartRound(ctx, &game.StartRoundInput{
			RoomID:   c.roomID,
			PlayerID: c.playerID,
		})

	case MessageTypeSubmitDraft:
		_, err = c.gameService.SubmitDraft(ctx, &game.SubmitDraftInput{
			RoomID:    c.roomID,
			PlayerID:  c.playerID,
			Responses: msg.Responses,
		})

	case MessageTypeStopRound:
		_, err = c.gameService.StopRound(ctx, &game.StopRoundInput{
			RoomID:    c.roomID,
			PlayerID:  c.playerID,
			Responses: msg.Responses,
		})

	case MessageTypeTriggerJudging:
		_, err = c.gameService.TriggerJudging(ctx, &game.TriggerJudgingInput{
			RoomID:   c.roomID,
			PlayerID: c.playerID,
		})

	case MessageTypeNextRound:
		_, err = c.gameService.NextRound(ctx, &game.NextRoundInput{
			RoomID:   c.roomID,
			PlayerID: c.playerID,
		})

	default:
		err = errors.New("unknown message type: " + msg.Type)
	}

	if err != nil {
		log.Debug().
			Err(err).
			Str("room", c.roomID).
			Str("player", c.playerID).
			Str("action", msg.Type).
			Msg("action rejected")

		c.reply(newError(errorCode(err), err))
	}
}

// reply pushes a message to this client only, dropping it if the write
// buffer is full rather than blocking the read loop.
func (c *client) reply(msg interface{}) {
	select {
	case c.send <- msg:
	default:
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, game.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, game.ErrNotHost):
		return "not_host"
	case errors.Is(err, game.ErrInvalidRoomState):
		return "invalid_state"
	case errors.Is(err, game.ErrRoomFull):
		return "room_full"
	case errors.Is(err, game.ErrEmptyPlayerName):
		return "empty_name"
	case errors.Is(err, game.ErrIncompleteAnswers):
		return "incomplete_answers"
	case errors.Is(err, game.ErrJudgingInProgress):
		return "judging_in_progress"
	case errors.Is(err, game.ErrConcurrentUpdate):
		return "concurrent_update"
	default:
		return "internal_error"
	}
}
