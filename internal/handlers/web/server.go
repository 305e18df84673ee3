package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"

	"github.com/KirkDiggler/quickmadu/internal/models"
	"github.com/KirkDiggler/quickmadu/internal/services/game"
)

const (
	httpTimeout      = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
	qrImageSize      = 320
	sendBufferSize   = 8
	socketBufferSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  socketBufferSize,
	WriteBufferSize: socketBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Config holds the configuration for the web server
type Config struct {
	// Listen address, host:port
	Addr string

	// Public base URL used when rendering share links and QR codes
	BaseURL string

	// Version string reported by /version
	Version string

	// Game service
	GameService game.Service
}

// Server exposes the game over REST and websockets
type Server struct {
	config      *Config
	gameService game.Service
	hubs        *hubManager
	httpServer  *http.Server
}

// New creates a new web server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("listen address cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	s := &Server{
		config:      cfg,
		gameService: cfg.GameService,
		hubs:        newHubManager(cfg.GameService),
	}

	router := httprouter.New()

	router.POST("/api/rooms", s.handleCreateRoom)
	router.POST("/api/rooms/:code/join", s.handleJoinRoom)
	router.GET("/api/rooms/:code", s.handleGetRoom)
	router.GET("/rooms/:code/qr", s.handleQR)
	router.GET("/rooms/:code/ws", s.handleWebsocket)
	router.GET("/healthz", s.handleHealthz)
	router.GET("/version", s.handleVersion)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		IdleTimeout:       10 * time.Minute,
		ReadTimeout:       httpTimeout,
		ReadHeaderTimeout: httpTimeout,
		// Write timeout is left unset so websocket connections
		// are not severed mid-session
	}

	return s, nil
}

// Start begins serving; it blocks until the listener fails or Stop is called
func (s *Server) Start() error {
	log.Info().Str("addr", s.config.Addr).Msg("web server listening")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop drains in-flight requests and tears down every room hub
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.hubs.closeAll()

	return s.httpServer.Shutdown(ctx)
}

type createRoomRequest struct {
	HostName string `json:"hostName"`
}

type joinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type roomResponse struct {
	Room     *models.Room `json:"room"`
	PlayerID string       `json:"playerId,omitempty"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid request body"))
		return
	}

	output, err := s.gameService.CreateRoom(r.Context(), &game.CreateRoomInput{
		HostName: req.HostName,
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	log.Info().
		Str("room", output.Room.ID).
		Str("host", output.PlayerID).
		Msg("room created")

	writeJSON(w, http.StatusCreated, roomResponse{
		Room:     output.Room,
		PlayerID: output.PlayerID,
	})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid request body"))
		return
	}

	output, err := s.gameService.JoinRoom(r.Context(), &game.JoinRoomInput{
		RoomID:     ps.ByName("code"),
		PlayerName: req.PlayerName,
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	log.Info().
		Str("room", output.Room.ID).
		Str("player", output.PlayerID).
		Msg("player joined")

	writeJSON(w, http.StatusOK, roomResponse{
		Room:     output.Room,
		PlayerID: output.PlayerID,
	})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	output, err := s.gameService.GetRoom(r.Context(), &game.GetRoomInput{
		RoomID: ps.ByName("code"),
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, roomResponse{
		Room: output.Room,
	})
}

// handleQR renders a PNG QR code pointing at the room's join URL
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")

	// Only hand out QR codes for rooms that exist
	output, err := s.gameService.GetRoom(r.Context(), &game.GetRoomInput{
		RoomID: code,
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	url := s.config.BaseURL + "/rooms/" + output.Room.ID

	png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		http.Error(w, "missing playerId", http.StatusBadRequest)
		return
	}

	// Reject unknown rooms and players before upgrading
	output, err := s.gameService.GetRoom(r.Context(), &game.GetRoomInput{
		RoomID: code,
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	if output.Room.Player(playerID) == nil {
		writeError(w, http.StatusForbidden, "player_not_found", game.ErrPlayerNotFound)
		return
	}

	h, err := s.hubs.getHub(r.Context(), output.Room.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{
		conn:        conn,
		send:        make(chan interface{}, sendBufferSize),
		roomID:      output.Room.ID,
		playerID:    playerID,
		gameService: s.gameService,
	}

	select {
	case h.register <- c:
	case <-h.done:
		// The hub wound down between lookup and registration
		_ = conn.Close()
		return
	}

	// The freshly joined client gets the current snapshot right away
	c.reply(newRoomState(output.Room))

	go c.writePump()
	c.readPump(h)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("quickmadu " + s.config.Version + "\n"))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, ErrorMessage{
		Type:    MessageTypeError,
		Code:    code,
		Message: err.Error(),
	})
}

// writeGameError maps service errors to HTTP status codes
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, game.ErrRoomNotFound), errors.Is(err, game.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrInvalidRoomState), errors.Is(err, game.ErrJudgingInProgress):
		status = http.StatusConflict
	case errors.Is(err, game.ErrRoomFull), errors.Is(err, game.ErrEmptyPlayerName), errors.Is(err, game.ErrIncompleteAnswers):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrConcurrentUpdate):
		status = http.StatusConflict
	}

	writeError(w, status, errorCode(err), err)
}
