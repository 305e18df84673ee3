package game

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/KirkDiggler/quickmadu/internal/judge"
	"github.com/KirkDiggler/quickmadu/internal/models"
	roomRepo "github.com/KirkDiggler/quickmadu/internal/repositories/room"
	"github.com/KirkDiggler/quickmadu/internal/services/judging"
)

const (
	defaultMaxPlayers      = 12
	defaultMaxWriteRetries = 3
)

// service implements the Service interface
type service struct {
	config *Config

	// Rooms with a judging call in flight; guards re-entrant triggers
	mu      sync.Mutex
	judging map[string]bool
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.JudgingService == nil {
		return nil, ErrNilJudgingService
	}

	if cfg.LetterPicker == nil {
		return nil, ErrNilLetterPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.MaxPlayers <= 0 {
		cfg.MaxPlayers = defaultMaxPlayers
	}

	if cfg.MaxWriteRetries <= 0 {
		cfg.MaxWriteRetries = defaultMaxWriteRetries
	}

	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories
	}

	return &service{
		config:  cfg,
		judging: make(map[string]bool),
	}, nil
}

// CreateRoom creates a new room in the lobby with the caller as its host
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	hostName := strings.TrimSpace(input.HostName)
	if hostName == "" {
		return nil, ErrEmptyPlayerName
	}

	hostID := s.config.UUIDGenerator.NewUUID()

	// Room codes are short, so retry on the off chance a fresh code
	// collides with a live room
	for attempt := 0; attempt <= s.config.MaxWriteRetries; attempt++ {
		now := s.config.Clock.Now()
		newRoom := &models.Room{
			ID:         s.config.CodeGenerator.NewCode(),
			Status:     models.RoomStatusLobby,
			Categories: []string{},
			Players: []*models.Player{
				{
					ID:       hostID,
					Name:     hostName,
					IsHost:   true,
					Status:   models.PlayerStatusActive,
					JoinedAt: now,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		saved, err := s.config.RoomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
			Room: newRoom,
		})
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomAlreadyExists) {
				continue
			}
			return nil, err
		}

		return &CreateRoomOutput{
			Room:     saved,
			PlayerID: hostID,
		}, nil
	}

	return nil, ErrConcurrentUpdate
}

// JoinRoom appends a new player to an existing room. Joins racing on the
// same room are serialized by the snapshot version check.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}

	playerID := s.config.UUIDGenerator.NewUUID()

	updated, err := s.updateRoom(ctx, input.RoomID, func(current *models.Room) (bool, error) {
		if len(current.Players) >= s.config.MaxPlayers {
			return false, ErrRoomFull
		}

		current.Players = append(current.Players, &models.Player{
			ID:       playerID,
			Name:     playerName,
			Status:   models.PlayerStatusActive,
			JoinedAt: s.config.Clock.Now(),
		})

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &JoinRoomOutput{
		Room:     updated,
		PlayerID: playerID,
	}, nil
}

// StartRound transitions LOBBY -> PLAYING: picks the round letter, installs
// the category list, bumps the round counter, and resets every player
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	updated, err := s.updateRoom(ctx, input.RoomID, func(current *models.Room) (bool, error) {
		if err := requireHost(current, input.PlayerID); err != nil {
			return false, err
		}

		if current.Status != models.RoomStatusLobby {
			return false, ErrInvalidRoomState
		}

		current.Status = models.RoomStatusPlaying
		current.Letter = s.config.LetterPicker.Pick()
		current.Categories = append([]string{}, s.config.Categories...)
		current.Round++
		current.StoppedBy = ""

		for _, p := range current.Players {
			p.Status = models.PlayerStatusActive
			p.LastResponses = map[string]string{}
		}

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &StartRoundOutput{Room: updated}, nil
}

// SubmitDraft overwrites the caller's answer set for the current round.
// Last write wins across the whole map; there is no per-field merge.
func (s *service) SubmitDraft(ctx context.Context, input *SubmitDraftInput) (*SubmitDraftOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	updated, err := s.updateRoom(ctx, input.RoomID, func(current *models.Room) (bool, error) {
		player := current.Player(input.PlayerID)
		if player == nil {
			return false, ErrPlayerNotFound
		}

		if current.Status != models.RoomStatusPlaying {
			return false, ErrInvalidRoomState
		}

		player.LastResponses = copyResponses(input.Responses)

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &SubmitDraftOutput{Room: updated}, nil
}

// StopRound ends the round for everyone once the caller has answered every
// category. The PLAYING -> JUDGING transition is a compare-and-swap on the
// snapshot, so the first stop to commit wins; a later stop is a no-op that
// returns the current snapshot.
func (s *service) StopRound(ctx context.Context, input *StopRoundInput) (*StopRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stopped := false

	updated, err := s.updateRoom(ctx, input.RoomID, func(current *models.Room) (bool, error) {
		player := current.Player(input.PlayerID)
		if player == nil {
			return false, ErrPlayerNotFound
		}

		switch current.Status {
		case models.RoomStatusPlaying:
			// Fall through to the stop itself
		case models.RoomStatusJudging, models.RoomStatusResults:
			// Someone else already stopped; defined no-op
			stopped = false
			return false, nil
		default:
			return false, ErrInvalidRoomState
		}

		for _, category := range current.Categories {
			if strings.TrimSpace(input.Responses[category]) == "" {
				return false, ErrIncompleteAnswers
			}
		}

		player.LastResponses = copyResponses(input.Responses)
		player.Status = models.PlayerStatusStopped
		current.StoppedBy = player.ID
		current.Status = models.RoomStatusJudging

		stopped = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &StopRoundOutput{
		Room:    updated,
		Stopped: stopped,
	}, nil
}

// TriggerJudging scores the stopped round and transitions JUDGING ->
// RESULTS. Guarded so a single judging call is in flight per room; a
// trigger after RESULTS is a no-op returning the snapshot.
func (s *service) TriggerJudging(ctx context.Context, input *TriggerJudgingInput) (*TriggerJudgingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roomID := normalizeRoomID(input.RoomID)

	current, err := s.getRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err := requireHost(current, input.PlayerID); err != nil {
		return nil, err
	}

	if current.Status == models.RoomStatusResults {
		return &TriggerJudgingOutput{Room: current}, nil
	}

	if current.Status != models.RoomStatusJudging {
		return nil, ErrInvalidRoomState
	}

	s.mu.Lock()
	if s.judging[roomID] {
		s.mu.Unlock()
		return nil, ErrJudgingInProgress
	}
	s.judging[roomID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.judging, roomID)
		s.mu.Unlock()
	}()

	submissions := make([]*judge.Submission, 0, len(current.Players))
	for _, p := range current.Players {
		words := p.LastResponses
		if words == nil {
			words = map[string]string{}
		}
		submissions = append(submissions, &judge.Submission{
			PlayerID: p.ID,
			Words:    words,
		})
	}

	scored, err := s.config.JudgingService.ScoreRound(ctx, &judging.ScoreRoundInput{
		Letter:      current.Letter,
		Categories:  current.Categories,
		Submissions: submissions,
	})
	if err != nil {
		return nil, err
	}

	resultsByPlayer := make(map[string]*models.PlayerRoundResult, len(scored.Results))
	for _, res := range scored.Results {
		resultsByPlayer[res.PlayerID] = res
	}

	updated, err := s.updateRoom(ctx, roomID, func(room *models.Room) (bool, error) {
		if room.Status == models.RoomStatusResults {
			// Another host client finished the merge first
			return false, nil
		}

		if room.Status != models.RoomStatusJudging {
			return false, ErrInvalidRoomState
		}

		for _, p := range room.Players {
			res, ok := resultsByPlayer[p.ID]
			if !ok {
				continue
			}
			p.Score += res.TotalRoundPoints
			p.LastRoundResults = res.Results
		}

		room.Status = models.RoomStatusResults
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &TriggerJudgingOutput{
		Room:     updated,
		Fallback: scored.Fallback,
	}, nil
}

// NextRound transitions RESULTS -> LOBBY, clearing the round letter and
// stop marker while preserving the round counter and every score
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	updated, err := s.updateRoom(ctx, input.RoomID, func(current *models.Room) (bool, error) {
		if err := requireHost(current, input.PlayerID); err != nil {
			return false, err
		}

		if current.Status != models.RoomStatusResults {
			return false, ErrInvalidRoomState
		}

		current.Status = models.RoomStatusLobby
		current.Letter = ""
		current.StoppedBy = ""

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &NextRoundOutput{Room: updated}, nil
}

// GetRoom reads the current snapshot for a room
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: current}, nil
}

// WatchRoom streams snapshots for a room, starting with the current one
func (s *service) WatchRoom(ctx context.Context, input *WatchRoomInput) (*roomRepo.Subscription, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.config.RoomRepo.SubscribeRoom(ctx, &roomRepo.SubscribeRoomInput{
		RoomID: normalizeRoomID(input.RoomID),
	})
}

// updateRoom runs a read-modify-write loop against the snapshot store,
// retrying on version conflicts. apply returns whether the snapshot should
// be written; returning false short-circuits with the freshly read state.
func (s *service) updateRoom(ctx context.Context, roomID string, apply func(*models.Room) (bool, error)) (*models.Room, error) {
	roomID = normalizeRoomID(roomID)

	for attempt := 0; attempt <= s.config.MaxWriteRetries; attempt++ {
		current, err := s.getRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}

		write, err := apply(current)
		if err != nil {
			return nil, err
		}

		if !write {
			return current, nil
		}

		current.UpdatedAt = s.config.Clock.Now()

		saved, err := s.config.RoomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
			Room: current,
		})
		if err != nil {
			if errors.Is(err, roomRepo.ErrVersionConflict) {
				continue
			}
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}

		return saved, nil
	}

	return nil, ErrConcurrentUpdate
}

func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	current, err := s.config.RoomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return current, nil
}

func requireHost(room *models.Room, playerID string) error {
	player := room.Player(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}

	if !player.IsHost {
		return ErrNotHost
	}

	return nil
}

func normalizeRoomID(roomID string) string {
	return strings.ToUpper(strings.TrimSpace(roomID))
}

func copyResponses(responses map[string]string) map[string]string {
	out := make(map[string]string, len(responses))
	for category, word := range responses {
		out[category] = word
	}
	return out
}
