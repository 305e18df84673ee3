package web

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/quickmadu/internal/models"
	roomRepo "github.com/KirkDiggler/quickmadu/internal/repositories/room"
	"github.com/KirkDiggler/quickmadu/internal/services/game"
	gameMocks "github.com/KirkDiggler/quickmadu/internal/services/game/mocks"
)

type HubTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mr       *miniredis.Miniredis
	client   *redis.Client
	repo     roomRepo.Repository
	mockGame *gameMocks.MockService
	manager  *hubManager
}

func (s *HubTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.mockGame = gameMocks.NewMockService(s.ctrl)
	s.manager = newHubManager(s.mockGame)
}

func (s *HubTestSuite) TearDownTest() {
	s.ctrl.Finish()
	_ = s.client.Close()
	s.mr.Close()
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

// seedRoom stores a minimal room and wires WatchRoom to a real
// subscription against it.
func (s *HubTestSuite) seedRoom(code string) {
	_, err := s.repo.SaveRoom(s.ctx, &roomRepo.SaveRoomInput{
		Room: &models.Room{
			ID:     code,
			Status: models.RoomStatusLobby,
		},
	})
	s.Require().NoError(err)

	s.mockGame.EXPECT().
		WatchRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *game.WatchRoomInput) (*roomRepo.Subscription, error) {
			return s.repo.SubscribeRoom(ctx, &roomRepo.SubscribeRoomInput{RoomID: input.RoomID})
		})
}

func (s *HubTestSuite) TestBroadcastsSnapshots() {
	s.seedRoom("ABC123")

	h, err := s.manager.getHub(s.ctx, "ABC123")
	s.Require().NoError(err)

	c := &client{send: make(chan interface{}, sendBufferSize)}
	select {
	case h.register <- c:
	case <-time.After(time.Second):
		s.FailNow("register blocked")
	}

	_, err = s.repo.SaveRoom(s.ctx, &roomRepo.SaveRoomInput{
		Room: &models.Room{
			ID:      "ABC123",
			Status:  models.RoomStatusPlaying,
			Version: 1,
		},
	})
	s.Require().NoError(err)

	deadline := time.After(time.Second)
	for {
		select {
		case msg := <-c.send:
			state, ok := msg.(RoomStateMessage)
			s.Require().True(ok)
			if state.Room.Status == models.RoomStatusPlaying {
				return
			}
		case <-deadline:
			s.FailNow("never received the updated snapshot")
		}
	}
}

func (s *HubTestSuite) TestShutdownUnblocksRegisterAndUnregister() {
	s.seedRoom("ABC123")

	h, err := s.manager.getHub(s.ctx, "ABC123")
	s.Require().NoError(err)

	c := &client{send: make(chan interface{}, sendBufferSize)}
	select {
	case h.register <- c:
	case <-time.After(time.Second):
		s.FailNow("register blocked")
	}

	s.manager.closeAll()

	select {
	case <-h.done:
	case <-time.After(time.Second):
		s.FailNow("hub did not wind down after its stream closed")
	}

	// The teardown path a disconnecting client takes must not block
	// against the dead hub
	unblocked := make(chan struct{})
	go func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		close(unblocked)
	}()

	select {
	case <-unblocked:
	case <-time.After(time.Second):
		s.FailNow("unregister blocked against a dead hub")
	}

	// Neither must a registration that raced the shutdown
	late := &client{send: make(chan interface{}, sendBufferSize)}
	select {
	case h.register <- late:
		s.FailNow("dead hub accepted a registration")
	case <-h.done:
	}

	// Registered clients get their send channel closed on shutdown
	s.Require().Eventually(func() bool {
		select {
		case _, ok := <-c.send:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	// The manager forgot the hub, so the room can be watched again
	s.seedRoomSubscription("ABC123")
	fresh, err := s.manager.getHub(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.NotSame(h, fresh)
}

// seedRoomSubscription re-arms WatchRoom for an already stored room.
func (s *HubTestSuite) seedRoomSubscription(code string) {
	s.mockGame.EXPECT().
		WatchRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *game.WatchRoomInput) (*roomRepo.Subscription, error) {
			return s.repo.SubscribeRoom(ctx, &roomRepo.SubscribeRoomInput{RoomID: input.RoomID})
		})
}
