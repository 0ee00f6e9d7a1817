package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/companion-api/internal/battle"
	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

type ChannelTestSuite struct {
	suite.Suite
	miniRedis   *miniredis.Miniredis
	client      redisclient.Client
	coordinator *battle.Coordinator
	ctx         context.Context
}

func (s *ChannelTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	s.coordinator, err = battle.NewCoordinator(&battle.Config{Client: s.client})
	s.Require().NoError(err)
}

func (s *ChannelTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *ChannelTestSuite) openChannel() *battle.Channel {
	ch := s.coordinator.Channel()
	s.Require().NoError(ch.Open(s.ctx))
	return ch
}

func (s *ChannelTestSuite) TestDefaultChannelName() {
	s.Equal("battle-channel-room", s.coordinator.ChannelName())
}

func (s *ChannelTestSuite) TestPublish_FansOutToAllListeners() {
	publisher := s.openChannel()
	defer publisher.Close() //nolint:errcheck

	received := make(chan *battle.BattleEvent, 4)
	for i := 0; i < 2; i++ {
		listener := s.openChannel()
		defer listener.Close() //nolint:errcheck
		s.Require().NoError(listener.Listen(s.ctx, func(e *battle.BattleEvent) {
			received <- e
		}))
	}

	enemies := []*entities.Enemy{
		{ID: "enemy-1", Name: "Goblin", TotalHP: 10},
		{ID: "enemy-2", Name: "Ogro", TotalHP: 30, IsBoss: true},
	}
	s.Require().NoError(publisher.Publish(s.ctx, &battle.BattleEvent{
		Message: battle.StartMessage,
		Enemies: enemies,
	}))

	for i := 0; i < 2; i++ {
		select {
		case event := <-received:
			s.Equal(battle.StartMessage, event.Message)
			s.Require().Len(event.Enemies, 2)
			s.Equal("enemy-1", event.Enemies[0].ID)
			s.Equal("enemy-2", event.Enemies[1].ID)
		case <-time.After(2 * time.Second):
			s.FailNow("listener never received the battle event")
		}
	}
}

func (s *ChannelTestSuite) TestPublish_SelfDelivery() {
	ch := s.openChannel()
	defer ch.Close() //nolint:errcheck

	received := make(chan *battle.BattleEvent, 1)
	s.Require().NoError(ch.Listen(s.ctx, func(e *battle.BattleEvent) {
		received <- e
	}))

	s.Require().NoError(ch.Publish(s.ctx, &battle.BattleEvent{Message: battle.StartMessage}))

	select {
	case event := <-received:
		s.Equal(battle.StartMessage, event.Message)
	case <-time.After(2 * time.Second):
		s.FailNow("publisher never received its own event")
	}
}

func (s *ChannelTestSuite) TestLifecycle() {
	ch := s.coordinator.Channel()

	// Unopened handles refuse to publish or listen
	err := ch.Publish(s.ctx, &battle.BattleEvent{Message: battle.StartMessage})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
	err = ch.Listen(s.ctx, func(*battle.BattleEvent) {})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))

	s.Require().NoError(ch.Open(s.ctx))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(ch.Open(s.ctx)))

	s.Require().NoError(ch.Close())

	// Closed is terminal
	err = ch.Publish(s.ctx, &battle.BattleEvent{Message: battle.StartMessage})
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(ch.Open(s.ctx)))
	s.NoError(ch.Close())
}

func TestChannelTestSuite(t *testing.T) {
	suite.Run(t, new(ChannelTestSuite))
}
