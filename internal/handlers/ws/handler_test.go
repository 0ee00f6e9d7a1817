package ws_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/coder/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	battlechannel "github.com/tavernkeep/companion-api/internal/battle"
	"github.com/tavernkeep/companion-api/internal/handlers/ws"
	abilityorch "github.com/tavernkeep/companion-api/internal/orchestrators/ability"
	battleorch "github.com/tavernkeep/companion-api/internal/orchestrators/battle"
	combatorch "github.com/tavernkeep/companion-api/internal/orchestrators/combat"
	missionorch "github.com/tavernkeep/companion-api/internal/orchestrators/mission"
	profileorch "github.com/tavernkeep/companion-api/internal/orchestrators/profile"
	"github.com/tavernkeep/companion-api/internal/pkg/dice"
	"github.com/tavernkeep/companion-api/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
	abilityrepo "github.com/tavernkeep/companion-api/internal/repositories/ability"
	enemyrepo "github.com/tavernkeep/companion-api/internal/repositories/enemy"
	"github.com/tavernkeep/companion-api/internal/repositories/grant"
	itemrepo "github.com/tavernkeep/companion-api/internal/repositories/item"
	missionrepo "github.com/tavernkeep/companion-api/internal/repositories/mission"
	npcrepo "github.com/tavernkeep/companion-api/internal/repositories/npc"
	profilerepo "github.com/tavernkeep/companion-api/internal/repositories/profile"
	userrepo "github.com/tavernkeep/companion-api/internal/repositories/user"
)

type GatewayTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	channel   *battlechannel.Channel
	server    *httptest.Server
	ctx       context.Context
	cancel    context.CancelFunc
}

func (s *GatewayTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx, s.cancel = context.WithCancel(context.Background())

	profileRepo, err := profilerepo.NewRedis(&profilerepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	abilityRepo, err := abilityrepo.NewRedis(&abilityrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	grantRepo, err := grant.NewRedis(&grant.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	enemyRepo, err := enemyrepo.NewRedis(&enemyrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	missionRepo, err := missionrepo.NewRedis(&missionrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	itemRepo, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	npcRepo, err := npcrepo.NewRedis(&npcrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	userRepo, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	abilities, err := abilityorch.NewOrchestrator(&abilityorch.Config{
		ProfileRepo: profileRepo,
		AbilityRepo: abilityRepo,
		GrantRepo:   grantRepo,
	})
	s.Require().NoError(err)
	combat, err := combatorch.NewOrchestrator(&combatorch.Config{
		ProfileRepo:    profileRepo,
		GrantRepo:      grantRepo,
		AbilityService: abilities,
		Roller:         dice.NewFixedRoller(4),
	})
	s.Require().NoError(err)
	missions, err := missionorch.NewOrchestrator(&missionorch.Config{
		MissionRepo: missionRepo,
		ProfileRepo: profileRepo,
		IDGenerator: idgen.NewSequential("mission"),
	})
	s.Require().NoError(err)
	profiles, err := profileorch.NewOrchestrator(&profileorch.Config{
		ProfileRepo: profileRepo,
		UserRepo:    userRepo,
		GrantRepo:   grantRepo,
		ItemRepo:    itemRepo,
		NPCRepo:     npcRepo,
		IDGenerator: &idgen.SequentialNumber{},
	})
	s.Require().NoError(err)

	coordinator, err := battlechannel.NewCoordinator(&battlechannel.Config{Client: s.client})
	s.Require().NoError(err)
	s.channel = coordinator.Channel()
	s.Require().NoError(s.channel.Open(s.ctx))

	battles, err := battleorch.NewOrchestrator(&battleorch.Config{
		EnemyRepo:   enemyRepo,
		Roster:      battlechannel.NewRoster(),
		Channel:     s.channel,
		IDGenerator: idgen.NewSequential("enemy"),
	})
	s.Require().NoError(err)

	hub := ws.NewHub()
	s.Require().NoError(s.channel.Listen(s.ctx, func(e *battlechannel.BattleEvent) {
		hub.BroadcastBattleEvent(s.ctx, e)
	}))

	handler, err := ws.NewHandler(&ws.Config{
		Profiles:  profiles,
		Abilities: abilities,
		Combat:    combat,
		Missions:  missions,
		Battles:   battles,
		Hub:       hub,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler)
}

func (s *GatewayTestSuite) TearDownTest() {
	s.server.Close()
	s.channel.Close() //nolint:errcheck
	s.cancel()
	s.miniRedis.Close()
}

func (s *GatewayTestSuite) dial() *websocket.Conn {
	conn, _, err := websocket.Dial(s.ctx, "ws"+s.server.URL[len("http"):], nil)
	s.Require().NoError(err)
	return conn
}

func (s *GatewayTestSuite) send(conn *websocket.Conn, id, action string, data any) {
	req := ws.Request{ID: id, Action: action}
	if data != nil {
		raw, err := json.Marshal(data)
		s.Require().NoError(err)
		req.Data = raw
	}
	payload, err := json.Marshal(req)
	s.Require().NoError(err)
	s.Require().NoError(conn.Write(s.ctx, websocket.MessageText, payload))
}

// readEnvelope reads the next message, keeping Data raw for the caller
func (s *GatewayTestSuite) readEnvelope(conn *websocket.Conn) (string, bool, json.RawMessage, *ws.ErrorPayload) {
	readCtx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	_, payload, err := conn.Read(readCtx)
	s.Require().NoError(err)

	var envelope struct {
		ID     string           `json:"id"`
		Action string           `json:"action"`
		OK     bool             `json:"ok"`
		Data   json.RawMessage  `json:"data"`
		Error  *ws.ErrorPayload `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(payload, &envelope))
	return envelope.Action, envelope.OK, envelope.Data, envelope.Error
}

func (s *GatewayTestSuite) TestSignupAndGetRoundTrip() {
	conn := s.dial()
	defer conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck

	s.send(conn, "1", "profile.signup", map[string]any{
		"user_id":  "user-1",
		"email":    "user-1@example.com",
		"username": "kael",
	})
	action, ok, _, _ := s.readEnvelope(conn)
	s.Equal("profile.signup", action)
	s.True(ok)

	s.send(conn, "2", "profile.get", map[string]any{"id": "user-1"})
	action, ok, data, _ := s.readEnvelope(conn)
	s.Equal("profile.get", action)
	s.Require().True(ok)

	var result struct {
		Profile struct {
			Username string `json:"username"`
			Clase    string `json:"clase"`
			Level    int32  `json:"level"`
		} `json:"Profile"`
	}
	s.Require().NoError(json.Unmarshal(data, &result))
	s.Equal("kael", result.Profile.Username)
	s.Equal("Base", result.Profile.Clase)
	s.Equal(int32(1), result.Profile.Level)
}

func (s *GatewayTestSuite) TestErrorsKeepConnectionAlive() {
	conn := s.dial()
	defer conn.Close(websocket.StatusNormalClosure, "") //nolint:errcheck

	s.send(conn, "1", "no.such.action", nil)
	_, ok, _, errPayload := s.readEnvelope(conn)
	s.False(ok)
	s.Require().NotNil(errPayload)
	s.Equal("INVALID_ARGUMENT", errPayload.Code)

	s.send(conn, "2", "profile.get", map[string]any{"id": "nobody"})
	_, ok, _, errPayload = s.readEnvelope(conn)
	s.False(ok)
	s.Require().NotNil(errPayload)
	s.Equal("NOT_FOUND", errPayload.Code)

	// Still serving after two failures
	s.send(conn, "3", "mission.list", nil)
	action, ok, _, _ := s.readEnvelope(conn)
	s.Equal("mission.list", action)
	s.True(ok)
}

func (s *GatewayTestSuite) TestBattleStartPushesToEveryConnection() {
	admin := s.dial()
	defer admin.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
	player := s.dial()
	defer player.Close(websocket.StatusNormalClosure, "") //nolint:errcheck

	s.send(admin, "1", "enemy.create", map[string]any{
		"name":     "Goblin",
		"total_hp": 15,
	})
	_, ok, data, _ := s.readEnvelope(admin)
	s.Require().True(ok)

	var created struct {
		Enemy struct {
			ID string `json:"id"`
		} `json:"Enemy"`
	}
	s.Require().NoError(json.Unmarshal(data, &created))

	s.send(admin, "2", "battle.stage", map[string]any{"enemy_id": created.Enemy.ID})
	_, ok, _, _ = s.readEnvelope(admin)
	s.Require().True(ok)

	s.send(admin, "3", "battle.start", nil)

	// The admin connection gets both the command response and the push,
	// in either order
	sawResponse, sawPush := false, false
	for i := 0; i < 2; i++ {
		action, ok, _, _ := s.readEnvelope(admin)
		s.Require().True(ok)
		switch action {
		case "battle.start":
			sawResponse = true
		case ws.EventBattleStarted:
			sawPush = true
		}
	}
	s.True(sawResponse)
	s.True(sawPush)

	// The player connection only gets the push
	action, ok, data, _ := s.readEnvelope(player)
	s.Equal(ws.EventBattleStarted, action)
	s.Require().True(ok)

	var event struct {
		Message string `json:"message"`
		Enemies []struct {
			Name string `json:"name"`
		} `json:"enemies"`
	}
	s.Require().NoError(json.Unmarshal(data, &event))
	s.Equal("start", event.Message)
	s.Require().Len(event.Enemies, 1)
	s.Equal("Goblin", event.Enemies[0].Name)
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}
