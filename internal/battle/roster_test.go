package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/companion-api/internal/battle"
	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
)

func goblin() *entities.Enemy {
	return &entities.Enemy{ID: "enemy-1", Name: "Goblin", TotalHP: 10}
}

func TestRoster_AddIsIdempotent(t *testing.T) {
	r := battle.NewRoster()

	assert.True(t, r.Add(goblin()), "first add stages the enemy")
	assert.False(t, r.Add(goblin()), "second add reports already staged")
	assert.Len(t, r.Enemies(), 1)
}

func TestRoster_Remove(t *testing.T) {
	r := battle.NewRoster()
	r.Add(goblin())

	assert.True(t, r.Remove("enemy-1"))
	assert.False(t, r.Remove("enemy-1"))
	assert.True(t, r.IsEmpty())
}

func TestRoster_PreservesInsertionOrder(t *testing.T) {
	r := battle.NewRoster()
	r.Add(&entities.Enemy{ID: "enemy-2", Name: "Ogro"})
	r.Add(&entities.Enemy{ID: "enemy-1", Name: "Goblin"})

	enemies := r.Enemies()
	require.Len(t, enemies, 2)
	assert.Equal(t, "enemy-2", enemies[0].ID)
	assert.Equal(t, "enemy-1", enemies[1].ID)
}

func TestRoster_Clear(t *testing.T) {
	r := battle.NewRoster()
	r.Add(goblin())

	r.Clear()
	assert.True(t, r.IsEmpty())
}

func TestRoster_StartBattle_Empty(t *testing.T) {
	r := battle.NewRoster()

	err := r.StartBattle(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
}

func TestRoster_StartBattle_BroadcastsAndClears(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	coordinator, err := battle.NewCoordinator(&battle.Config{Client: client})
	require.NoError(t, err)

	ctx := context.Background()
	ch := coordinator.Channel()
	require.NoError(t, ch.Open(ctx))
	defer ch.Close() //nolint:errcheck

	received := make(chan *battle.BattleEvent, 1)
	require.NoError(t, ch.Listen(ctx, func(e *battle.BattleEvent) {
		received <- e
	}))

	r := battle.NewRoster()
	r.Add(goblin())
	require.NoError(t, r.StartBattle(ctx, ch))

	select {
	case event := <-received:
		assert.Equal(t, battle.StartMessage, event.Message)
		require.Len(t, event.Enemies, 1)
		assert.Equal(t, "enemy-1", event.Enemies[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("battle start was never broadcast")
	}

	assert.True(t, r.IsEmpty(), "starting a battle consumes the staged selection")
}
