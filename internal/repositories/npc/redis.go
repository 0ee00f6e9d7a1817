package npc

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

const (
	npcKeyPrefix = "npc:"
	npcIndexKey  = "npcs"

	errNPCNil    = "npc cannot be nil"
	errNPCIDZero = "npc ID cannot be zero"
)

func npcKey(id int64) string {
	return npcKeyPrefix + strconv.FormatInt(id, 10)
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis NPC repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed NPC repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.NPC == nil {
		return nil, errors.InvalidArgument(errNPCNil)
	}
	if input.NPC.ID == 0 {
		return nil, errors.InvalidArgument(errNPCIDZero)
	}

	key := npcKey(input.NPC.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("npc with ID %d already exists", input.NPC.ID)
	}

	data, err := json.Marshal(input.NPC)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal npc")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, npcIndexKey, strconv.FormatInt(input.NPC.ID, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create npc")
	}

	return &CreateOutput{NPC: input.NPC}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errNPCIDZero)
	}

	result, err := r.client.Get(ctx, npcKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("npc with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get npc")
	}

	var n entities.NPC
	if err := json.Unmarshal([]byte(result), &n); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal npc")
	}

	return &GetOutput{NPC: &n}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.NPC == nil {
		return nil, errors.InvalidArgument(errNPCNil)
	}
	if input.NPC.ID == 0 {
		return nil, errors.InvalidArgument(errNPCIDZero)
	}

	key := npcKey(input.NPC.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("npc with ID %d not found", input.NPC.ID)
	}

	data, err := json.Marshal(input.NPC)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal npc")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update npc")
	}

	return &UpdateOutput{NPC: input.NPC}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errNPCIDZero)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, npcKey(input.ID))
	pipe.SRem(ctx, npcIndexKey, strconv.FormatInt(input.ID, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete npc")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, npcIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list npc index")
	}

	npcs := make([]*entities.NPC, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			r.client.SRem(ctx, npcIndexKey, raw)
			continue
		}
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, npcIndexKey, raw)
				continue
			}
			return nil, err
		}
		npcs = append(npcs, getOutput.NPC)
	}

	return &ListOutput{NPCs: npcs}, nil
}
