package ability

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

const (
	abilityKeyPrefix = "hability:"
	abilityIndexKey  = "habilities"

	errAbilityNil     = "ability cannot be nil"
	errAbilityIDEmpty = "ability ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis ability repository
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

// NewRedis creates a new Redis-backed ability repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Ability == nil {
		return nil, errors.InvalidArgument(errAbilityNil)
	}
	if input.Ability.ID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	key := abilityKeyPrefix + input.Ability.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("ability with ID %s already exists", input.Ability.ID)
	}

	data, err := json.Marshal(input.Ability)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ability")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, abilityIndexKey, input.Ability.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create ability")
	}

	return &CreateOutput{Ability: input.Ability}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	result, err := r.client.Get(ctx, abilityKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("ability with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get ability")
	}

	var a entities.Ability
	if err := json.Unmarshal([]byte(result), &a); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal ability")
	}

	return &GetOutput{Ability: &a}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Ability == nil {
		return nil, errors.InvalidArgument(errAbilityNil)
	}
	if input.Ability.ID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	key := abilityKeyPrefix + input.Ability.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("ability with ID %s not found", input.Ability.ID)
	}

	data, err := json.Marshal(input.Ability)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal ability")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update ability")
	}

	return &UpdateOutput{Ability: input.Ability}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, abilityKeyPrefix+input.ID)
	pipe.SRem(ctx, abilityIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete ability")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, abilityIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list ability index")
	}

	abilities := make([]*entities.Ability, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, abilityIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get ability %s", id)
		}
		abilities = append(abilities, getOutput.Ability)
	}

	return &ListOutput{Abilities: abilities}, nil
}
