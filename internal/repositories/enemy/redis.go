package enemy

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

const (
	enemyKeyPrefix = "enemy:"
	enemyIndexKey  = "enemies"

	errEnemyNil     = "enemy cannot be nil"
	errEnemyIDEmpty = "enemy ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis enemy repository
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

// NewRedis creates a new Redis-backed enemy repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Enemy == nil {
		return nil, errors.InvalidArgument(errEnemyNil)
	}
	if input.Enemy.ID == "" {
		return nil, errors.InvalidArgument(errEnemyIDEmpty)
	}

	key := enemyKeyPrefix + input.Enemy.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("enemy with ID %s already exists", input.Enemy.ID)
	}

	data, err := json.Marshal(input.Enemy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal enemy")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, enemyIndexKey, input.Enemy.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create enemy")
	}

	return &CreateOutput{Enemy: input.Enemy}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEnemyIDEmpty)
	}

	result, err := r.client.Get(ctx, enemyKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("enemy with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get enemy")
	}

	var e entities.Enemy
	if err := json.Unmarshal([]byte(result), &e); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal enemy")
	}

	return &GetOutput{Enemy: &e}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Enemy == nil {
		return nil, errors.InvalidArgument(errEnemyNil)
	}
	if input.Enemy.ID == "" {
		return nil, errors.InvalidArgument(errEnemyIDEmpty)
	}

	key := enemyKeyPrefix + input.Enemy.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("enemy with ID %s not found", input.Enemy.ID)
	}

	data, err := json.Marshal(input.Enemy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal enemy")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update enemy")
	}

	return &UpdateOutput{Enemy: input.Enemy}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEnemyIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, enemyKeyPrefix+input.ID)
	pipe.SRem(ctx, enemyIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete enemy")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, enemyIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list enemy index")
	}

	enemies := make([]*entities.Enemy, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, enemyIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get enemy %s", id)
		}
		enemies = append(enemies, getOutput.Enemy)
	}

	return &ListOutput{Enemies: enemies}, nil
}
