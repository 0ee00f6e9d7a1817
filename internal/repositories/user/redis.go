package user

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

const (
	userKeyPrefix = "user:"
	userIndexKey  = "users_replica"

	errUserNil     = "user cannot be nil"
	errUserIDEmpty = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis user repository
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

// NewRedis creates a new Redis-backed user repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument(errUserNil)
	}
	if input.User.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	data, err := json.Marshal(input.User)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal user")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userKeyPrefix+input.User.ID, data, 0)
	pipe.SAdd(ctx, userIndexKey, input.User.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store user")
	}

	return &PutOutput{User: input.User}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	result, err := r.client.Get(ctx, userKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var u entities.User
	if err := json.Unmarshal([]byte(result), &u); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user")
	}

	return &GetOutput{User: &u}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, userKeyPrefix+input.ID)
	pipe.SRem(ctx, userIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete user")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, userIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list user index")
	}

	users := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, userIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get user %s", id)
		}
		users = append(users, getOutput.User)
	}

	return &ListOutput{Users: users}, nil
}
