package item

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
	itemKeyPrefix      = "item:"
	profileIndexPrefix = "item:profile:"

	errItemNil        = "item cannot be nil"
	errItemIDZero     = "item ID cannot be zero"
	errProfileIDEmpty = "profile ID cannot be empty"
)

func itemKey(id int64) string {
	return itemKeyPrefix + strconv.FormatInt(id, 10)
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis item repository
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

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == 0 {
		return nil, errors.InvalidArgument(errItemIDZero)
	}
	if input.Item.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	key := itemKey(input.Item.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("item with ID %d already exists", input.Item.ID)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, profileIndexPrefix+input.Item.ProfileID, strconv.FormatInt(input.Item.ID, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	return &CreateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errItemIDZero)
	}

	result, err := r.client.Get(ctx, itemKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var it entities.Item
	if err := json.Unmarshal([]byte(result), &it); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item")
	}

	return &GetOutput{Item: &it}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errItemIDZero)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemKey(input.ID))
	pipe.SRem(ctx, profileIndexPrefix+getOutput.Item.ProfileID, strconv.FormatInt(input.ID, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByProfile(ctx context.Context, input ListByProfileInput) (*ListByProfileOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, profileIndexPrefix+input.ProfileID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for profile %s", input.ProfileID)
	}

	items := make([]*entities.Item, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			r.client.SRem(ctx, profileIndexPrefix+input.ProfileID, raw)
			continue
		}
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, profileIndexPrefix+input.ProfileID, raw)
				continue
			}
			return nil, err
		}
		items = append(items, getOutput.Item)
	}

	return &ListByProfileOutput{Items: items}, nil
}

func (r *redisRepository) DeleteByProfile(ctx context.Context, input DeleteByProfileInput) (*DeleteByProfileOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, profileIndexPrefix+input.ProfileID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for profile %s", input.ProfileID)
	}

	pipe := r.client.TxPipeline()
	for _, raw := range ids {
		pipe.Del(ctx, itemKeyPrefix+raw)
	}
	pipe.Del(ctx, profileIndexPrefix+input.ProfileID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete items for profile %s", input.ProfileID)
	}

	return &DeleteByProfileOutput{Deleted: len(ids)}, nil
}
