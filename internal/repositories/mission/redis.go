package mission

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	"github.com/tavernkeep/companion-api/internal/pkg/clock"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

const (
	missionKeyPrefix = "mision:"
	missionIndexKey  = "misions"

	errMissionNil     = "mission cannot be nil"
	errMissionIDEmpty = "mission ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis mission repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed mission repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Mission == nil {
		return nil, errors.InvalidArgument(errMissionNil)
	}
	if input.Mission.ID == "" {
		return nil, errors.InvalidArgument(errMissionIDEmpty)
	}

	key := missionKeyPrefix + input.Mission.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("mission with ID %s already exists", input.Mission.ID)
	}

	now := r.clock.Now().Unix()
	input.Mission.CreatedAt = now
	input.Mission.UpdatedAt = now

	data, err := json.Marshal(input.Mission)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mission")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, missionIndexKey, input.Mission.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create mission")
	}

	return &CreateOutput{Mission: input.Mission}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMissionIDEmpty)
	}

	result, err := r.client.Get(ctx, missionKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("mission with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get mission")
	}

	var m entities.Mission
	if err := json.Unmarshal([]byte(result), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal mission")
	}

	return &GetOutput{Mission: &m}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Mission == nil {
		return nil, errors.InvalidArgument(errMissionNil)
	}
	if input.Mission.ID == "" {
		return nil, errors.InvalidArgument(errMissionIDEmpty)
	}

	key := missionKeyPrefix + input.Mission.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("mission with ID %s not found", input.Mission.ID)
	}

	input.Mission.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Mission)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mission")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update mission")
	}

	return &UpdateOutput{Mission: input.Mission}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMissionIDEmpty)
	}

	if _, err := r.Get(ctx, GetInput(input)); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, missionKeyPrefix+input.ID)
	pipe.SRem(ctx, missionIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete mission")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, missionIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list mission index")
	}

	missions := make([]*entities.Mission, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, missionIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get mission %s", id)
		}
		missions = append(missions, getOutput.Mission)
	}

	return &ListOutput{Missions: missions}, nil
}
