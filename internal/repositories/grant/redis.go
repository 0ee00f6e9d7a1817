package grant

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
)

const (
	grantKeyPrefix     = "grant:"
	profileIndexPrefix = "grant:profile:"
	abilityIndexPrefix = "grant:hability:"

	errGrantNil       = "grant cannot be nil"
	errProfileIDEmpty = "profile ID cannot be empty"
	errAbilityIDEmpty = "ability ID cannot be empty"
)

func grantKey(profileID, abilityID string) string {
	return grantKeyPrefix + profileID + ":" + abilityID
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis grant repository
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

// NewRedis creates a new Redis-backed grant repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Grant == nil {
		return nil, errors.InvalidArgument(errGrantNil)
	}
	if input.Grant.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.Grant.AbilityID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}
	if input.Grant.CurrentUses < 0 {
		return nil, errors.InvalidArgument("current uses cannot be negative")
	}

	data, err := json.Marshal(input.Grant)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal grant")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, grantKey(input.Grant.ProfileID, input.Grant.AbilityID), data, 0)
	pipe.SAdd(ctx, profileIndexPrefix+input.Grant.ProfileID, input.Grant.AbilityID)
	pipe.SAdd(ctx, abilityIndexPrefix+input.Grant.AbilityID, input.Grant.ProfileID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store grant")
	}

	return &PutOutput{Grant: input.Grant}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	result, err := r.client.Get(ctx, grantKey(input.ProfileID, input.AbilityID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s has no grant for ability %s", input.ProfileID, input.AbilityID)
		}
		return nil, errors.Wrapf(err, "failed to get grant")
	}

	var g entities.AbilityGrant
	if err := json.Unmarshal([]byte(result), &g); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal grant")
	}

	return &GetOutput{Grant: &g}, nil
}

func (r *redisRepository) ListByProfile(ctx context.Context, input ListByProfileInput) (*ListByProfileOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	abilityIDs, err := r.client.SMembers(ctx, profileIndexPrefix+input.ProfileID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list grants for profile %s", input.ProfileID)
	}

	grants := make([]*entities.AbilityGrant, 0, len(abilityIDs))
	for _, abilityID := range abilityIDs {
		getOutput, err := r.Get(ctx, GetInput{ProfileID: input.ProfileID, AbilityID: abilityID})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "grant missing, cleaning up index",
					"profile_id", input.ProfileID,
					"hability_id", abilityID)
				r.client.SRem(ctx, profileIndexPrefix+input.ProfileID, abilityID)
				continue
			}
			return nil, err
		}
		grants = append(grants, getOutput.Grant)
	}

	return &ListByProfileOutput{Grants: grants}, nil
}

func (r *redisRepository) ListByAbility(ctx context.Context, input ListByAbilityInput) (*ListByAbilityOutput, error) {
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	profileIDs, err := r.client.SMembers(ctx, abilityIndexPrefix+input.AbilityID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list grants for ability %s", input.AbilityID)
	}

	grants := make([]*entities.AbilityGrant, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		getOutput, err := r.Get(ctx, GetInput{ProfileID: profileID, AbilityID: input.AbilityID})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, abilityIndexPrefix+input.AbilityID, profileID)
				continue
			}
			return nil, err
		}
		grants = append(grants, getOutput.Grant)
	}

	return &ListByAbilityOutput{Grants: grants}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, grantKey(input.ProfileID, input.AbilityID))
	pipe.SRem(ctx, profileIndexPrefix+input.ProfileID, input.AbilityID)
	pipe.SRem(ctx, abilityIndexPrefix+input.AbilityID, input.ProfileID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete grant")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) DeleteByAbility(ctx context.Context, input DeleteByAbilityInput) (*DeleteByAbilityOutput, error) {
	if input.AbilityID == "" {
		return nil, errors.InvalidArgument(errAbilityIDEmpty)
	}

	profileIDs, err := r.client.SMembers(ctx, abilityIndexPrefix+input.AbilityID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list grants for ability %s", input.AbilityID)
	}

	pipe := r.client.TxPipeline()
	for _, profileID := range profileIDs {
		pipe.Del(ctx, grantKey(profileID, input.AbilityID))
		pipe.SRem(ctx, profileIndexPrefix+profileID, input.AbilityID)
	}
	pipe.Del(ctx, abilityIndexPrefix+input.AbilityID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete grants for ability %s", input.AbilityID)
	}

	return &DeleteByAbilityOutput{Deleted: len(profileIDs)}, nil
}

func (r *redisRepository) DeleteByProfile(ctx context.Context, input DeleteByProfileInput) (*DeleteByProfileOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	abilityIDs, err := r.client.SMembers(ctx, profileIndexPrefix+input.ProfileID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list grants for profile %s", input.ProfileID)
	}

	pipe := r.client.TxPipeline()
	for _, abilityID := range abilityIDs {
		pipe.Del(ctx, grantKey(input.ProfileID, abilityID))
		pipe.SRem(ctx, abilityIndexPrefix+abilityID, input.ProfileID)
	}
	pipe.Del(ctx, profileIndexPrefix+input.ProfileID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete grants for profile %s", input.ProfileID)
	}

	return &DeleteByProfileOutput{Deleted: len(abilityIDs)}, nil
}
