package item_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/companion-api/internal/entities"
	"github.com/tavernkeep/companion-api/internal/errors"
	redisclient "github.com/tavernkeep/companion-api/internal/redis"
	"github.com/tavernkeep/companion-api/internal/repositories/item"
)

type ItemRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      item.Repository
	ctx       context.Context
}

func (s *ItemRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	repo, err := item.NewRedis(&item.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *ItemRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *ItemRepositoryTestSuite) create(id int64, profileID, name string) {
	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: &entities.Item{
		ID:        id,
		ProfileID: profileID,
		Name:      name,
		Quantity:  1,
	}})
	s.Require().NoError(err)
}

func (s *ItemRepositoryTestSuite) TestCreateAndGet() {
	s.create(42, "profile-1", "Healing Potion")

	output, err := s.repo.Get(s.ctx, item.GetInput{ID: 42})
	s.Require().NoError(err)
	s.Equal(int64(42), output.Item.ID)
	s.Equal("profile-1", output.Item.ProfileID)
	s.Equal("Healing Potion", output.Item.Name)
}

func (s *ItemRepositoryTestSuite) TestCreateDuplicateID() {
	s.create(42, "profile-1", "Healing Potion")

	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: &entities.Item{
		ID:        42,
		ProfileID: "profile-2",
		Name:      "Rope",
	}})
	s.Require().Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *ItemRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, item.CreateInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = s.repo.Create(s.ctx, item.CreateInput{Item: &entities.Item{ProfileID: "profile-1"}})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = s.repo.Create(s.ctx, item.CreateInput{Item: &entities.Item{ID: 42}})
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *ItemRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, item.GetInput{ID: 99})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ItemRepositoryTestSuite) TestListByProfile() {
	s.create(1, "profile-1", "Healing Potion")
	s.create(2, "profile-1", "Rope")
	s.create(3, "profile-2", "Lantern")

	output, err := s.repo.ListByProfile(s.ctx, item.ListByProfileInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Len(output.Items, 2)
	for _, it := range output.Items {
		s.Equal("profile-1", it.ProfileID)
	}
}

func (s *ItemRepositoryTestSuite) TestDelete() {
	s.create(1, "profile-1", "Healing Potion")
	s.create(2, "profile-1", "Rope")

	_, err := s.repo.Delete(s.ctx, item.DeleteInput{ID: 1})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, item.GetInput{ID: 1})
	s.True(errors.IsNotFound(err))

	// Index entry goes with it
	output, err := s.repo.ListByProfile(s.ctx, item.ListByProfileInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Items, 1)
	s.Equal(int64(2), output.Items[0].ID)
}

func (s *ItemRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, item.DeleteInput{ID: 99})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ItemRepositoryTestSuite) TestDeleteByProfile() {
	s.create(1, "profile-1", "Healing Potion")
	s.create(2, "profile-1", "Rope")
	s.create(3, "profile-2", "Lantern")

	output, err := s.repo.DeleteByProfile(s.ctx, item.DeleteByProfileInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Equal(2, output.Deleted)

	listOutput, err := s.repo.ListByProfile(s.ctx, item.ListByProfileInput{ProfileID: "profile-1"})
	s.Require().NoError(err)
	s.Empty(listOutput.Items)

	getOutput, err := s.repo.Get(s.ctx, item.GetInput{ID: 3})
	s.Require().NoError(err)
	s.Equal("Lantern", getOutput.Item.Name)
}

func TestItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}
