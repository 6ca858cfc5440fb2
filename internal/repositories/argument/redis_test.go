package argument

import (
	"context"
	"testing"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) save(arguments ...*models.Argument) {
	for _, argument := range arguments {
		err := s.repo.SaveArgument(s.ctx, &SaveArgumentInput{
			Argument: argument,
		})
		s.Require().NoError(err)
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetArgument() {
	s.save(&models.Argument{
		ID:   "arg-1",
		Type: models.ArgumentTypeTheory,
		Name: "condo bad",
		Arg:  "Conditionality is a voting issue",
	})

	argument, err := s.repo.GetArgument(s.ctx, &GetArgumentInput{
		ArgumentID: "arg-1",
	})
	s.Require().NoError(err)
	s.Equal("condo bad", argument.Name)
	s.Equal(models.ArgumentTypeTheory, argument.Type)
	s.Equal("Conditionality is a voting issue", argument.Arg)
}

func (s *RedisRepositoryTestSuite) TestGetArgumentNotFound() {
	_, err := s.repo.GetArgument(s.ctx, &GetArgumentInput{
		ArgumentID: "missing",
	})
	s.ErrorIs(err, ErrArgumentNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveArgumentValidation() {
	s.Error(s.repo.SaveArgument(s.ctx, nil))
	s.Error(s.repo.SaveArgument(s.ctx, &SaveArgumentInput{
		Argument: &models.Argument{Name: "no id"},
	}))
	s.Error(s.repo.SaveArgument(s.ctx, &SaveArgumentInput{
		Argument: &models.Argument{ID: "no-name"},
	}))
}

func (s *RedisRepositoryTestSuite) TestListByType() {
	s.save(
		&models.Argument{ID: "1", Type: models.ArgumentTypeTheory, Name: "spec"},
		&models.Argument{ID: "2", Type: models.ArgumentTypeTheory, Name: "condo"},
		&models.Argument{ID: "3", Type: models.ArgumentTypeKritik, Name: "cap"},
	)

	output, err := s.repo.ListByType(s.ctx, &ListByTypeInput{
		Type: models.ArgumentTypeTheory,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Arguments, 2)
	s.Equal("condo", output.Arguments[0].Name)
	s.Equal("spec", output.Arguments[1].Name)

	empty, err := s.repo.ListByType(s.ctx, &ListByTypeInput{
		Type: models.ArgumentTypePhil,
	})
	s.Require().NoError(err)
	s.Empty(empty.Arguments)
}

func (s *RedisRepositoryTestSuite) TestFindByNameIsCaseInsensitive() {
	s.save(&models.Argument{ID: "1", Type: models.ArgumentTypePhil, Name: "Kant NC"})

	output, err := s.repo.FindByName(s.ctx, &FindByNameInput{
		Name: "kant nc",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Arguments, 1)
	s.Equal("1", output.Arguments[0].ID)
}

func (s *RedisRepositoryTestSuite) TestFindByNameReturnsDuplicates() {
	s.save(
		&models.Argument{ID: "1", Type: models.ArgumentTypeTheory, Name: "spec"},
		&models.Argument{ID: "2", Type: models.ArgumentTypeMisc, Name: "SPEC"},
	)

	output, err := s.repo.FindByName(s.ctx, &FindByNameInput{
		Name: "Spec",
	})
	s.Require().NoError(err)
	s.Len(output.Arguments, 2)
}

func (s *RedisRepositoryTestSuite) TestSaveArgumentReindexes() {
	s.save(&models.Argument{ID: "1", Type: models.ArgumentTypeTheory, Name: "old name"})
	s.save(&models.Argument{ID: "1", Type: models.ArgumentTypeTricks, Name: "new name"})

	oldName, err := s.repo.FindByName(s.ctx, &FindByNameInput{Name: "old name"})
	s.Require().NoError(err)
	s.Empty(oldName.Arguments)

	oldType, err := s.repo.ListByType(s.ctx, &ListByTypeInput{Type: models.ArgumentTypeTheory})
	s.Require().NoError(err)
	s.Empty(oldType.Arguments)

	newType, err := s.repo.ListByType(s.ctx, &ListByTypeInput{Type: models.ArgumentTypeTricks})
	s.Require().NoError(err)
	s.Require().Len(newType.Arguments, 1)
	s.Equal("new name", newType.Arguments[0].Name)
}

func (s *RedisRepositoryTestSuite) TestDeleteArgument() {
	s.save(&models.Argument{ID: "1", Type: models.ArgumentTypeLARP, Name: "nuke war"})

	err := s.repo.DeleteArgument(s.ctx, &DeleteArgumentInput{ArgumentID: "1"})
	s.Require().NoError(err)

	byName, err := s.repo.FindByName(s.ctx, &FindByNameInput{Name: "nuke war"})
	s.Require().NoError(err)
	s.Empty(byName.Arguments)

	err = s.repo.DeleteArgument(s.ctx, &DeleteArgumentInput{ArgumentID: "1"})
	s.ErrorIs(err, ErrArgumentNotFound)
}

func (s *RedisRepositoryTestSuite) TestDanglingIndexEntriesAreSkipped() {
	s.save(&models.Argument{ID: "1", Type: models.ArgumentTypeMisc, Name: "ghost"})
	s.mr.Del(argumentKey("1"))

	output, err := s.repo.ListByType(s.ctx, &ListByTypeInput{Type: models.ArgumentTypeMisc})
	s.Require().NoError(err)
	s.Empty(output.Arguments)
}
