package tournament

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/debatebot/internal/common/clock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	repo      Repository
	ctx       context.Context
	testTime  time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.ctx = context.Background()

	repo, err := NewMemory(&Config{
		DefaultURL: "https://example.com/postings/round.mhtml?round_id=1",
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *MemoryRepositoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestNewMemoryValidation() {
	_, err := NewMemory(nil)
	s.Error(err)

	_, err = NewMemory(&Config{})
	s.Error(err)
}

func (s *MemoryRepositoryTestSuite) TestDefaultTournament() {
	tournament, err := s.repo.GetTournament(s.ctx)
	s.Require().NoError(err)
	s.Equal("https://example.com/postings/round.mhtml?round_id=1", tournament.URL)
	s.Empty(tournament.SetBy)
}

func (s *MemoryRepositoryTestSuite) TestSetTournament() {
	set, err := s.repo.SetTournament(s.ctx, &SetTournamentInput{
		URL:   "https://example.com/postings/index.mhtml?tourn_id=2",
		SetBy: "coach",
	})
	s.Require().NoError(err)
	s.Equal("coach", set.SetBy)
	s.Equal(s.testTime, set.SetAt)

	tournament, err := s.repo.GetTournament(s.ctx)
	s.Require().NoError(err)
	s.Equal(set, tournament)
}

func (s *MemoryRepositoryTestSuite) TestGetTournamentReturnsCopy() {
	tournament, err := s.repo.GetTournament(s.ctx)
	s.Require().NoError(err)
	tournament.URL = "changed"

	again, err := s.repo.GetTournament(s.ctx)
	s.Require().NoError(err)
	s.NotEqual("changed", again.URL)
}

func (s *MemoryRepositoryTestSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := s.repo.SetTournament(s.ctx, &SetTournamentInput{URL: "https://example.com/postings"})
			s.NoError(err)
		}()
		go func() {
			defer wg.Done()
			_, err := s.repo.GetTournament(s.ctx)
			s.NoError(err)
		}()
	}
	wg.Wait()
}
