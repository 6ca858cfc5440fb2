package timer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	uuidMocks "github.com/KirkDiggler/debatebot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/KirkDiggler/debatebot/internal/services/timer"
	"github.com/KirkDiggler/debatebot/internal/services/timer/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimerServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockNotifier *mocks.MockNotifier
	mockUUID     *uuidMocks.MockUUID
	service      timer.Service
	ctx          context.Context

	testUserID    string
	testChannelID string
	testMessage   *models.MessageRef

	mu    sync.Mutex
	edits []string
}

func (s *TimerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testUserID = "test-user-id"
	s.testChannelID = "test-dm-channel"
	s.testMessage = &models.MessageRef{ChannelID: s.testChannelID, MessageID: "test-message-id"}
	s.edits = nil

	s.mockUUID.EXPECT().NewUUID().Return("test-timer-id").AnyTimes()

	svc, err := timer.New(&timer.Config{
		Notifier:     s.mockNotifier,
		UUID:         s.mockUUID,
		TickInterval: 20 * time.Millisecond,
		MaxDuration:  time.Hour,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TimerServiceTestSuite) TearDownTest() {
	s.service.StopAll()
	s.mockCtrl.Finish()
}

func TestTimerServiceSuite(t *testing.T) {
	suite.Run(t, new(TimerServiceTestSuite))
}

func (s *TimerServiceTestSuite) expectStart(duration string) {
	s.mockNotifier.EXPECT().OpenDirect(gomock.Any(), s.testUserID).Return(s.testChannelID, nil)
	s.mockNotifier.EXPECT().
		Post(gomock.Any(), s.testChannelID, "Setting timer for "+duration).
		Return(s.testMessage, nil)
}

func (s *TimerServiceTestSuite) recordEdits() {
	s.mockNotifier.EXPECT().
		Edit(gomock.Any(), s.testMessage, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.MessageRef, text string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.edits = append(s.edits, text)
			return nil
		}).
		AnyTimes()
}

func (s *TimerServiceTestSuite) editCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.edits)
}

func (s *TimerServiceTestSuite) TestNewValidation() {
	_, err := timer.New(nil)
	s.ErrorIs(err, timer.ErrNilConfig)

	_, err = timer.New(&timer.Config{})
	s.ErrorIs(err, timer.ErrNilNotifier)
}

func (s *TimerServiceTestSuite) TestCountdownCompletesOnce() {
	s.expectStart("0:0.2")
	s.recordEdits()

	done := make(chan struct{})
	s.mockNotifier.EXPECT().
		Post(gomock.Any(), s.testChannelID, "=== Time is up! ===").
		DoAndReturn(func(context.Context, string, string) (*models.MessageRef, error) {
			close(done)
			return &models.MessageRef{ChannelID: s.testChannelID, MessageID: "done"}, nil
		}).
		Times(1)

	output, err := s.service.Start(s.ctx, &timer.StartInput{
		UserID:   s.testUserID,
		Duration: "0:0.2",
	})
	s.Require().NoError(err)
	s.Equal("test-timer-id", output.TimerID)
	s.Equal(200*time.Millisecond, output.Duration)
	s.Equal(s.testMessage, output.Message)
	s.Equal(1, s.service.Active())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("timer never completed")
	}

	s.Eventually(func() bool { return s.service.Active() == 0 }, time.Second, 5*time.Millisecond)

	// no updates once the time is up
	settled := s.editCount()
	time.Sleep(100 * time.Millisecond)
	s.Equal(settled, s.editCount())
	s.GreaterOrEqual(settled, 1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Equal("Time left: 0:00", s.edits[0])
}

func (s *TimerServiceTestSuite) TestStopAllCancelsWithoutAnnouncing() {
	s.expectStart("1:00")
	s.recordEdits()

	_, err := s.service.Start(s.ctx, &timer.StartInput{
		UserID:   s.testUserID,
		Duration: "1:00",
	})
	s.Require().NoError(err)
	s.Equal(1, s.service.Active())

	s.Eventually(func() bool { return s.editCount() > 0 }, time.Second, 5*time.Millisecond)

	s.service.StopAll()
	s.Equal(0, s.service.Active())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Equal("Time left: 0:59", s.edits[0])
}

func (s *TimerServiceTestSuite) TestStartValidation() {
	_, err := s.service.Start(s.ctx, &timer.StartInput{Duration: "1:00"})
	s.ErrorIs(err, timer.ErrEmptyUserID)

	_, err = s.service.Start(s.ctx, &timer.StartInput{UserID: s.testUserID, Duration: "soon"})
	s.ErrorIs(err, timer.ErrInvalidDuration)

	_, err = s.service.Start(s.ctx, &timer.StartInput{UserID: s.testUserID, Duration: "90:00"})
	s.ErrorIs(err, timer.ErrDurationTooLong)

	s.Equal(0, s.service.Active())
}

func (s *TimerServiceTestSuite) TestStartOpenDirectError() {
	s.mockNotifier.EXPECT().
		OpenDirect(gomock.Any(), s.testUserID).
		Return("", errors.New("cannot message user"))

	_, err := s.service.Start(s.ctx, &timer.StartInput{UserID: s.testUserID, Duration: "1:00"})
	s.Error(err)
	s.Equal(0, s.service.Active())
}

func (s *TimerServiceTestSuite) TestStartPostError() {
	s.mockNotifier.EXPECT().OpenDirect(gomock.Any(), s.testUserID).Return(s.testChannelID, nil)
	s.mockNotifier.EXPECT().
		Post(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil, errors.New("missing access"))

	_, err := s.service.Start(s.ctx, &timer.StartInput{UserID: s.testUserID, Duration: "1:00"})
	s.Error(err)
	s.Equal(0, s.service.Active())
}
