package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/debatebot/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimerNotifierTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMessenger *mocks.MockMessenger
	notifier      *TimerNotifier
	ctx           context.Context
}

func (s *TimerNotifierTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessenger = mocks.NewMockMessenger(s.mockCtrl)
	s.notifier = NewTimerNotifier(s.mockMessenger)
	s.ctx = context.Background()
}

func (s *TimerNotifierTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimerNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(TimerNotifierTestSuite))
}

func (s *TimerNotifierTestSuite) TestOpenDirect() {
	s.mockMessenger.EXPECT().
		UserChannelCreate(s.ctx, "test-user-id").
		Return(&discordgo.Channel{ID: "dm-channel"}, nil)

	channelID, err := s.notifier.OpenDirect(s.ctx, "test-user-id")

	s.NoError(err)
	s.Equal("dm-channel", channelID)
}

func (s *TimerNotifierTestSuite) TestOpenDirectError() {
	s.mockMessenger.EXPECT().
		UserChannelCreate(s.ctx, "test-user-id").
		Return(nil, errors.New("cannot send messages to this user"))

	_, err := s.notifier.OpenDirect(s.ctx, "test-user-id")

	s.Error(err)
}

func (s *TimerNotifierTestSuite) TestPostAndEdit() {
	s.mockMessenger.EXPECT().
		ChannelMessageSend(s.ctx, "dm-channel", "Setting timer for 2:30").
		Return(&discordgo.Message{ID: "msg-1", ChannelID: "dm-channel"}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageEdit(s.ctx, "dm-channel", "msg-1", "Time left: 2:29").
		Return(&discordgo.Message{ID: "msg-1"}, nil)

	ref, err := s.notifier.Post(s.ctx, "dm-channel", "Setting timer for 2:30")
	s.Require().NoError(err)
	s.Equal(&models.MessageRef{ChannelID: "dm-channel", MessageID: "msg-1"}, ref)

	s.NoError(s.notifier.Edit(s.ctx, ref, "Time left: 2:29"))
}

func (s *TimerNotifierTestSuite) TestEditError() {
	s.mockMessenger.EXPECT().
		ChannelMessageEdit(s.ctx, "dm-channel", "msg-1", gomock.Any()).
		Return(nil, errors.New("unknown message"))

	err := s.notifier.Edit(s.ctx, &models.MessageRef{ChannelID: "dm-channel", MessageID: "msg-1"}, "Time left: 0:01")

	s.Error(err)
}
