package command

import (
	"context"
	"tempest/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendReply(ctx context.Context, channelID, description string,
	style domain.Style) (*domain.SentMessage, error) {
	args := m.Called(ctx, channelID, description, style)
	msg, _ := args.Get(0).(*domain.SentMessage)
	return msg, args.Error(1)
}

func (m *MockSender) SendText(ctx context.Context, channelID, text string) (*domain.SentMessage, error) {
	args := m.Called(ctx, channelID, text)
	msg, _ := args.Get(0).(*domain.SentMessage)
	return msg, args.Error(1)
}

func (m *MockSender) SendEmbed(ctx context.Context, channelID string,
	embed *domain.Embed) (*domain.SentMessage, error) {
	args := m.Called(ctx, channelID, embed)
	msg, _ := args.Get(0).(*domain.SentMessage)
	return msg, args.Error(1)
}

func (m *MockSender) EditEmbed(ctx context.Context, message *domain.SentMessage, embed *domain.Embed) error {
	args := m.Called(ctx, message, embed)
	return args.Error(0)
}

func (m *MockSender) DeleteMessage(ctx context.Context, message *domain.SentMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockSender) CurrentUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type MockReactor struct {
	mock.Mock
}

func (m *MockReactor) AddReaction(ctx context.Context, message *domain.SentMessage, emoji string) error {
	args := m.Called(ctx, message, emoji)
	return args.Error(0)
}

func (m *MockReactor) AwaitReaction(ctx context.Context, filter domain.ReactionFilter,
	timeout time.Duration) (string, bool) {
	args := m.Called(ctx, filter, timeout)
	return args.String(0), args.Bool(1)
}

var botUser = &domain.User{ID: "900", Name: "Tempest", AvatarURL: "https://cdn.example/avatar.png"}

func guildMessage(content string) *domain.Message {
	return &domain.Message{
		ID:        "1",
		ChannelID: "100",
		GuildID:   "10",
		AuthorID:  "200",
		Kind:      domain.MessageRegular,
		Content:   content,
	}
}
