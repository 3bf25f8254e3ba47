package sender

import (
	"context"
	"fmt"
	"tempest/internal/core/domain"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// discordSession is the subset of *discordgo.Session the sender needs, so tests can mock it.
type discordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	MessageReactionAdd(channelID, messageID, emoji string, options ...discordgo.RequestOption) error
	AddHandler(handler interface{}) func()
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	Application(appID string) (*discordgo.Application, error)
}

type DiscordSender struct {
	session discordSession
}

func NewDiscordSender(session discordSession) *DiscordSender {
	return &DiscordSender{session: session}
}

// SendReply sends description in an embed authored "<style>!".
func (s *DiscordSender) SendReply(ctx context.Context, channelID, description string,
	style domain.Style) (*domain.SentMessage, error) {
	return s.SendEmbed(ctx, channelID, &domain.Embed{
		Author:      style.String() + "!",
		Color:       style.Color(),
		Description: description,
	})
}

func (s *DiscordSender) SendText(ctx context.Context, channelID, text string) (*domain.SentMessage, error) {
	msg, err := s.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		log.Error().Err(err).Str("channelId", channelID).Msg("failed to send message")
		return nil, err
	}

	return sentMessage(msg), nil
}

func (s *DiscordSender) SendEmbed(ctx context.Context, channelID string,
	embed *domain.Embed) (*domain.SentMessage, error) {
	msg, err := s.session.ChannelMessageSendEmbed(channelID, toDiscordEmbed(embed), discordgo.WithContext(ctx))
	if err != nil {
		log.Error().Err(err).Str("channelId", channelID).Msg("failed to send embed")
		return nil, err
	}

	return sentMessage(msg), nil
}

// EditEmbed clears the text content of message and replaces it with embed.
func (s *DiscordSender) EditEmbed(ctx context.Context, message *domain.SentMessage, embed *domain.Embed) error {
	edit := discordgo.NewMessageEdit(message.ChannelID, message.ID).
		SetContent("").
		SetEmbed(toDiscordEmbed(embed))

	_, err := s.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	return err
}

func (s *DiscordSender) DeleteMessage(ctx context.Context, message *domain.SentMessage) error {
	return s.session.ChannelMessageDelete(message.ChannelID, message.ID, discordgo.WithContext(ctx))
}

func (s *DiscordSender) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.session.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &domain.User{ID: user.ID, Name: user.Username, AvatarURL: user.AvatarURL("")}, nil
}

func (s *DiscordSender) AddReaction(ctx context.Context, message *domain.SentMessage, emoji string) error {
	return s.session.MessageReactionAdd(message.ChannelID, message.ID, emoji, discordgo.WithContext(ctx))
}

// AwaitReaction registers a temporary reaction handler and waits for the first reaction that passes filter.
func (s *DiscordSender) AwaitReaction(ctx context.Context, filter domain.ReactionFilter,
	timeout time.Duration) (string, bool) {
	matched := make(chan string, 1)

	remove := s.session.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r == nil || r.MessageReaction == nil {
			return
		}

		if !filter.Matches(r.ChannelID, r.MessageID, r.UserID, r.Emoji.Name) {
			return
		}

		select {
		case matched <- r.Emoji.Name:
		default:
		}
	})
	defer remove()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case emoji := <-matched:
		return emoji, true
	case <-timer.C:
		log.Debug().Str("messageId", filter.MessageID).Msg("reaction wait timed out")
		return "", false
	case <-ctx.Done():
		return "", false
	}
}

// ApplicationOwner returns the user id of the owner of the bot's application.
func (s *DiscordSender) ApplicationOwner(_ context.Context) (string, error) {
	app, err := s.session.Application("@me")
	if err != nil {
		return "", fmt.Errorf("failed to fetch application info: %w", err)
	}

	if app.Owner == nil || app.Owner.ID == "" {
		return "", domain.ErrOwnerUnknown
	}

	return app.Owner.ID, nil
}

func sentMessage(msg *discordgo.Message) *domain.SentMessage {
	return &domain.SentMessage{ID: msg.ID, ChannelID: msg.ChannelID}
}

func toDiscordEmbed(embed *domain.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Color:       embed.Color,
		Description: embed.Description,
	}

	if embed.Author != "" {
		out.Author = &discordgo.MessageEmbedAuthor{
			Name:    embed.Author,
			IconURL: embed.AuthorIcon,
			URL:     embed.AuthorURL,
		}
	}

	for _, field := range embed.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	if embed.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer}
	}

	if !embed.Timestamp.IsZero() {
		out.Timestamp = embed.Timestamp.Format(time.RFC3339)
	}

	return out
}
