package port

import (
	"context"
	"tempest/internal/core/domain"
	"time"
)

type ReplySender interface {
	// SendReply sends description as an embed in the given style and returns the posted message.
	SendReply(ctx context.Context, channelID, description string, style domain.Style) (*domain.SentMessage, error)
	// SendText sends plain text content.
	SendText(ctx context.Context, channelID, text string) (*domain.SentMessage, error)
	// SendEmbed sends a fully built embed.
	SendEmbed(ctx context.Context, channelID string, embed *domain.Embed) (*domain.SentMessage, error)
	// EditEmbed replaces the content of a previously sent message with embed.
	EditEmbed(ctx context.Context, message *domain.SentMessage, embed *domain.Embed) error
	DeleteMessage(ctx context.Context, message *domain.SentMessage) error
	// CurrentUser returns the bot's own user.
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type Reactor interface {
	AddReaction(ctx context.Context, message *domain.SentMessage, emoji string) error
	// AwaitReaction blocks until a reaction matching filter arrives and returns its emoji. It returns false
	// when timeout elapses or ctx is done first.
	AwaitReaction(ctx context.Context, filter domain.ReactionFilter, timeout time.Duration) (string, bool)
}
