package handler

import (
	"context"
	"tempest/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, message *domain.Message)
}

// ConnectionListener is told about every established gateway connection.
type ConnectionListener interface {
	OnConnected(ctx context.Context)
}

type presenceUpdater interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// Discord adapts gateway events to the dispatcher. Its methods are registered with Session.AddHandler.
type Discord struct {
	ctx        context.Context
	dispatcher Dispatcher
	listener   ConnectionListener
	prefix     string
}

func NewDiscord(ctx context.Context, dispatcher Dispatcher, listener ConnectionListener, prefix string) *Discord {
	return &Discord{ctx: ctx, dispatcher: dispatcher, listener: listener, prefix: prefix}
}

func (d *Discord) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}

	d.dispatcher.Dispatch(d.ctx, toDomainMessage(m.Message))
}

func (d *Discord) OnReady(s *discordgo.Session, r *discordgo.Ready) {
	d.ready(s, r)
}

func (d *Discord) ready(p presenceUpdater, r *discordgo.Ready) {
	l := log.Logger
	if r != nil && r.User != nil {
		l = log.With().Str("user", r.User.Username).Str("userId", r.User.ID).Logger()
	}

	l.Info().Msg("connected to gateway")

	err := p.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{{
			Name: d.prefix + "help",
			Type: discordgo.ActivityTypeWatching,
		}},
		Status: string(discordgo.StatusDoNotDisturb),
	})
	if err != nil {
		l.Warn().Err(err).Msg("failed to update presence")
	}

	d.listener.OnConnected(d.ctx)
}

func toDomainMessage(m *discordgo.Message) *domain.Message {
	kind := domain.MessageOther
	if m.Type == discordgo.MessageTypeDefault {
		kind = domain.MessageRegular
	}

	return &domain.Message{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		GuildID:     m.GuildID,
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot,
		Kind:        kind,
		Content:     m.Content,
	}
}
