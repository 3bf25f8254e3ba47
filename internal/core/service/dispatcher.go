package service

import (
	"context"
	"strings"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Dispatcher turns inbound chat messages into command invocations.
type Dispatcher struct {
	registry   port.CommandRegistry
	authorizer Authorizer
	sender     port.ReplySender
	metrics    port.Metrics
	prefix     string
}

func NewDispatcher(registry port.CommandRegistry, authorizer Authorizer, sender port.ReplySender,
	metrics port.Metrics, prefix string) *Dispatcher {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Dispatcher{
		registry:   registry,
		authorizer: authorizer,
		sender:     sender,
		metrics:    metrics,
		prefix:     prefix,
	}
}

// Dispatch handles one inbound message. Messages that are not command invocations are ignored without
// feedback; failures of a command are reported back to the channel.
func (d *Dispatcher) Dispatch(ctx context.Context, message *domain.Message) {
	if !d.isEligible(message) {
		return
	}

	tokens := domain.Tokenize(message.Content)

	name, ok := domain.StripPrefix(tokens[0], d.prefix)
	if !ok || name == "" {
		return
	}

	cmd, ok := d.registry.Lookup(name)
	if !ok {
		log.Debug().Str("command", name).Msg("no handler for command")
		return
	}

	l := log.With().
		Str("invocationId", invocationID()).
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("authorId", message.AuthorID).
		Str("command", cmd.Name()).
		Logger()

	start := time.Now()

	if cmd.Category().IsPrivileged() && !d.authorizer.IsPrivileged(message.AuthorID) {
		l.Warn().Msg("rejected privileged command")
		d.bestEffortReply(ctx, l, message.ChannelID, domain.PermissionDenied)
		d.metrics.RecordInvocation(cmd.Name(), domain.OutcomeUnauthorized, time.Since(start))
		return
	}

	l.Info().Msg("handling request")

	err := cmd.Invoke(ctx, message, tokens[1:])
	if err == nil {
		d.metrics.RecordInvocation(cmd.Name(), domain.OutcomeSuccess, time.Since(start))
		return
	}

	l.Warn().Err(err).Msg("command failed")
	d.metrics.RecordInvocation(cmd.Name(), domain.OutcomeFailure, time.Since(start))

	if text, ok := domain.StripString(err.Error(), domain.MaxReplyLength, true); ok {
		d.bestEffortReply(ctx, l, message.ChannelID, text)
	}
}

func (d *Dispatcher) isEligible(message *domain.Message) bool {
	return strings.HasPrefix(message.Content, d.prefix) &&
		!message.AuthorIsBot &&
		message.IsFromGuild() &&
		message.Kind == domain.MessageRegular
}

// bestEffortReply sends a failure reply. A failed send is logged and dropped, there is nobody left to
// report it to.
func (d *Dispatcher) bestEffortReply(ctx context.Context, l zerolog.Logger, channelID, text string) {
	if _, err := d.sender.SendReply(ctx, channelID, text, domain.Failure); err != nil {
		l.Warn().Err(err).Msg("failed to send failure reply")
	}
}

func invocationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}

	return id.String()
}

type noopMetrics struct{}

func (noopMetrics) RecordInvocation(string, domain.Outcome, time.Duration) {}
