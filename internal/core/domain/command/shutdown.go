package command

import (
	"context"
	"fmt"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	checkMark = "✅"
	crossMark = "❎"
)

// Answer is the result of a confirmation prompt.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerTimeout
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	default:
		return "timeout"
	}
}

type Shutdown struct {
	sender    port.ReplySender
	reactor   port.Reactor
	terminate func()
	timeout   time.Duration
}

// NewShutdown creates the shutdown command. terminate is called once the invoking developer confirms.
func NewShutdown(sender port.ReplySender, reactor port.Reactor, terminate func(), timeout time.Duration) *Shutdown {
	return &Shutdown{sender: sender, reactor: reactor, terminate: terminate, timeout: timeout}
}

func (s *Shutdown) Name() string              { return "shutdown" }
func (s *Shutdown) Aliases() []string         { return nil }
func (s *Shutdown) Category() domain.Category { return domain.Developer }
func (s *Shutdown) Description() string       { return "Shuts the bot down" }
func (s *Shutdown) Usages() [][]string        { return nil }

func (s *Shutdown) Invoke(ctx context.Context, message *domain.Message, _ []string) error {
	l := log.With().
		Str("messageId", message.ID).
		Str("authorId", message.AuthorID).
		Str("command", s.Name()).
		Logger()

	prompt, err := s.sender.SendReply(ctx, message.ChannelID, "Are you sure?", domain.Confirmation)
	if err != nil {
		return fmt.Errorf("failed to send confirmation prompt: %w", err)
	}

	answer, err := s.confirm(ctx, prompt, message.AuthorID)
	if err != nil {
		return err
	}

	if err := s.sender.DeleteMessage(ctx, prompt); err != nil {
		l.Warn().Err(err).Msg("failed to delete confirmation prompt")
	}

	l.Info().Stringer("answer", answer).Msg("shutdown confirmation finished")

	if answer == AnswerYes {
		l.Info().Msg("shutting down on developer request")
		s.terminate()
	}

	return nil
}

// confirm offers both reactions on prompt and waits for the author to pick one.
func (s *Shutdown) confirm(ctx context.Context, prompt *domain.SentMessage, authorID string) (Answer, error) {
	for _, emoji := range []string{checkMark, crossMark} {
		if err := s.reactor.AddReaction(ctx, prompt, emoji); err != nil {
			return AnswerTimeout, fmt.Errorf("failed to add reaction: %w", err)
		}
	}

	emoji, ok := s.reactor.AwaitReaction(ctx, domain.ReactionFilter{
		ChannelID: prompt.ChannelID,
		MessageID: prompt.ID,
		UserID:    authorID,
		Emojis:    []string{checkMark, crossMark},
	}, s.timeout)

	switch {
	case !ok:
		return AnswerTimeout, nil
	case emoji == checkMark:
		return AnswerYes, nil
	default:
		return AnswerNo, nil
	}
}
