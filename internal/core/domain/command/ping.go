package command

import (
	"context"
	"fmt"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"
	"time"
)

const measuring = "*Measuring…*"

type Ping struct {
	sender port.ReplySender
}

func NewPing(sender port.ReplySender) *Ping {
	return &Ping{sender: sender}
}

func (p *Ping) Name() string              { return "ping" }
func (p *Ping) Aliases() []string         { return []string{"latency"} }
func (p *Ping) Category() domain.Category { return domain.General }
func (p *Ping) Description() string       { return "Sends the bot's current response latency" }
func (p *Ping) Usages() [][]string        { return nil }

// Invoke measures the round trip of posting a placeholder and then edits the result into it.
func (p *Ping) Invoke(ctx context.Context, message *domain.Message, _ []string) error {
	start := time.Now()

	placeholder, err := p.sender.SendText(ctx, message.ChannelID, measuring)
	if err != nil {
		return fmt.Errorf("failed to send placeholder: %w", err)
	}

	latency := time.Since(start).Milliseconds()

	err = p.sender.EditEmbed(ctx, placeholder, &domain.Embed{
		Author:      "Rest Ping",
		Color:       domain.SuccessColor,
		Description: fmt.Sprintf("%d ms", latency),
	})
	if err != nil {
		return fmt.Errorf("failed to edit placeholder: %w", err)
	}

	return nil
}
