package command

import (
	"context"
	"fmt"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"
	"time"
)

type Uptime struct {
	sender  port.ReplySender
	started time.Time
	now     func() time.Time
}

func NewUptime(sender port.ReplySender, started time.Time) *Uptime {
	return &Uptime{sender: sender, started: started, now: time.Now}
}

func (u *Uptime) Name() string              { return "uptime" }
func (u *Uptime) Aliases() []string         { return nil }
func (u *Uptime) Category() domain.Category { return domain.General }
func (u *Uptime) Description() string       { return "Sends the bot's current uptime" }
func (u *Uptime) Usages() [][]string        { return nil }

func (u *Uptime) Invoke(ctx context.Context, message *domain.Message, _ []string) error {
	uptime := u.now().Sub(u.started)

	_, err := u.sender.SendEmbed(ctx, message.ChannelID, &domain.Embed{
		Author:      "Uptime",
		Color:       domain.SuccessColor,
		Description: domain.DurationText(uptime.Milliseconds()),
		Footer:      "Last Reboot",
		Timestamp:   u.started,
	})
	if err != nil {
		return fmt.Errorf("failed to send uptime: %w", err)
	}

	return nil
}
