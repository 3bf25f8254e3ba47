package command

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"
)

type Help struct {
	registry port.CommandRegistry
	sender   port.ReplySender
	prefix   string
}

func NewHelp(registry port.CommandRegistry, sender port.ReplySender, prefix string) *Help {
	return &Help{registry: registry, sender: sender, prefix: prefix}
}

func (h *Help) Name() string              { return "help" }
func (h *Help) Aliases() []string         { return nil }
func (h *Help) Category() domain.Category { return domain.General }

func (h *Help) Description() string {
	return "Sends a list of the bot's commands or provides help for the specified command"
}

func (h *Help) Usages() [][]string {
	return [][]string{{"command name (optional)"}}
}

func (h *Help) Invoke(ctx context.Context, message *domain.Message, args []string) error {
	var cmd port.Command
	if len(args) > 0 {
		var ok bool
		if cmd, ok = h.registry.Lookup(args[0]); !ok {
			return domain.ErrCommandNotFound
		}
	}

	bot, err := h.sender.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch bot user: %w", err)
	}

	var embed *domain.Embed
	if cmd == nil {
		embed = h.overview(bot)
	} else {
		embed = h.details(bot, cmd)
	}

	if _, err := h.sender.SendEmbed(ctx, message.ChannelID, embed); err != nil {
		return fmt.Errorf("failed to send help: %w", err)
	}

	return nil
}

// overview lists command names grouped by category, both sorted alphabetically.
func (h *Help) overview(bot *domain.User) *domain.Embed {
	grouped := make(map[domain.Category][]string)
	for _, cmd := range h.registry.Commands() {
		grouped[cmd.Category()] = append(grouped[cmd.Category()], cmd.Name())
	}

	categories := make([]domain.Category, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	fields := make([]domain.EmbedField, 0, len(categories))
	for _, category := range categories {
		names := grouped[category]
		slices.Sort(names)

		fields = append(fields, domain.EmbedField{
			Name:  fmt.Sprintf("%s Commands", category),
			Value: strings.Join(names, ", "),
		})
	}

	return &domain.Embed{
		Author:     bot.Name + " Help",
		AuthorIcon: bot.AvatarURL,
		Color:      domain.SuccessColor,
		Fields:     fields,
	}
}

func (h *Help) details(bot *domain.User, cmd port.Command) *domain.Embed {
	title := h.prefix + cmd.Name()
	if cmd.Category().IsPrivileged() {
		title += " (developer-only)"
	}

	fields := []domain.EmbedField{{Name: "Category", Value: string(cmd.Category())}}

	if aliases := slices.Clone(cmd.Aliases()); len(aliases) > 0 {
		slices.Sort(aliases)
		fields = append(fields, domain.EmbedField{Name: "Aliases", Value: strings.Join(aliases, ", ")})
	}

	if usages := cmd.Usages(); len(usages) > 0 {
		lines := make([]string, 0, len(usages))
		for _, usage := range usages {
			placeholders := make([]string, 0, len(usage))
			for _, label := range usage {
				placeholders = append(placeholders, "<"+label+">")
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", h.prefix, cmd.Name(), strings.Join(placeholders, " ")))
		}
		fields = append(fields, domain.EmbedField{Name: "Usages", Value: strings.Join(lines, "\n")})
	}

	return &domain.Embed{
		Author:      title,
		AuthorIcon:  bot.AvatarURL,
		Color:       domain.SuccessColor,
		Description: cmd.Description(),
		Fields:      fields,
	}
}
