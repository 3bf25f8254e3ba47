package port

import (
	"context"
	"tempest/internal/core/domain"
)

type Command interface {
	// Name returns the unique lowercase identifier the command is invoked by.
	Name() string
	// Aliases returns alternative lowercase identifiers, possibly none.
	Aliases() []string
	Category() domain.Category
	Description() string
	// Usages returns argument templates for help output, one placeholder label per argument.
	Usages() [][]string
	// Invoke runs the command for message with the tokens following the command name.
	Invoke(ctx context.Context, message *domain.Message, args []string) error
}

type CommandRegistry interface {
	// Register adds a command to the registry. It is only called during startup.
	Register(cmd Command) error
	// Lookup resolves a token against command names and aliases, ignoring case.
	Lookup(token string) (Command, bool)
	// Commands returns all registered commands in registration order.
	Commands() []Command
}
