package command

import (
	"fmt"
	"slices"
	"strings"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Registry is the ordered list of commands. It is filled once at startup and only read afterwards, so
// lookups need no locking.
type Registry struct {
	commands []port.Command
}

func (r *Registry) Register(cmd port.Command) error {
	name := cmd.Name()
	if !validIdentifier(name) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCommandName, name)
	}

	for _, alias := range cmd.Aliases() {
		if !validIdentifier(alias) {
			return fmt.Errorf("%w: alias %q of %q", domain.ErrInvalidCommandName, alias, name)
		}
	}

	for _, existing := range r.commands {
		if existing.Name() == name {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateCommand, name)
		}
	}

	log.Info().Str("command", name).Strs("aliases", cmd.Aliases()).Msg("adding command to registry")
	r.commands = append(r.commands, cmd)

	return nil
}

// Lookup returns the first registered command whose name or alias equals the lowercased token.
func (r *Registry) Lookup(token string) (port.Command, bool) {
	token = strings.ToLower(token)

	for _, cmd := range r.commands {
		if cmd.Name() == token || slices.Contains(cmd.Aliases(), token) {
			return cmd, true
		}
	}

	return nil, false
}

func (r *Registry) Commands() []port.Command {
	return slices.Clone(r.commands)
}

func validIdentifier(s string) bool {
	return s != "" && s == strings.ToLower(s) && !strings.ContainsAny(s, " \t\n")
}
