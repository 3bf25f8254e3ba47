package command

import (
	"context"
	"strings"
	"tempest/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	name     string
	aliases  []string
	category domain.Category
	usages   [][]string
	invoked  [][]string
}

func (s *stubCommand) Name() string              { return s.name }
func (s *stubCommand) Aliases() []string         { return s.aliases }
func (s *stubCommand) Category() domain.Category { return s.category }
func (s *stubCommand) Description() string       { return "stub " + s.name }
func (s *stubCommand) Usages() [][]string        { return s.usages }

func (s *stubCommand) Invoke(_ context.Context, _ *domain.Message, args []string) error {
	s.invoked = append(s.invoked, args)
	return nil
}

func TestRegister(t *testing.T) {
	cr := &Registry{}

	require.NoError(t, cr.Register(&stubCommand{name: "test"}))
	assert.Len(t, cr.commands, 1)
}

func TestRegisterRejectsInvalidNames(t *testing.T) {
	tests := []struct {
		name string
		cmd  *stubCommand
		want error
	}{
		{name: "empty name", cmd: &stubCommand{name: ""}, want: domain.ErrInvalidCommandName},
		{name: "uppercase name", cmd: &stubCommand{name: "Ping"}, want: domain.ErrInvalidCommandName},
		{name: "name with space", cmd: &stubCommand{name: "pi ng"}, want: domain.ErrInvalidCommandName},
		{
			name: "uppercase alias",
			cmd:  &stubCommand{name: "ping", aliases: []string{"Latency"}},
			want: domain.ErrInvalidCommandName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr := &Registry{}

			err := cr.Register(tt.cmd)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, cr.commands)
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	cr := &Registry{}

	require.NoError(t, cr.Register(&stubCommand{name: "ping"}))
	err := cr.Register(&stubCommand{name: "ping"})

	require.ErrorIs(t, err, domain.ErrDuplicateCommand)
	assert.Len(t, cr.commands, 1)
}

func TestLookupNotRegistered(t *testing.T) {
	cr := &Registry{}

	cmd, ok := cr.Lookup("test")
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestLookupNotFound(t *testing.T) {
	cr := &Registry{}
	require.NoError(t, cr.Register(&stubCommand{name: "test"}))

	_, ok := cr.Lookup("foo")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	ping := &stubCommand{name: "ping", aliases: []string{"latency", "pong"}}
	help := &stubCommand{name: "help"}

	cr := &Registry{}
	require.NoError(t, cr.Register(help))
	require.NoError(t, cr.Register(ping))

	tests := []struct {
		token string
		want  *stubCommand
	}{
		{token: "ping", want: ping},
		{token: "PING", want: ping},
		{token: "Latency", want: ping},
		{token: "pong", want: ping},
		{token: "help", want: help},
		{token: "HeLp", want: help},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			cmd, ok := cr.Lookup(tt.token)

			require.True(t, ok)
			assert.Same(t, tt.want, cmd)
		})
	}
}

func TestLookupFirstRegisteredWins(t *testing.T) {
	first := &stubCommand{name: "first", aliases: []string{"shared"}}
	second := &stubCommand{name: "second", aliases: []string{"shared"}}

	cr := &Registry{}
	require.NoError(t, cr.Register(first))
	require.NoError(t, cr.Register(second))

	cmd, ok := cr.Lookup("shared")

	require.True(t, ok)
	assert.Same(t, first, cmd)
}

func TestCommandsKeepsRegistrationOrder(t *testing.T) {
	cr := &Registry{}
	require.NoError(t, cr.Register(&stubCommand{name: "foo"}))
	require.NoError(t, cr.Register(&stubCommand{name: "bar"}))

	list := cr.Commands()

	require.Len(t, list, 2)
	assert.Equal(t, "foo", list[0].Name())
	assert.Equal(t, "bar", list[1].Name())

	list[0] = nil
	assert.NotNil(t, cr.Commands()[0], "returned slice must not alias the registry")
}

func TestBuiltinCommands(t *testing.T) {
	cr := &Registry{}
	sender := new(MockSender)

	require.NoError(t, cr.Register(NewShutdown(sender, new(MockReactor), func() {}, time.Second)))
	require.NoError(t, cr.Register(NewHelp(cr, sender, "<")))
	require.NoError(t, cr.Register(NewPing(sender)))
	require.NoError(t, cr.Register(NewUptime(sender, time.Now())))
	require.NoError(t, cr.Register(NewWeather(nil, sender)))

	names := make(map[string]bool)
	var privileged []string

	for _, cmd := range cr.Commands() {
		assert.Equal(t, strings.ToLower(cmd.Name()), cmd.Name())
		assert.False(t, names[cmd.Name()], "duplicate name %q", cmd.Name())
		names[cmd.Name()] = true

		found, ok := cr.Lookup(cmd.Name())
		require.True(t, ok)
		assert.Same(t, cmd, found)

		found, ok = cr.Lookup(strings.ToUpper(cmd.Name()))
		require.True(t, ok)
		assert.Same(t, cmd, found)

		for _, alias := range cmd.Aliases() {
			found, ok = cr.Lookup(alias)
			require.True(t, ok)
			assert.Same(t, cmd, found)
		}

		if cmd.Category().IsPrivileged() {
			privileged = append(privileged, cmd.Name())
		}
	}

	assert.Equal(t, []string{"shutdown"}, privileged)

	latency, ok := cr.Lookup("latency")
	require.True(t, ok)
	assert.Equal(t, "ping", latency.Name())
}
