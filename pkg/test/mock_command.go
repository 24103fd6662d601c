// Package test provides shared test doubles.
package test

import (
	"context"
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session"
	"github.com/stretchr/testify/mock"
)

// MockCommand is a testify mock for the commands.Command interface.
type MockCommand struct {
	mock.Mock
}

// NewMockCommand creates a MockCommand whose expectations are asserted
// during test cleanup.
func NewMockCommand(t *testing.T) *MockCommand {
	m := &MockCommand{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommand) Name() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockCommand) Description() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockCommand) Options() []discord.CommandOption {
	args := m.Called()
	if opts, ok := args.Get(0).([]discord.CommandOption); ok {
		return opts
	}

	return nil
}

func (m *MockCommand) Execute(ctx context.Context, s *session.Session, e *gateway.InteractionCreateEvent, data *discord.CommandInteraction) error {
	args := m.Called(ctx, s, e, data)

	return args.Error(0)
}
