package commands

import (
	"context"
	"testing"
	"thumbd/internal/core/domain"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResponder struct {
	command string
}

func (m *MockResponder) Respond(_ context.Context, _ time.Duration, _ *domain.Message) error {
	return nil
}

func (m *MockResponder) GetCommand() string {
	return m.command
}

func TestRegister(t *testing.T) {
	r := &Registry{}
	r.Register(&MockResponder{command: "/test"})

	assert.Len(t, r.commands, 1)
}

func TestGetNotInitialized(t *testing.T) {
	r := &Registry{}

	_, err := r.Get("/test")
	assert.EqualError(t, err, "can't fetch command, registry not initialized")
}

func TestGetCommandNotFound(t *testing.T) {
	r := &Registry{}
	r.Register(&MockResponder{command: "/test"})

	_, err := r.Get("/foo")
	assert.EqualError(t, err, "command not found")
}

func TestGetCommandFound(t *testing.T) {
	r := &Registry{}
	r.Register(&MockResponder{command: "/test"})

	cmd, err := r.Get("/test")
	require.NoError(t, err)
	assert.Equal(t, "/test", cmd.GetCommand())
}

func TestListCommands(t *testing.T) {
	r := &Registry{}
	r.Register(&MockResponder{command: "/thumb"})
	r.Register(&MockResponder{command: "/help"})

	assert.Equal(t, []string{"/help", "/thumb"}, r.ListCommands())
}
