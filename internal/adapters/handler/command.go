package handler

import (
	"context"
	"thumbd/internal/core/domain"
	"thumbd/internal/core/port"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// Command dispatches Telegram updates to the registered chat commands.
type Command struct {
	commandRegistry port.CommandRegistry
	timeout         time.Duration
}

func NewCommand(commandRegistry port.CommandRegistry, timeout time.Duration) *Command {
	return &Command{commandRegistry: commandRegistry, timeout: timeout}
}

// Handle matches bot.HandlerFunc. The command runs in its own goroutine so a slow resize does not hold up the
// update loop.
func (c *Command) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	msg := update.Message
	log.Debug().Str("message", msg.Text).Msg("received command")

	cmd := domain.ParseCommand(msg.Text)
	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no handler for command")
		return
	}

	go func() {
		err := commandHandler.Respond(context.WithoutCancel(ctx), c.timeout, &domain.Message{
			ID:       msg.ID,
			ChatID:   msg.Chat.ID,
			Username: getUserNameOrFirstName(msg.From),
			Text:     msg.Text,
		})
		if err != nil {
			log.Err(err).Str("command", cmd).Msg("failed to respond to command")
		}
	}()
}

func getUserNameOrFirstName(user *models.User) string {
	if user == nil {
		return ""
	}

	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
