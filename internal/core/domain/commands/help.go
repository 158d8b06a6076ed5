package commands

import (
	"context"
	"fmt"
	"strings"
	"thumbd/internal/core/domain"
	"thumbd/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type HelpHandler struct {
	registry   port.CommandRegistry
	textSender port.TextSender
	command    string
}

func NewHelpHandler(registry port.CommandRegistry, textSender port.TextSender, command string) *HelpHandler {
	return &HelpHandler{registry: registry, textSender: textSender, command: command}
}

func (h *HelpHandler) GetCommand() string {
	return h.command
}

func (h *HelpHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text := fmt.Sprintf("available commands: %s\n%s", strings.Join(h.registry.ListCommands(), ", "), thumbUsage)

	err := h.textSender.SendMessageReply(ctx, message.ChatID, message.ID, text)
	if err != nil {
		log.Error().Err(err).Int64("chatId", message.ChatID).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}
