package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"thumbd/internal/core/domain"
	"thumbd/internal/core/port"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const thumbUsage = "usage: /thumb <name> <width> <height>"

// ThumbHandler answers "/thumb <name> <width> <height>" with the thumbnail as a photo.
type ThumbHandler struct {
	resolver     port.ThumbnailResolver
	fs           afero.Fs
	textSender   port.TextSender
	imageSender  port.ImageSender
	maxDimension int
	command      string
}

func NewThumbHandler(resolver port.ThumbnailResolver, afs afero.Fs, textSender port.TextSender,
	imageSender port.ImageSender, maxDimension int, command string) *ThumbHandler {
	return &ThumbHandler{
		resolver:     resolver,
		fs:           afs,
		textSender:   textSender,
		imageSender:  imageSender,
		maxDimension: maxDimension,
		command:      command,
	}
}

func (h *ThumbHandler) GetCommand() string {
	return h.command
}

func (h *ThumbHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(l.WithContext(ctx), timeout)
	defer cancel()

	args := strings.Fields(domain.ParseCommandArgs(message.Text))
	if len(args) != 3 {
		return h.reply(ctx, &l, message, thumbUsage)
	}

	size, err := domain.ParseSize(args[1], args[2], h.maxDimension)
	if err != nil {
		return h.reply(ctx, &l, message, err.Error())
	}

	go h.textSender.SendChatAction(ctx, message.ChatID, domain.SendingPhoto)

	name := domain.StripExtension(args[0])
	path, err := h.resolver.Resolve(ctx, name, size)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return h.reply(ctx, &l, message, fmt.Sprintf("image not found: %s", name))
		}

		l.Error().Err(err).Str("name", name).Msg("failed to resolve thumbnail")
		return h.reply(ctx, &l, message, "failed to create thumbnail")
	}

	data, err := afero.ReadFile(h.fs, path)
	if err != nil {
		l.Error().Err(err).Str("path", path).Msg("failed to read thumbnail")
		return h.reply(ctx, &l, message, "failed to create thumbnail")
	}

	err = h.imageSender.SendImageFileReply(ctx, message.ChatID, message.ID, filepath.Base(path), data)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}

func (h *ThumbHandler) reply(ctx context.Context, l *zerolog.Logger, message *domain.Message, text string) error {
	err := h.textSender.SendMessageReply(ctx, message.ChatID, message.ID, text)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}
