package sender

import (
	"bytes"
	"context"
	"thumbd/internal/core/domain"
	"thumbd/internal/core/port"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramBot is the subset of *bot.Bot the sender needs.
type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

type Telegram struct {
	bot TelegramBot
}

var (
	_ port.TextSender  = (*Telegram)(nil)
	_ port.ImageSender = (*Telegram)(nil)
)

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendMessageReply(ctx context.Context, chatID int64, messageID int, text string) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: messageID,
			ChatID:    chatID,
		},
	})
	if err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Msg("failed to send text response")
		return err
	}

	return nil
}

func (s *Telegram) SendImageFileReply(ctx context.Context, chatID int64, messageID int, filename string,
	file []byte) error {
	params := &bot.SendPhotoParams{
		ChatID: chatID,
		Photo:  &models.InputFileUpload{Filename: filename, Data: bytes.NewReader(file)},
		ReplyParameters: &models.ReplyParameters{
			MessageID: messageID,
			ChatID:    chatID,
		},
	}

	_, err := s.bot.SendPhoto(ctx, params)
	if err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Msg("failed to send photo response")
		return err
	}

	return nil
}

const ChatActionRepeatInterval = 5 * time.Second

func (s *Telegram) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	log.Debug().Int64("chatID", chatID).Msg("starting action routine")

	var chatAction models.ChatAction
	switch action {
	case domain.SendingPhoto:
		chatAction = models.ChatActionUploadPhoto
	default:
		chatAction = models.ChatActionTyping
	}

	for {
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: chatAction,
		})
		if err != nil {
			log.Debug().Err(err).Msg("stopping action routine")
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Int64("chatID", chatID).Msg("done, stopping action routine")
			return
		case <-time.After(ChatActionRepeatInterval):
		}
	}
}
