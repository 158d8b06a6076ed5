package port

import (
	"context"
	"thumbd/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to the specified message with the given text.
	SendMessageReply(ctx context.Context, chatID int64, messageID int, text string) error
	// SendChatAction sends a specified chat action (e.g., typing, sending photo) until ctx is done.
	SendChatAction(ctx context.Context, chatID int64, action domain.Action)
}

type ImageSender interface {
	// SendImageFileReply sends an image as a file in response to the specified message.
	SendImageFileReply(ctx context.Context, chatID int64, messageID int, filename string, file []byte) error
}
