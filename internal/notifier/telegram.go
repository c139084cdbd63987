package notifier

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// TelegramNotifier шлёт организатору сообщение о каждом новом ответе.
// Уведомление необязательное: запись в хранилище уже прошла, поэтому
// любая ошибка здесь только логируется.
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	botInstance, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    botInstance,
		chatID: chatID,
		logger: logger,
	}, nil
}

// NotifyNewResponse отправляет уведомление о новом ответе участника
func (n *TelegramNotifier) NotifyNewResponse(ctx context.Context, meeting *model.Meeting, response *model.MeetingResponse, totalResponses int) {
	text := fmt.Sprintf(
		"Новый ответ на встречу «%s»\nУчастник: %s\nВыбрано слотов: %d\nВсего ответов: %d",
		meeting.Title,
		response.Name,
		len(response.SlotIDs),
		totalResponses,
	)

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		n.logger.Warn("Send telegram notification failed",
			zap.String("slug", meeting.Slug),
			zap.Error(err),
		)
		return
	}

	n.logger.Debug("Telegram notification sent",
		zap.String("slug", meeting.Slug),
		zap.String("response_id", response.ID),
	)
}
