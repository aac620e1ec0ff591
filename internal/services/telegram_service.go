package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService is an optional secondary delivery channel. A nil
// service (no bot token configured) silently skips every send.
type TelegramService struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramService(botToken string) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	log.Printf("[tg] authorized as @%s", bot.Self.UserName)
	return &TelegramService{bot: bot}, nil
}

func (s *TelegramService) SendMessage(chatID int64, text string) error {
	if s == nil || s.bot == nil || chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
