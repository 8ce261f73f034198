// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the domain telegram.Client interface using the
// gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a plain text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string) error {
	recipient := &telebot.Chat{ID: recipientChatID}
	_, err := tba.bot.Send(recipient, text)
	return err
}
