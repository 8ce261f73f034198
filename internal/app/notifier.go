// internal/app/notifier.go
package app

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"
	"homework_status_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
)

// Notifier delivers one text message to the chat. Delivery is best effort:
// implementations log the outcome, and callers are free to ignore the
// returned error.
type Notifier interface {
	Notify(text string) error
}

// TelegramNotifier sends messages to a fixed chat through the domain
// telegram client.
type TelegramNotifier struct {
	client  domainTelegram.Client
	chatID  int64
	logger  *logrus.Entry
	metrics *metrics.Metrics
}

func NewTelegramNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry, m *metrics.Metrics) *TelegramNotifier {
	return &TelegramNotifier{
		client:  client,
		chatID:  chatID,
		logger:  logger,
		metrics: m,
	}
}

// Notify sends text to the configured chat. A delivery failure is logged and
// returned, never escalated: losing a notification is preferable to stopping
// the poller.
func (n *TelegramNotifier) Notify(text string) error {
	if err := n.client.SendMessage(n.chatID, text); err != nil {
		n.logger.Errorf("Failed to send message to chat %d: %v", n.chatID, err)
		n.metrics.IncNotificationsFailed()
		return err
	}
	n.logger.Infof("Message sent to chat %d: %q", n.chatID, text)
	n.metrics.IncNotificationsSent()
	return nil
}
