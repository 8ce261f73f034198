package app

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeTelegramClient struct {
	chatIDs []int64
	texts   []string
	err     error
}

func (c *fakeTelegramClient) SendMessage(recipientChatID int64, text string) error {
	c.chatIDs = append(c.chatIDs, recipientChatID)
	c.texts = append(c.texts, text)
	return c.err
}

func TestTelegramNotifierDeliversToConfiguredChat(t *testing.T) {
	client := &fakeTelegramClient{}
	log, hook := test.NewNullLogger()
	notifier := NewTelegramNotifier(client, 42, logrus.NewEntry(log), nil)

	if err := notifier.Notify("привет"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.chatIDs) != 1 || client.chatIDs[0] != 42 {
		t.Errorf("message sent to %v, want chat 42", client.chatIDs)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.InfoLevel {
		t.Error("successful delivery should be logged at info level")
	}
}

func TestTelegramNotifierLogsAndReturnsFailure(t *testing.T) {
	client := &fakeTelegramClient{err: errors.New("telegram down")}
	log, hook := test.NewNullLogger()
	notifier := NewTelegramNotifier(client, 42, logrus.NewEntry(log), nil)

	if err := notifier.Notify("привет"); err == nil {
		t.Fatal("delivery failure should be visible to callers that care")
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.ErrorLevel {
		t.Error("delivery failure should be logged at error level")
	}
}
