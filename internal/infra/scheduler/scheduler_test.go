package scheduler

import (
	"strings"
	"testing"
	"time"

	"homework_status_bot/internal/app"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func testLogger() *logrus.Entry {
	log, _ := test.NewNullLogger()
	return logrus.NewEntry(log)
}

func TestComposeDigest(t *testing.T) {
	now := time.Date(2023, 11, 15, 9, 0, 0, 0, time.UTC)
	st := app.PollStatus{
		CyclesRun:   144,
		ErrorsSeen:  3,
		LastSuccess: now.Add(-10 * time.Minute),
		LastError:   "эндпоинт https://x/ недоступен. Код ответа API: 503",
	}

	digest := ComposeDigest(st, now)

	for _, want := range []string{"144", "3", "10m0s", "503"} {
		if !strings.Contains(digest, want) {
			t.Errorf("digest missing %q: %q", want, digest)
		}
	}
}

func TestComposeDigestBeforeFirstSuccess(t *testing.T) {
	digest := ComposeDigest(app.PollStatus{CyclesRun: 1}, time.Now())

	if !strings.Contains(digest, "ещё не было") {
		t.Errorf("digest should say there was no successful check yet: %q", digest)
	}
	if strings.Contains(digest, "Последняя ошибка") {
		t.Errorf("digest should not mention an error that never happened: %q", digest)
	}
}

func TestNewDigestSchedulerRejectsBadSpec(t *testing.T) {
	s := NewDigestScheduler(nil, nil, testLogger(), "not a cron spec")
	if err := s.Start(); err == nil {
		t.Error("expected an error for an invalid cron spec")
	}
}
