package scheduler

import (
	"fmt"
	"time"

	"homework_status_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StatusProvider exposes the poll loop's health snapshot.
type StatusProvider interface {
	Status() app.PollStatus
}

// DigestScheduler sends a periodic health digest of the poll loop to the
// same chat the status notifications go to.
type DigestScheduler struct {
	cronEngine *cron.Cron
	poller     StatusProvider
	notifier   app.Notifier
	logger     *logrus.Entry
	cronSpec   string
}

func NewDigestScheduler(
	poller StatusProvider,
	notifier app.Notifier,
	logger *logrus.Entry,
	cronSpec string, // e.g. "0 9 * * *" (9 AM daily)
) *DigestScheduler {
	return &DigestScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		poller:     poller,
		notifier:   notifier,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *DigestScheduler) Start() error {
	s.logger.Infof("Starting digest scheduler with spec %q", s.cronSpec)

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for health digest.")
		// Digest delivery is as best-effort as every other notification.
		_ = s.notifier.Notify(ComposeDigest(s.poller.Status(), time.Now()))
	})
	if err != nil {
		return fmt.Errorf("could not add health digest cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Digest scheduler started.")
	return nil
}

func (s *DigestScheduler) Stop() {
	s.logger.Info("Stopping digest scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Digest scheduler gracefully stopped.")
}

// ComposeDigest renders the chat-facing health summary.
func ComposeDigest(st app.PollStatus, now time.Time) string {
	lastSuccess := "ещё не было"
	if !st.LastSuccess.IsZero() {
		lastSuccess = fmt.Sprintf("%s назад", now.Sub(st.LastSuccess).Round(time.Second))
	}
	digest := fmt.Sprintf(
		"Бот работает. Циклов опроса: %d, ошибок: %d. Последняя успешная проверка: %s. Текущий курсор: %d.",
		st.CyclesRun, st.ErrorsSeen, lastSuccess, st.Cursor,
	)
	if st.LastError != "" {
		digest += fmt.Sprintf(" Последняя ошибка: %s", st.LastError)
	}
	return digest
}
