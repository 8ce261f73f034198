// internal/app/poll_service.go
package app

import (
	"context"
	"sync"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/state"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
)

// StatusFetcher performs one authenticated poll of the homework status API
// and returns the decoded payload verbatim.
type StatusFetcher interface {
	Fetch(ctx context.Context, fromDate int64) (any, error)
}

// PollStatus is a snapshot of the poll loop's recent health, used by the
// digest job.
type PollStatus struct {
	CyclesRun   int64
	ErrorsSeen  int64
	LastSuccess time.Time
	LastError   string
	Cursor      int64
}

// PollService drives the poll cycle: fetch, validate, format, notify, then
// sleep for the retry interval. It owns the poll cursor and the last sent
// error diagnostic; both are instance state, mutated only by the loop's
// single actor, and persisted best-effort through the state repository.
type PollService struct {
	creds     config.Credentials
	fetcher   StatusFetcher
	notifier  Notifier
	stateRepo state.Repository
	metrics   *metrics.Metrics
	logger    *logrus.Entry
	interval  time.Duration

	cursor          int64
	lastErrorNotice string

	statusMu sync.RWMutex
	status   PollStatus
}

func NewPollService(
	creds config.Credentials,
	fetcher StatusFetcher,
	notifier Notifier,
	stateRepo state.Repository,
	m *metrics.Metrics,
	logger *logrus.Entry,
	interval time.Duration,
) *PollService {
	return &PollService{
		creds:     creds,
		fetcher:   fetcher,
		notifier:  notifier,
		stateRepo: stateRepo,
		metrics:   m,
		logger:    logger,
		interval:  interval,
	}
}

// RestoreState loads the persisted cursor and last sent diagnostic. A
// missing state row is not an error: the bot simply starts from the current
// wall clock, like a first run.
func (s *PollService) RestoreState(ctx context.Context) error {
	saved, err := s.stateRepo.Load(ctx)
	if err != nil {
		if err == idb.ErrStateNotFound {
			s.logger.Info("No persisted bot state found. Starting from the current time.")
			return nil
		}
		return err
	}
	s.cursor = saved.Cursor
	s.lastErrorNotice = saved.LastErrorNotice
	s.metrics.SetPollCursor(s.cursor)
	s.logger.Infof("Restored bot state: cursor=%d (saved at %s)", saved.Cursor, saved.UpdatedAt.Format(time.RFC3339))
	return nil
}

// Run executes poll cycles until the context is cancelled or the credential
// guard fails. The guard is re-checked before every cycle, not only at
// startup.
func (s *PollService) Run(ctx context.Context) {
	s.logger.Infof("Poll loop starting with interval %s", s.interval)
	for {
		if !s.creds.Complete() {
			s.logger.Error("Required credentials are missing. Poll loop halted.")
			return
		}

		s.RunCycle(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("Poll loop stopped.")
			return
		case <-time.After(s.interval):
		}
	}
}

// RunCycle executes one full fetch/validate/format/notify pass.
func (s *PollService) RunCycle(ctx context.Context) {
	s.metrics.IncPollCycles()
	s.recordCycle()

	payload, err := s.fetcher.Fetch(ctx, s.cursor)
	if err != nil {
		// Cursor stays untouched: the last known-good window will be
		// re-fetched on the next cycle.
		s.reportFailure(ctx, err)
		return
	}

	homeworks, err := homework.CheckResponse(payload)
	if err != nil {
		s.reportFailure(ctx, err)
		return
	}

	if len(homeworks) > 0 {
		// Only the most recent update is processed per cycle.
		message, err := homework.ParseStatus(homeworks[0])
		if err != nil {
			// Unlike transport and validation failures, a bad individual
			// record must not block cursor progress: the fetch itself
			// succeeded.
			s.reportFailure(ctx, err)
		} else {
			// Delivery is best effort; the error is already logged inside
			// the notifier and must not stop the loop.
			_ = s.notifier.Notify(message)
		}
	} else {
		s.logger.Debug("Новые статусы отсутствуют")
	}

	if cursor, ok := homework.CurrentDate(payload); ok {
		s.advanceCursor(ctx, cursor)
	}
	s.recordSuccess()
}

// reportFailure is the shared error path: log the diagnostic, notify the
// chat once per distinct diagnostic text, remember the text to suppress
// repeats.
func (s *PollService) reportFailure(ctx context.Context, err error) {
	s.metrics.IncPollErrors()
	notice := "Сбой в работе программы: " + err.Error()
	s.logger.Error(notice)
	s.recordFailure(err)

	if notice == s.lastErrorNotice {
		s.logger.Debug("Identical diagnostic already sent, notification suppressed.")
		return
	}
	_ = s.notifier.Notify(notice)
	s.lastErrorNotice = notice
	s.persistState(ctx)
}

func (s *PollService) advanceCursor(ctx context.Context, cursor int64) {
	if cursor == s.cursor {
		return
	}
	s.cursor = cursor
	s.metrics.SetPollCursor(cursor)
	s.persistState(ctx)
}

func (s *PollService) persistState(ctx context.Context) {
	err := s.stateRepo.Save(ctx, &state.BotState{
		Cursor:          s.cursor,
		LastErrorNotice: s.lastErrorNotice,
	})
	if err != nil {
		s.logger.Errorf("Failed to persist bot state: %v", err)
	}
}

// Cursor returns the current lower bound of the poll window.
func (s *PollService) Cursor() int64 {
	return s.cursor
}

// Status returns a snapshot of the loop's recent health. Safe to call from
// other goroutines (the digest job).
func (s *PollService) Status() PollStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *PollService) recordCycle() {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.CyclesRun++
}

func (s *PollService) recordSuccess() {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastSuccess = time.Now()
	s.status.Cursor = s.cursor
}

func (s *PollService) recordFailure(err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.ErrorsSeen++
	s.status.LastError = err.Error()
	s.status.Cursor = s.cursor
}
