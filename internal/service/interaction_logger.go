package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/smartly/internal/domain"
	"github.com/alexanderramin/smartly/internal/repository"
)

// DefaultLogWriteTimeout bounds a single background log write.
const DefaultLogWriteTimeout = 5 * time.Second

// AsyncInteractionLogger writes interaction logs in the background so the
// session never waits on storage. Failures are logged, not returned.
// Call Wait before exit to flush pending writes.
type AsyncInteractionLogger struct {
	repo     repository.InteractionRepo
	logger   *slog.Logger
	observer UseCaseObserver
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewAsyncInteractionLogger(repo repository.InteractionRepo, logger *slog.Logger, timeout time.Duration, observers ...UseCaseObserver) *AsyncInteractionLogger {
	if timeout <= 0 {
		timeout = DefaultLogWriteTimeout
	}
	return &AsyncInteractionLogger{
		repo:     repo,
		logger:   loggerOrDiscard(logger),
		observer: useCaseObserverOrNoop(observers),
		timeout:  timeout,
	}
}

// Log schedules the write. The write outlives ctx cancellation but not the
// logger's timeout.
func (l *AsyncInteractionLogger) Log(ctx context.Context, entry *domain.InteractionLog) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		startedAt := time.Now()
		err := l.repo.Create(writeCtx, entry)
		if err != nil {
			l.logger.WarnContext(writeCtx, "interaction log write failed",
				"interaction_id", entry.ID,
				"action", string(entry.ActionTaken),
				"error", err,
			)
		}
		observe(writeCtx, l.observer, UseCaseInteractionLog, startedAt, map[string]any{
			"interaction_id": entry.ID,
			"action":         string(entry.ActionTaken),
		}, &err)
	}()
}

// Wait blocks until every scheduled write has finished.
func (l *AsyncInteractionLogger) Wait() {
	l.wg.Wait()
}

var _ InteractionLogger = (*AsyncInteractionLogger)(nil)
