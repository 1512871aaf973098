package notificationjobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AhmedMHR/PadelPal/app/shared/attr"
	"github.com/go-co-op/gocron/v2"
)

// Expirer deletes challenges that were never answered.
type Expirer interface {
	ExpireStaleChallenges(ctx context.Context, ttl time.Duration) (int, error)
}

// ChallengeExpiryJob periodically removes stale challenges.
type ChallengeExpiryJob struct {
	expirer   Expirer
	ttl       time.Duration
	interval  time.Duration
	logger    *slog.Logger
	scheduler gocron.Scheduler
}

// NewChallengeExpiryJob creates the job. It does nothing until Start.
func NewChallengeExpiryJob(expirer Expirer, ttl, interval time.Duration, logger *slog.Logger) *ChallengeExpiryJob {
	return &ChallengeExpiryJob{
		expirer:  expirer,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Start schedules the sweep every interval, running the first one at once.
// Overlapping runs are skipped.
func (j *ChallengeExpiryJob) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() { j.RunOnce(ctx) }),
		gocron.WithName("notification.expire_challenges"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("failed to schedule challenge expiry: %w", err)
	}

	sched.Start()
	j.scheduler = sched
	j.logger.InfoContext(ctx, "Challenge expiry scheduled",
		attr.String("interval", j.interval.String()),
		attr.String("ttl", j.ttl.String()),
	)
	return nil
}

// RunOnce performs a single sweep.
func (j *ChallengeExpiryJob) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := j.expirer.ExpireStaleChallenges(ctx, j.ttl); err != nil {
		j.logger.ErrorContext(ctx, "Challenge expiry failed", attr.Error(err))
	}
}

// Shutdown stops the scheduler and waits for a running sweep.
func (j *ChallengeExpiryJob) Shutdown() error {
	if j.scheduler == nil {
		return nil
	}
	return j.scheduler.Shutdown()
}
