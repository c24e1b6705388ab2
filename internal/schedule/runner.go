package schedule

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type Runner struct {
	Schedule Daily
	Policy   Policy
	Job      Job

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

func NewRunner(schedule Daily, policy Policy, job Job) *Runner {
	return &Runner{
		Schedule: schedule,
		Policy:   policy,
		Job:      job,
		now:      time.Now,
		after:    time.After,
	}
}

// Run blocks until ctx is cancelled, running the job at each scheduled
// time. A job that still fails after its retries is logged and the
// runner waits for the next day.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := r.Schedule.Next(r.now())
		log.WithField("nextRun", next.Format(time.RFC3339)).Info("waiting for next scheduled run")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.after(next.Sub(r.now())):
		}

		err := r.Policy.Do(ctx, r.Job)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.WithError(err).WithField("scheduledAt", next.Format(time.RFC3339)).Error("scheduled run failed after retries")
			continue
		}
		log.WithField("scheduledAt", next.Format(time.RFC3339)).Info("scheduled run finished")
	}
}
