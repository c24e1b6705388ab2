package schedule

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
)

type Job func(ctx context.Context) error

// Policy re-runs a failed job a fixed number of times with a constant
// delay between attempts. Errors rejected by Retryable are returned
// immediately.
type Policy struct {
	Retries    int
	RetryDelay time.Duration
	Retryable  func(error) bool
}

func (p Policy) Do(ctx context.Context, job Job) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := job(ctx)
		if err != nil && p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	retries := p.Retries
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.RetryDelay), uint64(retries)),
		ctx,
	)

	notify := func(err error, wait time.Duration) {
		log.WithError(err).WithFields(log.Fields{
			"attempt": attempt,
			"retryIn": wait.String(),
		}).Warn("job failed, retrying")
	}

	return backoff.RetryNotify(operation, b, notify)
}
