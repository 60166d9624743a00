package usecase

import (
	"context"
	"time"

	"doctor-triage/pkg/retry"

	"github.com/sirupsen/logrus"
)

// withStorageRetry runs a repository call under the configured retry policy.
func withStorageRetry(ctx context.Context, cfg retry.Config, log *logrus.Logger, operation string, fn func() error) error {
	return retry.DoWithLog(ctx, cfg, fn, func(err error, next time.Duration) {
		log.WithFields(logrus.Fields{
			"operation":  operation,
			"next_retry": next.String(),
		}).Warnf("Storage call failed, retrying: %+v", err)
	})
}
