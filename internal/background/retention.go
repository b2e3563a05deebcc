package background

import (
	"context"
	"errors"
	"time"

	"estate-backoffice/pkg/logger"
)

// NotificationPurger deletes read notifications older than the given age.
type NotificationPurger interface {
	PurgeRead(ctx context.Context, olderThan time.Duration) (int64, error)
}

const notificationRetentionJob = "notification_retention"

// StartNotificationRetention schedules a daily sweep that removes read
// notifications past the retention window. A retentionDays of zero or
// less disables the sweep.
func StartNotificationRetention(ctx context.Context, s *Scheduler, purger NotificationPurger, retentionDays int) {
	if retentionDays <= 0 {
		logger.Info("Notification retention disabled", nil)
		return
	}

	retention := time.Duration(retentionDays) * 24 * time.Hour

	run := func() {
		err := s.ScheduleUnique(Job{
			Name:    notificationRetentionJob,
			Timeout: 2 * time.Minute,
			RetryPolicy: RetryPolicy{
				MaxRetries: 2,
				Backoff:    30 * time.Second,
			},
			Run: func(ctx context.Context) error {
				removed, err := purger.PurgeRead(ctx, retention)
				if err != nil {
					return err
				}
				if removed > 0 {
					logger.Info("Purged read notifications", map[string]interface{}{"removed": removed, "retention_days": retentionDays})
				}
				return nil
			},
		})
		if err != nil && !errors.Is(err, ErrJobAlreadyScheduled) {
			logger.Error(err, "Failed to schedule notification retention", nil)
		}
	}

	go func() {
		run()

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
