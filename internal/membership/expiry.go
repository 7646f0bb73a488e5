package membership

import (
	"context"
	"time"

	"github.com/OmarZuritaEC/vitalgym/internal/logger"
	"github.com/OmarZuritaEC/vitalgym/internal/metrics"
)

// ExpirySweep notifies customers whose membership ends on the current date.
// It is meant to run once a day from a scheduler. Within one run each
// customer is notified at most once, no matter how many of their
// memberships end that day. There is no cross-run ledger: re-running the
// sweep on the same date notifies again.
type ExpirySweep struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewExpirySweep(repo Repository, notifier Notifier, now func() time.Time) *ExpirySweep {
	return &ExpirySweep{repo: repo, notifier: notifier, now: now}
}

// Run performs one sweep. A failure to notify one customer is logged and
// counted but does not stop the remaining notifications.
func (s *ExpirySweep) Run(ctx context.Context) (notified, failed int, err error) {
	today := truncateToDay(s.now())

	expiring, err := s.repo.FindEndingOn(ctx, today)
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[int]bool)
	for _, m := range expiring {
		if seen[m.CustomerID] {
			continue
		}
		seen[m.CustomerID] = true

		if err := s.notifier.SendMembershipExpired(ctx, m.CustomerEmail, m.CustomerName, m.DateEnd); err != nil {
			logger.Error("Failed to notify customer of expired membership",
				"customer_id", m.CustomerID,
				"membership_id", m.ID,
				"error", err,
			)
			metrics.RecordExpiryNotification("failed")
			failed++
			continue
		}

		metrics.RecordExpiryNotification("sent")
		notified++
	}

	logger.Info("Expiry sweep finished",
		"date", today.Format(dateLayout),
		"expiring_memberships", len(expiring),
		"notified", notified,
		"failed", failed,
	)

	return notified, failed, nil
}
