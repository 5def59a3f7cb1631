package notify

import (
	"context"
	"log/slog"
	"math"
	"time"

	"shelfwise/internal/domain"
)

// ExpiringLister lists unused, unwasted items whose expiry falls in a window.
type ExpiringLister interface {
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Item, error)
}

// AlertPublisher publishes one alert message.
type AlertPublisher interface {
	PublishExpiryAlert(ctx context.Context, alert ExpiryAlert) error
}

// Worker periodically scans for items expiring within the alert window and
// publishes an alert for each. An item is alerted at most once per process
// lifetime; a restart may re-alert, which consumers are expected to tolerate.
type Worker struct {
	items     ExpiringLister
	publisher AlertPublisher
	interval  time.Duration
	window    time.Duration
	logger    *slog.Logger
	now       func() time.Time

	alerted map[string]bool
}

func NewWorker(items ExpiringLister, publisher AlertPublisher, interval, window time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		items:     items,
		publisher: publisher,
		interval:  interval,
		window:    window,
		logger:    logger,
		now:       time.Now,
		alerted:   make(map[string]bool),
	}
}

// Run scans immediately, then on every tick until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expiry alert worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *Worker) scan(ctx context.Context) {
	now := w.now()
	items, err := w.items.ListExpiringBetween(ctx, now, now.Add(w.window))
	if err != nil {
		w.logger.Error("failed to list expiring items", "error", err)
		return
	}

	published := 0
	for _, item := range items {
		if w.alerted[item.ID] {
			continue
		}

		alert := ExpiryAlert{
			ItemID:     item.ID,
			UserID:     item.UserID,
			Name:       item.Name,
			ExpiryDate: item.ExpiryDate.Format("2006-01-02"),
			DaysLeft:   daysUntil(now, item.ExpiryDate),
			Timestamp:  now,
		}
		if err := w.publisher.PublishExpiryAlert(ctx, alert); err != nil {
			w.logger.Error("failed to publish expiry alert", "item_id", item.ID, "error", err)
			continue
		}

		w.alerted[item.ID] = true
		published++
	}

	if published > 0 {
		w.logger.Info("expiry alert scan complete", "candidates", len(items), "published", published)
	}
}

func daysUntil(now, expiry time.Time) int {
	d := int(math.Ceil(expiry.Sub(now).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}
