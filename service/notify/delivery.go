package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/pkg/workerpool"
	"github.com/teofils1/supply-chain/repository"
)

// Deliverer executes delivery tasks on the worker pool. Tasks for one
// notification log always share a pool key, so the status transitions
// of a single row never race each other.
type Deliverer struct {
	logger *zap.Logger

	provider       repository.Provider
	eventRepo      repository.Event
	logRepo        repository.NotificationLog
	subscriberRepo repository.Subscriber

	senders SenderRegistry
	pool    *workerpool.Pool

	maxAttempts    int
	retryBaseDelay time.Duration

	nowFunc   func() time.Time
	sleepFunc func(d time.Duration)
}

// NewDeliverer ...
func NewDeliverer(
	logger *zap.Logger,
	provider repository.Provider,
	eventRepo repository.Event,
	logRepo repository.NotificationLog,
	subscriberRepo repository.Subscriber,
	senders SenderRegistry,
	pool *workerpool.Pool,
	maxAttempts int,
	retryBaseDelay time.Duration,
) *Deliverer {
	return &Deliverer{
		logger: logger,

		provider:       provider,
		eventRepo:      eventRepo,
		logRepo:        logRepo,
		subscriberRepo: subscriberRepo,

		senders: senders,
		pool:    pool,

		maxAttempts:    maxAttempts,
		retryBaseDelay: retryBaseDelay,

		nowFunc:   func() time.Time { return time.Now().UTC() },
		sleepFunc: time.Sleep,
	}
}

// Submit schedules the delivery of one notification log.
func (d *Deliverer) Submit(logID uint64) error {
	key := fmt.Sprintf("log:%d", logID)
	return d.pool.Submit(key, func() {
		d.Deliver(context.Background(), logID)
	})
}

// Deliver sends one pending notification, retrying transient failures
// with exponential backoff until the attempt ceiling, then records the
// failure. A log no longer pending is left untouched.
func (d *Deliverer) Deliver(ctx context.Context, logID uint64) {
	log, event, recipient, ok := d.loadDelivery(ctx, logID)
	if !ok {
		return
	}

	payload := RenderPayload(event, log, recipient)

	sender, ok := d.senders[log.Channel]
	if !ok {
		d.recordFailure(ctx, logID, fmt.Sprintf("no sender for channel %s", log.Channel))
		return
	}

	var lastErr error
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		if attempt > 0 {
			d.sleepFunc(d.retryBaseDelay << (attempt - 1))
		}

		lastErr = sender.Send(ctx, payload)
		if lastErr == nil {
			d.recordSent(ctx, logID)
			return
		}

		d.logger.Warn("notification delivery attempt failed",
			zap.Uint64("log_id", logID),
			zap.String("channel", string(log.Channel)),
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr),
		)
	}

	d.recordFailure(ctx, logID, lastErr.Error())
}

func (d *Deliverer) loadDelivery(
	ctx context.Context, logID uint64,
) (model.NotificationLog, model.Event, model.Subscriber, bool) {
	readonlyCtx := d.provider.Readonly(ctx)

	nullLog, err := d.logRepo.GetLog(readonlyCtx, logID)
	if err != nil {
		d.logger.Error("loading notification log", zap.Uint64("log_id", logID), zap.Error(err))
		return model.NotificationLog{}, model.Event{}, model.Subscriber{}, false
	}
	if !nullLog.Valid || nullLog.Log.Status != model.NotificationStatusPending {
		return model.NotificationLog{}, model.Event{}, model.Subscriber{}, false
	}
	log := nullLog.Log

	nullEvent, err := d.eventRepo.GetEvent(readonlyCtx, log.EventID)
	if err != nil || !nullEvent.Valid {
		d.logger.Error("loading event for delivery",
			zap.Uint64("log_id", logID), zap.Uint64("event_id", log.EventID), zap.Error(err))
		return model.NotificationLog{}, model.Event{}, model.Subscriber{}, false
	}

	nullSubscriber, err := d.subscriberRepo.GetSubscriber(readonlyCtx, log.RecipientID)
	if err != nil || !nullSubscriber.Valid {
		d.logger.Error("loading recipient for delivery",
			zap.Uint64("log_id", logID), zap.Uint64("recipient_id", log.RecipientID), zap.Error(err))
		return model.NotificationLog{}, model.Event{}, model.Subscriber{}, false
	}

	return log, nullEvent.Event, nullSubscriber.Subscriber, true
}

func (d *Deliverer) recordSent(ctx context.Context, logID uint64) {
	err := d.provider.Transact(ctx, func(ctx context.Context) error {
		return d.logRepo.MarkSent(ctx, logID, d.nowFunc())
	})
	if err != nil {
		d.logger.Error("marking notification sent", zap.Uint64("log_id", logID), zap.Error(err))
		return
	}
	deliveriesSentTotal.Inc()
}

func (d *Deliverer) recordFailure(ctx context.Context, logID uint64, message string) {
	err := d.provider.Transact(ctx, func(ctx context.Context) error {
		return d.logRepo.MarkFailed(ctx, logID, message)
	})
	if err != nil {
		d.logger.Error("marking notification failed", zap.Uint64("log_id", logID), zap.Error(err))
		return
	}
	deliveriesFailedTotal.Inc()
}
