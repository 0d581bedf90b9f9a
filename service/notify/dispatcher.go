package notify

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/config"
	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/repository"
	"github.com/teofils1/supply-chain/service/audit"
)

// Dispatcher consumes recorded event ids from a bounded intake queue
// and fans each eligible event out to one pending notification log per
// matching rule and channel. Enqueue never blocks the event write path.
type Dispatcher struct {
	logger *zap.Logger

	provider  repository.Provider
	eventRepo repository.Event
	logRepo   repository.NotificationLog

	ruleCache *RuleCache
	deliverer *Deliverer

	alertSeverities map[model.Severity]struct{}
	alwaysNotify    map[model.EventType]struct{}

	intake    chan uint64
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

var _ audit.EventIntake = &Dispatcher{}

// NewDispatcher ...
func NewDispatcher(
	logger *zap.Logger,
	provider repository.Provider,
	eventRepo repository.Event,
	logRepo repository.NotificationLog,
	ruleCache *RuleCache,
	deliverer *Deliverer,
	conf config.NotificationConfig,
) *Dispatcher {
	alertSeverities := map[model.Severity]struct{}{}
	for _, s := range conf.AlertSeverities {
		alertSeverities[model.Severity(s)] = struct{}{}
	}
	alwaysNotify := map[model.EventType]struct{}{}
	for _, e := range conf.AlwaysNotifyEvents {
		alwaysNotify[model.EventType(e)] = struct{}{}
	}

	return &Dispatcher{
		logger: logger,

		provider:  provider,
		eventRepo: eventRepo,
		logRepo:   logRepo,

		ruleCache: ruleCache,
		deliverer: deliverer,

		alertSeverities: alertSeverities,
		alwaysNotify:    alwaysNotify,

		intake:    make(chan uint64, conf.IntakeQueueSize),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Enqueue hands an event id to the dispatcher. Returns false instead
// of blocking when the intake queue is full, and after Stop: a stopped
// dispatcher would strand anything accepted into the queue.
func (d *Dispatcher) Enqueue(eventID uint64) bool {
	select {
	case <-d.stopCh:
		return false
	default:
	}

	select {
	case d.intake <- eventID:
		return true
	default:
		return false
	}
}

// Run consumes the intake queue until Stop is called.
func (d *Dispatcher) Run() {
	defer close(d.stoppedCh)

	for {
		select {
		case <-d.stopCh:
			// drain ids accepted before the stop
			for {
				select {
				case eventID := <-d.intake:
					d.Dispatch(context.Background(), eventID)
				default:
					return
				}
			}
		case eventID := <-d.intake:
			d.Dispatch(context.Background(), eventID)
		}
	}
}

// Stop ...
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	<-d.stoppedCh
}

// Dispatch fans one event out to its matching rules. Ineligible events
// produce zero notification logs.
func (d *Dispatcher) Dispatch(ctx context.Context, eventID uint64) {
	readonlyCtx := d.provider.Readonly(ctx)
	nullEvent, err := d.eventRepo.GetEvent(readonlyCtx, eventID)
	if err != nil {
		d.logger.Error("loading event for dispatch", zap.Uint64("event_id", eventID), zap.Error(err))
		return
	}
	if !nullEvent.Valid {
		d.logger.Warn("dispatch for unknown event", zap.Uint64("event_id", eventID))
		return
	}
	event := nullEvent.Event

	if !d.eligible(event) {
		dispatchSkippedTotal.Inc()
		return
	}

	rules, err := d.ruleCache.GetEnabledRules(ctx)
	if err != nil {
		d.logger.Error("loading enabled rules", zap.Uint64("event_id", eventID), zap.Error(err))
		return
	}

	for _, rule := range rules {
		if !RuleMatches(rule, event) {
			continue
		}
		for _, channelName := range rule.Channels {
			channel := model.Channel(channelName)
			if !channel.Valid() {
				continue
			}
			d.createAndSubmit(ctx, event, rule, channel)
		}
	}
}

// eligible is the global gate: alertable severity or an event type
// configured to always notify.
func (d *Dispatcher) eligible(event model.Event) bool {
	if _, ok := d.alertSeverities[event.Severity]; ok {
		return true
	}
	_, ok := d.alwaysNotify[event.EventType]
	return ok
}

func (d *Dispatcher) createAndSubmit(
	ctx context.Context, event model.Event,
	rule model.NotificationRule, channel model.Channel,
) {
	var logID uint64
	err := d.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		logID, err = d.logRepo.InsertLog(ctx, model.NotificationLog{
			EventID:     event.ID,
			RecipientID: rule.OwnerID,
			RuleID:      sql.NullInt64{Valid: true, Int64: int64(rule.ID)},
			Channel:     channel,
			Status:      model.NotificationStatusPending,
		})
		return err
	})
	if err != nil {
		d.logger.Error("creating notification log",
			zap.Uint64("event_id", event.ID),
			zap.Uint64("rule_id", rule.ID),
			zap.String("channel", string(channel)),
			zap.Error(err),
		)
		return
	}
	notificationsCreatedTotal.Inc()

	if err := d.deliverer.Submit(logID); err != nil {
		d.logger.Error("submitting delivery task",
			zap.Uint64("log_id", logID), zap.Error(err))
	}
}
