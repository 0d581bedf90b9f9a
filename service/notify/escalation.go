package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/repository"
)

const escalationSweepLimit = 100

// Monitor escalates critical notifications that stayed unacknowledged
// past the configured timeout. The escalated flag is flipped by a
// guarded update, so concurrent sweeps escalate each log at most once.
type Monitor struct {
	logger *zap.Logger

	provider       repository.Provider
	logRepo        repository.NotificationLog
	subscriberRepo repository.Subscriber

	deliverer *Deliverer

	timeout  time.Duration
	interval time.Duration

	nowFunc func() time.Time

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewMonitor ...
func NewMonitor(
	logger *zap.Logger,
	provider repository.Provider,
	logRepo repository.NotificationLog,
	subscriberRepo repository.Subscriber,
	deliverer *Deliverer,
	timeout time.Duration,
	interval time.Duration,
) *Monitor {
	return &Monitor{
		logger: logger,

		provider:       provider,
		logRepo:        logRepo,
		subscriberRepo: subscriberRepo,

		deliverer: deliverer,

		timeout:  timeout,
		interval: interval,

		nowFunc: func() time.Time { return time.Now().UTC() },

		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run sweeps on a fixed interval until Stop is called.
func (m *Monitor) Run() {
	defer close(m.stoppedCh)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			count, err := m.Sweep(context.Background())
			if err != nil {
				m.logger.Error("escalation sweep failed", zap.Error(err))
				continue
			}
			if count > 0 {
				m.logger.Info("escalation sweep finished", zap.Int("escalated", count))
			}
		}
	}
}

// Stop ...
func (m *Monitor) Stop() {
	close(m.stopCh)
	<-m.stoppedCh
}

// Sweep escalates every overdue critical notification it can claim and
// returns the number escalated. Logs without an eligible admin are left
// for the next cycle.
func (m *Monitor) Sweep(ctx context.Context) (int, error) {
	now := m.nowFunc()
	cutoff := now.Add(-m.timeout)

	readonlyCtx := m.provider.Readonly(ctx)
	overdue, err := m.logRepo.ListOverdueCritical(readonlyCtx, cutoff, escalationSweepLimit)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, log := range overdue {
		escalated, err := m.escalateOne(ctx, log, now)
		if err != nil {
			m.logger.Error("escalating notification",
				zap.Uint64("log_id", log.ID), zap.Error(err))
			continue
		}
		if escalated {
			count++
		}
	}
	return count, nil
}

func (m *Monitor) escalateOne(
	ctx context.Context, log model.NotificationLog, now time.Time,
) (bool, error) {
	readonlyCtx := m.provider.Readonly(ctx)
	nullAdmin, err := m.subscriberRepo.FindEscalationAdmin(readonlyCtx, log.RecipientID)
	if err != nil {
		return false, err
	}
	if !nullAdmin.Valid {
		m.logger.Warn("no active admin for escalation", zap.Uint64("log_id", log.ID))
		return false, nil
	}
	admin := nullAdmin.Subscriber

	var won bool
	var adminLogID uint64
	err = m.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		won, err = m.logRepo.MarkEscalated(ctx, log.ID, admin.ID, now)
		if err != nil {
			return err
		}
		if !won {
			return nil
		}

		adminLogID, err = m.logRepo.InsertLog(ctx, model.NotificationLog{
			EventID:     log.EventID,
			RecipientID: admin.ID,
			Channel:     log.Channel,
			Status:      model.NotificationStatusPending,
		})
		return err
	})
	if err != nil {
		return false, err
	}
	if !won {
		// another sweep claimed it first
		return false, nil
	}

	escalationsTotal.Inc()
	if err := m.deliverer.Submit(adminLogID); err != nil {
		m.logger.Error("submitting escalation delivery",
			zap.Uint64("log_id", adminLogID), zap.Error(err))
	}
	return true, nil
}
