package notify

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/repository"
)

func newContext() context.Context {
	return context.Background()
}

func newTestProvider() *repository.ProviderMock {
	return &repository.ProviderMock{
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
	}
}

type delivererTest struct {
	provider  *repository.ProviderMock
	eventRepo *repository.EventMock
	logRepo   *repository.NotificationLogMock
	subRepo   *repository.SubscriberMock
	sender    *SenderMock

	sleeps []time.Duration

	deliverer *Deliverer
}

func newDelivererTest(maxAttempts int) *delivererTest {
	d := &delivererTest{
		provider:  newTestProvider(),
		eventRepo: &repository.EventMock{},
		logRepo:   &repository.NotificationLogMock{},
		subRepo:   &repository.SubscriberMock{},
		sender:    &SenderMock{},
	}

	d.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{
			Valid: true,
			Log: model.NotificationLog{
				ID:          id,
				EventID:     7,
				RecipientID: 5,
				RuleID:      sql.NullInt64{Valid: true, Int64: 3},
				Channel:     model.ChannelEmail,
				Status:      model.NotificationStatusPending,
			},
		}, nil
	}
	d.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		return model.NullEvent{Valid: true, Event: newPayloadEvent()}, nil
	}
	d.subRepo.GetSubscriberFunc = func(ctx context.Context, id uint64) (model.NullSubscriber, error) {
		return model.NullSubscriber{
			Valid: true,
			Subscriber: model.Subscriber{
				ID:    id,
				Email: "ops@pharma.example",
				Role:  model.SubscriberRoleOperator,
			},
		}, nil
	}
	d.logRepo.MarkSentFunc = func(ctx context.Context, id uint64, sentAt time.Time) error {
		return nil
	}
	d.logRepo.MarkFailedFunc = func(ctx context.Context, id uint64, errorMessage string) error {
		return nil
	}

	senders := SenderRegistry{
		model.ChannelEmail: d.sender,
		model.ChannelSMS:   d.sender,
	}

	d.deliverer = NewDeliverer(
		zap.NewNop(), d.provider, d.eventRepo, d.logRepo, d.subRepo,
		senders, nil, maxAttempts, 100*time.Millisecond,
	)
	d.deliverer.sleepFunc = func(duration time.Duration) {
		d.sleeps = append(d.sleeps, duration)
	}
	return d
}

func TestDeliverer__Success_First_Attempt(t *testing.T) {
	d := newDelivererTest(3)
	d.sender.SendFunc = func(ctx context.Context, payload Payload) error {
		return nil
	}

	d.deliverer.Deliver(newContext(), 11)

	assert.Equal(t, 1, len(d.sender.SendCalls()))
	assert.Equal(t, uint64(11), d.sender.SendCalls()[0].Payload.LogID)
	assert.Equal(t, uint64(7), d.sender.SendCalls()[0].Payload.EventID)
	assert.Equal(t, 1, len(d.logRepo.MarkSentCalls()))
	assert.Equal(t, 0, len(d.logRepo.MarkFailedCalls()))
	assert.Equal(t, 0, len(d.sleeps))
}

func TestDeliverer__Retry_Then_Success(t *testing.T) {
	d := newDelivererTest(3)

	calls := 0
	d.sender.SendFunc = func(ctx context.Context, payload Payload) error {
		calls++
		if calls < 3 {
			return errors.New("smtp timeout")
		}
		return nil
	}

	d.deliverer.Deliver(newContext(), 11)

	assert.Equal(t, 3, len(d.sender.SendCalls()))
	assert.Equal(t, 1, len(d.logRepo.MarkSentCalls()))
	assert.Equal(t, 0, len(d.logRepo.MarkFailedCalls()))

	// exponential backoff between attempts
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
	}, d.sleeps)
}

func TestDeliverer__Exhausted_Attempts(t *testing.T) {
	d := newDelivererTest(2)
	d.sender.SendFunc = func(ctx context.Context, payload Payload) error {
		return errors.New("smtp timeout")
	}

	d.deliverer.Deliver(newContext(), 11)

	assert.Equal(t, 2, len(d.sender.SendCalls()))
	assert.Equal(t, 0, len(d.logRepo.MarkSentCalls()))
	assert.Equal(t, 1, len(d.logRepo.MarkFailedCalls()))
	assert.Equal(t, "smtp timeout", d.logRepo.MarkFailedCalls()[0].ErrorMessage)
}

func TestDeliverer__Missing_Sender(t *testing.T) {
	d := newDelivererTest(3)
	d.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{
			Valid: true,
			Log: model.NotificationLog{
				ID:          id,
				EventID:     7,
				RecipientID: 5,
				Channel:     model.ChannelPush,
				Status:      model.NotificationStatusPending,
			},
		}, nil
	}

	d.deliverer.Deliver(newContext(), 11)

	assert.Equal(t, 0, len(d.sender.SendCalls()))
	assert.Equal(t, 1, len(d.logRepo.MarkFailedCalls()))
	assert.Equal(t, "no sender for channel push", d.logRepo.MarkFailedCalls()[0].ErrorMessage)
}

func TestDeliverer__Skips_Non_Pending_Log(t *testing.T) {
	d := newDelivererTest(3)
	d.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{
			Valid: true,
			Log: model.NotificationLog{
				ID:      id,
				Channel: model.ChannelEmail,
				Status:  model.NotificationStatusSent,
			},
		}, nil
	}

	d.deliverer.Deliver(newContext(), 11)

	assert.Equal(t, 0, len(d.sender.SendCalls()))
	assert.Equal(t, 0, len(d.logRepo.MarkSentCalls()))
	assert.Equal(t, 0, len(d.logRepo.MarkFailedCalls()))
}

func TestDeliverer__Skips_Missing_Log(t *testing.T) {
	d := newDelivererTest(3)
	d.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{}, nil
	}

	d.deliverer.Deliver(newContext(), 11)

	assert.Equal(t, 0, len(d.sender.SendCalls()))
	assert.Equal(t, 0, len(d.logRepo.MarkSentCalls()))
}
