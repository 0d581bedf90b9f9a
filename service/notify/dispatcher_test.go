package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/config"
	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/pkg/workerpool"
	"github.com/teofils1/supply-chain/repository"
)

type dispatcherTest struct {
	provider  *repository.ProviderMock
	eventRepo *repository.EventMock
	ruleRepo  *repository.NotificationRuleMock
	logRepo   *repository.NotificationLogMock
	subRepo   *repository.SubscriberMock
	sender    *SenderMock

	dispatcher *Dispatcher
}

func newDispatcherTest(conf config.NotificationConfig) *dispatcherTest {
	d := &dispatcherTest{
		provider:  newTestProvider(),
		eventRepo: &repository.EventMock{},
		ruleRepo:  &repository.NotificationRuleMock{},
		logRepo:   &repository.NotificationLogMock{},
		subRepo:   &repository.SubscriberMock{},
		sender:    &SenderMock{},
	}

	logger := zap.NewNop()

	// submitted delivery tasks short-circuit on a missing log
	d.logRepo.GetLogFunc = func(ctx context.Context, id uint64) (model.NullNotificationLog, error) {
		return model.NullNotificationLog{}, nil
	}

	nextLogID := uint64(100)
	d.logRepo.InsertLogFunc = func(ctx context.Context, log model.NotificationLog) (uint64, error) {
		nextLogID++
		return nextLogID, nil
	}

	senders := SenderRegistry{model.ChannelEmail: d.sender}
	pool := workerpool.New(logger, 1, 16)

	deliverer := NewDeliverer(
		logger, d.provider, d.eventRepo, d.logRepo, d.subRepo,
		senders, pool, 1, 0,
	)

	ruleCache := NewRuleCache(d.provider, d.ruleRepo, 30)

	d.dispatcher = NewDispatcher(
		logger, d.provider, d.eventRepo, d.logRepo,
		ruleCache, deliverer, conf,
	)
	return d
}

func defaultDispatchConfig() config.NotificationConfig {
	return config.NotificationConfig{
		AlertSeverities:    []string{"high", "critical"},
		AlwaysNotifyEvents: []string{"temperature_alert", "damaged", "recalled", "error"},
		IntakeQueueSize:    4,
	}
}

func (d *dispatcherTest) setEvent(event model.Event) {
	d.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		return model.NullEvent{Valid: true, Event: event}, nil
	}
}

func (d *dispatcherTest) setRules(rules []model.NotificationRule) {
	d.ruleRepo.ListEnabledRulesFunc = func(ctx context.Context) ([]model.NotificationRule, error) {
		return rules, nil
	}
}

func TestDispatcher__Fan_Out_Per_Rule_And_Channel(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.Severity = model.SeverityCritical
	d.setEvent(event)

	d.setRules([]model.NotificationRule{
		{
			ID: 1, OwnerID: 5, Enabled: true,
			Channels: model.JSONStrings{"email", "sms"},
		},
		{
			ID: 2, OwnerID: 6, Enabled: true,
			Channels: model.JSONStrings{"push"},
		},
	})

	d.dispatcher.Dispatch(newContext(), event.ID)

	calls := d.logRepo.InsertLogCalls()
	assert.Equal(t, 3, len(calls))

	assert.Equal(t, uint64(5), calls[0].Log.RecipientID)
	assert.Equal(t, model.ChannelEmail, calls[0].Log.Channel)
	assert.Equal(t, model.NotificationStatusPending, calls[0].Log.Status)
	assert.Equal(t, int64(1), calls[0].Log.RuleID.Int64)

	assert.Equal(t, model.ChannelSMS, calls[1].Log.Channel)

	assert.Equal(t, uint64(6), calls[2].Log.RecipientID)
	assert.Equal(t, model.ChannelPush, calls[2].Log.Channel)
}

func TestDispatcher__Ineligible_Event_Creates_Nothing(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.EventType = model.EventTypeUpdated
	event.Severity = model.SeverityInfo
	d.setEvent(event)

	d.dispatcher.Dispatch(newContext(), event.ID)

	assert.Equal(t, 0, len(d.ruleRepo.ListEnabledRulesCalls()))
	assert.Equal(t, 0, len(d.logRepo.InsertLogCalls()))
}

func TestDispatcher__Always_Notify_Event_Type(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.EventType = model.EventTypeTemperatureAlert
	event.Severity = model.SeverityLow
	d.setEvent(event)

	d.setRules([]model.NotificationRule{
		{ID: 1, OwnerID: 5, Enabled: true, Channels: model.JSONStrings{"email"}},
	})

	d.dispatcher.Dispatch(newContext(), event.ID)

	assert.Equal(t, 1, len(d.logRepo.InsertLogCalls()))
}

func TestDispatcher__Invalid_Channel_Skipped(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.Severity = model.SeverityCritical
	d.setEvent(event)

	d.setRules([]model.NotificationRule{
		{
			ID: 1, OwnerID: 5, Enabled: true,
			Channels: model.JSONStrings{"email", "carrier-pigeon"},
		},
	})

	d.dispatcher.Dispatch(newContext(), event.ID)

	assert.Equal(t, 1, len(d.logRepo.InsertLogCalls()))
	assert.Equal(t, model.ChannelEmail, d.logRepo.InsertLogCalls()[0].Log.Channel)
}

func TestDispatcher__Non_Matching_Rule_Skipped(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.EventType = model.EventTypeRecalled
	event.Severity = model.SeverityCritical
	d.setEvent(event)

	d.setRules([]model.NotificationRule{
		{
			ID: 1, OwnerID: 5, Enabled: true,
			EventTypes: model.JSONStrings{"shipped"},
			Channels:   model.JSONStrings{"email"},
		},
	})

	d.dispatcher.Dispatch(newContext(), event.ID)

	assert.Equal(t, 0, len(d.logRepo.InsertLogCalls()))
}

func TestDispatcher__Rule_Cache_Hit(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.Severity = model.SeverityCritical
	d.setEvent(event)

	d.setRules([]model.NotificationRule{
		{ID: 1, OwnerID: 5, Enabled: true, Channels: model.JSONStrings{"email"}},
	})

	d.dispatcher.Dispatch(newContext(), event.ID)
	d.dispatcher.Dispatch(newContext(), event.ID)

	assert.Equal(t, 1, len(d.ruleRepo.ListEnabledRulesCalls()))
	assert.Equal(t, 2, len(d.logRepo.InsertLogCalls()))
}

func TestDispatcher__Enqueue_Overflow(t *testing.T) {
	conf := defaultDispatchConfig()
	conf.IntakeQueueSize = 1
	d := newDispatcherTest(conf)

	assert.Equal(t, true, d.dispatcher.Enqueue(1))
	assert.Equal(t, false, d.dispatcher.Enqueue(2))
}

func TestDispatcher__Enqueue_After_Stop_Rejected(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	go d.dispatcher.Run()
	d.dispatcher.Stop()

	assert.Equal(t, false, d.dispatcher.Enqueue(1))
	assert.Equal(t, 0, len(d.logRepo.InsertLogCalls()))
}

func TestDispatcher__Run_Consumes_Intake(t *testing.T) {
	d := newDispatcherTest(defaultDispatchConfig())

	event := newPayloadEvent()
	event.Severity = model.SeverityCritical
	d.setEvent(event)

	d.setRules([]model.NotificationRule{
		{ID: 1, OwnerID: 5, Enabled: true, Channels: model.JSONStrings{"email"}},
	})

	assert.Equal(t, true, d.dispatcher.Enqueue(event.ID))
	assert.Equal(t, true, d.dispatcher.Enqueue(event.ID))

	go d.dispatcher.Run()
	d.dispatcher.Stop()

	assert.Equal(t, 2, len(d.logRepo.InsertLogCalls()))
}
