package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/pkg/canonhash"
	"github.com/teofils1/supply-chain/pkg/ledger"
	"github.com/teofils1/supply-chain/repository"
)

func newContext() context.Context {
	return context.Background()
}

type intakeStub struct {
	accepted []uint64
	full     bool
}

func (s *intakeStub) Enqueue(eventID uint64) bool {
	if s.full {
		return false
	}
	s.accepted = append(s.accepted, eventID)
	return true
}

type serviceTest struct {
	provider     *repository.ProviderMock
	eventRepo    *repository.EventMock
	ledgerClient *ledger.ClientMock
	intake       *intakeStub

	service *Service
}

func newServiceTest() *serviceTest {
	s := &serviceTest{
		provider: &repository.ProviderMock{
			TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
			ReadonlyFunc: func(ctx context.Context) context.Context {
				return ctx
			},
		},
		eventRepo:    &repository.EventMock{},
		ledgerClient: &ledger.ClientMock{},
		intake:       &intakeStub{},
	}

	s.service = NewService(s.provider, s.eventRepo, s.ledgerClient, s.intake)
	s.service.nowFunc = func() time.Time {
		return time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)
	}
	return s
}

func validRecordInput() RecordEventInput {
	return RecordEventInput{
		EventType:   model.EventTypeRecalled,
		EntityType:  model.EntityTypeBatch,
		EntityID:    1001,
		Description: "Batch recalled",
		Severity:    model.SeverityCritical,
		Location:    "Warehouse A",
		Metadata:    model.JSONMap{"reason": "contamination"},
	}
}

func TestService_RecordEvent__Validation(t *testing.T) {
	s := newServiceTest()

	input := validRecordInput()
	input.EventType = ""
	_, err := s.service.RecordEvent(newContext(), input)
	assert.Equal(t, true, IsValidationError(err))
	assert.Equal(t, "missing required field event_type", err.Error())

	input = validRecordInput()
	input.EventType = "explosion"
	_, err = s.service.RecordEvent(newContext(), input)
	assert.Equal(t, true, IsValidationError(err))
	assert.Equal(t, `invalid value "explosion" for event_type`, err.Error())

	input = validRecordInput()
	input.EntityType = "starship"
	_, err = s.service.RecordEvent(newContext(), input)
	assert.Equal(t, true, IsValidationError(err))

	input = validRecordInput()
	input.EntityID = 0
	_, err = s.service.RecordEvent(newContext(), input)
	assert.Equal(t, true, IsValidationError(err))

	input = validRecordInput()
	input.Description = ""
	_, err = s.service.RecordEvent(newContext(), input)
	assert.Equal(t, true, IsValidationError(err))

	input = validRecordInput()
	input.Severity = "catastrophic"
	_, err = s.service.RecordEvent(newContext(), input)
	assert.Equal(t, true, IsValidationError(err))

	assert.Equal(t, 0, len(s.provider.TransactCalls()))
}

func TestService_RecordEvent(t *testing.T) {
	s := newServiceTest()

	s.eventRepo.InsertEventFunc = func(ctx context.Context, event model.Event) (uint64, error) {
		return 7, nil
	}
	s.eventRepo.UpdateIntegrityHashFunc = func(ctx context.Context, id uint64, hash string) error {
		return nil
	}

	output, err := s.service.RecordEvent(newContext(), validRecordInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, uint64(7), output.ID)
	assert.Equal(t, model.AnchoringStatusPending, output.AnchoringStatus)

	inserted := s.eventRepo.InsertEventCalls()[0].Event
	assert.Equal(t, model.EventTypeRecalled, inserted.EventType)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), inserted.Timestamp)

	// hash covers the assigned id
	expected, err := canonhash.Compute(canonhash.EventContent{
		ID:          7,
		EventType:   "recalled",
		EntityType:  "batch",
		EntityID:    1001,
		Description: "Batch recalled",
		Timestamp:   time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
		Severity:    "critical",
		Location:    "Warehouse A",
		Metadata:    model.JSONMap{"reason": "contamination"},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, expected, output.IntegrityHash)
	assert.Equal(t, expected, s.eventRepo.UpdateIntegrityHashCalls()[0].Hash)

	assert.Equal(t, []uint64{7}, s.intake.accepted)
}

func TestService_RecordEvent__Severity_Defaults_To_Info(t *testing.T) {
	s := newServiceTest()

	s.eventRepo.InsertEventFunc = func(ctx context.Context, event model.Event) (uint64, error) {
		return 8, nil
	}
	s.eventRepo.UpdateIntegrityHashFunc = func(ctx context.Context, id uint64, hash string) error {
		return nil
	}

	input := validRecordInput()
	input.Severity = ""
	_, err := s.service.RecordEvent(newContext(), input)
	assert.Equal(t, nil, err)

	assert.Equal(t, model.SeverityInfo, s.eventRepo.InsertEventCalls()[0].Event.Severity)
}

func TestService_RecordEvent__Full_Intake_Does_Not_Fail(t *testing.T) {
	s := newServiceTest()
	s.intake.full = true

	s.eventRepo.InsertEventFunc = func(ctx context.Context, event model.Event) (uint64, error) {
		return 9, nil
	}
	s.eventRepo.UpdateIntegrityHashFunc = func(ctx context.Context, id uint64, hash string) error {
		return nil
	}

	output, err := s.service.RecordEvent(newContext(), validRecordInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, uint64(9), output.ID)
}

func TestService_RecordEvent__Verifies_After_Datastore_Round_Trip(t *testing.T) {
	s := newServiceTest()
	s.service.nowFunc = func() time.Time {
		return time.Date(2024, 3, 5, 8, 30, 0, 123456789, time.UTC)
	}

	var stored model.Event
	s.eventRepo.InsertEventFunc = func(ctx context.Context, event model.Event) (uint64, error) {
		stored = event
		stored.ID = 7
		return 7, nil
	}
	s.eventRepo.UpdateIntegrityHashFunc = func(ctx context.Context, id uint64, hash string) error {
		stored.IntegrityHash = hash
		return nil
	}

	_, err := s.service.RecordEvent(newContext(), validRecordInput())
	assert.Equal(t, nil, err)

	// DATETIME(6) keeps microseconds only
	stored.Timestamp = stored.Timestamp.Truncate(time.Microsecond)
	s.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		return model.NullEvent{Valid: true, Event: stored}, nil
	}

	report, err := s.service.VerifyIntegrity(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, report.Verified)
}

func storedEvent(id uint64) model.Event {
	event := model.Event{
		ID:              id,
		EventType:       model.EventTypeRecalled,
		EntityType:      model.EntityTypeBatch,
		EntityID:        1001,
		Description:     "Batch recalled",
		Severity:        model.SeverityCritical,
		Location:        "Warehouse A",
		Timestamp:       time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
		AnchoringStatus: model.AnchoringStatusPending,
	}

	hash, err := canonhash.Compute(canonhash.EventContent{
		ID:          event.ID,
		EventType:   string(event.EventType),
		EntityType:  string(event.EntityType),
		EntityID:    event.EntityID,
		Description: event.Description,
		Timestamp:   event.Timestamp,
		Severity:    string(event.Severity),
		Location:    event.Location,
	})
	if err != nil {
		panic(err)
	}
	event.IntegrityHash = hash
	return event
}

func (s *serviceTest) setEvent(event model.Event) {
	s.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		return model.NullEvent{Valid: true, Event: event}, nil
	}
}

func TestService_VerifyIntegrity(t *testing.T) {
	s := newServiceTest()
	s.setEvent(storedEvent(7))

	report, err := s.service.VerifyIntegrity(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, report.Verified)
	assert.Equal(t, report.StoredHash, report.ComputedHash)
}

func TestService_VerifyIntegrity__Tampered(t *testing.T) {
	s := newServiceTest()

	event := storedEvent(7)
	event.Description = "Batch recalled (edited)"
	s.setEvent(event)

	report, err := s.service.VerifyIntegrity(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, report.Verified)
	assert.NotEqual(t, report.StoredHash, report.ComputedHash)
}

func TestService_VerifyIntegrity__Not_Found(t *testing.T) {
	s := newServiceTest()
	s.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		return model.NullEvent{}, nil
	}

	_, err := s.service.VerifyIntegrity(newContext(), 7)
	assert.Equal(t, ErrEventNotFound, err)
}

func TestService_AnchorEvent(t *testing.T) {
	s := newServiceTest()

	event := storedEvent(7)
	s.setEvent(event)

	s.ledgerClient.AnchorFunc = func(ctx context.Context, hash string) (ledger.AnchorResult, error) {
		return ledger.AnchorResult{TxRef: "0xabc", BlockRef: 1234}, nil
	}
	s.eventRepo.MarkAnchoredFunc = func(
		ctx context.Context, id uint64, ledgerRef string, ledgerBlock int64,
	) (bool, error) {
		return true, nil
	}

	result, err := s.service.AnchorEvent(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, "0xabc", result.TxRef)
	assert.Equal(t, int64(1234), result.BlockRef)

	assert.Equal(t, event.IntegrityHash, s.ledgerClient.AnchorCalls()[0].Hash)
	assert.Equal(t, 1, len(s.eventRepo.MarkAnchoredCalls()))
}

func TestService_AnchorEvent__Idempotent(t *testing.T) {
	s := newServiceTest()

	event := storedEvent(7)
	event.AnchoringStatus = model.AnchoringStatusAnchored
	event.LedgerRef.Valid = true
	event.LedgerRef.String = "0xexisting"
	event.LedgerBlock.Valid = true
	event.LedgerBlock.Int64 = 999
	s.setEvent(event)

	result, err := s.service.AnchorEvent(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, "0xexisting", result.TxRef)
	assert.Equal(t, int64(999), result.BlockRef)

	// no second ledger submission
	assert.Equal(t, 0, len(s.ledgerClient.AnchorCalls()))
}

func TestService_AnchorEvent__Transport_Failure(t *testing.T) {
	s := newServiceTest()
	s.setEvent(storedEvent(7))

	s.ledgerClient.AnchorFunc = func(ctx context.Context, hash string) (ledger.AnchorResult, error) {
		return ledger.AnchorResult{}, &ledger.UnavailableError{Err: errors.New("connection refused")}
	}
	s.eventRepo.MarkAnchorFailedFunc = func(ctx context.Context, id uint64) (bool, error) {
		return true, nil
	}

	_, err := s.service.AnchorEvent(newContext(), 7)
	assert.Equal(t, true, errors.Is(err, ErrAnchoringUnavailable))
	assert.Equal(t, 1, len(s.eventRepo.MarkAnchorFailedCalls()))
}

func TestService_AnchorEvent__Rejected(t *testing.T) {
	s := newServiceTest()
	s.setEvent(storedEvent(7))

	s.ledgerClient.AnchorFunc = func(ctx context.Context, hash string) (ledger.AnchorResult, error) {
		return ledger.AnchorResult{}, ledger.ErrRejected
	}
	s.eventRepo.MarkAnchorFailedFunc = func(ctx context.Context, id uint64) (bool, error) {
		return true, nil
	}

	_, err := s.service.AnchorEvent(newContext(), 7)
	assert.Equal(t, true, errors.Is(err, ledger.ErrRejected))
	assert.Equal(t, false, errors.Is(err, ErrAnchoringUnavailable))
}

func TestService_AnchorEvent__Concurrent_Winner(t *testing.T) {
	s := newServiceTest()

	pending := storedEvent(7)

	anchored := pending
	anchored.AnchoringStatus = model.AnchoringStatusAnchored
	anchored.LedgerRef.Valid = true
	anchored.LedgerRef.String = "0xwinner"
	anchored.LedgerBlock.Valid = true
	anchored.LedgerBlock.Int64 = 555

	calls := 0
	s.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		calls++
		if calls == 1 {
			return model.NullEvent{Valid: true, Event: pending}, nil
		}
		return model.NullEvent{Valid: true, Event: anchored}, nil
	}

	s.ledgerClient.AnchorFunc = func(ctx context.Context, hash string) (ledger.AnchorResult, error) {
		return ledger.AnchorResult{TxRef: "0xloser", BlockRef: 556}, nil
	}
	s.eventRepo.MarkAnchoredFunc = func(
		ctx context.Context, id uint64, ledgerRef string, ledgerBlock int64,
	) (bool, error) {
		return false, nil
	}

	result, err := s.service.AnchorEvent(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, "0xwinner", result.TxRef)
	assert.Equal(t, int64(555), result.BlockRef)
}

func TestService_VerifyAnchoredEvent__Not_Anchored(t *testing.T) {
	s := newServiceTest()
	s.setEvent(storedEvent(7))

	_, err := s.service.VerifyAnchoredEvent(newContext(), 7)
	assert.Equal(t, ErrNotAnchored, err)
}

func TestService_VerifyAnchoredEvent(t *testing.T) {
	s := newServiceTest()

	event := storedEvent(7)
	event.AnchoringStatus = model.AnchoringStatusAnchored
	event.LedgerRef.Valid = true
	event.LedgerRef.String = "0xabc"
	event.LedgerBlock.Valid = true
	event.LedgerBlock.Int64 = 1234
	s.setEvent(event)

	s.ledgerClient.VerifyFunc = func(
		ctx context.Context, txRef string, blockRef int64, hash string,
	) (bool, error) {
		return true, nil
	}

	verification, err := s.service.VerifyAnchoredEvent(newContext(), 7)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, verification.Verified)
	assert.Equal(t, true, verification.IntegrityVerified)

	calls := s.ledgerClient.VerifyCalls()
	assert.Equal(t, "0xabc", calls[0].TxRef)
	assert.Equal(t, int64(1234), calls[0].BlockRef)
	assert.Equal(t, event.IntegrityHash, calls[0].Hash)
}

func TestService_AnchorUnanchoredEvents(t *testing.T) {
	s := newServiceTest()

	first := storedEvent(7)
	second := storedEvent(8)

	s.eventRepo.ListUnanchoredEventsFunc = func(
		ctx context.Context, createdBefore time.Time, limit int,
	) ([]model.Event, error) {
		return []model.Event{first, second}, nil
	}
	s.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		if id == 7 {
			return model.NullEvent{Valid: true, Event: first}, nil
		}
		return model.NullEvent{Valid: true, Event: second}, nil
	}
	s.ledgerClient.AnchorFunc = func(ctx context.Context, hash string) (ledger.AnchorResult, error) {
		if hash == first.IntegrityHash {
			return ledger.AnchorResult{TxRef: "0x7", BlockRef: 70}, nil
		}
		return ledger.AnchorResult{}, &ledger.UnavailableError{Err: errors.New("timeout")}
	}
	s.eventRepo.MarkAnchoredFunc = func(
		ctx context.Context, id uint64, ledgerRef string, ledgerBlock int64,
	) (bool, error) {
		return true, nil
	}
	s.eventRepo.MarkAnchorFailedFunc = func(ctx context.Context, id uint64) (bool, error) {
		return true, nil
	}

	report, err := s.service.AnchorUnanchoredEvents(newContext(), BatchAnchorOptions{
		MaxAge:    24 * time.Hour,
		BatchSize: 10,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Anchored)
	assert.Equal(t, 1, report.Failed)

	// cutoff honors the age threshold
	assert.Equal(t,
		time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC),
		s.eventRepo.ListUnanchoredEventsCalls()[0].CreatedBefore,
	)

	assert.Equal(t, "0x7", report.Results[0].TxRef)
	assert.NotEqual(t, nil, report.Results[1].Err)
}

func TestService_AnchorUnanchoredEvents__Dry_Run(t *testing.T) {
	s := newServiceTest()

	s.eventRepo.ListUnanchoredEventsFunc = func(
		ctx context.Context, createdBefore time.Time, limit int,
	) ([]model.Event, error) {
		return []model.Event{storedEvent(7)}, nil
	}

	report, err := s.service.AnchorUnanchoredEvents(newContext(), BatchAnchorOptions{
		MaxAge:    24 * time.Hour,
		BatchSize: 10,
		DryRun:    true,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 0, report.Anchored)
	assert.Equal(t, 0, len(s.ledgerClient.AnchorCalls()))
	assert.Equal(t, uint64(7), report.Results[0].EventID)
}

func TestService_VerifyAnchoredEvents(t *testing.T) {
	s := newServiceTest()

	good := storedEvent(7)
	good.AnchoringStatus = model.AnchoringStatusAnchored
	good.LedgerRef.Valid = true
	good.LedgerRef.String = "0x7"
	good.LedgerBlock.Valid = true
	good.LedgerBlock.Int64 = 70

	bad := storedEvent(8)
	bad.AnchoringStatus = model.AnchoringStatusAnchored
	bad.LedgerRef.Valid = true
	bad.LedgerRef.String = "0x8"
	bad.LedgerBlock.Valid = true
	bad.LedgerBlock.Int64 = 80
	bad.Description = "Batch recalled (edited)"

	flaky := storedEvent(9)
	flaky.AnchoringStatus = model.AnchoringStatusAnchored
	flaky.LedgerRef.Valid = true
	flaky.LedgerRef.String = "0x9"
	flaky.LedgerBlock.Valid = true
	flaky.LedgerBlock.Int64 = 90

	events := map[uint64]model.Event{7: good, 8: bad, 9: flaky}

	s.eventRepo.ListAnchoredEventsFunc = func(ctx context.Context, limit int) ([]model.Event, error) {
		return []model.Event{good, bad, flaky}, nil
	}
	s.eventRepo.GetEventFunc = func(ctx context.Context, id uint64) (model.NullEvent, error) {
		return model.NullEvent{Valid: true, Event: events[id]}, nil
	}
	s.ledgerClient.VerifyFunc = func(
		ctx context.Context, txRef string, blockRef int64, hash string,
	) (bool, error) {
		if txRef == "0x9" {
			return false, &ledger.UnavailableError{Err: errors.New("connection reset")}
		}
		return true, nil
	}

	report, err := s.service.VerifyAnchoredEvents(newContext(), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, 1, report.Verified)

	// a transport blip is not an integrity violation
	assert.Equal(t, []uint64{8}, report.Mismatched)
	assert.Equal(t, []uint64{9}, report.Errored)
}
