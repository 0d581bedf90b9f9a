package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teofils1/supply-chain/model"
	"github.com/teofils1/supply-chain/pkg/canonhash"
	"github.com/teofils1/supply-chain/pkg/ledger"
	"github.com/teofils1/supply-chain/pkg/otellib"
	"github.com/teofils1/supply-chain/repository"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -rm -out service_mocks.go . IService

// IService is the audit event log: the single write path for events
// and the operator surface for integrity and anchoring checks.
type IService interface {
	RecordEvent(ctx context.Context, input RecordEventInput) (RecordEventOutput, error)
	VerifyIntegrity(ctx context.Context, eventID uint64) (IntegrityReport, error)
	AnchorEvent(ctx context.Context, eventID uint64) (ledger.AnchorResult, error)
	VerifyAnchoredEvent(ctx context.Context, eventID uint64) (AnchorVerification, error)
	AnchorUnanchoredEvents(ctx context.Context, opts BatchAnchorOptions) (BatchAnchorReport, error)
	VerifyAnchoredEvents(ctx context.Context, limit int) (VerifySweepReport, error)
}

// EventIntake receives ids of newly recorded events. Enqueue must not
// block; it reports whether the id was accepted.
type EventIntake interface {
	Enqueue(eventID uint64) bool
}

// RecordEventInput ...
type RecordEventInput struct {
	EventType   model.EventType
	EntityType  model.EntityType
	EntityID    uint64
	Description string
	Severity    model.Severity
	Location    string
	Metadata    model.JSONMap
	ActorID     *uint64
}

// RecordEventOutput ...
type RecordEventOutput struct {
	ID              uint64
	IntegrityHash   string
	AnchoringStatus model.AnchoringStatus
}

// IntegrityReport ...
type IntegrityReport struct {
	StoredHash   string
	ComputedHash string
	Verified     bool
}

// AnchorVerification ...
type AnchorVerification struct {
	Verified          bool
	IntegrityVerified bool
	TxRef             string
	BlockRef          int64
	StoredHash        string
	ComputedHash      string
}

// BatchAnchorOptions ...
type BatchAnchorOptions struct {
	MaxAge    time.Duration
	BatchSize int
	DryRun    bool
}

// EventAnchorResult is the per-event outcome of a batch anchoring run.
type EventAnchorResult struct {
	EventID uint64
	TxRef   string
	Err     error
}

// BatchAnchorReport ...
type BatchAnchorReport struct {
	Scanned  int
	Anchored int
	Failed   int
	Results  []EventAnchorResult
}

// VerifySweepReport separates integrity violations from events whose
// check did not complete; only Mismatched ids are tamper signals.
type VerifySweepReport struct {
	Checked    int
	Verified   int
	Mismatched []uint64
	Errored    []uint64
}

// Service ...
type Service struct {
	provider     repository.Provider
	eventRepo    repository.Event
	ledgerClient ledger.Client
	intake       EventIntake

	nowFunc func() time.Time
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider, eventRepo repository.Event,
	ledgerClient ledger.Client, intake EventIntake,
) *Service {
	return &Service{
		provider:     provider,
		eventRepo:    eventRepo,
		ledgerClient: ledgerClient,
		intake:       intake,

		// DATETIME(6) keeps microseconds; assign no more than that so
		// the stored timestamp equals the hashed one
		nowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func validateInput(input RecordEventInput) error {
	if input.EventType == "" {
		return &MissingFieldError{Field: "event_type"}
	}
	if !input.EventType.Valid() {
		return &InvalidEnumError{Field: "event_type", Value: string(input.EventType)}
	}
	if input.EntityType == "" {
		return &MissingFieldError{Field: "entity_type"}
	}
	if !input.EntityType.Valid() {
		return &InvalidEnumError{Field: "entity_type", Value: string(input.EntityType)}
	}
	if input.EntityID == 0 {
		return &MissingFieldError{Field: "entity_id"}
	}
	if input.Description == "" {
		return &MissingFieldError{Field: "description"}
	}
	if input.Severity != "" && !input.Severity.Valid() {
		return &InvalidEnumError{Field: "severity", Value: string(input.Severity)}
	}
	return nil
}

// RecordEvent validates, persists and hashes a new event, then hands
// its id to the dispatcher intake. Notification-side problems never
// fail the call; only malformed input does.
func (s *Service) RecordEvent(
	ctx context.Context, input RecordEventInput,
) (RecordEventOutput, error) {
	if err := validateInput(input); err != nil {
		return RecordEventOutput{}, err
	}

	severity := input.Severity
	if severity == "" {
		severity = model.SeverityInfo
	}

	event := model.Event{
		EventType:       input.EventType,
		EntityType:      input.EntityType,
		EntityID:        input.EntityID,
		Description:     input.Description,
		Severity:        severity,
		Location:        input.Location,
		Metadata:        input.Metadata,
		Timestamp:       s.nowFunc(),
		AnchoringStatus: model.AnchoringStatusPending,
	}
	if input.ActorID != nil {
		event.ActorID = sql.NullInt64{Valid: true, Int64: int64(*input.ActorID)}
	}

	var output RecordEventOutput
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.eventRepo.InsertEvent(ctx, event)
		if err != nil {
			return err
		}
		event.ID = id

		hash, err := canonhash.Compute(eventContent(event))
		if err != nil {
			return err
		}
		if err := s.eventRepo.UpdateIntegrityHash(ctx, id, hash); err != nil {
			return err
		}

		output = RecordEventOutput{
			ID:              id,
			IntegrityHash:   hash,
			AnchoringStatus: model.AnchoringStatusPending,
		}
		return nil
	})
	if err != nil {
		return RecordEventOutput{}, err
	}

	eventsRecordedTotal.Inc()

	if !s.intake.Enqueue(output.ID) {
		intakeDroppedTotal.Inc()
		otellib.Extract(ctx).Warn("notification intake rejected event",
			zap.Uint64("event_id", output.ID))
	}
	return output, nil
}

// VerifyIntegrity recomputes the hash and compares. A mismatch is
// reported as data, never auto-corrected.
func (s *Service) VerifyIntegrity(ctx context.Context, eventID uint64) (IntegrityReport, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return IntegrityReport{}, err
	}

	computed, err := canonhash.Compute(eventContent(event))
	if err != nil {
		return IntegrityReport{}, err
	}

	return IntegrityReport{
		StoredHash:   event.IntegrityHash,
		ComputedHash: computed,
		Verified:     event.IntegrityHash == computed,
	}, nil
}

// AnchorEvent submits the event's hash to the ledger. Idempotent: an
// already anchored event returns its stored references without a
// second ledger call.
func (s *Service) AnchorEvent(ctx context.Context, eventID uint64) (ledger.AnchorResult, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return ledger.AnchorResult{}, err
	}

	if event.AnchoringStatus == model.AnchoringStatusAnchored {
		return ledger.AnchorResult{
			TxRef:    event.LedgerRef.String,
			BlockRef: event.LedgerBlock.Int64,
		}, nil
	}

	result, anchorErr := s.ledgerClient.Anchor(ctx, event.IntegrityHash)
	if anchorErr != nil {
		anchoringFailuresTotal.Inc()
		err := s.provider.Transact(ctx, func(ctx context.Context) error {
			_, err := s.eventRepo.MarkAnchorFailed(ctx, eventID)
			return err
		})
		if err != nil {
			otellib.Extract(ctx).Error("recording anchoring failure",
				zap.Uint64("event_id", eventID), zap.Error(err))
		}
		if ledger.IsRetryable(anchorErr) {
			return ledger.AnchorResult{}, fmt.Errorf("%w: %v", ErrAnchoringUnavailable, anchorErr)
		}
		return ledger.AnchorResult{}, anchorErr
	}

	var won bool
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		won, err = s.eventRepo.MarkAnchored(ctx, eventID, result.TxRef, result.BlockRef)
		return err
	})
	if err != nil {
		return ledger.AnchorResult{}, err
	}
	if !won {
		// a concurrent caller anchored first; its references stand
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return ledger.AnchorResult{}, err
		}
		return ledger.AnchorResult{
			TxRef:    event.LedgerRef.String,
			BlockRef: event.LedgerBlock.Int64,
		}, nil
	}

	eventsAnchoredTotal.Inc()
	return result, nil
}

// VerifyAnchoredEvent checks the ledger reference and the integrity
// hash of an anchored event.
func (s *Service) VerifyAnchoredEvent(
	ctx context.Context, eventID uint64,
) (AnchorVerification, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return AnchorVerification{}, err
	}

	if event.AnchoringStatus != model.AnchoringStatusAnchored {
		return AnchorVerification{}, ErrNotAnchored
	}

	verified, err := s.ledgerClient.Verify(ctx,
		event.LedgerRef.String, event.LedgerBlock.Int64, event.IntegrityHash)
	if err != nil {
		if ledger.IsRetryable(err) {
			return AnchorVerification{}, fmt.Errorf("%w: %v", ErrAnchoringUnavailable, err)
		}
		return AnchorVerification{}, err
	}

	computed, err := canonhash.Compute(eventContent(event))
	if err != nil {
		return AnchorVerification{}, err
	}

	return AnchorVerification{
		Verified:          verified,
		IntegrityVerified: event.IntegrityHash == computed,
		TxRef:             event.LedgerRef.String,
		BlockRef:          event.LedgerBlock.Int64,
		StoredHash:        event.IntegrityHash,
		ComputedHash:      computed,
	}, nil
}

// AnchorUnanchoredEvents anchors pending and previously failed events
// older than MaxAge, in one bounded batch. One event's failure never
// stops the rest.
func (s *Service) AnchorUnanchoredEvents(
	ctx context.Context, opts BatchAnchorOptions,
) (BatchAnchorReport, error) {
	cutoff := s.nowFunc().Add(-opts.MaxAge)

	readonlyCtx := s.provider.Readonly(ctx)
	events, err := s.eventRepo.ListUnanchoredEvents(readonlyCtx, cutoff, opts.BatchSize)
	if err != nil {
		return BatchAnchorReport{}, err
	}

	report := BatchAnchorReport{Scanned: len(events)}
	if opts.DryRun {
		for _, event := range events {
			report.Results = append(report.Results, EventAnchorResult{EventID: event.ID})
		}
		return report, nil
	}

	for _, event := range events {
		result, err := s.AnchorEvent(ctx, event.ID)
		if err != nil {
			report.Failed++
			report.Results = append(report.Results, EventAnchorResult{
				EventID: event.ID,
				Err:     err,
			})
			continue
		}
		report.Anchored++
		report.Results = append(report.Results, EventAnchorResult{
			EventID: event.ID,
			TxRef:   result.TxRef,
		})
	}
	return report, nil
}

// VerifyAnchoredEvents re-verifies a bounded batch of anchored events
// and reports the ids whose ledger proof or hash no longer match.
func (s *Service) VerifyAnchoredEvents(ctx context.Context, limit int) (VerifySweepReport, error) {
	readonlyCtx := s.provider.Readonly(ctx)
	events, err := s.eventRepo.ListAnchoredEvents(readonlyCtx, limit)
	if err != nil {
		return VerifySweepReport{}, err
	}

	report := VerifySweepReport{Checked: len(events)}
	for _, event := range events {
		verification, err := s.VerifyAnchoredEvent(ctx, event.ID)
		if err != nil {
			otellib.Extract(ctx).Warn("anchored event verification did not complete",
				zap.Uint64("event_id", event.ID), zap.Error(err))
			report.Errored = append(report.Errored, event.ID)
			continue
		}
		if !verification.Verified || !verification.IntegrityVerified {
			report.Mismatched = append(report.Mismatched, event.ID)
			continue
		}
		report.Verified++
	}
	return report, nil
}

func (s *Service) getEvent(ctx context.Context, eventID uint64) (model.Event, error) {
	readonlyCtx := s.provider.Readonly(ctx)
	nullEvent, err := s.eventRepo.GetEvent(readonlyCtx, eventID)
	if err != nil {
		return model.Event{}, err
	}
	if !nullEvent.Valid {
		return model.Event{}, ErrEventNotFound
	}
	return nullEvent.Event, nil
}

func eventContent(event model.Event) canonhash.EventContent {
	var actorID *uint64
	if event.ActorID.Valid {
		id := uint64(event.ActorID.Int64)
		actorID = &id
	}
	return canonhash.EventContent{
		ID:          event.ID,
		EventType:   string(event.EventType),
		EntityType:  string(event.EntityType),
		EntityID:    event.EntityID,
		Description: event.Description,
		Timestamp:   event.Timestamp,
		Severity:    string(event.Severity),
		Location:    event.Location,
		Metadata:    event.Metadata,
		ActorID:     actorID,
	}
}
