package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/teofils1/supply-chain/model"
)

// Event ...
type Event interface {
	InsertEvent(ctx context.Context, event model.Event) (uint64, error)
	GetEvent(ctx context.Context, id uint64) (model.NullEvent, error)
	UpdateIntegrityHash(ctx context.Context, id uint64, hash string) error

	MarkAnchored(ctx context.Context, id uint64, ledgerRef string, ledgerBlock int64) (bool, error)
	MarkAnchorFailed(ctx context.Context, id uint64) (bool, error)

	ListUnanchoredEvents(ctx context.Context, createdBefore time.Time, limit int) ([]model.Event, error)
	ListAnchoredEvents(ctx context.Context, limit int) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

const eventColumns = `
id, event_type, entity_type, entity_id, description, severity, location,
metadata, actor_id, timestamp, integrity_hash, anchoring_status,
ledger_ref, ledger_block, created_at, updated_at
`

// InsertEvent ...
func (e *eventImpl) InsertEvent(ctx context.Context, event model.Event) (uint64, error) {
	query := `
INSERT INTO event (
	event_type, entity_type, entity_id, description, severity, location,
	metadata, actor_id, timestamp, integrity_hash, anchoring_status
) VALUES (
	:event_type, :entity_type, :entity_id, :description, :severity, :location,
	:metadata, :actor_id, :timestamp, :integrity_hash, :anchoring_status
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetEvent ...
func (e *eventImpl) GetEvent(ctx context.Context, id uint64) (model.NullEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM event WHERE id = ?`

	var event model.Event
	err := GetReadonly(ctx).GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullEvent{}, nil
	}
	if err != nil {
		return model.NullEvent{}, err
	}
	return model.NullEvent{Valid: true, Event: event}, nil
}

// UpdateIntegrityHash replaces the stored hash after an administrative
// correction. The previous hash is not retained.
func (e *eventImpl) UpdateIntegrityHash(ctx context.Context, id uint64, hash string) error {
	query := `UPDATE event SET integrity_hash = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, hash, id)
	return err
}

// MarkAnchored transitions pending or failed to anchored. Anchored is
// terminal, so an already anchored event is left untouched.
func (e *eventImpl) MarkAnchored(
	ctx context.Context, id uint64, ledgerRef string, ledgerBlock int64,
) (bool, error) {
	query := `
UPDATE event
SET anchoring_status = 'anchored', ledger_ref = ?, ledger_block = ?
WHERE id = ? AND anchoring_status IN ('pending', 'failed')
`
	result, err := GetTx(ctx).ExecContext(ctx, query, ledgerRef, ledgerBlock, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkAnchorFailed ...
func (e *eventImpl) MarkAnchorFailed(ctx context.Context, id uint64) (bool, error) {
	query := `
UPDATE event SET anchoring_status = 'failed'
WHERE id = ? AND anchoring_status = 'pending'
`
	result, err := GetTx(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListUnanchoredEvents returns pending and previously failed events old
// enough for the batch anchoring maintenance command.
func (e *eventImpl) ListUnanchoredEvents(
	ctx context.Context, createdBefore time.Time, limit int,
) ([]model.Event, error) {
	query := `
SELECT ` + eventColumns + `
FROM event
WHERE anchoring_status IN ('pending', 'failed') AND created_at <= ?
ORDER BY created_at
LIMIT ?
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, createdBefore, limit)
	return result, err
}

// ListAnchoredEvents ...
func (e *eventImpl) ListAnchoredEvents(ctx context.Context, limit int) ([]model.Event, error) {
	query := `
SELECT ` + eventColumns + `
FROM event
WHERE anchoring_status = 'anchored'
ORDER BY created_at
LIMIT ?
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, limit)
	return result, err
}
