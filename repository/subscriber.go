package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/teofils1/supply-chain/model"
)

// Subscriber ...
type Subscriber interface {
	InsertSubscriber(ctx context.Context, subscriber model.Subscriber) (uint64, error)
	GetSubscriber(ctx context.Context, id uint64) (model.NullSubscriber, error)
	FindEscalationAdmin(ctx context.Context, excludeID uint64) (model.NullSubscriber, error)
}

type subscriberImpl struct {
}

// NewSubscriber ...
func NewSubscriber() Subscriber {
	return &subscriberImpl{}
}

const subscriberColumns = `id, email, phone, role, active, created_at, updated_at`

// InsertSubscriber ...
func (s *subscriberImpl) InsertSubscriber(
	ctx context.Context, subscriber model.Subscriber,
) (uint64, error) {
	query := `
INSERT INTO subscriber (email, phone, role, active)
VALUES (:email, :phone, :role, :active)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, subscriber)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetSubscriber ...
func (s *subscriberImpl) GetSubscriber(
	ctx context.Context, id uint64,
) (model.NullSubscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscriber WHERE id = ?`

	var subscriber model.Subscriber
	err := GetReadonly(ctx).GetContext(ctx, &subscriber, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullSubscriber{}, nil
	}
	if err != nil {
		return model.NullSubscriber{}, err
	}
	return model.NullSubscriber{Valid: true, Subscriber: subscriber}, nil
}

// FindEscalationAdmin returns the lowest id active admin other than the
// excluded recipient. The lowest id tie-break keeps the choice
// deterministic.
func (s *subscriberImpl) FindEscalationAdmin(
	ctx context.Context, excludeID uint64,
) (model.NullSubscriber, error) {
	query := `
SELECT ` + subscriberColumns + `
FROM subscriber
WHERE role = 'admin' AND active = TRUE AND id <> ?
ORDER BY id
LIMIT 1
`
	var subscriber model.Subscriber
	err := GetReadonly(ctx).GetContext(ctx, &subscriber, query, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullSubscriber{}, nil
	}
	if err != nil {
		return model.NullSubscriber{}, err
	}
	return model.NullSubscriber{Valid: true, Subscriber: subscriber}, nil
}
