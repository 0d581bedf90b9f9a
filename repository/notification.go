package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/teofils1/supply-chain/model"
)

// NotificationRule ...
type NotificationRule interface {
	InsertRule(ctx context.Context, rule model.NotificationRule) (uint64, error)
	GetRule(ctx context.Context, id uint64) (model.NullNotificationRule, error)
	UpdateRule(ctx context.Context, rule model.NotificationRule) (bool, error)
	SetRuleEnabled(ctx context.Context, id uint64, ownerID uint64, enabled bool) (bool, error)
	DeleteRule(ctx context.Context, id uint64, ownerID uint64) (bool, error)
	ListEnabledRules(ctx context.Context) ([]model.NotificationRule, error)
}

type notificationRuleImpl struct {
}

// NewNotificationRule ...
func NewNotificationRule() NotificationRule {
	return &notificationRuleImpl{}
}

const ruleColumns = `
id, owner_id, name, event_types, severity_levels, channels, enabled,
created_at, updated_at
`

// InsertRule ...
func (r *notificationRuleImpl) InsertRule(
	ctx context.Context, rule model.NotificationRule,
) (uint64, error) {
	query := `
INSERT INTO notification_rule (
	owner_id, name, event_types, severity_levels, channels, enabled
) VALUES (
	:owner_id, :name, :event_types, :severity_levels, :channels, :enabled
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, rule)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetRule ...
func (r *notificationRuleImpl) GetRule(
	ctx context.Context, id uint64,
) (model.NullNotificationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM notification_rule WHERE id = ?`

	var rule model.NotificationRule
	err := GetReadonly(ctx).GetContext(ctx, &rule, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullNotificationRule{}, nil
	}
	if err != nil {
		return model.NullNotificationRule{}, err
	}
	return model.NullNotificationRule{Valid: true, Rule: rule}, nil
}

// UpdateRule updates an owner's rule in place. The owner check keeps
// one subscriber from editing another's preferences.
func (r *notificationRuleImpl) UpdateRule(
	ctx context.Context, rule model.NotificationRule,
) (bool, error) {
	query := `
UPDATE notification_rule
SET name = :name, event_types = :event_types,
	severity_levels = :severity_levels, channels = :channels,
	enabled = :enabled
WHERE id = :id AND owner_id = :owner_id
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, rule)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetRuleEnabled ...
func (r *notificationRuleImpl) SetRuleEnabled(
	ctx context.Context, id uint64, ownerID uint64, enabled bool,
) (bool, error) {
	query := `
UPDATE notification_rule SET enabled = ?
WHERE id = ? AND owner_id = ?
`
	result, err := GetTx(ctx).ExecContext(ctx, query, enabled, id, ownerID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteRule ...
func (r *notificationRuleImpl) DeleteRule(
	ctx context.Context, id uint64, ownerID uint64,
) (bool, error) {
	query := `DELETE FROM notification_rule WHERE id = ? AND owner_id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListEnabledRules ...
func (r *notificationRuleImpl) ListEnabledRules(
	ctx context.Context,
) ([]model.NotificationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM notification_rule WHERE enabled = TRUE ORDER BY id`

	var result []model.NotificationRule
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// NotificationLog ...
type NotificationLog interface {
	InsertLog(ctx context.Context, log model.NotificationLog) (uint64, error)
	GetLog(ctx context.Context, id uint64) (model.NullNotificationLog, error)

	MarkSent(ctx context.Context, id uint64, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uint64, errorMessage string) error
	Acknowledge(ctx context.Context, id uint64, recipientID uint64, at time.Time) (bool, error)

	ListOverdueCritical(ctx context.Context, sentBefore time.Time, limit int) ([]model.NotificationLog, error)
	MarkEscalated(ctx context.Context, id uint64, escalatedTo uint64, at time.Time) (bool, error)
}

type notificationLogImpl struct {
}

// NewNotificationLog ...
func NewNotificationLog() NotificationLog {
	return &notificationLogImpl{}
}

const logColumns = `
id, event_id, recipient_id, rule_id, channel, status, sent_at,
acknowledged_at, error_message, escalated, escalated_to, escalated_at,
created_at, updated_at
`

// InsertLog ...
func (l *notificationLogImpl) InsertLog(
	ctx context.Context, log model.NotificationLog,
) (uint64, error) {
	query := `
INSERT INTO notification_log (
	event_id, recipient_id, rule_id, channel, status
) VALUES (
	:event_id, :recipient_id, :rule_id, :channel, :status
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, log)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetLog ...
func (l *notificationLogImpl) GetLog(
	ctx context.Context, id uint64,
) (model.NullNotificationLog, error) {
	query := `SELECT ` + logColumns + ` FROM notification_log WHERE id = ?`

	var log model.NotificationLog
	err := GetReadonly(ctx).GetContext(ctx, &log, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullNotificationLog{}, nil
	}
	if err != nil {
		return model.NullNotificationLog{}, err
	}
	return model.NullNotificationLog{Valid: true, Log: log}, nil
}

// MarkSent ...
func (l *notificationLogImpl) MarkSent(ctx context.Context, id uint64, sentAt time.Time) error {
	query := `
UPDATE notification_log SET status = 'sent', sent_at = ?
WHERE id = ? AND status = 'pending'
`
	_, err := GetTx(ctx).ExecContext(ctx, query, sentAt, id)
	return err
}

// MarkFailed ...
func (l *notificationLogImpl) MarkFailed(ctx context.Context, id uint64, errorMessage string) error {
	query := `
UPDATE notification_log SET status = 'failed', error_message = ?
WHERE id = ? AND status = 'pending'
`
	_, err := GetTx(ctx).ExecContext(ctx, query, errorMessage, id)
	return err
}

// Acknowledge transitions a sent notification to acknowledged for its
// recipient. Returns false when the log is missing, owned by another
// recipient, or already acknowledged.
func (l *notificationLogImpl) Acknowledge(
	ctx context.Context, id uint64, recipientID uint64, at time.Time,
) (bool, error) {
	query := `
UPDATE notification_log SET status = 'acknowledged', acknowledged_at = ?
WHERE id = ? AND recipient_id = ? AND status = 'sent'
`
	result, err := GetTx(ctx).ExecContext(ctx, query, at, id, recipientID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListOverdueCritical returns sent, unescalated, unacknowledged logs of
// critical events whose delivery is older than the cutoff.
func (l *notificationLogImpl) ListOverdueCritical(
	ctx context.Context, sentBefore time.Time, limit int,
) ([]model.NotificationLog, error) {
	query := `
SELECT n.id, n.event_id, n.recipient_id, n.rule_id, n.channel, n.status,
	n.sent_at, n.acknowledged_at, n.error_message,
	n.escalated, n.escalated_to, n.escalated_at,
	n.created_at, n.updated_at
FROM notification_log n
JOIN event e ON e.id = n.event_id
WHERE n.status = 'sent' AND n.escalated = FALSE
	AND n.sent_at < ? AND e.severity = 'critical'
ORDER BY n.sent_at
LIMIT ?
`
	var result []model.NotificationLog
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, sentBefore, limit)
	return result, err
}

// MarkEscalated is the single compare-and-set making escalation
// exactly-once: the escalated flag only flips when still false.
func (l *notificationLogImpl) MarkEscalated(
	ctx context.Context, id uint64, escalatedTo uint64, at time.Time,
) (bool, error) {
	query := `
UPDATE notification_log
SET escalated = TRUE, escalated_to = ?, escalated_at = ?
WHERE id = ? AND escalated = FALSE
`
	result, err := GetTx(ctx).ExecContext(ctx, query, escalatedTo, at, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
