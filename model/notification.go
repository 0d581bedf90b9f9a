package model

import (
	"database/sql"
	"time"
)

// Channel ...
type Channel string

// Channel values
const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
	ChannelSMS   Channel = "sms"
)

var validChannels = map[Channel]struct{}{
	ChannelEmail: {}, ChannelPush: {}, ChannelSMS: {},
}

// Valid ...
func (c Channel) Valid() bool {
	_, ok := validChannels[c]
	return ok
}

// NotificationRule is a subscriber's delivery preference. Empty
// event type / severity lists match every event.
type NotificationRule struct {
	ID      uint64 `db:"id"`
	OwnerID uint64 `db:"owner_id"`
	Name    string `db:"name"`

	EventTypes     JSONStrings `db:"event_types"`
	SeverityLevels JSONStrings `db:"severity_levels"`
	Channels       JSONStrings `db:"channels"`

	Enabled bool `db:"enabled"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NotificationStatus ...
type NotificationStatus string

// NotificationStatus values
const (
	NotificationStatusPending      NotificationStatus = "pending"
	NotificationStatusSent         NotificationStatus = "sent"
	NotificationStatusFailed       NotificationStatus = "failed"
	NotificationStatusAcknowledged NotificationStatus = "acknowledged"
)

// NotificationLog records one delivery attempt and its outcome.
// RuleID is nullable: a rule may be deleted after it fired.
type NotificationLog struct {
	ID          uint64        `db:"id"`
	EventID     uint64        `db:"event_id"`
	RecipientID uint64        `db:"recipient_id"`
	RuleID      sql.NullInt64 `db:"rule_id"`

	Channel Channel            `db:"channel"`
	Status  NotificationStatus `db:"status"`

	SentAt         sql.NullTime `db:"sent_at"`
	AcknowledgedAt sql.NullTime `db:"acknowledged_at"`
	ErrorMessage   string       `db:"error_message"`

	Escalated   bool          `db:"escalated"`
	EscalatedTo sql.NullInt64 `db:"escalated_to"`
	EscalatedAt sql.NullTime  `db:"escalated_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
