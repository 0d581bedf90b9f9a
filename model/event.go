package model

import (
	"database/sql"
	"time"
)

// Event is an immutable audit record of a supply chain occurrence.
// Only the anchoring fields change after creation.
type Event struct {
	ID uint64 `db:"id"`

	EventType  EventType  `db:"event_type"`
	EntityType EntityType `db:"entity_type"`
	EntityID   uint64     `db:"entity_id"`

	Description string   `db:"description"`
	Severity    Severity `db:"severity"`
	Location    string   `db:"location"`
	Metadata    JSONMap  `db:"metadata"`

	ActorID   sql.NullInt64 `db:"actor_id"`
	Timestamp time.Time     `db:"timestamp"`

	IntegrityHash   string          `db:"integrity_hash"`
	AnchoringStatus AnchoringStatus `db:"anchoring_status"`
	LedgerRef       sql.NullString  `db:"ledger_ref"`
	LedgerBlock     sql.NullInt64   `db:"ledger_block"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// EventType ...
type EventType string

// EventType values
const (
	EventTypeCreated          EventType = "created"
	EventTypeUpdated          EventType = "updated"
	EventTypeDeleted          EventType = "deleted"
	EventTypeStatusChanged    EventType = "status_changed"
	EventTypeLocationChanged  EventType = "location_changed"
	EventTypeQualityCheck     EventType = "quality_check"
	EventTypeTemperatureAlert EventType = "temperature_alert"
	EventTypeShipped          EventType = "shipped"
	EventTypeDelivered        EventType = "delivered"
	EventTypeReturned         EventType = "returned"
	EventTypeDamaged          EventType = "damaged"
	EventTypeExpired          EventType = "expired"
	EventTypeRecalled         EventType = "recalled"
	EventTypeInventoryCount   EventType = "inventory_count"
	EventTypeMaintenance      EventType = "maintenance"
	EventTypeCalibration      EventType = "calibration"
	EventTypeUserAction       EventType = "user_action"
	EventTypeSystemAction     EventType = "system_action"
	EventTypeAlert            EventType = "alert"
	EventTypeWarning          EventType = "warning"
	EventTypeError            EventType = "error"
	EventTypeOther            EventType = "other"
)

var validEventTypes = map[EventType]struct{}{
	EventTypeCreated: {}, EventTypeUpdated: {}, EventTypeDeleted: {},
	EventTypeStatusChanged: {}, EventTypeLocationChanged: {},
	EventTypeQualityCheck: {}, EventTypeTemperatureAlert: {},
	EventTypeShipped: {}, EventTypeDelivered: {}, EventTypeReturned: {},
	EventTypeDamaged: {}, EventTypeExpired: {}, EventTypeRecalled: {},
	EventTypeInventoryCount: {}, EventTypeMaintenance: {},
	EventTypeCalibration: {}, EventTypeUserAction: {},
	EventTypeSystemAction: {}, EventTypeAlert: {}, EventTypeWarning: {},
	EventTypeError: {}, EventTypeOther: {},
}

// Valid ...
func (t EventType) Valid() bool {
	_, ok := validEventTypes[t]
	return ok
}

// EntityType ...
type EntityType string

// EntityType values
const (
	EntityTypeProduct  EntityType = "product"
	EntityTypeBatch    EntityType = "batch"
	EntityTypePack     EntityType = "pack"
	EntityTypeShipment EntityType = "shipment"
	EntityTypeUser     EntityType = "user"
	EntityTypeDevice   EntityType = "device"
	EntityTypeLocation EntityType = "location"
	EntityTypeSystem   EntityType = "system"
)

var validEntityTypes = map[EntityType]struct{}{
	EntityTypeProduct: {}, EntityTypeBatch: {}, EntityTypePack: {},
	EntityTypeShipment: {}, EntityTypeUser: {}, EntityTypeDevice: {},
	EntityTypeLocation: {}, EntityTypeSystem: {},
}

// Valid ...
func (t EntityType) Valid() bool {
	_, ok := validEntityTypes[t]
	return ok
}

// Severity ...
type Severity string

// Severity values, ordered info < low < medium < high < critical
const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRanks = map[Severity]int{
	SeverityInfo:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Valid ...
func (s Severity) Valid() bool {
	_, ok := severityRanks[s]
	return ok
}

// Rank returns the ordering position of the severity, info being lowest.
func (s Severity) Rank() int {
	return severityRanks[s]
}

// AnchoringStatus ...
type AnchoringStatus string

// AnchoringStatus values
const (
	AnchoringStatusPending  AnchoringStatus = "pending"
	AnchoringStatusAnchored AnchoringStatus = "anchored"
	AnchoringStatusFailed   AnchoringStatus = "failed"
)
