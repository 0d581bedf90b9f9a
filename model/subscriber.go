package model

import "time"

// SubscriberRole ...
type SubscriberRole string

// SubscriberRole values
const (
	SubscriberRoleAdmin    SubscriberRole = "admin"
	SubscriberRoleOperator SubscriberRole = "operator"
	SubscriberRoleAuditor  SubscriberRole = "auditor"
	SubscriberRoleViewer   SubscriberRole = "viewer"
)

// Subscriber is a notification recipient. Escalations go to active
// admins only.
type Subscriber struct {
	ID    uint64         `db:"id"`
	Email string         `db:"email"`
	Phone string         `db:"phone"`
	Role  SubscriberRole `db:"role"`

	Active bool `db:"active"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
