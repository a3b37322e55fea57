package domain

import "time"

// SubscriptionStatus represents lifecycle states for a subscription row.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is one row of the append-only subscription history. The latest
// row per student is authoritative; it counts as active only while its own
// status is active.
type Subscription struct {
	ID        int64
	StudentID int64
	Duration  string
	Status    SubscriptionStatus
	CreatedAt time.Time
}
