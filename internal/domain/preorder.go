package domain

import "time"

// PreorderStatus represents lifecycle states for a pre-order.
type PreorderStatus string

const (
	PreorderStatusPending  PreorderStatus = "pending"
	PreorderStatusApproved PreorderStatus = "approved"
	PreorderStatusRejected PreorderStatus = "rejected"
)

// Preorder is an order awaiting admin review. Approval moves it into the
// order ledger; rejection keeps the row so the student can still see it.
type Preorder struct {
	ID         int64
	Name       string
	Enrollment string
	Category   string
	Items      string
	Status     PreorderStatus
	CreatedAt  time.Time
}
