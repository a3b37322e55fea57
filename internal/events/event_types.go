package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderPlaced           EventType = "order_placed"
	EventPreorderSubmitted     EventType = "preorder_submitted"
	EventPreorderApproved      EventType = "preorder_approved"
	EventPreorderRejected      EventType = "preorder_rejected"
	EventSubscriptionStarted   EventType = "subscription_started"
	EventSubscriptionCancelled EventType = "subscription_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID      int64  `json:"order_id"`
	MessPass     string `json:"mess_pass,omitempty"`
	PayAtCounter bool   `json:"pay_at_counter"`
}

// PreorderSubmittedPayload payload.
type PreorderSubmittedPayload struct {
	PreorderID int64  `json:"preorder_id"`
	Enrollment string `json:"enrollment"`
	Category   string `json:"category"`
}

// PreorderDecidedPayload payload for approvals and rejections.
type PreorderDecidedPayload struct {
	PreorderID int64 `json:"preorder_id"`
	Approved   bool  `json:"approved"`
}

// SubscriptionChangedPayload payload for starts and cancellations.
type SubscriptionChangedPayload struct {
	StudentID int64  `json:"student_id"`
	Duration  string `json:"duration,omitempty"`
}
