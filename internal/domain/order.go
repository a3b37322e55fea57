package domain

import "time"

// Order is an immutable ledger row for a placed order. MessPass is nil for
// pay-at-counter orders.
type Order struct {
	ID        int64
	Items     string
	Name      string
	MessPass  *string
	CreatedAt time.Time
}

// OrderItem is one line of the serialized items payload stored on orders and
// preorders. Item names are resolved against the menu only at read time.
type OrderItem struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}
