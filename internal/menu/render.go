package menu

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spec-kit/mess-service/internal/domain"
)

// RenderItems turns the opaque serialized items payload of an order into a
// human-readable summary like "2x Masala Dosa, 1x Filter Coffee". Payloads
// that do not parse are returned verbatim.
func RenderItems(raw string, names map[int]string) string {
	var items []domain.OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return raw
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := names[item.MenuItemID]
		if !ok {
			name = "Unknown"
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, name))
	}
	return strings.Join(parts, ", ")
}
