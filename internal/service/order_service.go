package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/events"
	"github.com/spec-kit/mess-service/internal/menu"
	"github.com/spec-kit/mess-service/internal/repository"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

// MenuNames resolves menu item ids to display names for read-time rendering.
type MenuNames interface {
	ItemNames(ctx context.Context) (map[int]string, error)
}

// PlaceOrderInput describes an order submission. PayAtCounter is a required
// boolean in the request schema, defaulting to false.
type PlaceOrderInput struct {
	Items        string
	Name         string
	MessPass     string
	Preorder     bool
	Category     string
	PayAtCounter bool
}

// PlaceOrderResult mirrors the legacy response envelope.
type PlaceOrderResult struct {
	Status  string
	Message string
}

// OrderView is an order or approved preorder rendered for listing.
type OrderView struct {
	ID        int64     `json:"id"`
	Items     string    `json:"items"`
	Name      string    `json:"name"`
	MessPass  *string   `json:"mess_pass"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"`
}

// OrderService orchestrates order placement across the identity store, the
// order ledger and the pre-order workflow.
type OrderService struct {
	students   repository.StudentRepository
	orders     repository.OrderRepository
	preorders  repository.PreorderRepository
	menu       MenuNames
	dispatcher events.Dispatcher
}

// OrderDependencies bundles repo requirements for the order service.
type OrderDependencies struct {
	StudentRepo  repository.StudentRepository
	OrderRepo    repository.OrderRepository
	PreorderRepo repository.PreorderRepository
	Menu         MenuNames
	Dispatcher   events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		students:   deps.StudentRepo,
		orders:     deps.OrderRepo,
		preorders:  deps.PreorderRepo,
		menu:       deps.Menu,
		dispatcher: deps.Dispatcher,
	}
}

// Place runs the order orchestration. Pay-at-counter orders skip the identity
// check entirely; everything else validates the mess pass before branching
// into the pre-order or immediate path.
func (s *OrderService) Place(ctx context.Context, input PlaceOrderInput) (PlaceOrderResult, error) {
	if input.PayAtCounter {
		order := &domain.Order{Items: input.Items, Name: input.Name, MessPass: nil}
		if err := s.orders.Create(ctx, order); err != nil {
			return PlaceOrderResult{}, err
		}
		s.publish(ctx, events.EventOrderPlaced, events.OrderPlacedPayload{
			OrderID:      order.ID,
			PayAtCounter: true,
		})
		return PlaceOrderResult{Status: "success", Message: "Order placed, pay at the counter."}, nil
	}

	student, err := lookupByMessPass(ctx, s.students, input.MessPass)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if student == nil {
		return PlaceOrderResult{}, apperrors.NewInvalidMessPass()
	}

	if input.Preorder {
		category := input.Category
		if category == "" {
			category = "Unknown"
		}
		preorder := &domain.Preorder{
			Name:       input.Name,
			Enrollment: student.Enrollment,
			Category:   category,
			Items:      input.Items,
			Status:     domain.PreorderStatusPending,
		}
		if err := s.preorders.Create(ctx, preorder); err != nil {
			return PlaceOrderResult{}, err
		}
		s.publish(ctx, events.EventPreorderSubmitted, events.PreorderSubmittedPayload{
			PreorderID: preorder.ID,
			Enrollment: preorder.Enrollment,
			Category:   preorder.Category,
		})
		return PlaceOrderResult{Status: "pending", Message: "Pre-order sent for admin approval."}, nil
	}

	messPass := input.MessPass
	order := &domain.Order{Items: input.Items, Name: input.Name, MessPass: &messPass}
	if err := s.orders.Create(ctx, order); err != nil {
		return PlaceOrderResult{}, err
	}
	s.publish(ctx, events.EventOrderPlaced, events.OrderPlacedPayload{
		OrderID:  order.ID,
		MessPass: messPass,
	})
	return PlaceOrderResult{Status: "success"}, nil
}

// HistoryFor lists a student's orders plus any approved preorders still keyed
// by their enrollment, newest first within each group, items rendered against
// the menu.
func (s *OrderService) HistoryFor(ctx context.Context, messPass string) ([]OrderView, error) {
	names, err := s.menu.ItemNames(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByMessPass(ctx, messPass)
	if err != nil {
		return nil, err
	}
	result := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		result = append(result, renderOrder(order, names, "order"))
	}

	student, err := lookupByMessPass(ctx, s.students, messPass)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return result, nil
	}

	approved, err := s.preorders.ListApprovedByEnrollment(ctx, student.Enrollment)
	if err != nil {
		return nil, err
	}
	for _, preorder := range approved {
		mp := messPass
		result = append(result, OrderView{
			ID:        preorder.ID,
			Items:     menu.RenderItems(preorder.Items, names),
			Name:      preorder.Name,
			MessPass:  &mp,
			CreatedAt: preorder.CreatedAt,
			Type:      "preorder",
		})
	}
	return result, nil
}

// ListAll renders every order in the ledger, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]OrderView, error) {
	names, err := s.menu.ItemNames(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		result = append(result, renderOrder(order, names, "order"))
	}
	return result, nil
}

func renderOrder(order domain.Order, names map[int]string, kind string) OrderView {
	return OrderView{
		ID:        order.ID,
		Items:     menu.RenderItems(order.Items, names),
		Name:      order.Name,
		MessPass:  order.MessPass,
		CreatedAt: order.CreatedAt,
		Type:      kind,
	}
}

func (s *OrderService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
