package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/events"
	"github.com/spec-kit/mess-service/internal/menu"
	"github.com/spec-kit/mess-service/internal/repository"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

// PreorderView is a preorder rendered for the student view.
type PreorderView struct {
	ID        int64     `json:"id"`
	Items     string    `json:"items"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PreorderService coordinates the pre-order workflow.
type PreorderService struct {
	students   repository.StudentRepository
	preorders  repository.PreorderRepository
	menu       MenuNames
	dispatcher events.Dispatcher
}

// PreorderDependencies bundles repo requirements for the preorder service.
type PreorderDependencies struct {
	StudentRepo  repository.StudentRepository
	PreorderRepo repository.PreorderRepository
	Menu         MenuNames
	Dispatcher   events.Dispatcher
}

// NewPreorderService builds the service.
func NewPreorderService(deps PreorderDependencies) *PreorderService {
	return &PreorderService{
		students:   deps.StudentRepo,
		preorders:  deps.PreorderRepo,
		menu:       deps.Menu,
		dispatcher: deps.Dispatcher,
	}
}

// Submit records a new pending preorder.
func (s *PreorderService) Submit(ctx context.Context, name, enrollment, category, items string) (*domain.Preorder, error) {
	preorder := &domain.Preorder{
		Name:       name,
		Enrollment: enrollment,
		Category:   category,
		Items:      items,
		Status:     domain.PreorderStatusPending,
	}
	if err := s.preorders.Create(ctx, preorder); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventPreorderSubmitted, events.PreorderSubmittedPayload{
		PreorderID: preorder.ID,
		Enrollment: preorder.Enrollment,
		Category:   preorder.Category,
	})
	return preorder, nil
}

// Decide approves or rejects a pending preorder. Approval moves the row into
// the order ledger atomically; rejection updates status in place.
func (s *PreorderService) Decide(ctx context.Context, id int64, approve bool) (string, error) {
	if approve {
		if err := s.preorders.Approve(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", apperrors.NewPreorderNotFound(id)
			}
			return "", err
		}
		s.publish(ctx, events.EventPreorderApproved, events.PreorderDecidedPayload{PreorderID: id, Approved: true})
		return "approved-moved", nil
	}

	if err := s.preorders.Reject(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewPreorderNotFound(id)
		}
		return "", err
	}
	s.publish(ctx, events.EventPreorderRejected, events.PreorderDecidedPayload{PreorderID: id, Approved: false})
	return "rejected", nil
}

// ListAll returns every preorder, newest first, for the admin queue.
func (s *PreorderService) ListAll(ctx context.Context) ([]domain.Preorder, error) {
	return s.preorders.ListAll(ctx)
}

// ListForMessPass returns the student's preorders via the mess-pass to
// enrollment indirection. An unknown mess pass yields an empty list.
func (s *PreorderService) ListForMessPass(ctx context.Context, messPass string) ([]PreorderView, error) {
	student, err := lookupByMessPass(ctx, s.students, messPass)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return []PreorderView{}, nil
	}

	preorders, err := s.preorders.ListByEnrollment(ctx, student.Enrollment)
	if err != nil {
		return nil, err
	}
	names, err := s.menu.ItemNames(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PreorderView, 0, len(preorders))
	for _, preorder := range preorders {
		result = append(result, PreorderView{
			ID:        preorder.ID,
			Items:     menu.RenderItems(preorder.Items, names),
			Status:    string(preorder.Status),
			CreatedAt: preorder.CreatedAt,
		})
	}
	return result, nil
}

func (s *PreorderService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
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
