package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/mess-service/internal/domain"
	"github.com/spec-kit/mess-service/internal/events"
	"github.com/spec-kit/mess-service/internal/repository"
	apperrors "github.com/spec-kit/mess-service/pkg/util/errorutil"
)

// CurrentSubscription is the derived "current" view: the latest history row,
// authoritative only while its own status is active.
type CurrentSubscription struct {
	Duration string
	Active   bool
}

// SubscriptionService manages the append-only subscription history.
type SubscriptionService struct {
	students      repository.StudentRepository
	subscriptions repository.SubscriptionRepository
	dispatcher    events.Dispatcher
}

// SubscriptionDependencies bundles repo requirements for the subscription service.
type SubscriptionDependencies struct {
	StudentRepo      repository.StudentRepository
	SubscriptionRepo repository.SubscriptionRepository
	Dispatcher       events.Dispatcher
}

// NewSubscriptionService builds the service.
func NewSubscriptionService(deps SubscriptionDependencies) *SubscriptionService {
	return &SubscriptionService{
		students:      deps.StudentRepo,
		subscriptions: deps.SubscriptionRepo,
		dispatcher:    deps.Dispatcher,
	}
}

// Subscribe appends a new active row for the student behind the mess pass.
// Prior rows are never touched; only the latest row is authoritative.
func (s *SubscriptionService) Subscribe(ctx context.Context, messPass, duration string) (*domain.Subscription, error) {
	student, err := lookupByMessPass(ctx, s.students, messPass)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewStudentNotFound()
	}

	sub := &domain.Subscription{
		StudentID: student.ID,
		Duration:  duration,
		Status:    domain.SubscriptionStatusActive,
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventSubscriptionStarted, events.SubscriptionChangedPayload{
		StudentID: student.ID,
		Duration:  duration,
	})
	return sub, nil
}

// Current derives the current subscription. A missing student or an empty
// history is an explicit inactive state, never an error.
func (s *SubscriptionService) Current(ctx context.Context, messPass string) (CurrentSubscription, error) {
	latest, err := s.latest(ctx, messPass)
	if err != nil || latest == nil {
		return CurrentSubscription{}, err
	}
	if latest.Status != domain.SubscriptionStatusActive {
		return CurrentSubscription{}, nil
	}
	return CurrentSubscription{Duration: latest.Duration, Active: true}, nil
}

// Status returns the latest row's duration regardless of status, or "" when
// there is no history.
func (s *SubscriptionService) Status(ctx context.Context, messPass string) (string, error) {
	latest, err := s.latest(ctx, messPass)
	if err != nil || latest == nil {
		return "", err
	}
	return latest.Duration, nil
}

// Cancel flips the latest active row to cancelled. No active row is a silent
// no-op; an unknown mess pass is the caller's error.
func (s *SubscriptionService) Cancel(ctx context.Context, messPass string) error {
	student, err := lookupByMessPass(ctx, s.students, messPass)
	if err != nil {
		return err
	}
	if student == nil {
		return apperrors.NewStudentNotFound()
	}

	cancelled, err := s.subscriptions.CancelLatestActive(ctx, student.ID)
	if err != nil {
		return err
	}
	if cancelled {
		s.publish(ctx, events.EventSubscriptionCancelled, events.SubscriptionChangedPayload{
			StudentID: student.ID,
		})
	}
	return nil
}

func (s *SubscriptionService) latest(ctx context.Context, messPass string) (*domain.Subscription, error) {
	student, err := lookupByMessPass(ctx, s.students, messPass)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}
	latest, err := s.subscriptions.LatestByStudent(ctx, student.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return latest, nil
}

func (s *SubscriptionService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
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
