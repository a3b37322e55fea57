package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/mess-service/internal/events"
)

// NotificationService reacts to domain events. The current sink is the log;
// the subscription points are where mail or push delivery would hang off.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to every domain event.
func (s *NotificationService) RegisterHandlers() {
	for _, eventType := range []events.EventType{
		events.EventOrderPlaced,
		events.EventPreorderSubmitted,
		events.EventPreorderApproved,
		events.EventPreorderRejected,
		events.EventSubscriptionStarted,
		events.EventSubscriptionCancelled,
	} {
		s.dispatcher.Subscribe(eventType, s.logEvent)
	}
}

func (s *NotificationService) logEvent(_ context.Context, event events.Event) error {
	s.logger.Info("domain event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Any("payload", event.Payload),
	)
	return nil
}
