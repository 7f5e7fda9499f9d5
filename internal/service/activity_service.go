package service

import (
	"context"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/pkg/logger"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/events"
	pktNats "github.com/kangsm1989-hue/ai-counsel-web/pkg/nats"
)

// ActivityService writes every bus event into an isolated audit log. It is the
// durable consumer on the NATS stream, so the log survives restarts without
// losing events.
type ActivityService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewActivityService(sub *pktNats.Subscriber, log logger.ILogger) *ActivityService {
	return &ActivityService{
		subscriber: sub,
		logger:     log,
	}
}

func (s *ActivityService) Start() {
	err := s.subscriber.Subscribe("events.>", "activity-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("ActivityService", "Failed to start activity subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("ActivityService", "Activity service started, listening to events.>", nil)
}

func (s *ActivityService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("ActivityService", "Event received", map[string]interface{}{
		"type":    event.EventType(),
		"payload": event.Payload(),
	})
	return nil
}
