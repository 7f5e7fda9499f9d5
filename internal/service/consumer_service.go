package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService listens for entry-saved messages on the in-process bus and
// re-warms the owner's weekly insight snapshot so the next dashboard read is
// served from cache.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	insightService IInsightService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	insightService IInsightService,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		insightService: insightService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEntrySavedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal entry-saved message: %v", err)
		// Ack malformed messages, retrying cannot fix them.
		msg.Ack()
		return
	}

	userId, err := uuid.Parse(payload.UserId)
	if err != nil {
		log.Printf("[ERROR] Invalid user id in entry-saved message: %q", payload.UserId)
		msg.Ack()
		return
	}

	if err := cs.insightService.WarmWeekly(ctx, userId); err != nil {
		log.Printf("[ERROR] Failed to warm weekly snapshot for %s: %v", userId, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Warmed weekly snapshot for user %s", userId)
	msg.Ack()
}
