package service

import (
	"context"
	"encoding/json"

	"ai-coach-agent-be/internal/constant"
	"ai-coach-agent-be/internal/dto"
	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/pkg/logger"
	"ai-coach-agent-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// progressConsumerService drains progress updates and applies milestone
// completions. The RPC reply never waits on it.
type progressConsumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewProgressConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &progressConsumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *progressConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, constant.ProgressUpdatesTopic)
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

func (cs *progressConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProgressUpdatePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Warn("ProgressConsumer", "dropping unparsable progress update", map[string]interface{}{"error": err.Error()})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	if payload.GoalId == uuid.Nil || payload.MilestoneId == uuid.Nil {
		// Arbitrary params without milestone coordinates stay queued in the
		// durable list only; nothing to apply here.
		msg.Ack()
		return
	}

	completed := true
	if payload.Completed != nil {
		completed = *payload.Completed
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if _, err := uow.MilestoneRepository().SetCompleted(ctx, payload.GoalId, payload.MilestoneId, completed); err != nil {
		if apperror.IsNotFound(err) {
			cs.log.Warn("ProgressConsumer", "milestone not found for progress update", map[string]interface{}{
				"goal_id":      payload.GoalId.String(),
				"milestone_id": payload.MilestoneId.String(),
			})
			msg.Ack() // milestone deleted? ack.
			return
		}
		cs.log.Error("ProgressConsumer", "failed to apply progress update", map[string]interface{}{"error": err.Error()})
		msg.Nack() // nack for retriable errors
		return
	}

	cs.log.Info("ProgressConsumer", "milestone progress applied", map[string]interface{}{
		"goal_id":      payload.GoalId.String(),
		"milestone_id": payload.MilestoneId.String(),
		"completed":    completed,
	})
	msg.Ack()
}
