package service

import (
	"context"
	"encoding/json"

	"ai-coach-agent-be/internal/constant"
	"ai-coach-agent-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type IProgressService interface {
	// Enqueue records a progress update for later asynchronous processing.
	// At-most-once, best-effort: failures are logged and swallowed.
	Enqueue(ctx context.Context, params map[string]interface{})
}

type progressService struct {
	rdb    *redis.Client
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewProgressService(rdb *redis.Client, pubSub *gochannel.GoChannel, log logger.ILogger) IProgressService {
	return &progressService{
		rdb:    rdb,
		pubSub: pubSub,
		log:    log,
	}
}

func (s *progressService) Enqueue(ctx context.Context, params map[string]interface{}) {
	payload, err := json.Marshal(params)
	if err != nil {
		s.log.Warn("ProgressService", "could not marshal progress update", map[string]interface{}{"error": err.Error()})
		return
	}

	// Durable append-only list, drained by out-of-band tooling.
	if s.rdb != nil {
		if err := s.rdb.RPush(ctx, constant.ProgressUpdatesQueueKey, payload).Err(); err != nil {
			s.log.Warn("ProgressService", "could not append progress update to queue", map[string]interface{}{"error": err.Error()})
		}
	}

	// In-process consumer for milestone completions.
	if s.pubSub != nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := s.pubSub.Publish(constant.ProgressUpdatesTopic, msg); err != nil {
			s.log.Warn("ProgressService", "could not publish progress update", map[string]interface{}{"error": err.Error()})
		}
	}
}
