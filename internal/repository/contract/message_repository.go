package contract

import (
	"context"

	"ai-coach-agent-be/internal/entity"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	GetById(ctx context.Context, userId, messageId uuid.UUID) (*entity.Message, error)
	// ListByUser returns messages newest first.
	ListByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Message, error)
	Delete(ctx context.Context, userId, messageId uuid.UUID) error
}
