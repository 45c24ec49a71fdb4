package contract

import (
	"context"

	"ai-coach-agent-be/internal/entity"

	"github.com/google/uuid"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetById(ctx context.Context, userId, goalId uuid.UUID) (*entity.Goal, error)
	ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Goal, error)
	Update(ctx context.Context, userId uuid.UUID, goal *entity.Goal) (*entity.Goal, error)
	UpdateStatus(ctx context.Context, userId, goalId uuid.UUID, status string) (*entity.Goal, error)
	Delete(ctx context.Context, userId, goalId uuid.UUID) error
}
