package contract

import (
	"context"

	"ai-coach-agent-be/internal/entity"

	"github.com/google/uuid"
)

type MilestoneRepository interface {
	Create(ctx context.Context, milestone *entity.Milestone) error
	GetById(ctx context.Context, goalId, milestoneId uuid.UUID) (*entity.Milestone, error)
	ListByGoal(ctx context.Context, goalId uuid.UUID) ([]*entity.Milestone, error)
	Update(ctx context.Context, goalId uuid.UUID, milestone *entity.Milestone) (*entity.Milestone, error)
	SetCompleted(ctx context.Context, goalId, milestoneId uuid.UUID, completed bool) (*entity.Milestone, error)
	Delete(ctx context.Context, goalId, milestoneId uuid.UUID) error
}
