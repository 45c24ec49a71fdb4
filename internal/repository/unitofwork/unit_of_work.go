package unitofwork

import (
	"context"

	"ai-coach-agent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GoalRepository() contract.GoalRepository
	MilestoneRepository() contract.MilestoneRepository
	MessageRepository() contract.MessageRepository
}
