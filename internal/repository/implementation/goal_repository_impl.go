package implementation

import (
	"context"

	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/mapper"
	"ai-coach-agent-be/internal/model"
	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/repository/contract"
	"ai-coach-agent-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GoalMapper
}

func NewGoalRepository(db *gorm.DB) contract.GoalRepository {
	return &GoalRepositoryImpl{
		db:     db,
		mapper: mapper.NewGoalMapper(),
	}
}

func (r *GoalRepositoryImpl) Create(ctx context.Context, goal *entity.Goal) error {
	modelGoal := r.mapper.ToModel(goal)
	result := r.db.WithContext(ctx).Create(modelGoal)
	if result.Error != nil {
		return translateError(result.Error, "goal not found", "goal already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewValidation("error while creating goal")
	}
	*goal = *r.mapper.ToEntity(modelGoal)
	return nil
}

func (r *GoalRepositoryImpl) GetById(ctx context.Context, userId, goalId uuid.UUID) (*entity.Goal, error) {
	var modelGoal model.Goal
	query := specification.OwnedByUser{UserID: userId}.Apply(
		specification.ByID{ID: goalId}.Apply(r.db.WithContext(ctx)),
	)
	if err := query.First(&modelGoal).Error; err != nil {
		return nil, translateError(err, "goal not found", "goal already exists")
	}
	return r.mapper.ToEntity(&modelGoal), nil
}

// ListByUser returns an empty slice when the user has no goals; absence of
// children is not a lookup miss.
func (r *GoalRepositoryImpl) ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Goal, error) {
	var modelGoals []*model.Goal
	query := specification.OwnedByUser{UserID: userId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "created_at", Desc: true}.Apply(query)
	if err := query.Find(&modelGoals).Error; err != nil {
		return nil, apperror.NewInternal("repository failure", err)
	}
	return r.mapper.ToEntities(modelGoals), nil
}

func (r *GoalRepositoryImpl) Update(ctx context.Context, userId uuid.UUID, goal *entity.Goal) (*entity.Goal, error) {
	result := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", goal.Id, userId).
		Updates(map[string]interface{}{
			"title":       goal.Title,
			"description": goal.Description,
			"status":      goal.Status,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, "goal not found", "goal already exists")
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NewNotFound("goal not found")
	}
	return r.GetById(ctx, userId, goal.Id)
}

func (r *GoalRepositoryImpl) UpdateStatus(ctx context.Context, userId, goalId uuid.UUID, status string) (*entity.Goal, error) {
	result := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", goalId, userId).
		Update("status", status)
	if result.Error != nil {
		return nil, translateError(result.Error, "goal not found", "goal already exists")
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NewNotFound("goal not found")
	}
	return r.GetById(ctx, userId, goalId)
}

func (r *GoalRepositoryImpl) Delete(ctx context.Context, userId, goalId uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalId, userId).
		Delete(&model.Goal{})
	if result.Error != nil {
		return translateError(result.Error, "goal not found", "goal already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFound("goal not found")
	}
	return nil
}
