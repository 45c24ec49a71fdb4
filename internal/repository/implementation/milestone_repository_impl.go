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

type MilestoneRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GoalMapper
}

func NewMilestoneRepository(db *gorm.DB) contract.MilestoneRepository {
	return &MilestoneRepositoryImpl{
		db:     db,
		mapper: mapper.NewGoalMapper(),
	}
}

func (r *MilestoneRepositoryImpl) Create(ctx context.Context, milestone *entity.Milestone) error {
	modelMilestone := r.mapper.MilestoneToModel(milestone)
	result := r.db.WithContext(ctx).Create(modelMilestone)
	if result.Error != nil {
		return translateError(result.Error, "milestone not found", "milestone already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewValidation("error while creating milestone")
	}
	*milestone = *r.mapper.MilestoneToEntity(modelMilestone)
	return nil
}

func (r *MilestoneRepositoryImpl) GetById(ctx context.Context, goalId, milestoneId uuid.UUID) (*entity.Milestone, error) {
	var modelMilestone model.Milestone
	query := specification.OwnedByGoal{GoalID: goalId}.Apply(
		specification.ByID{ID: milestoneId}.Apply(r.db.WithContext(ctx)),
	)
	if err := query.First(&modelMilestone).Error; err != nil {
		return nil, translateError(err, "milestone not found", "milestone already exists")
	}
	return r.mapper.MilestoneToEntity(&modelMilestone), nil
}

func (r *MilestoneRepositoryImpl) ListByGoal(ctx context.Context, goalId uuid.UUID) ([]*entity.Milestone, error) {
	var modelMilestones []*model.Milestone
	query := specification.OwnedByGoal{GoalID: goalId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "created_at", Desc: false}.Apply(query)
	if err := query.Find(&modelMilestones).Error; err != nil {
		return nil, apperror.NewInternal("repository failure", err)
	}
	return r.mapper.MilestonesToEntities(modelMilestones), nil
}

func (r *MilestoneRepositoryImpl) Update(ctx context.Context, goalId uuid.UUID, milestone *entity.Milestone) (*entity.Milestone, error) {
	result := r.db.WithContext(ctx).Model(&model.Milestone{}).
		Where("id = ? AND goal_id = ?", milestone.Id, goalId).
		Updates(map[string]interface{}{
			"title":     milestone.Title,
			"due_date":  milestone.DueDate,
			"completed": milestone.Completed,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, "milestone not found", "milestone already exists")
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NewNotFound("milestone not found")
	}
	return r.GetById(ctx, goalId, milestone.Id)
}

func (r *MilestoneRepositoryImpl) SetCompleted(ctx context.Context, goalId, milestoneId uuid.UUID, completed bool) (*entity.Milestone, error) {
	result := r.db.WithContext(ctx).Model(&model.Milestone{}).
		Where("id = ? AND goal_id = ?", milestoneId, goalId).
		Update("completed", completed)
	if result.Error != nil {
		return nil, translateError(result.Error, "milestone not found", "milestone already exists")
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NewNotFound("milestone not found")
	}
	return r.GetById(ctx, goalId, milestoneId)
}

func (r *MilestoneRepositoryImpl) Delete(ctx context.Context, goalId, milestoneId uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND goal_id = ?", milestoneId, goalId).
		Delete(&model.Milestone{})
	if result.Error != nil {
		return translateError(result.Error, "milestone not found", "milestone already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFound("milestone not found")
	}
	return nil
}
