package mapper

import (
	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/model"
)

type GoalMapper struct{}

func NewGoalMapper() *GoalMapper {
	return &GoalMapper{}
}

func (m *GoalMapper) ToEntity(g *model.Goal) *entity.Goal {
	if g == nil {
		return nil
	}
	return &entity.Goal{
		Id:          g.Id,
		UserId:      g.UserId,
		Title:       g.Title,
		Description: g.Description,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (m *GoalMapper) ToModel(g *entity.Goal) *model.Goal {
	if g == nil {
		return nil
	}
	return &model.Goal{
		Id:          g.Id,
		UserId:      g.UserId,
		Title:       g.Title,
		Description: g.Description,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (m *GoalMapper) ToEntities(models []*model.Goal) []*entity.Goal {
	entities := make([]*entity.Goal, 0, len(models))
	for _, mg := range models {
		entities = append(entities, m.ToEntity(mg))
	}
	return entities
}

func (m *GoalMapper) MilestoneToEntity(ms *model.Milestone) *entity.Milestone {
	if ms == nil {
		return nil
	}
	return &entity.Milestone{
		Id:        ms.Id,
		GoalId:    ms.GoalId,
		Title:     ms.Title,
		DueDate:   ms.DueDate,
		Completed: ms.Completed,
		CreatedAt: ms.CreatedAt,
		UpdatedAt: ms.UpdatedAt,
	}
}

func (m *GoalMapper) MilestoneToModel(ms *entity.Milestone) *model.Milestone {
	if ms == nil {
		return nil
	}
	return &model.Milestone{
		Id:        ms.Id,
		GoalId:    ms.GoalId,
		Title:     ms.Title,
		DueDate:   ms.DueDate,
		Completed: ms.Completed,
		CreatedAt: ms.CreatedAt,
		UpdatedAt: ms.UpdatedAt,
	}
}

func (m *GoalMapper) MilestonesToEntities(models []*model.Milestone) []*entity.Milestone {
	entities := make([]*entity.Milestone, 0, len(models))
	for _, mm := range models {
		entities = append(entities, m.MilestoneToEntity(mm))
	}
	return entities
}
