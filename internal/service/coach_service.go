package service

import (
	"context"
	"strings"

	"ai-coach-agent-be/internal/constant"
	"ai-coach-agent-be/internal/dto"
	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/pkg/logger"
	"ai-coach-agent-be/internal/repository/unitofwork"
	"ai-coach-agent-be/pkg/events"
	pktNats "ai-coach-agent-be/pkg/nats"

	"github.com/google/uuid"
)

// ICoachService backs the authenticated REST surface. Every operation is
// scoped to the calling user; cross-user access surfaces as not-found.
type ICoachService interface {
	ListGoals(ctx context.Context, userId uuid.UUID) ([]dto.GoalResponse, error)
	CreateGoal(ctx context.Context, userId uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	ShowGoal(ctx context.Context, userId, goalId uuid.UUID) (*dto.GoalResponse, error)
	UpdateGoal(ctx context.Context, userId uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	UpdateGoalStatus(ctx context.Context, userId, goalId uuid.UUID, status string) (*dto.GoalResponse, error)
	DeleteGoal(ctx context.Context, userId, goalId uuid.UUID) error

	ListMilestones(ctx context.Context, userId, goalId uuid.UUID) ([]dto.MilestoneResponse, error)
	CreateMilestone(ctx context.Context, userId, goalId uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error)
	UpdateMilestone(ctx context.Context, userId, goalId uuid.UUID, req *dto.UpdateMilestoneRequest) (*dto.MilestoneResponse, error)
	DeleteMilestone(ctx context.Context, userId, goalId, milestoneId uuid.UUID) error

	ListMessages(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.MessageResponse, error)
	DeleteMessage(ctx context.Context, userId, messageId uuid.UUID) error
}

type coachService struct {
	uowFactory unitofwork.RepositoryFactory
	eventPub   *pktNats.Publisher
	log        logger.ILogger
}

func NewCoachService(uowFactory unitofwork.RepositoryFactory, eventPub *pktNats.Publisher, log logger.ILogger) ICoachService {
	return &coachService{
		uowFactory: uowFactory,
		eventPub:   eventPub,
		log:        log,
	}
}

func (s *coachService) ListGoals(ctx context.Context, userId uuid.UUID) ([]dto.GoalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	goals, err := uow.GoalRepository().ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	// An empty list is a valid answer, not an error.
	responses := make([]dto.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, toGoalResponse(goal))
	}
	return responses, nil
}

func (s *coachService) CreateGoal(ctx context.Context, userId uuid.UUID, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("goal title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	goal := &entity.Goal{
		Id:          uuid.New(),
		UserId:      &userId,
		Title:       title,
		Description: req.Description,
		Status:      constant.GoalStatusActive,
	}
	if err := uow.GoalRepository().Create(ctx, goal); err != nil {
		return nil, err
	}

	if s.eventPub != nil {
		if err := s.eventPub.Publish(ctx, events.NewGoalCreated(goal.Id.String(), userId.String(), goal.Title)); err != nil {
			s.log.Warn("CoachService", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	resp := toGoalResponse(goal)
	return &resp, nil
}

func (s *coachService) ShowGoal(ctx context.Context, userId, goalId uuid.UUID) (*dto.GoalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	goal, err := uow.GoalRepository().GetById(ctx, userId, goalId)
	if err != nil {
		return nil, err
	}
	resp := toGoalResponse(goal)
	return &resp, nil
}

func (s *coachService) UpdateGoal(ctx context.Context, userId uuid.UUID, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("goal title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	goal, err := uow.GoalRepository().Update(ctx, userId, &entity.Goal{
		Id:          req.Id,
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return nil, err
	}
	resp := toGoalResponse(goal)
	return &resp, nil
}

func (s *coachService) UpdateGoalStatus(ctx context.Context, userId, goalId uuid.UUID, status string) (*dto.GoalResponse, error) {
	if strings.TrimSpace(status) == "" {
		return nil, apperror.NewValidation("status is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	goal, err := uow.GoalRepository().UpdateStatus(ctx, userId, goalId, status)
	if err != nil {
		return nil, err
	}
	resp := toGoalResponse(goal)
	return &resp, nil
}

func (s *coachService) DeleteGoal(ctx context.Context, userId, goalId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.GoalRepository().Delete(ctx, userId, goalId)
}

func (s *coachService) ListMilestones(ctx context.Context, userId, goalId uuid.UUID) ([]dto.MilestoneResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := uow.GoalRepository().GetById(ctx, userId, goalId); err != nil {
		return nil, err
	}

	milestones, err := uow.MilestoneRepository().ListByGoal(ctx, goalId)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		responses = append(responses, toMilestoneResponse(m))
	}
	return responses, nil
}

func (s *coachService) CreateMilestone(ctx context.Context, userId, goalId uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("milestone title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Ownership gate: the goal must belong to the caller.
	if _, err := uow.GoalRepository().GetById(ctx, userId, goalId); err != nil {
		return nil, err
	}

	milestone := &entity.Milestone{
		Id:      uuid.New(),
		GoalId:  goalId,
		Title:   title,
		DueDate: req.DueDate,
	}
	if err := uow.MilestoneRepository().Create(ctx, milestone); err != nil {
		return nil, err
	}
	resp := toMilestoneResponse(milestone)
	return &resp, nil
}

func (s *coachService) UpdateMilestone(ctx context.Context, userId, goalId uuid.UUID, req *dto.UpdateMilestoneRequest) (*dto.MilestoneResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.NewValidation("milestone title is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := uow.GoalRepository().GetById(ctx, userId, goalId); err != nil {
		return nil, err
	}

	milestone, err := uow.MilestoneRepository().Update(ctx, goalId, &entity.Milestone{
		Id:        req.Id,
		Title:     title,
		DueDate:   req.DueDate,
		Completed: req.Completed,
	})
	if err != nil {
		return nil, err
	}
	resp := toMilestoneResponse(milestone)
	return &resp, nil
}

func (s *coachService) DeleteMilestone(ctx context.Context, userId, goalId, milestoneId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := uow.GoalRepository().GetById(ctx, userId, goalId); err != nil {
		return err
	}
	return uow.MilestoneRepository().Delete(ctx, goalId, milestoneId)
}

func (s *coachService) ListMessages(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.MessageResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().ListByUser(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, dto.MessageResponse{
			Id:            m.Id,
			UserId:        m.UserId,
			TelexSenderId: m.TelexSenderId,
			Text:          m.Text,
			CreatedAt:     m.CreatedAt,
		})
	}
	return responses, nil
}

func (s *coachService) DeleteMessage(ctx context.Context, userId, messageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MessageRepository().Delete(ctx, userId, messageId)
}

func toGoalResponse(goal *entity.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		Id:          goal.Id,
		UserId:      goal.UserId,
		Title:       goal.Title,
		Description: goal.Description,
		Status:      goal.Status,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}

func toMilestoneResponse(m *entity.Milestone) dto.MilestoneResponse {
	return dto.MilestoneResponse{
		Id:        m.Id,
		GoalId:    m.GoalId,
		Title:     m.Title,
		DueDate:   m.DueDate,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
