package controller

import (
	"ai-coach-agent-be/internal/dto"
	"ai-coach-agent-be/internal/pkg/serverutils"
	"ai-coach-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICoachController interface {
	RegisterRoutes(r fiber.Router)
	ListGoals(ctx *fiber.Ctx) error
	CreateGoal(ctx *fiber.Ctx) error
	ShowGoal(ctx *fiber.Ctx) error
	UpdateGoal(ctx *fiber.Ctx) error
	UpdateGoalStatus(ctx *fiber.Ctx) error
	DeleteGoal(ctx *fiber.Ctx) error
	ListMilestones(ctx *fiber.Ctx) error
	CreateMilestone(ctx *fiber.Ctx) error
	UpdateMilestone(ctx *fiber.Ctx) error
	DeleteMilestone(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	DeleteMessage(ctx *fiber.Ctx) error
}

type coachController struct {
	service service.ICoachService
}

func NewCoachController(service service.ICoachService) ICoachController {
	return &coachController{service: service}
}

func (c *coachController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/coach/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/goals", c.ListGoals)
	h.Post("/goals", c.CreateGoal)
	h.Get("/goals/:id", c.ShowGoal)
	h.Put("/goals/:id", c.UpdateGoal)
	h.Patch("/goals/:id/status", c.UpdateGoalStatus)
	h.Delete("/goals/:id", c.DeleteGoal)
	h.Get("/goals/:id/milestones", c.ListMilestones)
	h.Post("/goals/:id/milestones", c.CreateMilestone)
	h.Put("/goals/:id/milestones/:milestoneId", c.UpdateMilestone)
	h.Delete("/goals/:id/milestones/:milestoneId", c.DeleteMilestone)
	h.Get("/messages", c.ListMessages)
	h.Delete("/messages/:id", c.DeleteMessage)
}

func callerUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *coachController) ListGoals(ctx *fiber.Ctx) error {
	res, err := c.service.ListGoals(ctx.Context(), callerUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all goals", res))
}

func (c *coachController) CreateGoal(ctx *fiber.Ctx) error {
	var req dto.CreateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateGoal(ctx.Context(), callerUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create goal", res))
}

func (c *coachController) ShowGoal(ctx *fiber.Ctx) error {
	goalId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.ShowGoal(ctx.Context(), callerUserId(ctx), goalId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get goal", res))
}

func (c *coachController) UpdateGoal(ctx *fiber.Ctx) error {
	var req dto.UpdateGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	res, err := c.service.UpdateGoal(ctx.Context(), callerUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update goal", res))
}

func (c *coachController) UpdateGoalStatus(ctx *fiber.Ctx) error {
	var req dto.UpdateGoalStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	goalId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.UpdateGoalStatus(ctx.Context(), callerUserId(ctx), goalId, req.Status)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update goal status", res))
}

func (c *coachController) DeleteGoal(ctx *fiber.Ctx) error {
	goalId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.DeleteGoal(ctx.Context(), callerUserId(ctx), goalId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete goal", struct{}{}))
}

func (c *coachController) ListMilestones(ctx *fiber.Ctx) error {
	goalId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.ListMilestones(ctx.Context(), callerUserId(ctx), goalId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all milestones", res))
}

func (c *coachController) CreateMilestone(ctx *fiber.Ctx) error {
	var req dto.CreateMilestoneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	goalId, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.CreateMilestone(ctx.Context(), callerUserId(ctx), goalId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create milestone", res))
}

func (c *coachController) UpdateMilestone(ctx *fiber.Ctx) error {
	var req dto.UpdateMilestoneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	goalId, _ := uuid.Parse(ctx.Params("id"))
	req.Id, _ = uuid.Parse(ctx.Params("milestoneId"))

	res, err := c.service.UpdateMilestone(ctx.Context(), callerUserId(ctx), goalId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update milestone", res))
}

func (c *coachController) DeleteMilestone(ctx *fiber.Ctx) error {
	goalId, _ := uuid.Parse(ctx.Params("id"))
	milestoneId, _ := uuid.Parse(ctx.Params("milestoneId"))

	if err := c.service.DeleteMilestone(ctx.Context(), callerUserId(ctx), goalId, milestoneId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete milestone", struct{}{}))
}

func (c *coachController) ListMessages(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListMessages(ctx.Context(), callerUserId(ctx), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *coachController) DeleteMessage(ctx *fiber.Ctx) error {
	messageId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.DeleteMessage(ctx.Context(), callerUserId(ctx), messageId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete message", struct{}{}))
}
