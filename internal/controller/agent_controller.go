package controller

import (
	"ai-coach-agent-be/internal/config"
	"ai-coach-agent-be/internal/dto"
	"ai-coach-agent-be/internal/pkg/logger"
	"ai-coach-agent-be/internal/service"
	"ai-coach-agent-be/pkg/a2a"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	Rpc(ctx *fiber.Ctx) error
	Coach(ctx *fiber.Ctx) error
	AgentCard(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type agentController struct {
	service service.IAgentService
	cfg     *config.Config
	log     logger.ILogger
}

func NewAgentController(service service.IAgentService, cfg *config.Config, log logger.ILogger) IAgentController {
	return &agentController{service: service, cfg: cfg, log: log}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/a2a-coach")
	h.Post("/rpc", c.Rpc)
	h.Post("/coach", c.Coach)
	h.Get("/.well-known/agent.json", c.AgentCard)
	h.Get("/status", c.Status)
}

func (c *agentController) Rpc(ctx *fiber.Ctx) error {
	var req dto.JsonRpcRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON-RPC: "+err.Error())
	}
	// A body missing its required envelope fields is a transport-level
	// client error, not a dispatchable request.
	if req.JsonRpc == "" || req.Method == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON-RPC: jsonrpc and method are required")
	}

	// Signature headers are audited but never gate the call; partners roll
	// out signing at their own pace.
	a2a.VerifySignature(
		c.log,
		ctx.Body(),
		ctx.Get("X-A2A-Timestamp"),
		ctx.Get("X-A2A-Signature"),
		c.cfg.Keys.WebhookSecret,
		a2a.DefaultToleranceSec,
	)

	resp := c.service.Dispatch(ctx.Context(), &req)
	return ctx.JSON(resp)
}

func (c *agentController) Coach(ctx *fiber.Ctx) error {
	var req dto.TelexRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload: "+err.Error())
	}

	resp := c.service.HandleWebhook(ctx.Context(), &req)
	return ctx.JSON(resp)
}

func (c *agentController) AgentCard(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.AgentCard{
		Name:        c.cfg.Agent.Name,
		Description: "AI coaching agent: goal planning, milestone tracking and motivational guidance over A2A.",
		Capabilities: []string{
			"learning", "planning", "motivation", "progress_tracking",
			"multimodal", "coding", "communication", "personal_growth",
		},
		A2AVersion: "1.0.0",
		Endpoints: map[string]string{
			"rpc":    "/a2a-coach/rpc",
			"status": "/a2a-coach/status",
			"telex":  "/a2a-coach/coach",
		},
	})
}

func (c *agentController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:  "ok",
		Agent:   c.cfg.Agent.Name,
		Version: c.cfg.Agent.Version,
	})
}
