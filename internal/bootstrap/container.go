package bootstrap

import (
	"log"
	"time"

	"ai-coach-agent-be/internal/config"
	"ai-coach-agent-be/internal/constant"
	"ai-coach-agent-be/internal/controller"
	"ai-coach-agent-be/internal/pkg/logger"
	"ai-coach-agent-be/internal/repository/unitofwork"
	"ai-coach-agent-be/internal/service"
	"ai-coach-agent-be/pkg/llm/factory"
	pktNats "ai-coach-agent-be/pkg/nats"
	"ai-coach-agent-be/pkg/store"
	"ai-coach-agent-be/pkg/telex"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController controller.IAgentController
	CoachController controller.ICoachController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// Redis backs both sessions and the durable progress queue. The agent
	// still serves traffic without it, on the in-process fallback tier.
	var rdb *redis.Client
	if opts, err := redis.ParseURL(cfg.App.RedisURL); err != nil {
		log.Printf("[WARN] Invalid Redis URL, running on local session cache only: %v", err)
	} else {
		rdb = redis.NewClient(opts)
	}

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	sessions := store.NewSessionStore(rdb, constant.SessionTTLHours*time.Hour)
	logSink := telex.NewLogSink(cfg.Agent.TelexLogBase, cfg.Keys.AgentAPIKey, sysLogger)

	// 4. LLM Provider (nil means deterministic local planner)
	llmProvider := factory.NewProvider(cfg.Keys.GoogleGemini)
	if llmProvider == nil {
		log.Printf("[INFO] No Gemini key configured, serving local planner replies")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s", llmProvider.Name())
	}

	// 5. Services
	completionService := service.NewCompletionService(llmProvider, sysLogger)
	progressService := service.NewProgressService(rdb, pubSub, sysLogger)
	consumerService := service.NewProgressConsumerService(pubSub, uowFactory, sysLogger)
	agentService := service.NewAgentService(
		uowFactory,
		completionService,
		progressService,
		sessions,
		natsPub,
		logSink,
		sysLogger,
	)
	coachService := service.NewCoachService(uowFactory, natsPub, sysLogger)

	// 6. Controllers
	agentController := controller.NewAgentController(agentService, cfg, sysLogger)
	coachController := controller.NewCoachController(coachService)

	return &Container{
		AgentController: agentController,
		CoachController: coachController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
