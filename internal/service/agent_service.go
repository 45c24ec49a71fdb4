package service

import (
	"context"
	"strings"

	"ai-coach-agent-be/internal/constant"
	"ai-coach-agent-be/internal/dto"
	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/pkg/logger"
	"ai-coach-agent-be/internal/repository/unitofwork"
	"ai-coach-agent-be/pkg/events"
	pktNats "ai-coach-agent-be/pkg/nats"
	"ai-coach-agent-be/pkg/store"
	"ai-coach-agent-be/pkg/telex"

	"github.com/google/uuid"
)

const (
	MethodTaskSend       = "tasks/send"
	MethodMessageSend    = "message/send"
	MethodProgressUpdate = "progress/update"
)

type IAgentService interface {
	// Dispatch routes a parsed JSON-RPC envelope. It always returns a
	// response object; internal failures become -32602 error objects and
	// never escape this boundary.
	Dispatch(ctx context.Context, rpc *dto.JsonRpcRequest) *dto.JsonRpcResponse

	// HandleWebhook serves the simplified /coach entry point.
	HandleWebhook(ctx context.Context, payload *dto.TelexRequest) *dto.TelexResponse
}

type agentService struct {
	uowFactory unitofwork.RepositoryFactory
	completion ICompletionService
	progress   IProgressService
	sessions   *store.SessionStore
	eventPub   *pktNats.Publisher // nil when NATS is down; events are best-effort
	logSink    *telex.LogSink
	log        logger.ILogger
}

func NewAgentService(
	uowFactory unitofwork.RepositoryFactory,
	completion ICompletionService,
	progress IProgressService,
	sessions *store.SessionStore,
	eventPub *pktNats.Publisher,
	logSink *telex.LogSink,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
		completion: completion,
		progress:   progress,
		sessions:   sessions,
		eventPub:   eventPub,
		logSink:    logSink,
		log:        log,
	}
}

func (s *agentService) Dispatch(ctx context.Context, rpc *dto.JsonRpcRequest) (resp *dto.JsonRpcResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("AgentService", "panic in rpc handler", map[string]interface{}{
				"method": rpc.Method,
				"panic":  r,
			})
			resp = dto.NewRpcError(rpc.Id, dto.RpcErrCodeInvalidParams, "Internal Server Error")
		}
	}()

	switch rpc.Method {
	case MethodTaskSend:
		return s.handleTaskSend(ctx, rpc)
	case MethodMessageSend:
		return s.handleMessageSend(ctx, rpc)
	case MethodProgressUpdate:
		return s.handleProgressUpdate(ctx, rpc)
	default:
		return dto.NewRpcError(rpc.Id, dto.RpcErrCodeMethodNotFound, "Method not found")
	}
}

func (s *agentService) handleTaskSend(ctx context.Context, rpc *dto.JsonRpcRequest) *dto.JsonRpcResponse {
	params := rpc.Params
	if params == nil {
		params = map[string]interface{}{}
	}
	task := mapField(params, "task")
	text := composeTaskText(task)

	identity, rawSender, hasSender := resolveSender(params, "sender", "from", "user")

	// User upsert and message append commit together; a crash can orphan
	// neither half of the pair.
	var userId *uuid.UUID
	if hasSender || text != "" {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return s.internalError(rpc.Id, "could not begin transaction", err)
		}
		if hasSender {
			user, err := uow.UserRepository().GetOrCreate(ctx, identity)
			if err != nil {
				uow.Rollback()
				return s.internalError(rpc.Id, "user get-or-create failed", err)
			}
			userId = &user.Id
		}
		if text != "" {
			msg := &entity.Message{
				Id:            uuid.New(),
				UserId:        userId,
				TelexSenderId: optionalString(rawSender),
				Text:          text,
			}
			if err := uow.MessageRepository().Create(ctx, msg); err != nil {
				uow.Rollback()
				return s.internalError(rpc.Id, "message append failed", err)
			}
		}
		if err := uow.Commit(); err != nil {
			return s.internalError(rpc.Id, "could not commit transaction", err)
		}
		s.publishEvent(ctx, events.NewMessageReceived(rawSender, text))
	}

	reply := s.completion.Complete(ctx, text)

	contextId := stringField(params, "context_id")
	sessionKey := contextId
	if sessionKey == "" {
		sessionKey = uuid.NewString()
	}
	if err := s.sessions.Save(ctx, &store.Session{
		ID:        sessionKey,
		LastUser:  text,
		LastReply: reply,
	}); err != nil {
		// Best-effort tier: never fails the call.
		s.log.Warn("AgentService", "session write failed", map[string]interface{}{"error": err.Error()})
	}

	taskId := stringField(task, "id")
	if taskId == "" {
		taskId = uuid.NewString()
	}

	return dto.NewRpcResult(rpc.Id, dto.TaskSendResult{
		TaskId: taskId,
		Status: "completed",
		Parts:  []dto.TaskPart{{Type: "text", Text: reply}},
		// Echoes the caller's value; null when none was supplied, even
		// though a session key was generated.
		ContextId: optionalString(contextId),
	})
}

func (s *agentService) handleMessageSend(ctx context.Context, rpc *dto.JsonRpcRequest) *dto.JsonRpcResponse {
	params := rpc.Params
	if params == nil {
		params = map[string]interface{}{}
	}

	var text string
	switch m := params["message"].(type) {
	case map[string]interface{}:
		text, _ = m["text"].(string)
	case string:
		text = m
	}
	if strings.TrimSpace(text) == "" {
		return dto.NewRpcError(rpc.Id, dto.RpcErrCodeInvalidParams, "Missing message text")
	}

	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "create goal:") || strings.HasPrefix(lower, "new goal:") {
		title := strings.TrimSpace(text[strings.Index(text, ":")+1:])
		return s.createGoalFromMessage(ctx, rpc, params, title)
	}

	reply := s.completion.Complete(ctx, text)

	// This path records the raw sender only; no user upsert happens here.
	_, rawSender, _ := resolveSender(params, "sender")
	uow := s.uowFactory.NewUnitOfWork(ctx)
	msg := &entity.Message{
		Id:            uuid.New(),
		TelexSenderId: optionalString(rawSender),
		Text:          text,
	}
	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return s.internalError(rpc.Id, "message append failed", err)
	}
	s.publishEvent(ctx, events.NewMessageReceived(rawSender, text))

	return dto.NewRpcResult(rpc.Id, dto.MessageSendResult{Message: dto.MessageReply{Text: reply}})
}

func (s *agentService) createGoalFromMessage(ctx context.Context, rpc *dto.JsonRpcRequest, params map[string]interface{}, title string) *dto.JsonRpcResponse {
	identity, _, hasSender := resolveSender(params, "sender")

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return s.internalError(rpc.Id, "could not begin transaction", err)
	}

	var userId *uuid.UUID
	if hasSender {
		user, err := uow.UserRepository().GetOrCreate(ctx, identity)
		if err != nil {
			uow.Rollback()
			return s.internalError(rpc.Id, "user get-or-create failed", err)
		}
		userId = &user.Id
	}

	goal := &entity.Goal{
		Id:     uuid.New(),
		UserId: userId,
		Title:  title,
		Status: constant.GoalStatusActive,
	}
	if err := uow.GoalRepository().Create(ctx, goal); err != nil {
		uow.Rollback()
		return s.internalError(rpc.Id, "goal create failed", err)
	}
	if err := uow.Commit(); err != nil {
		return s.internalError(rpc.Id, "could not commit transaction", err)
	}

	ownerId := ""
	if userId != nil {
		ownerId = userId.String()
	}
	s.publishEvent(ctx, events.NewGoalCreated(goal.Id.String(), ownerId, goal.Title))

	// Echo the persisted title so server-side normalization is reflected.
	return dto.NewRpcResult(rpc.Id, dto.GoalCreatedResult{Message: "Goal created: " + goal.Title})
}

func (s *agentService) handleProgressUpdate(ctx context.Context, rpc *dto.JsonRpcRequest) *dto.JsonRpcResponse {
	params := rpc.Params
	if params == nil {
		params = map[string]interface{}{}
	}
	s.progress.Enqueue(ctx, params)
	return dto.NewRpcResult(rpc.Id, dto.ProgressUpdateResult{Status: "acknowledged"})
}

func (s *agentService) HandleWebhook(ctx context.Context, payload *dto.TelexRequest) *dto.TelexResponse {
	userMsg := payload.Message
	if strings.TrimSpace(userMsg) == "" {
		return &dto.TelexResponse{Message: constant.WebhookGreeting}
	}

	reply := s.completion.Complete(ctx, userMsg)

	if strings.TrimSpace(reply) == "" && s.logSink != nil {
		// An empty completion is worth a trace on the channel's audit feed.
		s.logSink.Push(ctx, payload.ChannelId, "User: "+userMsg)
		s.logSink.Push(ctx, payload.ChannelId, "Agent: "+reply)
	}

	return &dto.TelexResponse{Message: reply}
}

func (s *agentService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPub == nil {
		return
	}
	if err := s.eventPub.Publish(ctx, event); err != nil {
		s.log.Warn("AgentService", "event publish failed", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

func (s *agentService) internalError(id, where string, err error) *dto.JsonRpcResponse {
	s.log.Error("AgentService", where, map[string]interface{}{"error": err.Error()})
	return dto.NewRpcError(id, dto.RpcErrCodeInvalidParams, "Internal Server Error")
}

// composeTaskText collects display text from task.parts: object parts
// contribute their non-empty text field, plain strings ride as-is. Falls
// back to task.title when nothing was collected.
func composeTaskText(task map[string]interface{}) string {
	parts, _ := task["parts"].([]interface{})
	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case map[string]interface{}:
			if t, _ := v["text"].(string); t != "" {
				fragments = append(fragments, t)
			}
		case string:
			fragments = append(fragments, v)
		}
	}

	text := strings.TrimSpace(strings.Join(fragments, " "))
	if text == "" {
		text, _ = task["title"].(string)
	}
	return text
}

// resolveSender picks the first non-empty sender alias, in the given
// precedence order. Values may be a raw identifier string or an object
// carrying id/name/email.
func resolveSender(params map[string]interface{}, keys ...string) (entity.ExternalIdentity, string, bool) {
	for _, key := range keys {
		switch v := params[key].(type) {
		case string:
			if v != "" {
				return entity.ExternalIdentity{TelexUserId: v}, v, true
			}
		case map[string]interface{}:
			identity := entity.ExternalIdentity{
				TelexUserId: stringField(v, "id"),
				Name:        stringField(v, "name"),
				Email:       stringField(v, "email"),
			}
			if !identity.IsEmpty() {
				raw := identity.TelexUserId
				if raw == "" {
					raw = identity.Email
				}
				return identity, raw, true
			}
		}
	}
	return entity.ExternalIdentity{}, "", false
}

func mapField(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return map[string]interface{}{}
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
