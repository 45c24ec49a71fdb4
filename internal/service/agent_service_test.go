package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-coach-agent-be/internal/dto"
	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/repository/contract"
	"ai-coach-agent-be/internal/repository/unitofwork"
	"ai-coach-agent-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{}) {}
func (nopLogger) Warn(module, message string, details map[string]interface{}) {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

type memStore struct {
	users      []*entity.User
	goals      []*entity.Goal
	milestones []*entity.Milestone
	messages   []*entity.Message

	begins    int
	commits   int
	rollbacks int
}

type memUow struct{ s *memStore }

func (u *memUow) Begin(ctx context.Context) error { u.s.begins++; return nil }
func (u *memUow) Commit() error                   { u.s.commits++; return nil }
func (u *memUow) Rollback() error                 { u.s.rollbacks++; return nil }

func (u *memUow) UserRepository() contract.UserRepository           { return &memUserRepo{s: u.s} }
func (u *memUow) GoalRepository() contract.GoalRepository           { return &memGoalRepo{s: u.s} }
func (u *memUow) MilestoneRepository() contract.MilestoneRepository { return &memMilestoneRepo{s: u.s} }
func (u *memUow) MessageRepository() contract.MessageRepository     { return &memMessageRepo{s: u.s} }

type memFactory struct{ s *memStore }

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{s: f.s}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.users = append(r.s.users, user)
	return nil
}

func (r *memUserRepo) GetById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Id == id {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

func (r *memUserRepo) GetByTelexId(ctx context.Context, telexUserId string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.TelexUserId != nil && *u.TelexUserId == telexUserId {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	return user, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.s.users)), nil
}

func (r *memUserRepo) GetOrCreate(ctx context.Context, identity entity.ExternalIdentity) (*entity.User, error) {
	if identity.Email != "" {
		if u, err := r.GetByEmail(ctx, identity.Email); err == nil {
			return u, nil
		}
	} else if u, err := r.GetByTelexId(ctx, identity.TelexUserId); err == nil {
		return u, nil
	}

	user := &entity.User{Id: uuid.New()}
	if identity.TelexUserId != "" {
		v := identity.TelexUserId
		user.TelexUserId = &v
	}
	if identity.Name != "" {
		v := identity.Name
		user.Name = &v
	}
	if identity.Email != "" {
		v := identity.Email
		user.Email = &v
	}
	r.s.users = append(r.s.users, user)
	return user, nil
}

type memGoalRepo struct{ s *memStore }

func (r *memGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	r.s.goals = append(r.s.goals, goal)
	return nil
}

func (r *memGoalRepo) GetById(ctx context.Context, userId, goalId uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.s.goals {
		if g.Id == goalId && g.UserId != nil && *g.UserId == userId {
			return g, nil
		}
	}
	return nil, apperror.NewNotFound("goal not found")
}

func (r *memGoalRepo) ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Goal, error) {
	out := []*entity.Goal{}
	for _, g := range r.s.goals {
		if g.UserId != nil && *g.UserId == userId {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGoalRepo) Update(ctx context.Context, userId uuid.UUID, goal *entity.Goal) (*entity.Goal, error) {
	return goal, nil
}

func (r *memGoalRepo) UpdateStatus(ctx context.Context, userId, goalId uuid.UUID, status string) (*entity.Goal, error) {
	g, err := r.GetById(ctx, userId, goalId)
	if err != nil {
		return nil, err
	}
	g.Status = status
	return g, nil
}

func (r *memGoalRepo) Delete(ctx context.Context, userId, goalId uuid.UUID) error { return nil }

type memMilestoneRepo struct{ s *memStore }

func (r *memMilestoneRepo) Create(ctx context.Context, m *entity.Milestone) error {
	r.s.milestones = append(r.s.milestones, m)
	return nil
}

func (r *memMilestoneRepo) GetById(ctx context.Context, goalId, milestoneId uuid.UUID) (*entity.Milestone, error) {
	for _, m := range r.s.milestones {
		if m.Id == milestoneId && m.GoalId == goalId {
			return m, nil
		}
	}
	return nil, apperror.NewNotFound("milestone not found")
}

func (r *memMilestoneRepo) ListByGoal(ctx context.Context, goalId uuid.UUID) ([]*entity.Milestone, error) {
	out := []*entity.Milestone{}
	for _, m := range r.s.milestones {
		if m.GoalId == goalId {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMilestoneRepo) Update(ctx context.Context, goalId uuid.UUID, m *entity.Milestone) (*entity.Milestone, error) {
	return m, nil
}

func (r *memMilestoneRepo) SetCompleted(ctx context.Context, goalId, milestoneId uuid.UUID, completed bool) (*entity.Milestone, error) {
	m, err := r.GetById(ctx, goalId, milestoneId)
	if err != nil {
		return nil, err
	}
	m.Completed = completed
	return m, nil
}

func (r *memMilestoneRepo) Delete(ctx context.Context, goalId, milestoneId uuid.UUID) error {
	return nil
}

type memMessageRepo struct{ s *memStore }

func (r *memMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.s.messages = append(r.s.messages, m)
	return nil
}

func (r *memMessageRepo) GetById(ctx context.Context, userId, messageId uuid.UUID) (*entity.Message, error) {
	return nil, apperror.NewNotFound("message not found")
}

func (r *memMessageRepo) ListByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	return []*entity.Message{}, nil
}

func (r *memMessageRepo) Delete(ctx context.Context, userId, messageId uuid.UUID) error {
	return nil
}

type echoCompletion struct{}

func (echoCompletion) Complete(ctx context.Context, userText string) string {
	return "coach says: " + userText
}

type recordingProgress struct {
	enqueued []map[string]interface{}
}

func (p *recordingProgress) Enqueue(ctx context.Context, params map[string]interface{}) {
	p.enqueued = append(p.enqueued, params)
}

func newTestAgent(s *memStore) (IAgentService, *recordingProgress, *store.SessionStore) {
	progress := &recordingProgress{}
	sessions := store.NewSessionStore(nil, 2*time.Hour)
	svc := NewAgentService(&memFactory{s: s}, echoCompletion{}, progress, sessions, nil, nil, nopLogger{})
	return svc, progress, sessions
}

// ---- tests ----

func TestDispatchUnknownMethod(t *testing.T) {
	svc, _, _ := newTestAgent(&memStore{})

	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "tasks/cancel",
		Id:      "req-1",
	})

	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.RpcErrCodeMethodNotFound, resp.Error.Code)
	assert.Equal(t, "Method not found", resp.Error.Message)
	assert.Equal(t, "req-1", resp.Id)
	assert.Equal(t, "2.0", resp.JsonRpc)
}

func TestTaskSendComposesPartsAndPersists(t *testing.T) {
	s := &memStore{}
	svc, _, sessions := newTestAgent(s)

	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "tasks/send",
		Id:      "req-2",
		Params: map[string]interface{}{
			"task": map[string]interface{}{
				"id": "task-7",
				"parts": []interface{}{
					map[string]interface{}{"type": "text", "text": "Hello"},
					"world",
					map[string]interface{}{"type": "image", "text": ""},
				},
			},
			"sender":     map[string]interface{}{"id": "telex-1", "name": "Ada"},
			"context_id": "ctx-9",
		},
	})

	require.Nil(t, resp.Error)
	result, ok := resp.Result.(dto.TaskSendResult)
	require.True(t, ok)
	assert.Equal(t, "task-7", result.TaskId)
	assert.Equal(t, "completed", result.Status)
	require.NotNil(t, result.ContextId)
	assert.Equal(t, "ctx-9", *result.ContextId)
	require.Len(t, result.Parts, 1)
	assert.Equal(t, "text", result.Parts[0].Type)
	assert.Equal(t, "coach says: Hello world", result.Parts[0].Text)

	// One user upserted, one message appended, both in one transaction.
	require.Len(t, s.users, 1)
	require.Len(t, s.messages, 1)
	assert.Equal(t, "Hello world", s.messages[0].Text)
	require.NotNil(t, s.messages[0].UserId)
	assert.Equal(t, s.users[0].Id, *s.messages[0].UserId)
	assert.Equal(t, 1, s.begins)
	assert.Equal(t, 1, s.commits)
	assert.Equal(t, 0, s.rollbacks)

	sess, found := sessions.Get(context.Background(), "ctx-9")
	require.True(t, found)
	assert.Equal(t, "Hello world", sess.LastUser)
	assert.Equal(t, "coach says: Hello world", sess.LastReply)
}

func TestTaskSendFallsBackToTitle(t *testing.T) {
	s := &memStore{}
	svc, _, _ := newTestAgent(s)

	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "tasks/send",
		Id:      "req-3",
		Params: map[string]interface{}{
			"task": map[string]interface{}{"title": "Review my study plan"},
		},
	})

	require.Nil(t, resp.Error)
	result := resp.Result.(dto.TaskSendResult)
	assert.Equal(t, "coach says: Review my study plan", result.Parts[0].Text)
	assert.NotEmpty(t, result.TaskId) // generated when the task carries no id
	assert.Nil(t, result.ContextId)

	// The wire shape keeps the key with an explicit null.
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"context_id":null`)

	// No sender: the message is persisted unattributed.
	require.Len(t, s.messages, 1)
	assert.Nil(t, s.messages[0].UserId)
	assert.Empty(t, s.users)
}

func TestTaskSendSenderPrecedence(t *testing.T) {
	s := &memStore{}
	svc, _, _ := newTestAgent(s)

	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "tasks/send",
		Id:      "req-4",
		Params: map[string]interface{}{
			"task":   map[string]interface{}{"title": "hi"},
			"from":   "from-id",
			"user":   "user-id",
			"sender": "sender-id",
		},
	})

	require.Nil(t, resp.Error)
	require.Len(t, s.users, 1)
	require.NotNil(t, s.users[0].TelexUserId)
	assert.Equal(t, "sender-id", *s.users[0].TelexUserId)
}

func TestMessageSendMissingText(t *testing.T) {
	s := &memStore{}
	svc, _, _ := newTestAgent(s)

	for _, params := range []map[string]interface{}{
		nil,
		{"message": map[string]interface{}{}},
		{"message": map[string]interface{}{"text": "   "}},
		{"message": ""},
	} {
		resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
			JsonRpc: "2.0",
			Method:  "message/send",
			Id:      "req-5",
			Params:  params,
		})

		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.RpcErrCodeInvalidParams, resp.Error.Code)
		assert.Equal(t, "Missing message text", resp.Error.Message)
	}

	// Nothing was written on any of the rejected calls.
	assert.Empty(t, s.messages)
	assert.Empty(t, s.goals)
	assert.Equal(t, 0, s.begins)
}

func TestMessageSendGoalGrammar(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTitle string
	}{
		{"create goal prefix", "Create Goal: Learn Rust", "Learn Rust"},
		{"new goal prefix", "new goal: Pass the exam", "Pass the exam"},
		{"case insensitive prefix", "CREATE GOAL:   Ship the app  ", "Ship the app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &memStore{}
			svc, _, _ := newTestAgent(s)

			resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
				JsonRpc: "2.0",
				Method:  "message/send",
				Id:      "req-6",
				Params: map[string]interface{}{
					"message": map[string]interface{}{"text": tt.text},
					"sender":  map[string]interface{}{"id": "telex-2", "email": "ada@example.com"},
				},
			})

			require.Nil(t, resp.Error)
			result, ok := resp.Result.(dto.GoalCreatedResult)
			require.True(t, ok)
			assert.Equal(t, "Goal created: "+tt.wantTitle, result.Message)

			require.Len(t, s.goals, 1)
			assert.Equal(t, tt.wantTitle, s.goals[0].Title)
			assert.Equal(t, "active", s.goals[0].Status)
			require.NotNil(t, s.goals[0].UserId)
			require.Len(t, s.users, 1)
			assert.Equal(t, s.users[0].Id, *s.goals[0].UserId)
		})
	}
}

func TestMessageSendGoalWithoutSenderIsUnowned(t *testing.T) {
	s := &memStore{}
	svc, _, _ := newTestAgent(s)

	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "message/send",
		Id:      "req-7",
		Params: map[string]interface{}{
			"message": map[string]interface{}{"text": "create goal: Run a marathon"},
		},
	})

	require.Nil(t, resp.Error)
	require.Len(t, s.goals, 1)
	assert.Nil(t, s.goals[0].UserId)
	assert.Empty(t, s.users)
}

func TestMessageSendCoachingReply(t *testing.T) {
	s := &memStore{}
	svc, _, _ := newTestAgent(s)

	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "message/send",
		Id:      "req-8",
		Params: map[string]interface{}{
			"message": map[string]interface{}{"text": "How do I stay motivated?"},
			"sender":  "telex-3",
		},
	})

	require.Nil(t, resp.Error)
	result, ok := resp.Result.(dto.MessageSendResult)
	require.True(t, ok)
	assert.Equal(t, "coach says: How do I stay motivated?", result.Message.Text)

	// This path records only the raw sender id, no user row.
	require.Len(t, s.messages, 1)
	assert.Nil(t, s.messages[0].UserId)
	require.NotNil(t, s.messages[0].TelexSenderId)
	assert.Equal(t, "telex-3", *s.messages[0].TelexSenderId)
	assert.Empty(t, s.users)
}

func TestProgressUpdateAlwaysAcknowledges(t *testing.T) {
	svc, progress, _ := newTestAgent(&memStore{})

	params := map[string]interface{}{
		"goal_id":      uuid.NewString(),
		"milestone_id": uuid.NewString(),
		"completed":    true,
	}
	resp := svc.Dispatch(context.Background(), &dto.JsonRpcRequest{
		JsonRpc: "2.0",
		Method:  "progress/update",
		Id:      "req-9",
		Params:  params,
	})

	require.Nil(t, resp.Error)
	result, ok := resp.Result.(dto.ProgressUpdateResult)
	require.True(t, ok)
	assert.Equal(t, "acknowledged", result.Status)
	require.Len(t, progress.enqueued, 1)
}

func TestHandleWebhook(t *testing.T) {
	svc, _, _ := newTestAgent(&memStore{})

	t.Run("empty message gets greeting", func(t *testing.T) {
		resp := svc.HandleWebhook(context.Background(), &dto.TelexRequest{Message: "   "})
		assert.Equal(t, "Hi! I'm your AI Coaching Agent. What are you working on today?", resp.Message)
	})

	t.Run("non-empty message gets a coaching reply", func(t *testing.T) {
		resp := svc.HandleWebhook(context.Background(), &dto.TelexRequest{Message: "help me plan"})
		assert.Equal(t, "coach says: help me plan", resp.Message)
	})
}
