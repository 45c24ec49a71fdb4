package service

import (
	"context"
	"testing"
	"time"

	"ai-coach-agent-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressFlowsThroughToMilestone(t *testing.T) {
	s := &memStore{}
	goalId := uuid.New()
	milestoneId := uuid.New()
	s.milestones = append(s.milestones, &entity.Milestone{
		Id:     milestoneId,
		GoalId: goalId,
		Title:  "Finish chapter 3",
	})

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewProgressConsumerService(pubSub, &memFactory{s: s}, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	progress := NewProgressService(nil, pubSub, nopLogger{})
	progress.Enqueue(ctx, map[string]interface{}{
		"goal_id":      goalId.String(),
		"milestone_id": milestoneId.String(),
		"completed":    true,
	})

	assert.Eventually(t, func() bool {
		return s.milestones[0].Completed
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProgressWithoutCoordinatesIsIgnored(t *testing.T) {
	s := &memStore{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewProgressConsumerService(pubSub, &memFactory{s: s}, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	progress := NewProgressService(nil, pubSub, nopLogger{})
	progress.Enqueue(ctx, map[string]interface{}{"note": "went for a run"})

	// Drain window: the arbitrary payload must not touch any milestone.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, s.milestones)
}
