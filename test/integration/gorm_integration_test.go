package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/repository/unitofwork"
	"ai-coach-agent-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.GoalRepository())
	assert.NotNil(t, uow.MilestoneRepository())
	assert.NotNil(t, uow.MessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Current user count: %d", count)
	})

	t.Run("GetOrCreate is idempotent per identity", func(t *testing.T) {
		ctx := context.Background()
		identity := entity.ExternalIdentity{
			TelexUserId: "itest-" + uuid.NewString(),
			Name:        "Integration Tester",
		}

		first, err := uow.UserRepository().GetOrCreate(ctx, identity)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, first.Id)

		second, err := uow.UserRepository().GetOrCreate(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, first.Id, second.Id)

		// Cleanup
		assert.NoError(t, uow.UserRepository().Delete(ctx, first.Id))
	})

	t.Run("GetOrCreate resolves a known telex id gaining an email", func(t *testing.T) {
		ctx := context.Background()
		telexId := "itest-" + uuid.NewString()

		// First contact: telex id only.
		first, err := uow.UserRepository().GetOrCreate(ctx, entity.ExternalIdentity{
			TelexUserId: telexId,
		})
		require.NoError(t, err)

		// Same sender later supplies an email. The upsert keys on email, the
		// telex id collides with the existing row; the call must still
		// resolve to that row instead of failing.
		second, err := uow.UserRepository().GetOrCreate(ctx, entity.ExternalIdentity{
			TelexUserId: telexId,
			Email:       "itest-" + uuid.NewString() + "@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, first.Id, second.Id)

		// Cleanup
		assert.NoError(t, uow.UserRepository().Delete(ctx, first.Id))
	})

	t.Run("Goal and milestone round trip", func(t *testing.T) {
		ctx := context.Background()

		user, err := uow.UserRepository().GetOrCreate(ctx, entity.ExternalIdentity{
			TelexUserId: "itest-" + uuid.NewString(),
		})
		require.NoError(t, err)

		goal := &entity.Goal{
			Id:     uuid.New(),
			UserId: &user.Id,
			Title:  "Integration goal",
			Status: "active",
		}
		require.NoError(t, uow.GoalRepository().Create(ctx, goal))

		milestone := &entity.Milestone{
			Id:     uuid.New(),
			GoalId: goal.Id,
			Title:  "Integration milestone",
		}
		require.NoError(t, uow.MilestoneRepository().Create(ctx, milestone))

		updated, err := uow.MilestoneRepository().SetCompleted(ctx, goal.Id, milestone.Id, true)
		require.NoError(t, err)
		assert.True(t, updated.Completed)

		// Cleanup
		assert.NoError(t, uow.MilestoneRepository().Delete(ctx, goal.Id, milestone.Id))
		assert.NoError(t, uow.GoalRepository().Delete(ctx, user.Id, goal.Id))
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})
}
