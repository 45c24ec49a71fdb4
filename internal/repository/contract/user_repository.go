package contract

import (
	"context"

	"ai-coach-agent-be/internal/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByTelexId(ctx context.Context, telexUserId string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// GetOrCreate resolves an external identity to a persisted user in one
	// logical statement, so two concurrent calls with the same identity
	// cannot create duplicate rows.
	GetOrCreate(ctx context.Context, identity entity.ExternalIdentity) (*entity.User, error)
}
