package implementation

import (
	"context"
	"fmt"

	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/mapper"
	"ai-coach-agent-be/internal/model"
	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/repository/contract"
	"ai-coach-agent-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	result := r.db.WithContext(ctx).Create(modelUser)
	if result.Error != nil {
		return translateError(result.Error, "user not found", "user already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewValidation("error while creating user")
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) GetById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByEmail{Email: email})
}

func (r *UserRepositoryImpl) GetByTelexId(ctx context.Context, telexUserId string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByTelexUserID{TelexUserID: telexUserId})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var modelUser model.User
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&modelUser).Error; err != nil {
		return nil, translateError(err, "user not found", "user already exists")
	}
	return r.mapper.ToEntity(&modelUser), nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	modelUser := r.mapper.ToModel(user)
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", modelUser.Id).
		Updates(map[string]interface{}{
			"telex_user_id": modelUser.TelexUserId,
			"name":          modelUser.Name,
			"email":         modelUser.Email,
		})
	if result.Error != nil {
		return nil, translateError(result.Error, "user not found", "user already exists")
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NewNotFound("user not found")
	}
	return r.GetById(ctx, user.Id)
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		return translateError(result.Error, "user not found", "user already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFound("user not found")
	}
	return nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, apperror.NewInternal("repository failure", err)
	}
	return count, nil
}

// GetOrCreate upserts on the identity's stable key (email when present,
// otherwise telex user id) and returns the winning row in a single
// statement. The no-op DO UPDATE makes RETURNING yield the existing row on
// conflict instead of nothing.
func (r *UserRepositoryImpl) GetOrCreate(ctx context.Context, identity entity.ExternalIdentity) (*entity.User, error) {
	if identity.IsEmpty() {
		return nil, apperror.NewValidation("external identity is empty")
	}

	conflictKey := "telex_user_id"
	if identity.Email != "" {
		conflictKey = "email"
	}

	var modelUser model.User
	query := fmt.Sprintf(`
		INSERT INTO users (telex_user_id, name, email, created_at, updated_at)
		VALUES (?, ?, ?, now(), now())
		ON CONFLICT (%s) DO UPDATE SET updated_at = now()
		RETURNING *
	`, conflictKey)

	err := r.db.WithContext(ctx).
		Raw(query,
			nullableString(identity.TelexUserId),
			nullableString(identity.Name),
			nullableString(identity.Email),
		).
		Scan(&modelUser).Error
	if err != nil {
		translated := translateError(err, "user not found", "user already exists")
		// Both columns are unique. When the upsert keys on email but the
		// telex id already belongs to an existing row, the insert trips the
		// telex_user_id index outside the ON CONFLICT target. That row is
		// still the match this identity resolves to.
		if apperror.IsConflict(translated) && conflictKey == "email" && identity.TelexUserId != "" {
			return r.GetByTelexId(ctx, identity.TelexUserId)
		}
		return nil, translated
	}
	if modelUser.Id == uuid.Nil {
		return nil, apperror.NewValidation("error while creating user")
	}

	return r.mapper.ToEntity(&modelUser), nil
}
