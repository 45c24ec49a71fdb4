package implementation

import (
	"context"

	"ai-coach-agent-be/internal/entity"
	"ai-coach-agent-be/internal/mapper"
	"ai-coach-agent-be/internal/model"
	"ai-coach-agent-be/internal/pkg/apperror"
	"ai-coach-agent-be/internal/repository/contract"
	"ai-coach-agent-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessageMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessageMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	if message.Text == "" {
		return apperror.NewValidation("message text is empty")
	}
	modelMessage := r.mapper.ToModel(message)
	result := r.db.WithContext(ctx).Create(modelMessage)
	if result.Error != nil {
		return translateError(result.Error, "message not found", "message already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewValidation("error while creating message")
	}
	*message = *r.mapper.ToEntity(modelMessage)
	return nil
}

func (r *MessageRepositoryImpl) GetById(ctx context.Context, userId, messageId uuid.UUID) (*entity.Message, error) {
	var modelMessage model.Message
	query := specification.OwnedByUser{UserID: userId}.Apply(
		specification.ByID{ID: messageId}.Apply(r.db.WithContext(ctx)),
	)
	if err := query.First(&modelMessage).Error; err != nil {
		return nil, translateError(err, "message not found", "message already exists")
	}
	return r.mapper.ToEntity(&modelMessage), nil
}

func (r *MessageRepositoryImpl) ListByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var modelMessages []*model.Message
	query := specification.OwnedByUser{UserID: userId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "created_at", Desc: true}.Apply(query)
	query = specification.Pagination{Limit: limit, Offset: offset}.Apply(query)
	if err := query.Find(&modelMessages).Error; err != nil {
		return nil, apperror.NewInternal("repository failure", err)
	}
	return r.mapper.ToEntities(modelMessages), nil
}

func (r *MessageRepositoryImpl) Delete(ctx context.Context, userId, messageId uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", messageId, userId).
		Delete(&model.Message{})
	if result.Error != nil {
		return translateError(result.Error, "message not found", "message already exists")
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFound("message not found")
	}
	return nil
}
