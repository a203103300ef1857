// Package message implements message persistence on gorm.
package message

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/janhq/agent-memory-store/internal/domain/message"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/entities"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
)

const entityName = "message"

type MessageGormRepository struct {
	db *transaction.Database
}

var _ message.Repository = (*MessageGormRepository)(nil)

func NewMessageGormRepository(db *transaction.Database) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

// Create implements message.Repository.
func (repo *MessageGormRepository) Create(ctx context.Context, m *message.Message) error {
	ctx, op := observability.StartOperation(ctx, entityName, "create", attribute.String("message.id", m.ID))

	model, err := entities.NewSchemaMessage(m)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, m.ID, "encode"))
	}
	if err := repo.db.GetTx(ctx).Create(model).Error; err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, m.ID, "create"))
	}
	return op.End(nil)
}

// FindByVisibleID implements message.Repository.
func (repo *MessageGormRepository) FindByVisibleID(ctx context.Context, id string) (*message.Message, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find", attribute.String("message.id", id))

	var model entities.Message
	if err := repo.db.GetTx(ctx).Where("visible_id = ?", id).First(&model).Error; err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, id, "find"))
	}
	result, err := model.EtoD()
	if err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, id, "decode"))
	}
	return result, op.End(nil)
}

// Update implements message.Repository.
func (repo *MessageGormRepository) Update(ctx context.Context, m *message.Message) error {
	ctx, op := observability.StartOperation(ctx, entityName, "update", attribute.String("message.id", m.ID))

	model, err := entities.NewSchemaMessage(m)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, m.ID, "encode"))
	}
	result := repo.db.GetTx(ctx).
		Model(&entities.Message{}).
		Where("visible_id = ?", m.ID).
		Updates(map[string]any{
			"role":     model.Role,
			"parts":    model.Parts,
			"metadata": model.Metadata,
		})
	if result.Error != nil {
		return op.End(database.TranslateError(ctx, result.Error, entityName, m.ID, "update"))
	}
	if result.RowsAffected == 0 {
		return op.End(database.NotFound(ctx, entityName, m.ID))
	}
	return op.End(nil)
}

// ListLatest implements message.Repository.
func (repo *MessageGormRepository) ListLatest(ctx context.Context, filter message.Filter) ([]*message.Message, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "list_latest",
		attribute.String("conversation.id", filter.ConversationID),
		attribute.Int("limit", filter.Limit),
		attribute.Int("roles", len(filter.Roles)),
	)

	tx := repo.db.GetTx(ctx).
		Where("conversation_id = ?", filter.ConversationID).
		Where("user_id = ?", filter.UserID)
	if len(filter.Roles) > 0 {
		tx = tx.Where("role IN ?", filter.Roles)
	}
	if filter.Before != nil {
		tx = tx.Where("created_at < ?", filter.Before.UTC())
	}
	if filter.After != nil {
		tx = tx.Where("created_at > ?", filter.After.UTC())
	}
	tx = tx.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []entities.Message
	if err := tx.Find(&rows).Error; err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, filter.ConversationID, "list"))
	}

	result := make([]*message.Message, 0, len(rows))
	for i := range rows {
		item, err := rows[i].EtoD()
		if err != nil {
			return nil, op.End(database.TranslateError(ctx, err, entityName, rows[i].VisibleID, "decode"))
		}
		result = append(result, item)
	}
	return result, op.End(nil)
}

// DeleteByConversation implements message.Repository.
func (repo *MessageGormRepository) DeleteByConversation(ctx context.Context, conversationID string) (int64, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "delete_by_conversation", attribute.String("conversation.id", conversationID))

	result := repo.db.GetTx(ctx).Where("conversation_id = ?", conversationID).Delete(&entities.Message{})
	if result.Error != nil {
		return 0, op.End(database.TranslateError(ctx, result.Error, entityName, conversationID, "delete"))
	}
	return result.RowsAffected, op.End(nil)
}

// DeleteByConversationAndUser implements message.Repository.
func (repo *MessageGormRepository) DeleteByConversationAndUser(ctx context.Context, conversationID, userID string) (int64, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "delete_by_conversation_user", attribute.String("conversation.id", conversationID))

	result := repo.db.GetTx(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&entities.Message{})
	if result.Error != nil {
		return 0, op.End(database.TranslateError(ctx, result.Error, entityName, conversationID, "delete"))
	}
	return result.RowsAffected, op.End(nil)
}

// DeleteByConversationOwner implements message.Repository.
func (repo *MessageGormRepository) DeleteByConversationOwner(ctx context.Context, userID string) (int64, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "delete_by_owner")

	tx := repo.db.GetTx(ctx)
	owned := tx.Session(&gorm.Session{NewDB: true}).
		Model(&entities.Conversation{}).
		Select("visible_id").
		Where("user_id = ?", userID)
	result := tx.Where("conversation_id IN (?)", owned).Delete(&entities.Message{})
	if result.Error != nil {
		return 0, op.End(database.TranslateError(ctx, result.Error, entityName, userID, "delete"))
	}
	return result.RowsAffected, op.End(nil)
}
