// Package step implements conversation step persistence on gorm.
package step

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/janhq/agent-memory-store/internal/domain/step"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/entities"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
)

const entityName = "step"

type StepGormRepository struct {
	db *transaction.Database
}

var _ step.Repository = (*StepGormRepository)(nil)

func NewStepGormRepository(db *transaction.Database) *StepGormRepository {
	return &StepGormRepository{db: db}
}

// Create implements step.Repository.
func (repo *StepGormRepository) Create(ctx context.Context, s *step.Step) error {
	ctx, op := observability.StartOperation(ctx, entityName, "create", attribute.String("step.id", s.ID))

	model, err := entities.NewSchemaConversationStep(s)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, s.ID, "encode"))
	}
	if err := repo.db.GetTx(ctx).Create(model).Error; err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, s.ID, "create"))
	}
	return op.End(nil)
}

// FindByVisibleID implements step.Repository.
func (repo *StepGormRepository) FindByVisibleID(ctx context.Context, id string) (*step.Step, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find", attribute.String("step.id", id))

	var model entities.ConversationStep
	if err := repo.db.GetTx(ctx).Where("visible_id = ?", id).First(&model).Error; err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, id, "find"))
	}
	result, err := model.EtoD()
	if err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, id, "decode"))
	}
	return result, op.End(nil)
}

// Update implements step.Repository. Identity, ownership and createdAt are not written.
func (repo *StepGormRepository) Update(ctx context.Context, s *step.Step) error {
	ctx, op := observability.StartOperation(ctx, entityName, "update", attribute.String("step.id", s.ID))

	model, err := entities.NewSchemaConversationStep(s)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, s.ID, "encode"))
	}
	result := repo.db.GetTx(ctx).
		Model(&entities.ConversationStep{}).
		Where("visible_id = ?", s.ID).
		Updates(map[string]any{
			"agent_name":     model.AgentName,
			"operation_id":   model.OperationID,
			"step_index":     model.StepIndex,
			"type":           model.Type,
			"role":           model.Role,
			"content":        model.Content,
			"arguments":      model.Arguments,
			"result":         model.Result,
			"usage":          model.Usage,
			"sub_agent_id":   model.SubAgentID,
			"sub_agent_name": model.SubAgentName,
		})
	if result.Error != nil {
		return op.End(database.TranslateError(ctx, result.Error, entityName, s.ID, "update"))
	}
	if result.RowsAffected == 0 {
		return op.End(database.NotFound(ctx, entityName, s.ID))
	}
	return op.End(nil)
}

// ListLatest implements step.Repository.
func (repo *StepGormRepository) ListLatest(ctx context.Context, filter step.Filter) ([]*step.Step, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "list_latest",
		attribute.String("conversation.id", filter.ConversationID),
		attribute.Int("limit", filter.Limit),
	)

	tx := repo.db.GetTx(ctx).
		Where("conversation_id = ?", filter.ConversationID).
		Where("user_id = ?", filter.UserID)
	if filter.OperationID != "" {
		tx = tx.Where("operation_id = ?", filter.OperationID)
	}
	tx = tx.Order("step_index DESC").Order("id DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []entities.ConversationStep
	if err := tx.Find(&rows).Error; err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, filter.ConversationID, "list"))
	}

	result := make([]*step.Step, 0, len(rows))
	for i := range rows {
		item, err := rows[i].EtoD()
		if err != nil {
			return nil, op.End(database.TranslateError(ctx, err, entityName, rows[i].VisibleID, "decode"))
		}
		result = append(result, item)
	}
	return result, op.End(nil)
}

// DeleteByConversation implements step.Repository.
func (repo *StepGormRepository) DeleteByConversation(ctx context.Context, conversationID string) (int64, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "delete_by_conversation", attribute.String("conversation.id", conversationID))

	result := repo.db.GetTx(ctx).Where("conversation_id = ?", conversationID).Delete(&entities.ConversationStep{})
	if result.Error != nil {
		return 0, op.End(database.TranslateError(ctx, result.Error, entityName, conversationID, "delete"))
	}
	return result.RowsAffected, op.End(nil)
}

// DeleteByConversationAndUser implements step.Repository.
func (repo *StepGormRepository) DeleteByConversationAndUser(ctx context.Context, conversationID, userID string) (int64, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "delete_by_conversation_user", attribute.String("conversation.id", conversationID))

	result := repo.db.GetTx(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&entities.ConversationStep{})
	if result.Error != nil {
		return 0, op.End(database.TranslateError(ctx, result.Error, entityName, conversationID, "delete"))
	}
	return result.RowsAffected, op.End(nil)
}

// DeleteByConversationOwner implements step.Repository.
func (repo *StepGormRepository) DeleteByConversationOwner(ctx context.Context, userID string) (int64, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "delete_by_owner")

	tx := repo.db.GetTx(ctx)
	owned := tx.Session(&gorm.Session{NewDB: true}).
		Model(&entities.Conversation{}).
		Select("visible_id").
		Where("user_id = ?", userID)
	result := tx.Where("conversation_id IN (?)", owned).Delete(&entities.ConversationStep{})
	if result.Error != nil {
		return 0, op.End(database.TranslateError(ctx, result.Error, entityName, userID, "delete"))
	}
	return result.RowsAffected, op.End(nil)
}
