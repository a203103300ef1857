// Package conversation implements conversation persistence on gorm.
package conversation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/janhq/agent-memory-store/internal/domain/conversation"
	"github.com/janhq/agent-memory-store/internal/domain/query"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/entities"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
)

const entityName = "conversation"

type ConversationGormRepository struct {
	db *transaction.Database
}

var _ conversation.Repository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *transaction.Database) *ConversationGormRepository {
	return &ConversationGormRepository{db: db}
}

// Create implements conversation.Repository.
func (repo *ConversationGormRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	ctx, op := observability.StartOperation(ctx, entityName, "create", attribute.String("conversation.id", conv.ID))

	model, err := entities.NewSchemaConversation(conv)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, conv.ID, "encode"))
	}
	if err := repo.db.GetTx(ctx).Create(model).Error; err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, conv.ID, "create"))
	}
	return op.End(nil)
}

// FindByVisibleID implements conversation.Repository.
func (repo *ConversationGormRepository) FindByVisibleID(ctx context.Context, id string) (*conversation.Conversation, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find", attribute.String("conversation.id", id))
	result, err := repo.find(ctx, repo.db.GetTx(ctx), id)
	return result, op.End(err)
}

// FindForUpdate implements conversation.Repository.
func (repo *ConversationGormRepository) FindForUpdate(ctx context.Context, id string) (*conversation.Conversation, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find_for_update", attribute.String("conversation.id", id))
	result, err := repo.find(ctx, database.ForUpdate(repo.db.GetTx(ctx)), id)
	return result, op.End(err)
}

func (repo *ConversationGormRepository) find(ctx context.Context, tx *gorm.DB, id string) (*conversation.Conversation, error) {
	var model entities.Conversation
	if err := tx.Where("visible_id = ?", id).First(&model).Error; err != nil {
		return nil, database.TranslateError(ctx, err, entityName, id, "find")
	}
	result, err := model.EtoD()
	if err != nil {
		return nil, database.TranslateError(ctx, err, entityName, id, "decode")
	}
	return result, nil
}

// ListByResourceID implements conversation.Repository.
func (repo *ConversationGormRepository) ListByResourceID(ctx context.Context, resourceID string) ([]*conversation.Conversation, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "list_by_resource", attribute.String("conversation.resource_id", resourceID))

	var rows []entities.Conversation
	err := repo.db.GetTx(ctx).
		Where("resource_id = ?", resourceID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, resourceID, "list"))
	}
	result, err := toDomain(rows)
	if err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, resourceID, "decode"))
	}
	return result, op.End(nil)
}

// List implements conversation.Repository. The user index is preferred, then the resource index;
// without either filter only the most recent filter.ScanLimit rows are considered.
func (repo *ConversationGormRepository) List(ctx context.Context, filter conversation.Filter, opts conversation.ListOptions) ([]*conversation.Conversation, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "list",
		attribute.Bool("filter.user", filter.UserID != ""),
		attribute.Bool("filter.resource", filter.ResourceID != ""),
		attribute.Int("page.limit", opts.Page.Limit),
		attribute.Int("page.offset", opts.Page.Offset),
	)

	tx := repo.db.GetTx(ctx).Model(&entities.Conversation{})
	switch {
	case filter.UserID != "":
		tx = tx.Where("user_id = ?", filter.UserID)
		if filter.ResourceID != "" {
			tx = tx.Where("resource_id = ?", filter.ResourceID)
		}
	case filter.ResourceID != "":
		tx = tx.Where("resource_id = ?", filter.ResourceID)
	case filter.ScanLimit > 0:
		recent := repo.db.GetTx(ctx).
			Model(&entities.Conversation{}).
			Select("id").
			Order("created_at DESC").
			Order("id DESC").
			Limit(filter.ScanLimit)
		tx = tx.Where("id IN (?)", recent)
	}

	desc := opts.Direction != query.Asc
	tx = tx.
		Order(clause.OrderByColumn{Column: clause.Column{Name: string(opts.OrderBy)}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	if opts.Page.Offset > 0 {
		tx = tx.Offset(opts.Page.Offset)
	}
	if opts.Page.Limit > 0 {
		tx = tx.Limit(opts.Page.Limit)
	}

	var rows []entities.Conversation
	if err := tx.Find(&rows).Error; err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, filter.UserID, "list"))
	}
	result, err := toDomain(rows)
	if err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, filter.UserID, "decode"))
	}
	return result, op.End(nil)
}

// Update implements conversation.Repository. It writes title, resource, metadata and updatedAt.
func (repo *ConversationGormRepository) Update(ctx context.Context, conv *conversation.Conversation) error {
	ctx, op := observability.StartOperation(ctx, entityName, "update", attribute.String("conversation.id", conv.ID))

	model, err := entities.NewSchemaConversation(conv)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, conv.ID, "encode"))
	}
	result := repo.db.GetTx(ctx).
		Model(&entities.Conversation{}).
		Where("visible_id = ?", conv.ID).
		Updates(map[string]any{
			"title":       model.Title,
			"resource_id": model.ResourceID,
			"metadata":    model.Metadata,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return op.End(database.TranslateError(ctx, result.Error, entityName, conv.ID, "update"))
	}
	if result.RowsAffected == 0 {
		return op.End(database.NotFound(ctx, entityName, conv.ID))
	}
	return op.End(nil)
}

// Delete implements conversation.Repository.
func (repo *ConversationGormRepository) Delete(ctx context.Context, id string) error {
	ctx, op := observability.StartOperation(ctx, entityName, "delete", attribute.String("conversation.id", id))

	result := repo.db.GetTx(ctx).Where("visible_id = ?", id).Delete(&entities.Conversation{})
	if result.Error != nil {
		return op.End(database.TranslateError(ctx, result.Error, entityName, id, "delete"))
	}
	if result.RowsAffected == 0 {
		return op.End(database.NotFound(ctx, entityName, id))
	}
	return op.End(nil)
}

func toDomain(rows []entities.Conversation) ([]*conversation.Conversation, error) {
	result := make([]*conversation.Conversation, 0, len(rows))
	for i := range rows {
		item, err := rows[i].EtoD()
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
