// Package workflow implements workflow state persistence on gorm.
package workflow

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/janhq/agent-memory-store/internal/domain/workflow"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/entities"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
)

const entityName = "workflow_state"

type WorkflowStateGormRepository struct {
	db *transaction.Database
}

var _ workflow.Repository = (*WorkflowStateGormRepository)(nil)

func NewWorkflowStateGormRepository(db *transaction.Database) *WorkflowStateGormRepository {
	return &WorkflowStateGormRepository{db: db}
}

// Create implements workflow.Repository.
func (repo *WorkflowStateGormRepository) Create(ctx context.Context, s *workflow.State) error {
	ctx, op := observability.StartOperation(ctx, entityName, "create",
		attribute.String("workflow.execution_id", s.ID),
		attribute.String("workflow.id", s.WorkflowID),
	)

	model, err := entities.NewSchemaWorkflowState(s)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, s.ID, "encode"))
	}
	if err := repo.db.GetTx(ctx).Create(model).Error; err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, s.ID, "create"))
	}
	return op.End(nil)
}

// FindByVisibleID implements workflow.Repository.
func (repo *WorkflowStateGormRepository) FindByVisibleID(ctx context.Context, id string) (*workflow.State, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find", attribute.String("workflow.execution_id", id))
	result, err := repo.find(ctx, repo.db.GetTx(ctx), id)
	return result, op.End(err)
}

// FindForUpdate implements workflow.Repository.
func (repo *WorkflowStateGormRepository) FindForUpdate(ctx context.Context, id string) (*workflow.State, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find_for_update", attribute.String("workflow.execution_id", id))
	result, err := repo.find(ctx, database.ForUpdate(repo.db.GetTx(ctx)), id)
	return result, op.End(err)
}

func (repo *WorkflowStateGormRepository) find(ctx context.Context, tx *gorm.DB, id string) (*workflow.State, error) {
	var model entities.WorkflowState
	if err := tx.Where("visible_id = ?", id).First(&model).Error; err != nil {
		return nil, database.TranslateError(ctx, err, entityName, id, "find")
	}
	result, err := model.EtoD()
	if err != nil {
		return nil, database.TranslateError(ctx, err, entityName, id, "decode")
	}
	return result, nil
}

// Save implements workflow.Repository. Absent optional fields are written as NULL.
func (repo *WorkflowStateGormRepository) Save(ctx context.Context, s *workflow.State) error {
	ctx, op := observability.StartOperation(ctx, entityName, "save",
		attribute.String("workflow.execution_id", s.ID),
		attribute.String("workflow.status", string(s.Status)),
	)

	model, err := entities.NewSchemaWorkflowState(s)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, s.ID, "encode"))
	}
	result := repo.db.GetTx(ctx).
		Model(&entities.WorkflowState{}).
		Where("visible_id = ?", s.ID).
		Updates(map[string]any{
			"workflow_id":     model.WorkflowID,
			"workflow_name":   model.WorkflowName,
			"status":          model.Status,
			"input":           model.Input,
			"context":         model.Context,
			"suspension":      model.Suspension,
			"events":          model.Events,
			"output":          model.Output,
			"cancellation":    model.Cancellation,
			"user_id":         model.UserID,
			"conversation_id": model.ConversationID,
			"metadata":        model.Metadata,
			"created_at":      model.CreatedAt,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return op.End(database.TranslateError(ctx, result.Error, entityName, s.ID, "save"))
	}
	if result.RowsAffected == 0 {
		return op.End(database.NotFound(ctx, entityName, s.ID))
	}
	return op.End(nil)
}

// List implements workflow.Repository.
func (repo *WorkflowStateGormRepository) List(ctx context.Context, params workflow.QueryRunsParams) ([]*workflow.State, error) {
	limit := -1
	if params.Limit != nil {
		limit = *params.Limit
	}
	ctx, op := observability.StartOperation(ctx, entityName, "list",
		attribute.String("workflow.id", params.WorkflowID),
		attribute.String("workflow.status", string(params.Status)),
		attribute.Int("page.limit", limit),
		attribute.Int("page.offset", params.Offset),
	)

	tx := repo.db.GetTx(ctx)
	if params.WorkflowID != "" {
		tx = tx.Where("workflow_id = ?", params.WorkflowID)
	}
	if params.Status != "" {
		tx = tx.Where("status = ?", string(params.Status))
	}
	if params.From != nil {
		tx = tx.Where("created_at >= ?", params.From.UTC())
	}
	if params.To != nil {
		tx = tx.Where("created_at <= ?", params.To.UTC())
	}
	tx = tx.Order("created_at DESC").Order("id DESC")
	if params.Offset > 0 {
		tx = tx.Offset(params.Offset)
	}
	if limit >= 0 {
		tx = tx.Limit(limit)
	}

	var rows []entities.WorkflowState
	if err := tx.Find(&rows).Error; err != nil {
		return nil, op.End(database.TranslateError(ctx, err, entityName, params.WorkflowID, "list"))
	}

	result := make([]*workflow.State, 0, len(rows))
	for i := range rows {
		item, err := rows[i].EtoD()
		if err != nil {
			return nil, op.End(database.TranslateError(ctx, err, entityName, rows[i].VisibleID, "decode"))
		}
		result = append(result, item)
	}
	return result, op.End(nil)
}
