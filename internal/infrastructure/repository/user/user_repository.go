// Package user implements the lazily created user records on gorm.
package user

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/janhq/agent-memory-store/internal/domain/user"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/entities"
	"github.com/janhq/agent-memory-store/internal/infrastructure/database/transaction"
	"github.com/janhq/agent-memory-store/internal/infrastructure/observability"
)

const entityName = "user"

type UserGormRepository struct {
	db *transaction.Database
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *transaction.Database) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Create implements user.Repository.
func (repo *UserGormRepository) Create(ctx context.Context, u *user.User) error {
	ctx, op := observability.StartOperation(ctx, entityName, "create")

	model, err := entities.NewSchemaUser(u)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, u.ID, "encode"))
	}
	if err := repo.db.GetTx(ctx).Create(model).Error; err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, u.ID, "create"))
	}
	return op.End(nil)
}

// FindByVisibleID implements user.Repository.
func (repo *UserGormRepository) FindByVisibleID(ctx context.Context, id string) (*user.User, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find")
	result, err := repo.find(ctx, false, id)
	return result, op.End(err)
}

// FindForUpdate implements user.Repository.
func (repo *UserGormRepository) FindForUpdate(ctx context.Context, id string) (*user.User, error) {
	ctx, op := observability.StartOperation(ctx, entityName, "find_for_update", attribute.Bool("db.lock", true))
	result, err := repo.find(ctx, true, id)
	return result, op.End(err)
}

func (repo *UserGormRepository) find(ctx context.Context, lock bool, id string) (*user.User, error) {
	tx := repo.db.GetTx(ctx)
	if lock {
		tx = database.ForUpdate(tx)
	}

	var model entities.User
	if err := tx.Where("visible_id = ?", id).First(&model).Error; err != nil {
		return nil, database.TranslateError(ctx, err, entityName, id, "find")
	}
	result, err := model.EtoD()
	if err != nil {
		return nil, database.TranslateError(ctx, err, entityName, id, "decode")
	}
	return result, nil
}

// Update implements user.Repository. It writes metadata and updatedAt.
func (repo *UserGormRepository) Update(ctx context.Context, u *user.User) error {
	ctx, op := observability.StartOperation(ctx, entityName, "update")

	model, err := entities.NewSchemaUser(u)
	if err != nil {
		return op.End(database.TranslateError(ctx, err, entityName, u.ID, "encode"))
	}
	result := repo.db.GetTx(ctx).
		Model(&entities.User{}).
		Where("visible_id = ?", u.ID).
		Updates(map[string]any{
			"metadata":   model.Metadata,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return op.End(database.TranslateError(ctx, result.Error, entityName, u.ID, "update"))
	}
	if result.RowsAffected == 0 {
		return op.End(database.NotFound(ctx, entityName, u.ID))
	}
	return op.End(nil)
}
