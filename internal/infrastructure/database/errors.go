package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/janhq/agent-memory-store/internal/utils/platformerrors"
)

// TranslateError maps a gorm error onto the platform error kinds. Missing rows become NOT_FOUND,
// unique violations become CONFLICT, everything else is a DATABASE_ERROR.
func TranslateError(ctx context.Context, err error, entity, id, action string) error {
	if err == nil {
		return nil
	}
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return platformerrors.NewErrorWithContext(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("%s not found: %s", entity, id),
			nil,
			"5c1d2a7e-0f4b-4e83-9a61-3b7e2d9c4f10",
			map[string]any{"entity": entity, "id": id},
		)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return platformerrors.NewErrorWithContext(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeAlreadyExists,
			fmt.Sprintf("%s already exists: %s", entity, id),
			err,
			"8e4f6b2c-1d3a-4c95-b7e0-6a2f9d1c5e38",
			map[string]any{"entity": entity, "id": id},
		)
	case errors.Is(err, context.DeadlineExceeded):
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeTimeout,
			fmt.Sprintf("failed to %s %s: timeout", action, entity),
			err,
			"b3a9e1d4-7c2f-4a68-8e15-0d6c3f9a2b71",
		)
	default:
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			fmt.Sprintf("failed to %s %s", action, entity),
			err,
			"f2c7a0e9-4b1d-4d36-a8c3-9e5b1f7d2a64",
		)
	}
}

// NotFound builds the NOT_FOUND error for writes that matched no row.
func NotFound(ctx context.Context, entity, id string) error {
	return TranslateError(ctx, gorm.ErrRecordNotFound, entity, id, "")
}
