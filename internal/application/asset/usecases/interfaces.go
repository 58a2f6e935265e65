package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/asset/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error)
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error)
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, cmd DeleteAssetCommand) error
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) ([]*dto.AssetDTO, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, query GetAssetQuery) (*dto.AssetDTO, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, query ListHistoryQuery) ([]*dto.HistoryDTO, error)
}

type AddHistoryExecutor interface {
	Execute(ctx context.Context, cmd AddHistoryCommand) (*dto.HistoryDTO, error)
}

type UpdateHistoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateHistoryCommand) (*dto.HistoryDTO, error)
}

type DeleteHistoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteHistoryCommand) error
}

func authorize(checker policy.Checker, log logger.Interface, p policy.Principal, action policy.Action) error {
	if checker.Can(p, action, policy.ResourceAsset) {
		return nil
	}
	log.Warnw("asset operation denied", "user_id", p.UserID, "role", p.Role, "action", action)
	return errors.NewForbiddenError("Permission denied")
}

// persistenceError passes application errors through and hides everything else behind
// a generic message.
func persistenceError(log logger.Interface, err error, msg string, keysAndValues ...any) error {
	if errors.IsAppError(err) {
		return err
	}
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return errors.NewInternalError(msg)
}
