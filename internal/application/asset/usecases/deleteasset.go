package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type DeleteAssetCommand struct {
	Principal policy.Principal
	AssetID   uint
}

type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	checker   policy.Checker
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, checker policy.Checker, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
		checker:   checker,
		logger:    logger,
	}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, cmd DeleteAssetCommand) error {
	uc.logger.Infow("executing delete asset use case", "asset_id", cmd.AssetID, "user_id", cmd.Principal.UserID)

	if err := authorize(uc.checker, uc.logger, cmd.Principal, policy.ActionWrite); err != nil {
		return err
	}

	if _, err := uc.assetRepo.GetByID(ctx, cmd.AssetID); err != nil {
		return err
	}

	if err := uc.assetRepo.Delete(ctx, cmd.AssetID); err != nil {
		return persistenceError(uc.logger, err, "Failed to delete asset", "asset_id", cmd.AssetID)
	}

	uc.logger.Infow("asset deleted successfully", "asset_id", cmd.AssetID)
	return nil
}
