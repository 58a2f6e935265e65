package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/asset/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type ListAssetsQuery struct {
	Principal policy.Principal
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	checker   policy.Checker
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.Repository, checker policy.Checker, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{assetRepo: assetRepo, checker: checker, logger: logger}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, q ListAssetsQuery) ([]*dto.AssetDTO, error) {
	uc.logger.Debugw("executing list assets use case", "user_id", q.Principal.UserID)

	if err := authorize(uc.checker, uc.logger, q.Principal, policy.ActionRead); err != nil {
		return nil, err
	}

	assets, err := uc.assetRepo.List(ctx)
	if err != nil {
		return nil, persistenceError(uc.logger, err, "Failed to list assets")
	}
	return dto.ToAssetDTOs(assets), nil
}

type GetAssetQuery struct {
	Principal policy.Principal
	AssetID   uint
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	checker   policy.Checker
	logger    logger.Interface
}

func NewGetAssetUseCase(assetRepo asset.Repository, checker policy.Checker, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{assetRepo: assetRepo, checker: checker, logger: logger}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, q GetAssetQuery) (*dto.AssetDTO, error) {
	uc.logger.Debugw("executing get asset use case", "asset_id", q.AssetID)

	if err := authorize(uc.checker, uc.logger, q.Principal, policy.ActionRead); err != nil {
		return nil, err
	}

	a, err := uc.assetRepo.GetByID(ctx, q.AssetID)
	if err != nil {
		return nil, err
	}
	return dto.ToAssetDTO(a), nil
}
