package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/category/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CategoryCommand struct {
	Principal   policy.Principal
	ID          uint
	Name        string
	Code        string
	Description string
}

// AssetCategoryUseCases groups the asset category registry operations.
type AssetCategoryUseCases struct {
	repo      category.Repository
	assetRepo asset.Repository
	checker   policy.Checker
	logger    logger.Interface
}

func NewAssetCategoryUseCases(
	repo category.Repository,
	assetRepo asset.Repository,
	checker policy.Checker,
	logger logger.Interface,
) *AssetCategoryUseCases {
	return &AssetCategoryUseCases{
		repo:      repo,
		assetRepo: assetRepo,
		checker:   checker,
		logger:    logger,
	}
}

func (uc *AssetCategoryUseCases) List(ctx context.Context) ([]*dto.CategoryDTO, error) {
	cats, err := uc.repo.List(ctx)
	if err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to list categories")
	}
	return dto.ToCategoryDTOs(cats), nil
}

func (uc *AssetCategoryUseCases) Create(ctx context.Context, cmd CategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name, "code", cmd.Code)

	if err := authorizeWrite(uc.checker, uc.logger, cmd.Principal); err != nil {
		return nil, err
	}

	c, err := category.NewCategory(cmd.Name, cmd.Code, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := ensureUnique(ctx, uc.repo, c.Name(), c.Code(), 0); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to create category")
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to create category", "code", c.Code())
	}

	uc.logger.Infow("category created successfully", "category_id", c.ID())
	return dto.ToCategoryDTO(c), nil
}

func (uc *AssetCategoryUseCases) Update(ctx context.Context, cmd CategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing update category use case", "category_id", cmd.ID)

	if err := authorizeWrite(uc.checker, uc.logger, cmd.Principal); err != nil {
		return nil, err
	}

	c, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := c.Rename(cmd.Name, cmd.Code, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := ensureUnique(ctx, uc.repo, c.Name(), c.Code(), c.ID()); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to update category")
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to update category", "category_id", c.ID())
	}
	return dto.ToCategoryDTO(c), nil
}

// Delete refuses to remove a category that any asset still references.
func (uc *AssetCategoryUseCases) Delete(ctx context.Context, principal policy.Principal, id uint) error {
	uc.logger.Infow("executing delete category use case", "category_id", id)

	if err := authorizeWrite(uc.checker, uc.logger, principal); err != nil {
		return err
	}
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := uc.assetRepo.CountByCategory(ctx, id)
	if err != nil {
		return mapWriteError(uc.logger, err, "Failed to delete category", "category_id", id)
	}
	if inUse > 0 {
		return errors.NewConflictError("Category is in use by existing assets and cannot be deleted")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return mapWriteError(uc.logger, err, "Failed to delete category", "category_id", id)
	}
	return nil
}
