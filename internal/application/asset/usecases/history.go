package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/asset/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type ListHistoryQuery struct {
	Principal policy.Principal
	AssetID   uint
}

type ListHistoryUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	checker     policy.Checker
	logger      logger.Interface
}

func NewListHistoryUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	checker policy.Checker,
	logger logger.Interface,
) *ListHistoryUseCase {
	return &ListHistoryUseCase{assetRepo: assetRepo, historyRepo: historyRepo, checker: checker, logger: logger}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, q ListHistoryQuery) ([]*dto.HistoryDTO, error) {
	uc.logger.Debugw("executing list asset history use case", "asset_id", q.AssetID)

	if err := authorize(uc.checker, uc.logger, q.Principal, policy.ActionRead); err != nil {
		return nil, err
	}
	if _, err := uc.assetRepo.GetByID(ctx, q.AssetID); err != nil {
		return nil, err
	}

	entries, err := uc.historyRepo.ListByAssetID(ctx, q.AssetID)
	if err != nil {
		return nil, persistenceError(uc.logger, err, "Failed to list asset history", "asset_id", q.AssetID)
	}
	return dto.ToHistoryDTOs(entries), nil
}

type AddHistoryCommand struct {
	Principal policy.Principal
	AssetID   uint
	// Date is YYYY-MM-DD; empty means today.
	Date        string
	ActionType  string
	Description string
	PerformedBy string
}

type AddHistoryUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	checker     policy.Checker
	logger      logger.Interface
}

func NewAddHistoryUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	checker policy.Checker,
	logger logger.Interface,
) *AddHistoryUseCase {
	return &AddHistoryUseCase{assetRepo: assetRepo, historyRepo: historyRepo, checker: checker, logger: logger}
}

func (uc *AddHistoryUseCase) Execute(ctx context.Context, cmd AddHistoryCommand) (*dto.HistoryDTO, error) {
	uc.logger.Infow("executing add asset history use case", "asset_id", cmd.AssetID, "action_type", cmd.ActionType)

	if err := authorize(uc.checker, uc.logger, cmd.Principal, policy.ActionWrite); err != nil {
		return nil, err
	}

	date := biztime.Today()
	if d, err := parseOptionalDate(&cmd.Date); err != nil {
		return nil, errors.NewValidationError(err.Error())
	} else if d != nil {
		date = *d
	}

	if _, err := uc.assetRepo.GetByID(ctx, cmd.AssetID); err != nil {
		return nil, err
	}

	entry, err := asset.NewHistoryEntry(cmd.AssetID, date, cmd.ActionType, cmd.Description, cmd.PerformedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.historyRepo.Create(ctx, entry); err != nil {
		return nil, persistenceError(uc.logger, err, "Failed to add asset history", "asset_id", cmd.AssetID)
	}

	return dto.ToHistoryDTO(entry), nil
}

type UpdateHistoryCommand struct {
	Principal   policy.Principal
	HistoryID   uint
	Date        *string
	ActionType  *string
	Description *string
	PerformedBy *string
}

type UpdateHistoryUseCase struct {
	historyRepo asset.HistoryRepository
	checker     policy.Checker
	logger      logger.Interface
}

func NewUpdateHistoryUseCase(historyRepo asset.HistoryRepository, checker policy.Checker, logger logger.Interface) *UpdateHistoryUseCase {
	return &UpdateHistoryUseCase{historyRepo: historyRepo, checker: checker, logger: logger}
}

func (uc *UpdateHistoryUseCase) Execute(ctx context.Context, cmd UpdateHistoryCommand) (*dto.HistoryDTO, error) {
	uc.logger.Infow("executing update asset history use case", "history_id", cmd.HistoryID)

	if err := authorize(uc.checker, uc.logger, cmd.Principal, policy.ActionWrite); err != nil {
		return nil, err
	}

	date, err := parseOptionalDate(cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entry, err := uc.historyRepo.GetByID(ctx, cmd.HistoryID)
	if err != nil {
		return nil, err
	}

	if err := entry.Correct(asset.HistoryCorrection{
		Date:        date,
		ActionType:  cmd.ActionType,
		Description: cmd.Description,
		PerformedBy: cmd.PerformedBy,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.historyRepo.Update(ctx, entry); err != nil {
		return nil, persistenceError(uc.logger, err, "Failed to update asset history", "history_id", cmd.HistoryID)
	}
	return dto.ToHistoryDTO(entry), nil
}

type DeleteHistoryCommand struct {
	Principal policy.Principal
	HistoryID uint
}

type DeleteHistoryUseCase struct {
	historyRepo asset.HistoryRepository
	checker     policy.Checker
	logger      logger.Interface
}

func NewDeleteHistoryUseCase(historyRepo asset.HistoryRepository, checker policy.Checker, logger logger.Interface) *DeleteHistoryUseCase {
	return &DeleteHistoryUseCase{historyRepo: historyRepo, checker: checker, logger: logger}
}

func (uc *DeleteHistoryUseCase) Execute(ctx context.Context, cmd DeleteHistoryCommand) error {
	uc.logger.Infow("executing delete asset history use case", "history_id", cmd.HistoryID)

	if err := authorize(uc.checker, uc.logger, cmd.Principal, policy.ActionWrite); err != nil {
		return err
	}
	if _, err := uc.historyRepo.GetByID(ctx, cmd.HistoryID); err != nil {
		return err
	}
	if err := uc.historyRepo.Delete(ctx, cmd.HistoryID); err != nil {
		return persistenceError(uc.logger, err, "Failed to delete asset history", "history_id", cmd.HistoryID)
	}
	return nil
}
