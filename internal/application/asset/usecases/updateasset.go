package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/asset/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// UpdateAssetCommand carries only the fields present in the request; nil means absent.
type UpdateAssetCommand struct {
	Principal    policy.Principal
	AssetID      uint
	AssetCode    *string
	CategoryID   *uint
	Type         *string
	Model        *string
	HealthStatus *string
	UsageStatus  *string
	PurchaseDate *string
	Notes        *string
	Specs        map[string]any
	Software     map[string]any
	Monitor      map[string]any
	// AssignedToSet distinguishes an explicit null assigned_to from an absent one.
	AssignedToSet bool
	AssignedTo    *dto.AssignmentDTO
}

type UpdateAssetUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	checker     policy.Checker
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewUpdateAssetUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	checker policy.Checker,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing update asset use case", "asset_id", cmd.AssetID, "user_id", cmd.Principal.UserID)

	if err := authorize(uc.checker, uc.logger, cmd.Principal, policy.ActionWrite); err != nil {
		return nil, err
	}

	patch, err := buildPatch(cmd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := patch.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var updated *asset.Asset
	var logged int
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.assetRepo.GetByID(txCtx, cmd.AssetID)
		if err != nil {
			return err
		}

		if patch.AssetCode != nil && *patch.AssetCode != a.AssetCode() {
			exists, err := uc.assetRepo.ExistsByCode(txCtx, *patch.AssetCode, a.ID())
			if err != nil {
				return err
			}
			if exists {
				return duplicateCodeError(*patch.AssetCode)
			}
		}

		events := asset.ComputeHistoryEvents(a, patch, biztime.Today())
		entries, err := asset.Entries(a.ID(), events)
		if err != nil {
			return err
		}

		if err := a.Apply(patch, biztime.NowUTC()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			if errors.IsDuplicateError(err) {
				return duplicateCodeError(a.AssetCode())
			}
			return err
		}

		for _, entry := range entries {
			if err := uc.historyRepo.Create(txCtx, entry); err != nil {
				return err
			}
		}

		updated = a
		logged = len(entries)
		return nil
	})
	if err != nil {
		return nil, persistenceError(uc.logger, err, "Failed to update asset", "asset_id", cmd.AssetID)
	}

	uc.logger.Infow("asset updated successfully", "asset_id", updated.ID(), "history_rows", logged)
	return dto.ToAssetDTO(updated), nil
}

func buildPatch(cmd UpdateAssetCommand) (asset.Patch, error) {
	patch := asset.Patch{
		AssetCode:  cmd.AssetCode,
		CategoryID: cmd.CategoryID,
		Type:       cmd.Type,
		Model:      cmd.Model,
		Notes:      cmd.Notes,
		Specs:      cmd.Specs,
		Software:   cmd.Software,
		Monitor:    cmd.Monitor,
		AssignedTo: asset.AssignmentPatch{
			Present: cmd.AssignedToSet,
			Value:   cmd.AssignedTo.ToDomain(),
		},
	}

	if cmd.HealthStatus != nil {
		h := vo.HealthStatus(*cmd.HealthStatus)
		patch.HealthStatus = &h
	}
	if cmd.UsageStatus != nil {
		u := vo.UsageStatus(*cmd.UsageStatus)
		patch.UsageStatus = &u
	}
	if cmd.PurchaseDate != nil {
		d, err := parseOptionalDate(cmd.PurchaseDate)
		if err != nil {
			return patch, err
		}
		patch.PurchaseDate = d
	}

	return patch, nil
}
