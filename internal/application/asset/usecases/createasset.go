package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/application/asset/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/asset/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateAssetCommand struct {
	Principal    policy.Principal
	AssetCode    string
	CategoryID   *uint
	Type         string
	Model        string
	HealthStatus string
	UsageStatus  string
	// PurchaseDate is YYYY-MM-DD.
	PurchaseDate *string
	Notes        string
	Specs        map[string]any
	Software     map[string]any
	Monitor      map[string]any
	AssignedTo   *dto.AssignmentDTO
}

type CreateAssetUseCase struct {
	assetRepo   asset.Repository
	historyRepo asset.HistoryRepository
	checker     policy.Checker
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewCreateAssetUseCase(
	assetRepo asset.Repository,
	historyRepo asset.HistoryRepository,
	checker policy.Checker,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		checker:     checker,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing create asset use case", "asset_code", cmd.AssetCode, "user_id", cmd.Principal.UserID)

	if err := authorize(uc.checker, uc.logger, cmd.Principal, policy.ActionWrite); err != nil {
		return nil, err
	}

	spec, err := uc.buildSpec(cmd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	a, err := asset.NewAsset(spec, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.assetRepo.ExistsByCode(txCtx, a.AssetCode(), 0)
		if err != nil {
			return err
		}
		if exists {
			return duplicateCodeError(a.AssetCode())
		}

		if err := uc.assetRepo.Create(txCtx, a); err != nil {
			if errors.IsDuplicateError(err) {
				return duplicateCodeError(a.AssetCode())
			}
			return err
		}

		entry, err := asset.NewPurchaseEntry(a, biztime.Today())
		if err != nil {
			return err
		}
		return uc.historyRepo.Create(txCtx, entry)
	})
	if err != nil {
		return nil, persistenceError(uc.logger, err, "Failed to create asset", "asset_code", a.AssetCode())
	}

	uc.logger.Infow("asset created successfully", "asset_id", a.ID(), "asset_code", a.AssetCode())
	return dto.ToAssetDTO(a), nil
}

func (uc *CreateAssetUseCase) buildSpec(cmd CreateAssetCommand) (asset.Spec, error) {
	health, err := vo.NewHealthStatus(cmd.HealthStatus)
	if err != nil {
		return asset.Spec{}, err
	}
	usage, err := vo.NewUsageStatus(cmd.UsageStatus)
	if err != nil {
		return asset.Spec{}, err
	}
	purchaseDate, err := parseOptionalDate(cmd.PurchaseDate)
	if err != nil {
		return asset.Spec{}, err
	}

	return asset.Spec{
		AssetCode:    cmd.AssetCode,
		CategoryID:   cmd.CategoryID,
		Type:         cmd.Type,
		Model:        cmd.Model,
		HealthStatus: health,
		UsageStatus:  usage,
		PurchaseDate: purchaseDate,
		Notes:        cmd.Notes,
		Specs:        cmd.Specs,
		Software:     cmd.Software,
		Monitor:      cmd.Monitor,
		AssignedTo:   cmd.AssignedTo.ToDomain(),
	}, nil
}

func duplicateCodeError(code string) error {
	return errors.NewConflictError(fmt.Sprintf("Asset code %s already exists", code))
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}
