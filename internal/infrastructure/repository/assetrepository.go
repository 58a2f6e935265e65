package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/asset"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

const (
	msgAssetNotFound   = "Asset not found"
	msgHistoryNotFound = "History entry not found"
)

var _ asset.Repository = (*AssetRepository)(nil)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(msgAssetNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AssetModel{}).Where("id = ?", a.ID()).Updates(map[string]any{
		"asset_code":    model.AssetCode,
		"category_id":   model.CategoryID,
		"type":          model.Type,
		"model":         model.Model,
		"health_status": model.HealthStatus,
		"usage_status":  model.UsageStatus,
		"purchase_date": model.PurchaseDate,
		"notes":         model.Notes,
		"specs":         model.Specs,
		"software":      model.Software,
		"monitor":       model.Monitor,
		"assigned_to":   model.AssignedTo,
		"updated_at":    model.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	return nil
}

// Delete removes the asset and its history in one transaction.
func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&models.AssetHistoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete asset history: %w", err)
		}
		result := tx.Delete(&models.AssetModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete asset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError(msgAssetNotFound)
		}
		return nil
	})
}

func (r *AssetRepository) List(ctx context.Context) ([]*asset.Asset, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AssetModel
	if err := tx.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func (r *AssetRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	query := tx.Model(&models.AssetModel{}).Where("asset_code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check asset code: %w", err)
	}
	return count > 0, nil
}

func (r *AssetRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AssetModel{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets by category: %w", err)
	}
	return count, nil
}

var _ asset.HistoryRepository = (*AssetHistoryRepository)(nil)

type AssetHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetHistoryRepository(db *gorm.DB) *AssetHistoryRepository {
	return &AssetHistoryRepository{
		db:     db,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetHistoryRepository) Create(ctx context.Context, entry *asset.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset history: %w", err)
	}
	return entry.SetID(model.ID)
}

func (r *AssetHistoryRepository) GetByID(ctx context.Context, id uint) (*asset.HistoryEntry, error) {
	var model models.AssetHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(msgHistoryNotFound)
		}
		return nil, fmt.Errorf("failed to get asset history: %w", err)
	}
	return r.mapper.HistoryToDomain(&model), nil
}

func (r *AssetHistoryRepository) Update(ctx context.Context, entry *asset.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AssetHistoryModel{}).Where("id = ?", entry.ID()).Updates(map[string]any{
		"date":         model.Date,
		"action_type":  model.ActionType,
		"description":  model.Description,
		"performed_by": model.PerformedBy,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update asset history: %w", result.Error)
	}
	return nil
}

func (r *AssetHistoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AssetHistoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset history: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(msgHistoryNotFound)
	}
	return nil
}

func (r *AssetHistoryRepository) ListByAssetID(ctx context.Context, assetID uint) ([]*asset.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AssetHistoryModel
	if err := tx.Where("asset_id = ?", assetID).
		Order("date DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list asset history: %w", err)
	}

	entries := make([]*asset.HistoryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, r.mapper.HistoryToDomain(&rows[i]))
	}
	return entries, nil
}
