package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

var _ category.Repository = (*CategoryRepository)(nil)

// CategoryRepository stores asset categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := mappers.CategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.CategoryModel{}).Where("id = ?", c.ID()).Updates(map[string]any{
		"name":        c.Name(),
		"code":        c.Code(),
		"description": c.Description(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Category not found")
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CategoryModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.CategoryToDomain(&rows[i]))
	}
	return out, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return existsExcluding(db.GetTxFromContext(ctx, r.db), &models.CategoryModel{}, "name", name, excludeID)
}

func (r *CategoryRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	return existsExcluding(db.GetTxFromContext(ctx, r.db), &models.CategoryModel{}, "code", code, excludeID)
}

var _ category.TicketCategoryRepository = (*TicketCategoryRepository)(nil)

type TicketCategoryRepository struct {
	db *gorm.DB
}

func NewTicketCategoryRepository(db *gorm.DB) *TicketCategoryRepository {
	return &TicketCategoryRepository{db: db}
}

func (r *TicketCategoryRepository) Create(ctx context.Context, c *category.TicketCategory) error {
	model := mappers.TicketCategoryToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket category: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *TicketCategoryRepository) GetByID(ctx context.Context, id uint) (*category.TicketCategory, error) {
	var model models.TicketCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Ticket category not found")
		}
		return nil, fmt.Errorf("failed to get ticket category: %w", err)
	}
	return mappers.TicketCategoryToDomain(&model), nil
}

func (r *TicketCategoryRepository) GetByIDs(ctx context.Context, ids []uint) ([]*category.TicketCategory, error) {
	if len(ids) == 0 {
		return []*category.TicketCategory{}, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketCategoryModel
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get ticket categories: %w", err)
	}
	return ticketCategoriesToDomain(rows), nil
}

func (r *TicketCategoryRepository) Update(ctx context.Context, c *category.TicketCategory) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TicketCategoryModel{}).Where("id = ?", c.ID()).Updates(map[string]any{
		"name":        c.Name(),
		"code":        c.Code(),
		"description": c.Description(),
		"sla_hours":   c.SLAHours(),
		"is_active":   c.IsActive(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update ticket category: %w", err)
	}
	return nil
}

func (r *TicketCategoryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketCategoryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Ticket category not found")
	}
	return nil
}

func (r *TicketCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*category.TicketCategory, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketCategoryModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.TicketCategoryModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket categories: %w", err)
	}
	return ticketCategoriesToDomain(rows), nil
}

func (r *TicketCategoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return existsExcluding(db.GetTxFromContext(ctx, r.db), &models.TicketCategoryModel{}, "name", name, excludeID)
}

func (r *TicketCategoryRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	return existsExcluding(db.GetTxFromContext(ctx, r.db), &models.TicketCategoryModel{}, "code", code, excludeID)
}

func (r *TicketCategoryRepository) CountTickets(ctx context.Context, id uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets by category: %w", err)
	}
	return count, nil
}

func ticketCategoriesToDomain(rows []models.TicketCategoryModel) []*category.TicketCategory {
	out := make([]*category.TicketCategory, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.TicketCategoryToDomain(&rows[i]))
	}
	return out
}

// existsExcluding counts rows of model whose column equals value, skipping excludeID.
func existsExcluding(tx *gorm.DB, model any, column, value string, excludeID uint) (bool, error) {
	var count int64
	query := tx.Model(model).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s uniqueness: %w", column, err)
	}
	return count > 0, nil
}
