package migration

import (
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []any {
	return []any{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TicketCategoryModel{},
		&models.AssetModel{},
		&models.AssetHistoryModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.PrintLogModel{},
		&models.ToolPrintLogModel{},
	}
}
