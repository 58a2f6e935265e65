package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

var baseTime = time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	// every pooled connection would get its own in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, conn.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TicketCategoryModel{},
		&models.CategoryModel{},
		&models.AssetModel{},
		&models.AssetHistoryModel{},
		&models.PrintLogModel{},
		&models.ToolPrintLogModel{},
	))
	return conn
}

func uintPtr(v uint) *uint {
	return &v
}
