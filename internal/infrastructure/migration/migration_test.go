package migration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

func openFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opsdesk.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

var schemaTables = []string{
	constants.TableUsers,
	constants.TableCategories,
	constants.TableTicketCategories,
	constants.TableAssets,
	constants.TableAssetHistory,
	constants.TableTickets,
	constants.TableTicketComments,
	constants.TablePrintLogs,
	constants.TableToolPrintLogs,
}

func TestGooseStrategy_UpStatusDown(t *testing.T) {
	ctx := context.Background()
	db := openFileDB(t)

	s, err := NewGooseStrategy("sqlite", logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, s.Migrate(ctx, db))
	for _, table := range schemaTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := s.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	states, err := s.Status(ctx, db)
	require.NoError(t, err)
	require.Len(t, states, 2)
	for i, st := range states {
		assert.True(t, st.Applied)
		assert.Equal(t, int64(i+1), st.Version)
	}

	// re-running is a no-op
	require.NoError(t, s.Migrate(ctx, db))

	require.NoError(t, s.Down(ctx, db, 5))
	assert.False(t, db.Migrator().HasTable(constants.TableTickets))
	assert.False(t, db.Migrator().HasTable(constants.TablePrintLogs))

	version, err = s.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestNewGooseStrategy_Dialects(t *testing.T) {
	for driver, dir := range map[string]string{"": "mysql", "mysql": "mysql", "postgres": "postgres", "SQLite": "sqlite"} {
		s, err := NewGooseStrategy(driver, logger.NewNopLogger())
		require.NoError(t, err)
		assert.Equal(t, dir, s.Dir())

		for _, name := range []string{"00001_init_schema.sql", "00002_print_logs.sql"} {
			_, err = scripts.ReadFile("scripts/" + dir + "/" + name)
			assert.NoError(t, err, dir+"/"+name)
		}
	}

	_, err := NewGooseStrategy("oracle", logger.NewNopLogger())
	assert.Error(t, err)
}

func TestManager_DevelopmentUsesAutoMigrate(t *testing.T) {
	m, err := NewManager(constants.EnvDevelopment, "sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	db := openFileDB(t)
	require.NoError(t, m.Migrate(context.Background(), db))
	for _, table := range schemaTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestManager_ProductionUsesGoose(t *testing.T) {
	m, err := NewManager(constants.EnvProduction, "postgres", logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "goose", m.GetStrategy().GetName())
}
