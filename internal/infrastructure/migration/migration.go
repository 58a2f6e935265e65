// Package migration keeps the database schema in step with the code.
package migration

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// Manager runs the strategy chosen for the environment: gorm AutoMigrate in development,
// versioned goose scripts everywhere else.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment, driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		goose, err := NewGooseStrategy(driver, log)
		if err != nil {
			return nil, err
		}
		strategy = goose
	}
	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(ctx, db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
