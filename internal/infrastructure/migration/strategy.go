package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

//go:embed scripts
var scripts embed.FS

// ScriptsRoot is where versioned SQL lives in the source tree, one directory per dialect.
const ScriptsRoot = "internal/infrastructure/migration/scripts"

// Strategy defines the interface for different migration strategies
type Strategy interface {
	Migrate(ctx context.Context, db *gorm.DB) error
	GetName() string
}

// MigrationState is one row of `migrate status`.
type MigrationState struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

// GooseStrategy applies the embedded SQL scripts for one dialect.
type GooseStrategy struct {
	dialect goose.Dialect
	dir     string
	logger  logger.Interface
}

// NewGooseStrategy maps a database driver name (mysql, postgres, sqlite) to its scripts.
func NewGooseStrategy(driver string, log logger.Interface) (*GooseStrategy, error) {
	s := &GooseStrategy{logger: log.With("component", "migration.goose")}
	switch strings.ToLower(driver) {
	case "", "mysql":
		s.dialect, s.dir = goose.DialectMySQL, "mysql"
	case "postgres":
		s.dialect, s.dir = goose.DialectPostgres, "postgres"
	case "sqlite":
		s.dialect, s.dir = goose.DialectSQLite3, "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	return s, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// Dir is the dialect directory under ScriptsRoot.
func (s *GooseStrategy) Dir() string {
	return s.dir
}

func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	fsys, err := fs.Sub(scripts, "scripts/"+s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration scripts: %w", err)
	}
	p, err := goose.NewProvider(s.dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	currentVersion, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	s.logger.Infow("starting goose migration", "dialect", s.dir, "version", currentVersion)

	results, err := p.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := p.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion,
		"applied", len(results))
	return nil
}

// Down rolls back up to steps migrations; it stops early once nothing is applied.
func (s *GooseStrategy) Down(ctx context.Context, db *gorm.DB, steps int) error {
	p, err := s.provider(db)
	if err != nil {
		return err
	}

	s.logger.Infow("starting down migration", "steps", steps)
	for i := 0; i < steps; i++ {
		if _, err := p.Down(ctx); err != nil {
			if errors.Is(err, goose.ErrNoNextVersion) {
				break
			}
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}
	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) Version(ctx context.Context, db *gorm.DB) (int64, error) {
	p, err := s.provider(db)
	if err != nil {
		return 0, err
	}
	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]MigrationState, error) {
	p, err := s.provider(db)
	if err != nil {
		return nil, err
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	out := make([]MigrationState, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, MigrationState{
			Version:   st.Source.Version,
			Name:      st.Source.Path,
			Applied:   st.State == goose.StateApplied,
			AppliedAt: st.AppliedAt,
		})
	}
	return out, nil
}

// Create writes a new timestamped SQL migration into dir on disk.
func (s *GooseStrategy) Create(dir, name string) error {
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	s.logger.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}

// GormAutoMigrateStrategy syncs the schema from the gorm models. Used for local development.
type GormAutoMigrateStrategy struct {
	models []any
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface, models ...any) *GormAutoMigrateStrategy {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}
	return &GormAutoMigrateStrategy{
		models: models,
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(s.models))
	if err := db.WithContext(ctx).AutoMigrate(s.models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
