package migration

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"ticketdesk/internal/shared/logger"
)

//go:embed scripts
var embeddedScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// GormAutoMigrateStrategy syncs tables from the persistence models.
type GormAutoMigrateStrategy struct {
	models []interface{}
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		models: AutoMigrateModels(),
		logger: log.With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting gorm auto-migration", "models_count", len(s.models))
	if err := db.AutoMigrate(s.models...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy runs the versioned SQL scripts embedded in the binary. The
// script directory is picked from the connection's dialect.
type GooseStrategy struct {
	fsys   fs.FS
	logger logger.Interface
}

func NewGooseStrategy(log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		fsys:   embeddedScripts,
		logger: log.With("component", "migration.goose"),
	}
}

// gooseDialect maps a gorm dialector name to the goose dialect and script
// directory.
func gooseDialect(db *gorm.DB) (string, string, error) {
	switch db.Dialector.Name() {
	case "sqlite":
		return "sqlite3", path.Join("scripts", "sqlite"), nil
	case "mysql":
		return "mysql", path.Join("scripts", "mysql"), nil
	default:
		return "", "", fmt.Errorf("no migrations for dialect %q", db.Dialector.Name())
	}
}

func (s *GooseStrategy) prepare(db *gorm.DB) (string, error) {
	dialect, dir, err := gooseDialect(db)
	if err != nil {
		return "", err
	}
	goose.SetBaseFS(s.fsys)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return dir, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	dir, err := s.prepare(db)
	if err != nil {
		return err
	}
	s.logger.Infow("starting goose migration", "scripts_path", dir)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, dir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	dir, err := s.prepare(db)
	if err != nil {
		return err
	}
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, dir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	if _, err := s.prepare(db); err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status returns every known migration with its applied state.
func (s *GooseStrategy) Status(db *gorm.DB) ([]MigrationStatus, error) {
	dir, err := s.prepare(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to collect migrations: %w", err)
	}

	current, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	out := make([]MigrationStatus, 0, len(migrations))
	for _, m := range migrations {
		out = append(out, MigrationStatus{
			Version: m.Version,
			Source:  path.Base(m.Source),
			Applied: m.Version <= current,
		})
	}
	return out, nil
}

type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// Create writes a new SQL migration into dir on disk.
func Create(dir, name string) error {
	goose.SetBaseFS(nil)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	return nil
}
