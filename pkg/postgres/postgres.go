package postgres

import (
	"context"
	"employee-directory/pkg/config"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/postgres"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/jackc/pgx/stdlib"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

const DriverName = "pgx"

const (
	UserTable           = "users"
	UserDetailsTable    = "user_details"
	RoleTable           = "roles"
	DepartmentTable     = "departments"
	JobTitleTable       = "job_titles"
	UserRoleTable       = "user_roles"
	UserDepartmentTable = "user_departments"
	UserJobTitleTable   = "user_job_titles"
)

func BuildDSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Name, cfg.Password, cfg.SSL)
}

// New connects to the configured database, retrying until it answers a ping.
func New(ctx context.Context, cfg config.PostgresConfig) (*Manager, error) {
	return NewManager(ctx, cfg, RetryConfig{MaxElapsed: defaultMaxElapsed, Jitter: 0.2})
}

func MigrateDB(db *sqlx.DB, cfg config.PostgresConfig) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("couldn't get database instance for running migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", cfg.Migrations), cfg.Name, driver)
	if err != nil {
		return fmt.Errorf("couldn't create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug("database migration isn't required, no changes")
			return nil
		}
		return fmt.Errorf("couldn't run database migrations: %w", err)
	}
	log.Info("database migration was run successfully")
	return nil
}
