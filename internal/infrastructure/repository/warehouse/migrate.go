package warehouse

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/football-analytics/db"
)

// NewMigrator runs the embedded migrations over the store's handle. Closing
// the migrator closes the store's handle too.
func NewMigrator(s *Store) (*migrate.Migrate, error) {
	src, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return nil, crerr.Wrap(err, "open embedded migrations")
	}

	var driver database.Driver
	switch s.driver {
	case DriverSQLite:
		driver, err = sqlite.WithInstance(s.db.DB, &sqlite.Config{})
	default:
		driver, err = postgres.WithInstance(s.db.DB, &postgres.Config{})
	}
	if err != nil {
		return nil, crerr.Wrapf(err, "create %s migration driver", s.driver)
	}

	m, err := migrate.NewWithInstance("iofs", src, s.driver, driver)
	if err != nil {
		return nil, crerr.Wrap(err, "create migrator")
	}
	return m, nil
}

// MigrateUp applies pending migrations. The migrator is left open so the
// store stays usable.
func MigrateUp(s *Store) error {
	m, err := NewMigrator(s)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !crerr.Is(err, migrate.ErrNoChange) {
		return crerr.Wrap(err, "apply migrations")
	}
	return nil
}
