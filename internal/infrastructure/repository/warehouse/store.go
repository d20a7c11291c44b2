// Package warehouse is the columnar store handle: a sqlx connection to
// PostgreSQL or SQLite plus the full-replace materialization primitives every
// stage writes through.
package warehouse

import (
	"context"
	"database/sql"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"

	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Store owns one database handle for a pipeline run. Reads go through the
// store, writes through InTx.
type Store struct {
	db     *sqlx.DB
	driver string
	logger *logging.Logger
}

type Option func(*storeOptions)

type storeOptions struct {
	dbName         string
	queryFormatter func(string) string
	logger         *logging.Logger
	maxOpenConns   int
}

func WithDBName(name string) Option {
	return func(o *storeOptions) { o.dbName = name }
}

// WithQueryFormatter sets how statements are rendered on trace spans.
func WithQueryFormatter(fn func(string) string) Option {
	return func(o *storeOptions) { o.queryFormatter = fn }
}

func WithLogger(logger *logging.Logger) Option {
	return func(o *storeOptions) { o.logger = logger }
}

func WithMaxOpenConns(n int) Option {
	return func(o *storeOptions) { o.maxOpenConns = n }
}

// Open connects and pings. SQLite is limited to one open connection.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Store, error) {
	options := storeOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, crerr.Newf("unsupported warehouse driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, crerr.New("warehouse dsn is required")
	}

	otelOpts := []otelsql.Option{otelsql.WithDBSystem(driver)}
	if options.dbName != "" {
		otelOpts = append(otelOpts, otelsql.WithDBName(options.dbName))
	}
	if options.queryFormatter != nil {
		otelOpts = append(otelOpts, otelsql.WithQueryFormatter(options.queryFormatter))
	}

	db, err := otelsqlx.Open(driver, dsn, otelOpts...)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s warehouse", driver)
	}

	switch {
	case driver == DriverSQLite:
		db.SetMaxOpenConns(1)
	case options.maxOpenConns > 0:
		db.SetMaxOpenConns(options.maxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrapf(err, "ping %s warehouse", driver)
	}

	return &Store{db: db, driver: driver, logger: logging.OrDefault(options.logger)}, nil
}

// NewStore wraps an existing handle.
func NewStore(db *sqlx.DB, logger *logging.Logger) *Store {
	return &Store{db: db, driver: db.DriverName(), logger: logging.OrDefault(logger)}
}

func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Select runs a query written with ? placeholders.
func (s *Store) Select(ctx context.Context, dest any, query string, args ...any) error {
	return s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...)
}

// Get is Select for a single row; sql.ErrNoRows is returned as is.
func (s *Store) Get(ctx context.Context, dest any, query string, args ...any) error {
	return s.db.GetContext(ctx, dest, s.db.Rebind(query), args...)
}

func (s *Store) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.db.Rebind(query), args...)
}

// TableExists reports whether table is present in the current schema.
func (s *Store) TableExists(ctx context.Context, table string) (bool, error) {
	var query string
	switch s.driver {
	case DriverSQLite:
		query = "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	default:
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?"
	}

	var n int
	if err := s.Get(ctx, &n, query, table); err != nil {
		return false, crerr.Wrapf(err, "check table %s", table)
	}
	return n > 0, nil
}

// InTx runs fn in one transaction. Any error or panic rolls back, so a stage
// either replaces all of its tables or none.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) (err error) {
	sqlTx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin warehouse transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil && !crerr.Is(rbErr, sql.ErrTxDone) {
				s.logger.WarnContext(ctx, "rollback warehouse transaction failed", "error", rbErr)
			}
		}
	}()

	if err = fn(ctx, &Tx{tx: sqlTx, driver: s.driver, logger: s.logger}); err != nil {
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return crerr.Wrap(err, "commit warehouse transaction")
	}
	return nil
}
