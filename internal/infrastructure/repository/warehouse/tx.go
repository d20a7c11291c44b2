package warehouse

import (
	"context"
	"database/sql"
	"reflect"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	qb "github.com/riskibarqy/football-analytics/internal/platform/querybuilder"
)

// maxBindParams keeps a batched INSERT under the bind-variable limits of both
// engines.
const maxBindParams = 16000

// Tx is a warehouse transaction. Statements use ? placeholders.
type Tx struct {
	tx     *sqlx.Tx
	driver string
	logger *logging.Logger
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.tx.Rebind(query), args...)
}

func (t *Tx) Select(ctx context.Context, dest any, query string, args ...any) error {
	return t.tx.SelectContext(ctx, dest, t.tx.Rebind(query), args...)
}

func (t *Tx) Get(ctx context.Context, dest any, query string, args ...any) error {
	return t.tx.GetContext(ctx, dest, t.tx.Rebind(query), args...)
}

func (t *Tx) Driver() string {
	return t.driver
}

type replaceOptions struct {
	dropIfAllNull []string
	model         any
}

type ReplaceOption func(*replaceOptions)

// DropColumnIfAllNull leaves a column out of the table when every row holds
// NULL for it.
func DropColumnIfAllNull(columns ...string) ReplaceOption {
	return func(o *replaceOptions) { o.dropIfAllNull = append(o.dropIfAllNull, columns...) }
}

// WithModel sets the row type used for the schema, for empty untyped input.
func WithModel(model any) ReplaceOption {
	return func(o *replaceOptions) { o.model = model }
}

// ReplaceWithRows drops table, recreates it from the db tags of the row type
// and bulk inserts rows. rows must be a slice of structs. An empty slice
// still creates the table with its full schema.
func (t *Tx) ReplaceWithRows(ctx context.Context, table string, rows any, opts ...ReplaceOption) (int64, error) {
	options := replaceOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	value := reflect.ValueOf(rows)
	if value.Kind() != reflect.Slice {
		return 0, crerr.Newf("replace %s: rows must be a slice, got %T", table, rows)
	}

	model := options.model
	if model == nil {
		model = rows
	}
	schema, err := qb.SchemaOf(model)
	if err != nil {
		return 0, crerr.Wrapf(err, "replace %s: read schema", table)
	}

	dropped := make([]string, 0, len(options.dropIfAllNull))
	for _, col := range options.dropIfAllNull {
		if allNull(schema, value, col) {
			dropped = append(dropped, col)
		}
	}
	if len(dropped) > 0 {
		schema = schema.Without(dropped...)
		t.logger.DebugContext(ctx, "dropping all-null columns", "table", table, "columns", dropped)
	}

	if err := t.recreate(ctx, table, schema); err != nil {
		return 0, err
	}

	n := value.Len()
	if n == 0 {
		return 0, nil
	}

	columns := schema.Names()
	batch := maxBindParams / len(columns)
	if batch < 1 {
		batch = 1
	}
	for start := 0; start < n; start += batch {
		end := min(start+batch, n)
		insert := qb.InsertInto(table).Columns(columns...)
		for i := start; i < end; i++ {
			insert = insert.Values(schema.Values(value.Index(i))...)
		}
		query, args, err := insert.ToSQL()
		if err != nil {
			return 0, crerr.Wrapf(err, "replace %s: build insert", table)
		}
		if _, err := t.Exec(ctx, query, args...); err != nil {
			return 0, crerr.Wrapf(err, "replace %s: insert rows %d-%d", table, start, end)
		}
	}
	return int64(n), nil
}

func (t *Tx) recreate(ctx context.Context, table string, schema qb.Schema) error {
	drop, err := qb.DropTableIfExists(table)
	if err != nil {
		return err
	}
	create, err := qb.CreateTable(table, schema)
	if err != nil {
		return err
	}
	if _, err := t.Exec(ctx, drop); err != nil {
		return crerr.Wrapf(err, "drop %s", table)
	}
	if _, err := t.Exec(ctx, create); err != nil {
		return crerr.Wrapf(err, "create %s", table)
	}
	return nil
}

// ReplaceWithQuery drops table and recreates it from selectSQL. The select
// must inline its literals. It returns the new row count.
func (t *Tx) ReplaceWithQuery(ctx context.Context, table, selectSQL string) (int64, error) {
	drop, err := qb.DropTableIfExists(table)
	if err != nil {
		return 0, err
	}
	ctas, err := qb.CreateTableAs(table, selectSQL)
	if err != nil {
		return 0, err
	}
	if _, err := t.Exec(ctx, drop); err != nil {
		return 0, crerr.Wrapf(err, "drop %s", table)
	}
	if _, err := t.tx.ExecContext(ctx, ctas); err != nil {
		return 0, crerr.Wrapf(err, "create %s as select", table)
	}
	return t.Count(ctx, table)
}

func (t *Tx) Count(ctx context.Context, table string) (int64, error) {
	if err := qb.ValidateIdentifier(table); err != nil {
		return 0, err
	}
	var n int64
	if err := t.Get(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, crerr.Wrapf(err, "count %s", table)
	}
	return n, nil
}

// DropTable removes a scratch table.
func (t *Tx) DropTable(ctx context.Context, table string) error {
	drop, err := qb.DropTableIfExists(table)
	if err != nil {
		return err
	}
	if _, err := t.Exec(ctx, drop); err != nil {
		return crerr.Wrapf(err, "drop %s", table)
	}
	return nil
}

func allNull(schema qb.Schema, rows reflect.Value, column string) bool {
	idx := -1
	for i, c := range schema.Columns {
		if c.Name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for i := 0; i < rows.Len(); i++ {
		if schema.Values(rows.Index(i))[idx] != nil {
			return false
		}
	}
	return true
}
