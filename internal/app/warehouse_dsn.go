package app

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/football-analytics/internal/config"
)

const binaryResultParam = "disable_prepared_binary_result"

// warehouseDSN prepares the configured DSN for its driver and returns the
// database name reported on warehouse spans.
func warehouseDSN(cfg config.Config) (dsn, name string, err error) {
	switch cfg.DBDriver {
	case config.DBDriverPostgres:
		dsn = postgresDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
		return dsn, postgresDBName(dsn), nil
	case config.DBDriverSQLite:
		if err := ensureSQLiteDir(cfg.DBURL); err != nil {
			return "", "", err
		}
		return cfg.DBURL, sqliteDBName(cfg.DBURL), nil
	default:
		return cfg.DBURL, "", nil
	}
}

// postgresDSN turns off binary results for prepared statements unless the URL
// already sets the parameter. Key/value DSNs pass through.
func postgresDSN(raw string, disableBinary bool) string {
	if !disableBinary {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	q := u.Query()
	if q.Has(binaryResultParam) {
		return raw
	}
	q.Set(binaryResultParam, "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

func postgresDBName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(u.Path, "/"))
	}
	for _, field := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(value, `"'`)
		}
	}
	return ""
}

// sqliteDBName is the warehouse file name without directory or extension.
func sqliteDBName(dsn string) string {
	if dsn == ":memory:" {
		return "memory"
	}
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// ensureSQLiteDir creates the parent directory of a plain file path DSN.
func ensureSQLiteDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sqlite dir %s: %w", dir, err)
	}
	return nil
}
