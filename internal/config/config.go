package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Config stores runtime configuration for the pipeline and its tooling.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	LogLevel                   logging.Level
	DBDriver                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	RawDir                     string
	BronzePath                 string
	ModelsPath                 string
	CompetitionsFile           string
	BronzeWorkers              int
	XTMaxIterations            int
	XTTolerance                float64
	XGMinROCAUC                float64
	CacheEnabled               bool
	CacheTTL                   time.Duration
	MetricsEnabled             bool
	MetricsPushgatewayURL      string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:           appEnv,
		ServiceName:      strings.TrimSpace(getEnv("SERVICE_NAME", "football-analytics")),
		ServiceVersion:   strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		LogLevel:         parseLogLevel(getEnv("APP_LOG_LEVEL", getEnv("LOG_LEVEL", "info"))),
		RawDir:           strings.TrimSpace(getEnv("RAW_DIR", "data/statsbomb_raw")),
		BronzePath:       strings.TrimSpace(getEnv("BRONZE_PATH", "data/bronze")),
		ModelsPath:       strings.TrimSpace(getEnv("MODELS_PATH", "models")),
		CompetitionsFile: strings.TrimSpace(getEnv("COMPETITIONS_FILE", "config/competitions.yaml")),
	}

	dbDriver, err := parseDBDriver(getEnv("DB_DRIVER", DBDriverSQLite))
	if err != nil {
		return Config{}, err
	}
	cfg.DBDriver = dbDriver

	defaultDBURL := ""
	if dbDriver == DBDriverSQLite {
		defaultDBURL = "data/warehouse.db"
	}
	cfg.DBURL = strings.TrimSpace(getEnv("DB_URL", defaultDBURL))
	if cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when DB_DRIVER=%s", dbDriver)
	}

	cfg.DBDisablePreparedBinary, err = strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	if cfg.RawDir == "" || cfg.BronzePath == "" || cfg.ModelsPath == "" {
		return Config{}, fmt.Errorf("RAW_DIR, BRONZE_PATH and MODELS_PATH must not be empty")
	}

	cfg.BronzeWorkers, err = getEnvAsInt("BRONZE_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse BRONZE_WORKERS: %w", err)
	}
	if cfg.BronzeWorkers <= 0 {
		return Config{}, fmt.Errorf("BRONZE_WORKERS must be > 0")
	}

	cfg.XTMaxIterations, err = getEnvAsInt("XT_MAX_ITERATIONS", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse XT_MAX_ITERATIONS: %w", err)
	}
	if cfg.XTMaxIterations <= 0 {
		return Config{}, fmt.Errorf("XT_MAX_ITERATIONS must be > 0")
	}

	cfg.XTTolerance, err = getEnvAsFloat("XT_TOLERANCE", 1e-6)
	if err != nil {
		return Config{}, fmt.Errorf("parse XT_TOLERANCE: %w", err)
	}
	if cfg.XTTolerance <= 0 {
		return Config{}, fmt.Errorf("XT_TOLERANCE must be > 0")
	}

	cfg.XGMinROCAUC, err = getEnvAsFloat("XG_MIN_ROC_AUC", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse XG_MIN_ROC_AUC: %w", err)
	}
	if cfg.XGMinROCAUC < 0 || cfg.XGMinROCAUC > 1 {
		return Config{}, fmt.Errorf("XG_MIN_ROC_AUC must be within [0, 1]")
	}

	cfg.CacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}
	cfg.MetricsPushgatewayURL = strings.TrimSpace(getEnv("METRICS_PUSHGATEWAY_URL", ""))

	cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = getEnv("PYROSCOPE_AUTH_TOKEN", "")
	cfg.PyroscopeBasicAuthUser = getEnv("PYROSCOPE_BASIC_AUTH_USER", "")
	cfg.PyroscopeBasicAuthPassword = getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")
	cfg.PyroscopeUploadRate, err = time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if cfg.PyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseDBDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DBDriverPostgres, DBDriverSQLite:
		return value, nil
	case "postgresql", "pq":
		return DBDriverPostgres, nil
	default:
		return "", fmt.Errorf("invalid DB_DRIVER %q: valid values are %s, %s", v, DBDriverPostgres, DBDriverSQLite)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
