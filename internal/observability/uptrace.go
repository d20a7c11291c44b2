package observability

import (
	"context"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

// InitUptrace exports pipeline and warehouse spans to Uptrace. The returned
// shutdown flushes pending spans and must run before the process exits.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	logger = logging.OrDefault(logger).Named("tracing")

	switch {
	case !cfg.UptraceEnabled:
		logger.Info("span export off", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	case cfg.UptraceDSN == "":
		logger.Info("span export off", "reason", "no UPTRACE_DSN")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(warehouseAttrs(cfg)...),
	)

	logger.Info("span export on",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"warehouse_driver", cfg.DBDriver,
	)
	return uptrace.Shutdown, nil
}

func warehouseAttrs(cfg config.Config) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("warehouse.driver", cfg.DBDriver),
	}
}
