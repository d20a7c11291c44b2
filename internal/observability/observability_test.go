package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-analytics",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, nil)
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestProfileTags_CarryWarehouseDriver(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: config.EnvDev, ServiceName: "football-analytics", DBDriver: config.DBDriverSQLite})
	require.Equal(t, map[string]string{
		"env":              config.EnvDev,
		"service":          "football-analytics",
		"warehouse_driver": config.DBDriverSQLite,
	}, tags)
}

func TestWarehouseAttrs(t *testing.T) {
	attrs := warehouseAttrs(config.Config{DBDriver: config.DBDriverPostgres})
	require.Len(t, attrs, 1)
	require.Equal(t, "warehouse.driver", string(attrs[0].Key))
	require.Equal(t, config.DBDriverPostgres, attrs[0].Value.AsString())
}
