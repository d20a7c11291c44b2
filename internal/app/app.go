package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/domain/raw"
	"github.com/riskibarqy/football-analytics/internal/domain/xt"
	"github.com/riskibarqy/football-analytics/internal/infrastructure/repository/bronze"
	"github.com/riskibarqy/football-analytics/internal/infrastructure/repository/modelstore"
	"github.com/riskibarqy/football-analytics/internal/infrastructure/repository/warehouse"
	"github.com/riskibarqy/football-analytics/internal/infrastructure/source/filesystem"
	"github.com/riskibarqy/football-analytics/internal/platform/cache"
	idgen "github.com/riskibarqy/football-analytics/internal/platform/id"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/platform/metrics"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

// Runtime holds the wired pipeline and query services over one warehouse
// handle.
type Runtime struct {
	Pipeline *usecase.PipelineService
	Query    *usecase.QueryService
	Metrics  *metrics.Manager
	Store    *warehouse.Store

	bronze *bronze.Store
	logger *logging.Logger
}

// NewRuntime opens the warehouse, applies migrations and wires every stage.
func NewRuntime(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	logger = logging.OrDefault(logger)

	store, err := openWarehouse(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := warehouse.MigrateUp(store); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migrate warehouse: %w", err)
	}

	bronzeStore, err := bronze.NewStore(cfg.BronzePath)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("open bronze store: %w", err)
	}

	metricsManager := metrics.NewManager(
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithConstLabels(map[string]string{"env": cfg.AppEnv, "service": cfg.ServiceName}),
	)

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	querySvc := usecase.NewQueryService(warehouse.NewQueryRepository(store), cacheStore, logger)

	xgRepo := warehouse.NewXGRepository(store)
	goldRepo := warehouse.NewGoldRepository(store)
	stages := usecase.PipelineStages{
		Bronze: usecase.NewBronzeService(filesystem.NewSource(cfg.RawDir), bronzeStore, metricsManager, logger),
		Silver: usecase.NewSilverService(bronzeStore, warehouse.NewSilverRepository(store), metricsManager, logger),
		Gold:   usecase.NewGoldService(goldRepo, metricsManager, logger),
		PPDA:   usecase.NewPPDAService(goldRepo, metricsManager, logger),
		XG: usecase.NewXGService(
			xgRepo,
			modelstore.NewFileStore(cfg.ModelsPath, modelstore.XGModelName),
			cfg.XGMinROCAUC,
			metricsManager,
			logger,
		),
		XT: usecase.NewXTService(
			warehouse.NewXTRepository(store),
			xt.SolveOptions{MaxIterations: cfg.XTMaxIterations, Tolerance: cfg.XTTolerance},
			metricsManager,
			logger,
		),
	}

	pipelineSvc := usecase.NewPipelineService(
		stages,
		warehouse.NewRunRepository(store),
		idgen.NewUUIDGenerator(),
		querySvc,
		metricsManager,
		logger,
	)

	return &Runtime{
		Pipeline: pipelineSvc,
		Query:    querySvc,
		Metrics:  metricsManager,
		Store:    store,
		bronze:   bronzeStore,
		logger:   logger,
	}, nil
}

func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}
	if r.bronze != nil {
		r.bronze.Close()
	}
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}

func openWarehouse(ctx context.Context, cfg config.Config, logger *logging.Logger) (*warehouse.Store, error) {
	dsn, name, err := warehouseDSN(cfg)
	if err != nil {
		return nil, err
	}
	opts := []warehouse.Option{
		warehouse.WithQueryFormatter(traceStatement),
		warehouse.WithLogger(logger),
	}
	if name != "" {
		opts = append(opts, warehouse.WithDBName(name))
	}

	store, err := warehouse.Open(ctx, cfg.DBDriver, dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}
	return store, nil
}

// CatalogSeasons returns the enabled seasons of the competitions catalog. A
// missing catalog means no restriction.
func CatalogSeasons(path string) ([]raw.SeasonKey, error) {
	entries, err := config.LoadCatalog(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]raw.SeasonKey, 0, len(entries))
	for _, e := range entries {
		out = append(out, raw.SeasonKey{CompetitionID: e.CompetitionID, SeasonID: e.SeasonID})
	}
	return out, nil
}
