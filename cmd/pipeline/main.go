package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/football-analytics/internal/app"
	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/observability"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		stagesFlag = flag.String("stages", "", "comma-separated stages ("+strings.Join(usecase.StageOrder, ",")+"); empty runs all")
		force      = flag.Bool("force", false, "rewrite bronze artifacts that already exist")
		workers    = flag.Int("workers", 0, "bronze worker count; 0 uses BRONZE_WORKERS")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}

	logger := logging.New(cfg.LogLevel, os.Stderr).With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := stopProfiling(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seasons, err := app.CatalogSeasons(cfg.CompetitionsFile)
	if err != nil {
		logger.Error("load competitions catalog", "path", cfg.CompetitionsFile, "error", err)
		return 1
	}

	runtime, err := app.NewRuntime(ctx, cfg, logger)
	if err != nil {
		logger.Error("build runtime", "error", err)
		return 1
	}
	defer func() {
		if err := runtime.Close(); err != nil {
			logger.Warn("close runtime", "error", err)
		}
	}()

	maxWorkers := *workers
	if maxWorkers == 0 {
		maxWorkers = cfg.BronzeWorkers
	}

	result, runErr := runtime.Pipeline.Run(ctx, usecase.RunInput{
		Stages:     parseStages(*stagesFlag),
		Seasons:    seasons,
		Force:      *force,
		MaxWorkers: maxWorkers,
	})

	if out, err := sonic.ConfigStd.MarshalIndent(result, "", "  "); err == nil {
		fmt.Println(string(out))
	} else {
		logger.Warn("encode run result", "error", err)
	}

	if cfg.MetricsPushgatewayURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := runtime.Metrics.Push(pushCtx, cfg.MetricsPushgatewayURL, cfg.ServiceName); err != nil {
			logger.Warn("push metrics", "url", cfg.MetricsPushgatewayURL, "error", err)
		}
		cancel()
	}

	if runErr != nil {
		logger.Error("pipeline run failed", "error", runErr)
		return 1
	}
	logger.Info("pipeline run finished", "stages", len(result.Stages))
	return 0
}

func parseStages(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
