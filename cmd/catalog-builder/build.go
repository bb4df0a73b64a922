package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kernelsu-modules/catalog-builder/internal/config"
	"github.com/kernelsu-modules/catalog-builder/internal/notify"
	"github.com/kernelsu-modules/catalog-builder/internal/orchestrator"
	"github.com/kernelsu-modules/catalog-builder/internal/platform"
	"github.com/kernelsu-modules/catalog-builder/internal/probe"
	"github.com/kernelsu-modules/catalog-builder/internal/validate"
	"github.com/kernelsu-modules/catalog-builder/pkg/logger"
	"github.com/kernelsu-modules/catalog-builder/pkg/metrics"
)

const platformBaseURL = "https://github.com"

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build or incrementally update the module catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}
	return cmd
}

func runBuild(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	runID := uuid.NewString()
	logOutput := "stdout"
	if cfg.LogFile != "" {
		logOutput = "file"
	}
	log := logger.FromContext(
		logger.WithRunID(cmd.Context(), runID),
		logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logOutput, Filename: cfg.LogFile}),
	)

	validate.StrictTagPattern = cfg.StrictTagPattern

	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	registry := metrics.DefaultRegistry()

	cache, err := buildProbeCache(cfg)
	if err != nil {
		return fmt.Errorf("build probe cache: %w", err)
	}
	prober := probe.New(cache, registry.Probe(), log)

	platformClient := platform.NewClient(cfg.GraphQLToken)
	ghClient := github.NewClient(nil).WithAuthToken(cfg.GraphQLToken)
	dispatcher := notify.New(ghClient, cfg.NotifyDryRun, log)

	orch := &orchestrator.Orchestrator{
		Platform:     platformClient,
		Prober:       prober,
		Notifier:     dispatcher,
		OuterCap:     cfg.OuterConcurrency,
		InnerCap:     cfg.InnerConcurrency,
		Metrics:      registry,
		Logger:       log,
		Org:          cfg.Org,
		CacheDir:     cfg.CacheDir,
		PlatformName: platformBaseURL,
	}

	start := time.Now()
	mode := "full"
	if cfg.Repo != "" {
		mode = "incremental"
	}

	runErr := orch.Run(cmd.Context(), cfg.Repo)
	registry.Pipeline().RunDurationSecs.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	if snapErr := metrics.WriteSnapshot(snapshotMetricsPath(cfg.CacheDir)); snapErr != nil {
		log.Warn("failed to write metrics snapshot", "error", snapErr)
	}

	if runErr != nil {
		log.Error("build failed", "mode", mode, "error", runErr)
		return runErr
	}
	log.Info("build succeeded", "mode", mode, "run_id", runID)
	return nil
}

func buildProbeCache(cfg config.Config) (probe.Cache, error) {
	switch cfg.ProbeCacheBackend {
	case "redis":
		return probe.NewRedisCache(cfg.RedisAddr, "catalog-builder", 24*time.Hour), nil
	default:
		return probe.NewLRUCache(4096)
	}
}

func snapshotMetricsPath(cacheDir string) string {
	return cacheDir + "/metrics.prom"
}
