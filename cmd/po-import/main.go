package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/FACorreiaa/po-import/internal/domain/detect"
	"github.com/FACorreiaa/po-import/internal/domain/export"
	"github.com/FACorreiaa/po-import/internal/domain/ingest"
	"github.com/FACorreiaa/po-import/internal/domain/pipeline"
	"github.com/FACorreiaa/po-import/pkg/config"
	"github.com/FACorreiaa/po-import/pkg/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	deps, err := InitDependencies(cfg, logger)
	if err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		logger.Error("cannot create output dir", slog.Any("error", err))
		os.Exit(1)
	}

	if !cfg.Watch.Enabled {
		if err := sweep(context.Background(), deps); err != nil {
			logger.Error("sweep failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	scheduler := cron.NewScheduler(cfg.Watch.Schedule, func(ctx context.Context) error {
		return sweep(ctx, deps)
	}, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error("scheduler start failed", slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.RunNow()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	<-scheduler.Stop().Done()
	logger.Info("shutdown complete")
}

// sweep processes every artifact currently in the input directory and
// writes one import CSV per document. Processed artifacts move to a
// processed/ subdirectory, undetected ones to failed/, so a scheduled
// sweep never sees the same file twice.
func sweep(ctx context.Context, deps *Dependencies) error {
	cfg := deps.Config

	docs, err := ingest.ScanDir(cfg.Paths.InputDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		deps.Logger.Info("inbox empty", slog.String("dir", cfg.Paths.InputDir))
		return nil
	}

	opts := pipeline.Options{ExplicitVendor: cfg.Pipeline.Vendor}
	results := deps.Pipeline.ProcessBatch(ctx, docs, opts, cfg.Pipeline.Concurrency)

	for _, dr := range results {
		switch {
		case dr.Err == nil:
			if err := writeResult(deps, dr.Result); err != nil {
				deps.Logger.Error("export failed",
					slog.String("document", dr.Result.Document),
					slog.Any("error", err),
				)
				continue
			}
			moveArtifact(deps, dr.Result.Document, "processed")

		case errors.Is(dr.Err, detect.ErrUndetected):
			moveArtifact(deps, dr.Result.Document, "failed")

		default:
			deps.Logger.Error("document failed",
				slog.String("document", dr.Result.Document),
				slog.Any("error", dr.Err),
			)
		}
	}
	return nil
}

func writeResult(deps *Dependencies, res pipeline.Result) error {
	tmpl := export.ForVendor(res.RequiresPrice)
	base := strings.TrimSuffix(res.Document, filepath.Ext(res.Document))
	path := filepath.Join(deps.Config.Paths.OutputDir, fmt.Sprintf("%s_%s.csv", base, tmpl))

	if err := export.WriteFile(path, tmpl, res.Records); err != nil {
		return err
	}

	deps.Logger.Info("import file written",
		slog.String("document", res.Document),
		slog.String("vendor", res.Vendor),
		slog.String("template", string(tmpl)),
		slog.String("path", path),
		slog.Int("records", len(res.Records)),
	)
	return nil
}

func moveArtifact(deps *Dependencies, name, subdir string) {
	src := filepath.Join(deps.Config.Paths.InputDir, name)
	dstDir := filepath.Join(deps.Config.Paths.InputDir, subdir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		deps.Logger.Warn("cannot create artifact dir", slog.Any("error", err))
		return
	}
	if err := os.Rename(src, filepath.Join(dstDir, name)); err != nil {
		deps.Logger.Warn("cannot move artifact",
			slog.String("document", name),
			slog.Any("error", err),
		)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
