package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/reaper"
	"github.com/s21platform/meeting-service/internal/repository"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name+"-reaper", cfg.Platform.Env)

	if err := reaper.Validate(cfg); err != nil {
		logger.Error(fmt.Sprintf("invalid reaper config: %v", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	} else {
		ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load aws config: %v", err))
		os.Exit(1)
	}

	store, closeStore, err := repository.New(awsCfg, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open session store: %v", err))
		os.Exit(1)
	}
	defer closeStore()

	sessionReaper, err := reaper.New(store, cfg.Reaper.Interval)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create reaper: %v", err))
		return
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("reaping %s sessions every %s", cfg.Sessions.Backend, cfg.Reaper.Interval))
		return sessionReaper.Run(gCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("reaper error: %v", err))
	}
}
