package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/meeting-service/internal/client/chime"
	"github.com/s21platform/meeting-service/internal/client/lms"
	"github.com/s21platform/meeting-service/internal/client/pipelines"
	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/pkg/jwt"
	"github.com/s21platform/meeting-service/internal/pkg/validator"
	"github.com/s21platform/meeting-service/internal/repository"
	"github.com/s21platform/meeting-service/internal/rest"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	meetingsClient := chime.New(awsCfg, cfg.AWS.MeetingsEndpoint)
	pipelinesClient := pipelines.New(awsCfg, cfg)

	var verifier rest.UserVerifier
	if cfg.LMS.Enabled() {
		lmsClient := lms.New(cfg, jwt.New(cfg.LMS.JWTSecret, cfg.Service.Name))
		defer lmsClient.Close()
		verifier = lmsClient
	}

	vldtr := validator.New()

	handler := rest.New(store, meetingsClient, pipelinesClient, verifier, vldtr, cfg)
	router := rest.NewRouter(handler, logger, cfg.Debug)

	httpServer := &http.Server{
		Addr:    cfg.Service.Addr(),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("server running on http://%s", cfg.Service.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
