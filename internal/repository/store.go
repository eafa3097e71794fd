package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/model"
	"github.com/s21platform/meeting-service/internal/repository/dynamo"
	"github.com/s21platform/meeting-service/internal/repository/memory"
	"github.com/s21platform/meeting-service/internal/repository/postgres"
)

type Store interface {
	Get(ctx context.Context, title string) (*model.Session, error)
	Put(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, title string) error
	List(ctx context.Context, limit int) (model.SessionList, error)
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// New opens the session store named by SESSION_BACKEND. The returned func
// releases its connections.
func New(awsCfg aws.Config, cfg *config.Config) (Store, func(), error) {
	switch cfg.Sessions.Backend {
	case config.SessionBackendDynamo:
		return dynamo.New(awsCfg, cfg), func() {}, nil
	case config.SessionBackendPostgres:
		repo := postgres.New(cfg)
		return repo, repo.Close, nil
	case config.SessionBackendMemory:
		return memory.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Sessions.Backend)
	}
}
