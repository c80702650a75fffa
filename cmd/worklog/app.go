package main

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/hrc-navate/worklog/internal/api"
	"github.com/hrc-navate/worklog/internal/api/handler"
	"github.com/hrc-navate/worklog/internal/api/metrics"
	"github.com/hrc-navate/worklog/internal/core/report"
	"github.com/hrc-navate/worklog/internal/core/service"
	"github.com/hrc-navate/worklog/internal/infrastructure/config"
	"github.com/hrc-navate/worklog/internal/infrastructure/db/mongo"
	"github.com/hrc-navate/worklog/internal/infrastructure/db/redis"
	"github.com/hrc-navate/worklog/internal/infrastructure/export"
	"github.com/hrc-navate/worklog/internal/infrastructure/storage"
	"github.com/hrc-navate/worklog/pkg/logger"
)

// app holds the process-wide resources shared by the commands.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	mongo *mongodriver.Client
	db    *mongodriver.Database
	redis *goredis.Client
}

func bootstrap(ctx context.Context, withRedis bool) (*app, error) {
	cfg, err := config.Load(ctx, envFile)
	if err != nil {
		return nil, err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "worklog",
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, mongo: client, db: db}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	if withRedis {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			a.close(ctx)
			return nil, err
		}
		a.redis = rdb
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}
	return a, nil
}

func (a *app) close(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn().Err(err).Msg("redis close")
		}
	}
	if err := a.mongo.Disconnect(ctx); err != nil {
		a.log.Warn().Err(err).Msg("mongodb disconnect")
	}
}

// prepare creates indexes and the bootstrap administrator.
func (a *app) prepare(ctx context.Context) error {
	if err := mongo.EnsureIndexes(ctx, a.db); err != nil {
		return err
	}
	users := service.NewUserService(mongo.NewUserRepository(a.db), logger.Component("users"))
	admin, created, err := users.EnsureBootstrapAdmin(ctx, service.BootstrapAdmin{
		Name:     a.cfg.Bootstrap.Name,
		Email:    a.cfg.Bootstrap.Email,
		Password: a.cfg.Bootstrap.Password,
	})
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		a.log.Info().Str("name", admin.Name).Msg("bootstrap administrator created")
	}
	return nil
}

// routerDeps builds the services behind the HTTP API.
func (a *app) routerDeps() (api.Deps, error) {
	userRepo := mongo.NewUserRepository(a.db)
	projectRepo := mongo.NewProjectRepository(a.db)
	entryRepo := mongo.NewEntryRepository(a.db)
	documentRepo := mongo.NewDocumentRepository(a.db)
	revoker := redis.NewTokenRevoker(a.redis)

	blobs, err := storage.NewLocalStore(a.cfg.Documents.Dir, a.cfg.Documents.MaxBytes)
	if err != nil {
		return api.Deps{}, err
	}

	pdf, err := export.NewPDFRenderer(export.PDFConfig{
		Title:    a.cfg.Export.Title,
		FontPath: a.cfg.Export.FontPath,
	}, logger.Component("export"))
	if err != nil {
		return api.Deps{}, err
	}
	builder := report.NewBuilder(entryRepo, projectRepo, userRepo, logger.Component("report"),
		report.WithWarningObserver(metrics.ObserveWarning))

	return api.Deps{
		Logger:    a.log,
		JWTSecret: a.cfg.JWTSecret,
		Auth:      service.NewAuthService(userRepo, revoker, a.cfg.JWTSecret, a.cfg.TokenTTL, logger.Component("auth")),
		Revoked:   revoker,
		Users:     service.NewUserService(userRepo, logger.Component("users")),
		Projects:  service.NewProjectService(projectRepo, entryRepo, logger.Component("projects")),
		Entries:   service.NewEntryService(entryRepo, projectRepo, userRepo, logger.Component("entries")),
		Documents: service.NewDocumentService(documentRepo, blobs, logger.Component("documents")),
		Reports: service.NewReportService(builder, logger.Component("reports"),
			pdf, export.NewXLSXRenderer(logger.Component("export"))),
		Checks: map[string]handler.Check{
			"mongodb": handler.MongoCheck(a.db),
			"redis":   handler.RedisCheck(a.redis),
		},
	}, nil
}
