// Package server initializes and runs the Publicada server: it opens the
// database, applies migrations, selects the record store backend, and
// starts the gRPC endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jfrjs/publicada/internal/logging"
	"github.com/jfrjs/publicada/internal/server/config"
	gs "github.com/jfrjs/publicada/internal/server/grpc"
	"github.com/jfrjs/publicada/internal/server/repositories/records"
	"github.com/jfrjs/publicada/internal/server/repositories/repomanager"
	"github.com/jfrjs/publicada/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	identityService *services.IdentityService
	recordService   *services.RecordService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	recordsRepo, err := selectRecordsRepo(ctx, cfg, manager, db)
	if err != nil {
		return nil, err
	}

	is := services.NewIdentityService(db, manager, cfg)
	rs := services.NewRecordService(recordsRepo)

	return &App{config: cfg, logger: logger, db: db, identityService: is, recordService: rs}, nil
}

func selectRecordsRepo(ctx context.Context, cfg *config.Config, manager repomanager.RepositoryManager, db *sql.DB) (records.Repository, error) {
	switch cfg.RecordBackend {
	case config.RecordBackendS3:
		repo, err := records.NewS3Repository(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		return repo, nil
	case config.RecordBackendPostgres, "":
		return manager.Records(db), nil
	default:
		return nil, fmt.Errorf("unknown record backend %q", cfg.RecordBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.identityService, app.recordService, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
