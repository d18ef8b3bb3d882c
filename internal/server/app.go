// Package server initializes and runs the application server.
// It opens the database, runs migrations, wires the service layer, and
// starts the gRPC endpoint and the upload-event listener with graceful
// shutdown.
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

	"github.com/nathanjchan/dothething-backend/internal/logging"
	"github.com/nathanjchan/dothething-backend/internal/server/blob"
	"github.com/nathanjchan/dothething-backend/internal/server/config"
	"github.com/nathanjchan/dothething-backend/internal/server/events"
	"github.com/nathanjchan/dothething-backend/internal/server/frames"
	"github.com/nathanjchan/dothething-backend/internal/server/identity"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/repomanager"
	"github.com/nathanjchan/dothething-backend/internal/server/services"

	gs "github.com/nathanjchan/dothething-backend/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	accountService *services.AccountService
	codeService    *services.CodeService
	feedService    *services.FeedService
	ingestService  *services.IngestService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := blob.NewS3Store(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	var verifier identity.Verifier
	if c.GoogleClientID != "" {
		verifier = identity.NewGoogleVerifier(c.GoogleClientID)
	} else {
		verifier = identity.NewJWTVerifier([]byte(c.SessionSecret))
	}

	as := services.NewAccountService(db, rm, verifier)
	cs := services.NewCodeService(db, rm, store, c)
	fs := services.NewFeedService(db, rm, store, c)
	is := services.NewIngestService(db, rm, store, &frames.FFmpegExtractor{}, c, logger)

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		accountService: as,
		codeService:    cs,
		feedService:    fs,
		ingestService:  is,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.accountService, app.codeService, app.feedService)

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

func (app *App) startEventListener(ctx context.Context, cancelFunc context.CancelFunc) {

	l := events.NewNatsListener(app.config, app.ingestService, app.logger)

	if err := l.Run(ctx); err != nil {
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

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startEventListener(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
