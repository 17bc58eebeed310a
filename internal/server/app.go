// Package server initializes and runs the kontax API server.
// It wires the PostgreSQL repositories, the domain services and the HTTP
// endpoint, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/harshpatel958/kontax/internal/logging"
	"github.com/harshpatel958/kontax/internal/server/cards"
	"github.com/harshpatel958/kontax/internal/server/config"
	"github.com/harshpatel958/kontax/internal/server/db"
	"github.com/harshpatel958/kontax/internal/server/devices"
	"github.com/harshpatel958/kontax/internal/server/httpapi"
	"github.com/harshpatel958/kontax/internal/server/storage"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	deviceService  *devices.Service
	cardService    *cards.Service
	storageService *storage.Service
}

func NewApp(c *config.Config) (*App, error) {

	zl, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger := logging.NewZapLogger(zl)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ds := devices.NewService(m.Devices(), m.RefreshTokens(), c)
	cs := cards.NewService(m.Cards(), c)
	ss := storage.NewService(c)

	return &App{
		config:         c,
		logger:         logger,
		deviceService:  ds,
		cardService:    cs,
		storageService: ss,
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	h := httpapi.NewHandler(app.deviceService, app.cardService, app.storageService, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, h, app.config.SecretKey)

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
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
