package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/harshpatel958/kontax/internal/client/client"
	"github.com/harshpatel958/kontax/internal/client/config"
	"github.com/harshpatel958/kontax/internal/client/models"
	"github.com/harshpatel958/kontax/internal/client/services"
	"github.com/harshpatel958/kontax/internal/filex"
	"github.com/harshpatel958/kontax/internal/payload"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	scanService    services.ScanService
	cardService    services.CardService
	sessionService services.SessionService
	publishService services.PublishService

	userName string
	loggedIn bool

	// staged is the last decoded scan, waiting for annotation. stagedAnn
	// keeps the answers of a save attempt that failed, so a retry offers
	// them back instead of re-prompting from scratch.
	staged    *payload.Record
	stagedID  int64
	stagedAnn *models.Annotation

	dataDir string

	// Mode is written by the online-status watcher goroutine and read by
	// REPL commands; modeMu guards both sides.
	Mode   Mode
	modeMu sync.RWMutex

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	dataDir, err := filex.EnsureSubDir(c.DataDir, "")
	if err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, filepath.Join(dataDir, "kontax.db"))
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr)

	return &App{
		config:         c,
		authService:    services.NewAuthService(apiClient),
		scanService:    services.NewScanService(repos.Scans),
		cardService:    services.NewCardService(repos.Cards),
		sessionService: services.NewSessionService(repos.Session),
		publishService: services.NewPublishService(apiClient, repos.Cards),
		dataDir:        dataDir,
		Mode:           ModeOffline,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.Mode != mode
	if changed {
		a.Mode = mode
	}
	a.modeMu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(ctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
