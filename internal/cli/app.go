package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/glowlab/skinflow/internal/catalog"
	"github.com/glowlab/skinflow/internal/config"
	"github.com/glowlab/skinflow/internal/dashboard"
	"github.com/glowlab/skinflow/internal/logging"
	"github.com/glowlab/skinflow/internal/models"
	"github.com/glowlab/skinflow/internal/routine"
)

// sessionService is the slice of the session store the CLI depends on.
type sessionService interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, email, passwordSecret string) error
	Signup(ctx context.Context, email, passwordSecret, name string) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	Current() *models.Profile
	IsAuthenticated() bool
}

// historyService is the slice of the scan log the CLI depends on.
type historyService interface {
	Append(rec models.ScanRecord) error
	All() []models.ScanRecord
	Clear()
}

// App wires the interactive commands to the session store, the scan
// history, the product catalog and the routine tracker.
type App struct {
	config   *config.Config
	sessions sessionService
	history  historyService
	catalog  *catalog.Catalog
	routine  *routine.Tracker
	dash     *dashboard.Builder
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(cfg *config.Config, sessions sessionService, history historyService, cat *catalog.Catalog, dash *dashboard.Builder, log logging.Logger) *App {
	return &App{
		config:   cfg,
		sessions: sessions,
		history:  history,
		catalog:  cat,
		routine:  routine.New(),
		dash:     dash,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

func (a *App) getStatus() string {
	if p := a.sessions.Current(); p != nil {
		return fmt.Sprintf("(%s)", p.Email)
	}
	return ""
}

// Run restores or auto-creates the session, then hands control to the REPL
// until the user exits.
func (a *App) Run(ctx context.Context) error {
	if err := a.sessions.Bootstrap(ctx); err != nil {
		return err
	}
	a.log.Debug(ctx, "session ready", "database", a.config.DatabasePath)

	printlnFn("Welcome to SkinFlow (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}
