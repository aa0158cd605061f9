// Package cli is the line-oriented front end of the mail client.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/intramail/intramail/internal/client/api"
	"github.com/intramail/intramail/internal/client/config"
	"github.com/intramail/intramail/internal/client/localdb"
	"github.com/intramail/intramail/internal/client/repositories/drafts"
	"github.com/intramail/intramail/internal/client/repositories/metadata"
	"github.com/intramail/intramail/internal/client/services"
	"github.com/intramail/intramail/internal/client/session"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	mailService services.MailService
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := localdb.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewClient(c)

	sm := session.NewManager(apiClient, metadata.NewSQLiteRepository(db))

	as := services.NewAuthService(apiClient, sm)
	ms := services.NewMailService(apiClient, drafts.NewSQLiteRepository(db))

	// A persisted token from an earlier run is installed as-is. If it has
	// gone stale, the first authenticated call comes back 401 and tears
	// the session down.
	if found, err := as.Restore(ctx); err != nil {
		log.Printf("session restore error: %s", err.Error())
	} else if found {
		log.Printf("Restored session for %s", as.CurrentEmail())
	}

	return &App{
		config:      c,
		authService: as,
		mailService: ms,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsLoggedIn()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.authService.CurrentEmail()
	}
	return "not logged in"
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
