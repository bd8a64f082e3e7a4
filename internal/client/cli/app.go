package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dherbrich/oandash/internal/buildinfo"
	"github.com/dherbrich/oandash/internal/client/client"
	"github.com/dherbrich/oandash/internal/client/config"
	"github.com/dherbrich/oandash/internal/client/models"
	"github.com/dherbrich/oandash/internal/client/repositories/credentials"
	"github.com/dherbrich/oandash/internal/client/services"
	"github.com/dherbrich/oandash/internal/cryptox"
	"github.com/dherbrich/oandash/internal/logging"
	"golang.org/x/term"
)

const greeting = "Welcome to the OANDA Shell.    Type help or ? to list commands."

// App is the shell state. session is nil until a login succeeds and is
// replaced, never cleared, by later logins.
type App struct {
	config      *config.Config
	authService services.AuthService
	accounts    services.AccountService
	session     *models.Session
	log         logging.Logger

	reader      *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	interactive bool
	palette     palette
}

// NewApp builds the shell on top of stdin, stdout and stderr.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := client.NewRESTClient(cfg.BaseURI, cfg.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	creds := credentials.NewJSONFileRepository(cfg.StorePath())
	log.Debug(context.Background(), "credential store", "path", creds.Path())

	return &App{
		config:      cfg,
		authService: services.NewAuthService(creds, cryptox.NewCipher(), log),
		accounts:    services.NewAccountService(apiClient),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		errOut:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdout.Fd())),
		palette:     newPalette(os.Stdout),
	}, nil
}

// Run prints the intro banner and serves commands until quit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, buildinfo.Intro())
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.palette.positive.Render(greeting))

	runREPL(ctx, a, a.reader, a.out, a.palette.bold.Render("oandash> "))
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}
