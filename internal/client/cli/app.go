package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/jfrjs/publicada/internal/client/client"
	"github.com/jfrjs/publicada/internal/client/config"
	"github.com/jfrjs/publicada/internal/client/models"
	"github.com/jfrjs/publicada/internal/client/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// authAPI and accountAPI are the service surfaces the CLI commands use.
// The concrete services satisfy them; tests provide fakes.
type authAPI interface {
	Register(ctx context.Context, username, password, name, email string) (string, error)
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Ping(ctx context.Context) error
	Logout()
	Close() error
}

type accountAPI interface {
	SignIn(ctx context.Context, identity *models.Identity) (*models.User, error)
	CurrentUser() (*models.User, error)
	UpdateProfile(ctx context.Context, name, email string) (*models.User, error)
	DeleteAccount(ctx context.Context) error
	ClearSession()
}

type App struct {
	config         *config.Config
	authService    authAPI
	accountService accountAPI
	Mode           Mode
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewPublicadaClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient)
	acs := services.NewAccountService(apiClient)

	return &App{config: c, authService: as, accountService: acs, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close()

	log.Println("Welcome to Publicada CLI (type 'help' for commands)")

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	_, err := a.accountService.CurrentUser()
	return err == nil
}

func (a *App) getStatus() string {
	s := ""
	if user, err := a.accountService.CurrentUser(); err == nil {
		s = user.Name + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
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
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
