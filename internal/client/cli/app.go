package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/client/config"
	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/client/services"
	"github.com/dmitrijs2005/rentpred/internal/client/session"
	"github.com/dmitrijs2005/rentpred/internal/client/storage"
	"github.com/dmitrijs2005/rentpred/internal/filex"
	"github.com/dmitrijs2005/rentpred/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sessionOwner is the part of *session.Manager the CLI uses.
type sessionOwner interface {
	State() session.State
	Restore(ctx context.Context) error
	Reload(ctx context.Context) error
	Token(ctx context.Context) (string, uint64, error)
	UpdateProfile(ctx context.Context, name, mobile string) (models.User, error)
	Subscribe(fn func(session.Event)) (unsubscribe func())
}

// estimateResult is the last prediction, kept for the results view.
type estimateResult struct {
	prediction models.Prediction
	request    models.PredictionRequest
}

type App struct {
	config          *config.Config
	log             logging.Logger
	session         sessionOwner
	authService     services.AuthService
	estimateService services.EstimateService
	reader          *bufio.Reader
	out             io.Writer
	styles          Styles
	routes          map[string]route

	closers     []func() error
	unsubscribe func()

	mu         sync.Mutex
	mode       Mode
	redirect   string
	pending    string
	loggingOut bool
	lastResult *estimateResult
}

// NewApp wires the session database, the session manager, the API client
// and the services described by c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	dbPath, err := filex.EnsureParentDir(c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("session database: %w", err)
	}
	db, err := storage.OpenDatabase(ctx, dbPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}

	manager := session.NewManager(storage.NewSQLiteStore(db), log)

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, manager, manager, log, client.WithHealthPath(c.HealthPath))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(c, log, manager,
		services.NewAuthService(api, manager, log),
		services.NewEstimateService(api),
		bufio.NewReader(os.Stdin), os.Stdout)
	a.closers = append(a.closers, db.Close)
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, s sessionOwner, as services.AuthService, es services.EstimateService, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:          c,
		log:             log,
		session:         s,
		authService:     as,
		estimateService: es,
		reader:          reader,
		out:             out,
		styles:          DefaultStyles(),
	}
	a.routes = a.buildRoutes()
	a.unsubscribe = s.Subscribe(a.onSessionEvent)
	return a
}

// Run restores the session, starts the online status watcher and blocks
// in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.warn("Could not read the saved session; you are logged out.")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

// Close releases the subscription and the session database.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// onSessionEvent runs synchronously on the goroutine that caused the
// transition, often inside an API call made by a view.
func (a *App) onSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventForcedLogout:
		a.mu.Lock()
		a.redirect = LoginRoute
		quiet := a.loggingOut
		a.mu.Unlock()
		if !quiet {
			a.warn("Your session has expired. Please log in again.")
		}
	case session.EventExternalChange:
		if ev.State.User != nil {
			a.muted(fmt.Sprintf("Session changed elsewhere: now logged in as %s.", ev.State.User.Email))
		} else {
			a.muted("Session ended elsewhere: you are logged out.")
		}
	}
}

// takeRedirect returns the path the REPL should open before the next
// prompt: the login view after a forced logout, or a protected view that
// was requested while the session was still loading.
func (a *App) takeRedirect() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if p := a.redirect; p != "" {
		a.redirect = ""
		return p
	}
	if a.pending != "" && !a.session.State().Loading {
		p := a.pending
		a.pending = ""
		return p
	}
	return ""
}

// StartOnlineStatusWatcher pings the API right away and then every interval
// until ctx is done, switching Mode between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		a.probe(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	timeout := a.config.RequestTimeout
	if timeout <= 0 || timeout > a.config.OnlineCheckInterval {
		timeout = a.config.OnlineCheckInterval
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.authService.Ping(pingCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) getStatus() string {
	var parts []string
	if u := a.session.State().User; u != nil {
		parts = append(parts, u.Email)
	}
	if m := a.Mode(); m != ModeUnknown {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}
