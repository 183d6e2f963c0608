package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rentpred/internal/client/session"
	"github.com/dmitrijs2005/rentpred/internal/common"
)

// View paths.
const (
	HomeRoute        = "/"
	AboutRoute       = "/about"
	ContactRoute     = "/contact"
	LoginRoute       = common.LoginPath
	SignupRoute      = "/signup"
	ForgotRoute      = "/forgot-password"
	ResultsRoute     = "/results"
	RentFormRoute    = "/rent-form"
	ProfileRoute     = "/profile"
	EditProfileRoute = "/profile/edit"
	EstimateRoute    = "/estimates"
	HistoryRoute     = "/history"
)

const maxRedirects = 8

var errRedirectLoop = errors.New("too many redirects")

// view renders one path. A non-empty next path is navigated to afterwards.
type view func(ctx context.Context) (next string, err error)

type route struct {
	protected bool
	render    view
}

func (a *App) buildRoutes() map[string]route {
	return map[string]route{
		HomeRoute:        {render: a.homeView},
		AboutRoute:       {render: a.aboutView},
		ContactRoute:     {render: a.contactView},
		LoginRoute:       {render: a.loginView},
		SignupRoute:      {render: a.signupView},
		ForgotRoute:      {render: a.forgotPasswordView},
		ResultsRoute:     {render: a.resultsView},
		RentFormRoute:    {protected: true, render: a.rentFormView},
		ProfileRoute:     {protected: true, render: a.profileView},
		EditProfileRoute: {protected: true, render: a.editProfileView},
		EstimateRoute:    {protected: true, render: a.historyView},
		HistoryRoute:     {protected: true, render: a.historyView},
	}
}

// Navigate opens path and follows the redirects its views ask for. The
// session guard is evaluated on every protected hop, never cached.
func (a *App) Navigate(ctx context.Context, path string) error {
	if err := a.session.Reload(ctx); err != nil {
		a.log.Warn(ctx, "session reload failed", "error", err)
	}

	for hops := 0; path != ""; hops++ {
		if hops >= maxRedirects {
			return fmt.Errorf("navigate %s: %w", path, errRedirectLoop)
		}

		r, ok := a.routes[path]
		if !ok {
			a.notFoundView(path)
			return nil
		}

		if r.protected {
			d := session.Evaluate(a.session.State())
			a.log.Debug(ctx, "route guard", "path", path, "action", d.Action)

			switch d.Action {
			case session.ActionLoading:
				a.mu.Lock()
				a.pending = path
				a.mu.Unlock()
				a.muted("Loading your session...")
				return nil
			case session.ActionRedirect:
				a.muted("Please log in to continue.")
				path = d.Target
				continue
			}
		}

		next, err := r.render(ctx)
		if err != nil {
			a.showError(err)
			return err
		}
		path = next
	}
	return nil
}
