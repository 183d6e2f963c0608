package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/client/forms"
	"github.com/dmitrijs2005/rentpred/internal/client/session"
	"github.com/dmitrijs2005/rentpred/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView prompts for credentials. On success it opens the home view;
// failures are shown and leave the user on the login view.
func (a *App) loginView(ctx context.Context) (string, error) {
	if u := a.session.State().User; u != nil {
		a.muted(fmt.Sprintf("Already logged in as %s.", u.Email))
		return HomeRoute, nil
	}

	a.title("Log in")
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, forms.Login{Email: email, Password: string(password)})
	if err != nil {
		a.showError(err)
		return "", nil
	}

	a.success(fmt.Sprintf("Welcome back, %s!", user.DisplayName()))
	return HomeRoute, nil
}

func (a *App) signupView(ctx context.Context) (string, error) {
	if u := a.session.State().User; u != nil {
		a.muted(fmt.Sprintf("Already logged in as %s. Log out to create another account.", u.Email))
		return "", nil
	}

	a.title("Create an account")
	var form forms.Signup
	var err error

	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return "", err
	}
	if form.Name, err = getSimpleText(a.reader, "Name (optional)", a.out); err != nil {
		return "", err
	}
	if form.Mobile, err = getSimpleText(a.reader, "Mobile (optional)", a.out); err != nil {
		return "", err
	}

	password, err := getPassword(a.reader, "Password (8+ chars, upper, lower and a digit)", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(confirm)

	form.Password, form.ConfirmPassword = string(password), string(confirm)

	user, err := a.authService.Signup(ctx, form)
	if err != nil {
		a.showError(err)
		return "", nil
	}

	a.success(fmt.Sprintf("Account created. Welcome, %s!", user.DisplayName()))
	return HomeRoute, nil
}

// forgotPasswordView only confirms the request; the API has no reset endpoint.
func (a *App) forgotPasswordView(context.Context) (string, error) {
	a.title("Reset your password")
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", err
	}

	if err := (forms.ForgotPassword{Email: email}).Validate(); err != nil {
		a.showError(err)
		return "", nil
	}

	a.success(fmt.Sprintf("If an account exists for %s, a reset link is on its way.", strings.TrimSpace(email)))
	return "", nil
}

// Logout always ends the local session. When the server could not be
// told, the user is warned that the token may still be valid there.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.muted("You are not logged in.")
		return nil
	}

	a.mu.Lock()
	a.loggingOut = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.loggingOut = false
		a.mu.Unlock()
	}()

	out := a.authService.Logout(ctx)
	switch {
	case out.Clean(), errors.Is(out.RemoteErr, client.ErrUnauthorized):
		// a rejected token means the server already considers it ended
		a.success("Logged out.")
	case errors.Is(out.RemoteErr, client.ErrUnavailable):
		a.warn("Logged out locally; the server could not be reached: " + msgUnavailable)
	default:
		a.warn("Logged out locally; the server did not confirm the logout: " + userMessage(out.RemoteErr))
	}
	return nil
}

// Status prints the session, connectivity and what the bearer token says
// about itself.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()

	a.title("Status")
	a.println(fmt.Sprintf("%s %s", a.styles.Label.Render("Session:"), st.Phase()))
	if st.User != nil {
		a.println(fmt.Sprintf("%s %s", a.styles.Label.Render("User:"), st.User.Email))
	}

	mode := a.Mode()
	if mode == ModeUnknown {
		mode = "checking"
	}
	a.println(fmt.Sprintf("%s %s (%s)", a.styles.Label.Render("Server:"), mode, a.config.APIBaseURL))

	token, _, err := a.session.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	info, ok := session.InspectToken(token)
	if !ok {
		a.println(fmt.Sprintf("%s opaque", a.styles.Label.Render("Token:")))
		return nil
	}

	line := fmt.Sprintf("%s JWT", a.styles.Label.Render("Token:"))
	if info.Subject != "" {
		line += ", subject " + info.Subject
	}
	if !info.ExpiresAt.IsZero() {
		line += ", expires " + info.ExpiresAt.Local().Format(time.RFC1123)
		if info.Expired(time.Now()) {
			line += " " + a.styles.Warning.Render("(expired)")
		}
	}
	a.println(line)
	return nil
}
