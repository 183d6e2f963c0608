// Package services contains application services for the rentpred client.
// This file defines the authentication service: login, signup, logout and
// the liveness probe, each keeping the session owner in step with the API.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/client/forms"
	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/logging"
)

// Session is the part of the session owner the auth service drives.
// *session.Manager implements it.
type Session interface {
	Establish(ctx context.Context, token string, user models.User) error
	End(ctx context.Context)
}

// LogoutOutcome reports how a logout went. The local session is always
// gone afterwards; RemoteErr is set when the server was not told.
type LogoutOutcome struct {
	RemoteErr error
}

// Clean reports whether the server acknowledged the logout.
func (o LogoutOutcome) Clean() bool { return o.RemoteErr == nil }

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login / Signup: validate the form, call the API, then establish the
//     session. Validation failures never reach the API or the session; API
//     errors are returned unchanged.
//   - Logout: tell the server, then end the local session no matter what.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, form forms.Login) (*models.User, error)
	Signup(ctx context.Context, form forms.Signup) (*models.User, error)
	Logout(ctx context.Context) LogoutOutcome
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and
// the session owner.
type authService struct {
	client  client.Client
	session Session
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and session.
func NewAuthService(client client.Client, session Session, log logging.Logger) AuthService {
	return &authService{client: client, session: session, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, form forms.Login) (*models.User, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return a.establish(ctx, resp)
}

func (a *authService) Signup(ctx context.Context, form forms.Signup) (*models.User, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.establish(ctx, resp)
}

// Logout calls the API with the current token, then ends the session. It
// cannot fail from the caller's point of view.
func (a *authService) Logout(ctx context.Context) LogoutOutcome {
	var out LogoutOutcome
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, ending local session anyway", "error", err)
		out.RemoteErr = err
	}
	a.session.End(ctx)
	return out
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) establish(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if err := a.session.Establish(ctx, resp.Token, *resp.User); err != nil {
		return nil, fmt.Errorf("establish session: %w", err)
	}
	user := *resp.User
	return &user, nil
}
