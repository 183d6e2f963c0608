package client

import (
	"context"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	EstimateHistory(ctx context.Context) ([]models.EstimateRecord, error)
	Predict(ctx context.Context, req models.PredictionRequest) (*models.Prediction, error)
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token for the next request together with
// the session generation it belongs to. It is consulted on every request.
type TokenSource interface {
	Token(ctx context.Context) (token string, generation uint64, err error)
}

// UnauthorizedHandler is told about every 401 response. generation is the
// value TokenSource returned when the failed request was sent.
type UnauthorizedHandler interface {
	HandleUnauthorized(ctx context.Context, generation uint64)
}
