package services

import (
	"context"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
)

// ---- fake client ----

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	// results
	LoginRet   *models.AuthResponse
	LoginErr   error
	SignupRet  *models.AuthResponse
	SignupErr  error
	LogoutErr  error
	ProfileRet *models.User
	ProfileErr error
	HistoryRet []models.EstimateRecord
	HistoryErr error
	PredictRet *models.Prediction
	PredictErr error
	PingErr    error

	// captured arguments
	LastLoginEmail    string
	LastLoginPassword string
	LastSignup        *models.SignupRequest
	LastPredict       *models.PredictionRequest
	Calls             []string
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.Calls = append(f.Calls, "login")
	f.LastLoginEmail, f.LastLoginPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(_ context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	f.Calls = append(f.Calls, "signup")
	f.LastSignup = &req
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.Calls = append(f.Calls, "logout")
	return f.LogoutErr
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	f.Calls = append(f.Calls, "profile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) EstimateHistory(context.Context) ([]models.EstimateRecord, error) {
	f.Calls = append(f.Calls, "history")
	return f.HistoryRet, f.HistoryErr
}

func (f *fakeClient) Predict(_ context.Context, req models.PredictionRequest) (*models.Prediction, error) {
	f.Calls = append(f.Calls, "predict")
	f.LastPredict = &req
	return f.PredictRet, f.PredictErr
}

func (f *fakeClient) Ping(context.Context) error {
	f.Calls = append(f.Calls, "ping")
	return f.PingErr
}

// ---- fake session ----

type fakeSession struct {
	EstablishErr error

	LastToken string
	LastUser  *models.User
	Ended     int
}

func (f *fakeSession) Establish(_ context.Context, token string, user models.User) error {
	if f.EstablishErr != nil {
		return f.EstablishErr
	}
	f.LastToken = token
	f.LastUser = &user
	return nil
}

func (f *fakeSession) End(context.Context) {
	f.Ended++
}
