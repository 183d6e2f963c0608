package services

import (
	"context"

	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/client/forms"
	"github.com/dmitrijs2005/rentpred/internal/client/models"
)

// EstimateService covers the authenticated, non-auth API calls: rent
// prediction, the estimate history and the server-side profile.
type EstimateService interface {
	Predict(ctx context.Context, form forms.Prediction) (*models.Prediction, error)
	History(ctx context.Context) ([]models.EstimateRecord, error)
	Profile(ctx context.Context) (*models.User, error)
}

type estimateService struct {
	client client.Client
}

func NewEstimateService(client client.Client) EstimateService {
	return &estimateService{client: client}
}

// Predict validates the intake form and asks the model for a rent.
func (s *estimateService) Predict(ctx context.Context, form forms.Prediction) (*models.Prediction, error) {
	req, err := form.Request()
	if err != nil {
		return nil, err
	}
	return s.client.Predict(ctx, req)
}

func (s *estimateService) History(ctx context.Context) ([]models.EstimateRecord, error) {
	return s.client.EstimateHistory(ctx)
}

func (s *estimateService) Profile(ctx context.Context) (*models.User, error) {
	return s.client.Profile(ctx)
}
