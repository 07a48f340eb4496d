package services

import (
	"context"

	"github.com/momokapoolz/calories-app-gateway/models"
)

// NutrientService serves the read-only nutrient catalog.
type NutrientService struct {
	client *BackendClient
}

func NewNutrientService(client *BackendClient) *NutrientService {
	return &NutrientService{client: client}
}

func (s *NutrientService) List(ctx context.Context, token string) ([]models.Nutrient, error) {
	return s.client.ListNutrients(ctx, token)
}

func (s *NutrientService) ListByCategory(ctx context.Context, token, category string) ([]models.Nutrient, error) {
	return s.client.ListNutrientsByCategory(ctx, token, category)
}
