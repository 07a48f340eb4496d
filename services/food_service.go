package services

import (
	"context"

	"github.com/momokapoolz/calories-app-gateway/models"
)

// FoodService is a pass-through over the backend's food and food-nutrient
// endpoints. It exists as an injection seam, not a place for business logic.
type FoodService struct {
	client *BackendClient
}

func NewFoodService(client *BackendClient) *FoodService {
	return &FoodService{client: client}
}

func (s *FoodService) List(ctx context.Context, token string) ([]models.Food, error) {
	return s.client.ListFoods(ctx, token)
}

func (s *FoodService) Create(ctx context.Context, token string, food models.Food) (*models.Food, error) {
	return s.client.CreateFood(ctx, token, food)
}

func (s *FoodService) Get(ctx context.Context, token string, id uint) (*models.Food, error) {
	return s.client.GetFood(ctx, token, id)
}

func (s *FoodService) Update(ctx context.Context, token string, id uint, food models.Food) (*models.Food, error) {
	return s.client.UpdateFood(ctx, token, id, food)
}

func (s *FoodService) Delete(ctx context.Context, token string, id uint) error {
	return s.client.DeleteFood(ctx, token, id)
}

func (s *FoodService) ListFoodNutrients(ctx context.Context, token string) ([]models.FoodNutrient, error) {
	return s.client.ListFoodNutrients(ctx, token)
}

func (s *FoodService) CreateFoodNutrient(ctx context.Context, token string, fn models.FoodNutrient) (*models.FoodNutrient, error) {
	return s.client.CreateFoodNutrient(ctx, token, fn)
}

func (s *FoodService) GetFoodNutrient(ctx context.Context, token string, id uint) (*models.FoodNutrient, error) {
	return s.client.GetFoodNutrient(ctx, token, id)
}

func (s *FoodService) UpdateFoodNutrient(ctx context.Context, token string, id uint, fn models.FoodNutrient) (*models.FoodNutrient, error) {
	return s.client.UpdateFoodNutrient(ctx, token, id, fn)
}

func (s *FoodService) DeleteFoodNutrient(ctx context.Context, token string, id uint) error {
	return s.client.DeleteFoodNutrient(ctx, token, id)
}

func (s *FoodService) NutrientsForFood(ctx context.Context, token string, foodID uint) ([]models.FoodNutrient, error) {
	return s.client.ListNutrientsByFood(ctx, token, foodID)
}
