package services

import (
	"context"

	"github.com/momokapoolz/calories-app-gateway/models"
)

// MealLogService is a pass-through over the backend's meal-log and
// meal-log-item endpoints.
type MealLogService struct {
	client *BackendClient
}

func NewMealLogService(client *BackendClient) *MealLogService {
	return &MealLogService{client: client}
}

func (s *MealLogService) Create(ctx context.Context, token string, req CreateMealLogRequest) (*models.MealLog, error) {
	return s.client.CreateMealLog(ctx, token, req)
}

func (s *MealLogService) List(ctx context.Context, token string) ([]models.MealLog, error) {
	return s.client.ListMealLogs(ctx, token)
}

func (s *MealLogService) Get(ctx context.Context, token string, id uint) (*models.MealLog, error) {
	return s.client.GetMealLog(ctx, token, id)
}

func (s *MealLogService) Update(ctx context.Context, token string, id uint, req CreateMealLogRequest) (*models.MealLog, error) {
	return s.client.UpdateMealLog(ctx, token, id, req)
}

// Delete removes the meal log; the backend cascades to its items.
func (s *MealLogService) Delete(ctx context.Context, token string, id uint) error {
	return s.client.DeleteMealLog(ctx, token, id)
}

func (s *MealLogService) ListByDate(ctx context.Context, token, date string) ([]models.MealLog, error) {
	return s.client.ListMealLogsByDate(ctx, token, date)
}

func (s *MealLogService) AddItems(ctx context.Context, token string, mealLogID uint, items []MealLogItemRequest) (*models.MealLog, error) {
	return s.client.AddMealLogItems(ctx, token, mealLogID, items)
}

func (s *MealLogService) CreateItem(ctx context.Context, token string, item models.MealLogItem) (*models.MealLogItem, error) {
	return s.client.CreateMealLogItem(ctx, token, item)
}

func (s *MealLogService) GetItem(ctx context.Context, token string, id uint) (*models.MealLogItem, error) {
	return s.client.GetMealLogItem(ctx, token, id)
}

func (s *MealLogService) UpdateItem(ctx context.Context, token string, id uint, item models.MealLogItem) (*models.MealLogItem, error) {
	return s.client.UpdateMealLogItem(ctx, token, id, item)
}

func (s *MealLogService) DeleteItem(ctx context.Context, token string, id uint) error {
	return s.client.DeleteMealLogItem(ctx, token, id)
}

func (s *MealLogService) ItemsByMealLog(ctx context.Context, token string, mealLogID uint) ([]models.MealLogItem, error) {
	return s.client.ListItemsByMealLog(ctx, token, mealLogID)
}

func (s *MealLogService) ItemsByFood(ctx context.Context, token string, foodID uint) ([]models.MealLogItem, error) {
	return s.client.ListItemsByFood(ctx, token, foodID)
}
