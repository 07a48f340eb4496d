package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/momokapoolz/calories-app-gateway/models"
)

// BackendClient talks to the nutrition backend. Every method forwards the
// caller's bearer token untouched; the gateway holds no credentials of its
// own.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// do performs one backend round trip. A nil out skips body decoding. Non-2xx
// responses become APIErrors carrying the raw body; transport failures become
// ErrKindUnreachable so handlers can synthesize a message.
func (b *BackendClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build backend request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return &APIError{
			Kind:    ErrKindUnreachable,
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("backend unreachable: %v", err),
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return nil
}

// ---------- foods ----------

func (b *BackendClient) ListFoods(ctx context.Context, token string) ([]models.Food, error) {
	var foods []models.Food
	err := b.do(ctx, http.MethodGet, "/foods", token, nil, &foods)
	return foods, err
}

func (b *BackendClient) CreateFood(ctx context.Context, token string, food models.Food) (*models.Food, error) {
	var created models.Food
	if err := b.do(ctx, http.MethodPost, "/foods", token, food, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *BackendClient) GetFood(ctx context.Context, token string, id uint) (*models.Food, error) {
	var food models.Food
	if err := b.do(ctx, http.MethodGet, fmt.Sprintf("/foods/%d", id), token, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (b *BackendClient) UpdateFood(ctx context.Context, token string, id uint, food models.Food) (*models.Food, error) {
	var updated models.Food
	if err := b.do(ctx, http.MethodPut, fmt.Sprintf("/foods/%d", id), token, food, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *BackendClient) DeleteFood(ctx context.Context, token string, id uint) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/foods/%d", id), token, nil, nil)
}

// ---------- food nutrients ----------

func (b *BackendClient) ListFoodNutrients(ctx context.Context, token string) ([]models.FoodNutrient, error) {
	var rows []models.FoodNutrient
	err := b.do(ctx, http.MethodGet, "/food-nutrients", token, nil, &rows)
	return rows, err
}

func (b *BackendClient) CreateFoodNutrient(ctx context.Context, token string, fn models.FoodNutrient) (*models.FoodNutrient, error) {
	var created models.FoodNutrient
	if err := b.do(ctx, http.MethodPost, "/food-nutrients", token, fn, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *BackendClient) GetFoodNutrient(ctx context.Context, token string, id uint) (*models.FoodNutrient, error) {
	var fn models.FoodNutrient
	if err := b.do(ctx, http.MethodGet, fmt.Sprintf("/food-nutrients/%d", id), token, nil, &fn); err != nil {
		return nil, err
	}
	return &fn, nil
}

func (b *BackendClient) UpdateFoodNutrient(ctx context.Context, token string, id uint, fn models.FoodNutrient) (*models.FoodNutrient, error) {
	var updated models.FoodNutrient
	if err := b.do(ctx, http.MethodPut, fmt.Sprintf("/food-nutrients/%d", id), token, fn, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *BackendClient) DeleteFoodNutrient(ctx context.Context, token string, id uint) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/food-nutrients/%d", id), token, nil, nil)
}

func (b *BackendClient) ListNutrientsByFood(ctx context.Context, token string, foodID uint) ([]models.FoodNutrient, error) {
	var rows []models.FoodNutrient
	err := b.do(ctx, http.MethodGet, fmt.Sprintf("/food-nutrients/food/%d", foodID), token, nil, &rows)
	return rows, err
}

// ---------- nutrient catalog ----------

func (b *BackendClient) ListNutrients(ctx context.Context, token string) ([]models.Nutrient, error) {
	var rows []models.Nutrient
	err := b.do(ctx, http.MethodGet, "/nutrients", token, nil, &rows)
	return rows, err
}

func (b *BackendClient) ListNutrientsByCategory(ctx context.Context, token, category string) ([]models.Nutrient, error) {
	var rows []models.Nutrient
	err := b.do(ctx, http.MethodGet, "/nutrients/category/"+url.PathEscape(category), token, nil, &rows)
	return rows, err
}

// ---------- meal logs ----------

type MealLogItemRequest struct {
	FoodID        uint    `json:"food_id"`
	Quantity      float64 `json:"quantity"`
	QuantityGrams float64 `json:"quantity_grams"`
}

type CreateMealLogRequest struct {
	MealType models.MealType      `json:"meal_type"`
	Items    []MealLogItemRequest `json:"items"`
}

func (b *BackendClient) CreateMealLog(ctx context.Context, token string, req CreateMealLogRequest) (*models.MealLog, error) {
	var meal models.MealLog
	if err := b.do(ctx, http.MethodPost, "/meal-logs", token, req, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (b *BackendClient) ListMealLogs(ctx context.Context, token string) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := b.do(ctx, http.MethodGet, "/meal-logs", token, nil, &meals)
	return meals, err
}

func (b *BackendClient) GetMealLog(ctx context.Context, token string, id uint) (*models.MealLog, error) {
	var meal models.MealLog
	if err := b.do(ctx, http.MethodGet, fmt.Sprintf("/meal-logs/%d", id), token, nil, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (b *BackendClient) UpdateMealLog(ctx context.Context, token string, id uint, req CreateMealLogRequest) (*models.MealLog, error) {
	var meal models.MealLog
	if err := b.do(ctx, http.MethodPut, fmt.Sprintf("/meal-logs/%d", id), token, req, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

func (b *BackendClient) DeleteMealLog(ctx context.Context, token string, id uint) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/meal-logs/%d", id), token, nil, nil)
}

func (b *BackendClient) ListMealLogsByDate(ctx context.Context, token, date string) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := b.do(ctx, http.MethodGet, "/meal-logs/user/date/"+date, token, nil, &meals)
	return meals, err
}

func (b *BackendClient) AddMealLogItems(ctx context.Context, token string, mealLogID uint, items []MealLogItemRequest) (*models.MealLog, error) {
	var meal models.MealLog
	if err := b.do(ctx, http.MethodPost, fmt.Sprintf("/meal-logs/%d/items", mealLogID), token, items, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// ---------- meal log items ----------

func (b *BackendClient) CreateMealLogItem(ctx context.Context, token string, item models.MealLogItem) (*models.MealLogItem, error) {
	var created models.MealLogItem
	if err := b.do(ctx, http.MethodPost, "/meal-log-items", token, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *BackendClient) GetMealLogItem(ctx context.Context, token string, id uint) (*models.MealLogItem, error) {
	var item models.MealLogItem
	if err := b.do(ctx, http.MethodGet, fmt.Sprintf("/meal-log-items/%d", id), token, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (b *BackendClient) UpdateMealLogItem(ctx context.Context, token string, id uint, item models.MealLogItem) (*models.MealLogItem, error) {
	var updated models.MealLogItem
	if err := b.do(ctx, http.MethodPut, fmt.Sprintf("/meal-log-items/%d", id), token, item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (b *BackendClient) DeleteMealLogItem(ctx context.Context, token string, id uint) error {
	return b.do(ctx, http.MethodDelete, fmt.Sprintf("/meal-log-items/%d", id), token, nil, nil)
}

func (b *BackendClient) ListItemsByMealLog(ctx context.Context, token string, mealLogID uint) ([]models.MealLogItem, error) {
	var items []models.MealLogItem
	err := b.do(ctx, http.MethodGet, fmt.Sprintf("/meal-log-items/meal-log/%d", mealLogID), token, nil, &items)
	return items, err
}

func (b *BackendClient) ListItemsByFood(ctx context.Context, token string, foodID uint) ([]models.MealLogItem, error) {
	var items []models.MealLogItem
	err := b.do(ctx, http.MethodGet, fmt.Sprintf("/meal-log-items/food/%d", foodID), token, nil, &items)
	return items, err
}

// ---------- nutrition aggregates ----------

func (b *BackendClient) DailyNutrition(ctx context.Context, token, date string) (*models.DailyNutritionSummary, error) {
	var summary models.DailyNutritionSummary
	if err := b.do(ctx, http.MethodGet, "/nutrition/date/"+date, token, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (b *BackendClient) MealNutrition(ctx context.Context, token string, mealLogID uint) (*models.MealNutritionSummary, error) {
	var summary models.MealNutritionSummary
	if err := b.do(ctx, http.MethodGet, fmt.Sprintf("/nutrition/meal/%d", mealLogID), token, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ---------- auth & profile ----------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type UpdateProfileRequest struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (b *BackendClient) Login(ctx context.Context, req LoginRequest) (*models.AuthSession, error) {
	var session models.AuthSession
	if err := b.do(ctx, http.MethodPost, "/auth/login", "", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (b *BackendClient) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	if err := b.do(ctx, http.MethodPost, "/auth/register", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CookieLogin exchanges a backend session cookie for token ids.
func (b *BackendClient) CookieLogin(ctx context.Context, cookie string) (*models.AuthSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/auth/cookie-login", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Cookie", cookie)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &APIError{
			Kind:    ErrKindUnreachable,
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("backend unreachable: %v", err),
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}
	var session models.AuthSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}
	return &session, nil
}

func (b *BackendClient) Logout(ctx context.Context, token string) error {
	return b.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

func (b *BackendClient) Refresh(ctx context.Context, refreshTokenID string) (*models.AuthSession, error) {
	var session models.AuthSession
	body := map[string]string{"refresh_token_id": refreshTokenID}
	if err := b.do(ctx, http.MethodPost, "/auth/refresh", "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (b *BackendClient) AuthStatus(ctx context.Context, token string) (*models.AuthSession, error) {
	var session models.AuthSession
	if err := b.do(ctx, http.MethodGet, "/auth/status", token, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (b *BackendClient) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := b.do(ctx, http.MethodGet, "/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *BackendClient) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := b.do(ctx, http.MethodPut, "/profile", token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *BackendClient) UpdatePassword(ctx context.Context, token string, req UpdatePasswordRequest) error {
	return b.do(ctx, http.MethodPut, "/password", token, req, nil)
}

func (b *BackendClient) DeleteAccount(ctx context.Context, token string) error {
	return b.do(ctx, http.MethodDelete, "/account", token, nil, nil)
}
