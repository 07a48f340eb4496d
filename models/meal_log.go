package models

import "time"

// MealType is one of the four fixed meal slots.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnacks    MealType = "Snacks"
)

// ValidMealType reports whether t is one of the four known slots.
func ValidMealType(t MealType) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnacks:
		return true
	}
	return false
}

// MealLog is one logged eating occasion for one user.
type MealLog struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	MealType  MealType      `json:"meal_type"`
	Items     []MealLogItem `json:"items"`
}

// MealLogItem is one food entry within a MealLog. Quantity is a serving
// count and QuantityGrams an absolute mass; the two are independently
// editable and no relationship between them is enforced.
type MealLogItem struct {
	ID            uint    `json:"id"`
	MealLogID     uint    `json:"meal_log_id"`
	FoodID        uint    `json:"food_id"`
	Quantity      float64 `json:"quantity"`
	QuantityGrams float64 `json:"quantity_grams"`
}
