package models

// MacroNutrientBreakdown is one macro row (protein/carbs/fat/energy) of a
// daily or per-meal aggregate.
type MacroNutrientBreakdown struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// MicroNutrientBreakdown is one vitamin/mineral row of an aggregate.
type MicroNutrientBreakdown struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// MealBreakdown is the per-meal slice of a daily summary. Its total_* fields
// are optional in backend responses; absent fields decode to zero.
type MealBreakdown struct {
	MealLogID     uint     `json:"meal_log_id"`
	MealType      MealType `json:"meal_type"`
	TotalCalories float64  `json:"total_calories"`
	TotalProtein  float64  `json:"total_protein"`
	TotalCarbs    float64  `json:"total_carbs"`
	TotalFat      float64  `json:"total_fat"`
}

// DailyNutritionSummary is derived server-side and never persisted here.
type DailyNutritionSummary struct {
	Date           string                   `json:"date"`
	UserID         uint                     `json:"user_id"`
	TotalCalories  float64                  `json:"total_calories"`
	MacroBreakdown []MacroNutrientBreakdown `json:"macro_nutrient_break_down"`
	MicroBreakdown []MicroNutrientBreakdown `json:"micro_nutrient_break_down"`
	MealBreakdown  []MealBreakdown          `json:"meal_breakdown"`
}

// MealNutritionSummary is the aggregate for a single meal log.
type MealNutritionSummary struct {
	MealLogID      uint                     `json:"meal_log_id"`
	MealType       MealType                 `json:"meal_type"`
	TotalCalories  float64                  `json:"total_calories"`
	MacroBreakdown []MacroNutrientBreakdown `json:"macro_nutrient_break_down"`
	MicroBreakdown []MicroNutrientBreakdown `json:"micro_nutrient_break_down"`
}

// MacroTotals is the output of the meal-totals reducer.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// WeeklyNutritionData is one day of the seven-day trend, oldest first.
type WeeklyNutritionData struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"total_calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
}
