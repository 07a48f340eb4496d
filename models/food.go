package models

// FoodSource distinguishes user-entered foods from ones imported from an
// external food database.
type FoodSource string

const (
	FoodSourceUser     FoodSource = "user"
	FoodSourceExternal FoodSource = "external"
)

type Food struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	ServingSizeGram float64    `json:"serving_size_gram"`
	Calories        float64    `json:"calories"`
	Protein         float64    `json:"protein"`
	Carbs           float64    `json:"carbs"`
	Fat             float64    `json:"fat"`
	Source          FoodSource `json:"source"`
	UserID          *uint      `json:"user_id,omitempty"`
}

// Nutrient is a catalog entry (vitamin, mineral, macro), not user-owned.
type Nutrient struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// FoodNutrient joins a Food to a Nutrient with a per-100g amount. The
// backend enforces at most one row per (food_id, nutrient_id) pair.
type FoodNutrient struct {
	ID            uint    `json:"id"`
	FoodID        uint    `json:"food_id"`
	NutrientID    uint    `json:"nutrient_id"`
	AmountPer100g float64 `json:"amount_per_100g"`
}
