package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/services"
	"github.com/momokapoolz/calories-app-gateway/utils"
)

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

// GetDaily returns the aggregate for one date. The date is validated before
// any backend call; calendar-invalid dates like 2024-02-30 are rejected.
func (h *NutritionController) GetDaily(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, err := utils.ValidateDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.Svc.Daily(c.Request.Context(), tokenFromCtx(c), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *NutritionController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealLogID, ok := idParam(c, "mealLogId")
	if !ok {
		return
	}

	summary, err := h.Svc.Meal(c.Request.Context(), tokenFromCtx(c), userID, mealLogID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWeek returns seven days ending today (or at ?end=YYYY-MM-DD), oldest
// first. Days with no logged data come back as zero-value entries.
func (h *NutritionController) GetWeek(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	end := time.Now()
	if v := c.Query("end"); v != "" {
		date, err := utils.ValidateDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		end, _ = time.Parse("2006-01-02", date)
	}

	week, err := h.Svc.Week(c.Request.Context(), tokenFromCtx(c), userID, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}
