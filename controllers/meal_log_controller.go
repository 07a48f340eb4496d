package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/models"
	"github.com/momokapoolz/calories-app-gateway/services"
	"github.com/momokapoolz/calories-app-gateway/utils"
)

type MealLogController struct {
	Svc *services.MealLogService
}

func NewMealLogController(svc *services.MealLogService) *MealLogController {
	return &MealLogController{Svc: svc}
}

type MealLogInput struct {
	MealType models.MealType               `json:"meal_type" binding:"required"`
	Items    []services.MealLogItemRequest `json:"items"`
}

func (h *MealLogController) Create(c *gin.Context) {
	var input MealLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be Breakfast, Lunch, Dinner or Snacks"})
		return
	}

	meal, err := h.Svc.Create(c.Request.Context(), tokenFromCtx(c), services.CreateMealLogRequest{
		MealType: input.MealType,
		Items:    input.Items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealLogController) List(c *gin.Context) {
	meals, err := h.Svc.List(c.Request.Context(), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealLogController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	meal, err := h.Svc.Get(c.Request.Context(), tokenFromCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealLogController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input MealLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(input.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be Breakfast, Lunch, Dinner or Snacks"})
		return
	}

	meal, err := h.Svc.Update(c.Request.Context(), tokenFromCtx(c), id, services.CreateMealLogRequest{
		MealType: input.MealType,
		Items:    input.Items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealLogController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), tokenFromCtx(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal log deleted"})
}

func (h *MealLogController) ListByDate(c *gin.Context) {
	date, err := utils.ValidateDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals, err := h.Svc.ListByDate(c.Request.Context(), tokenFromCtx(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// AddItems bulk-adds items to an existing meal log.
func (h *MealLogController) AddItems(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var items []services.MealLogItemRequest
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one item is required"})
		return
	}

	meal, err := h.Svc.AddItems(c.Request.Context(), tokenFromCtx(c), id, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}
