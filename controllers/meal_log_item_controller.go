package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/models"
	"github.com/momokapoolz/calories-app-gateway/services"
)

type MealLogItemController struct {
	Svc *services.MealLogService
}

func NewMealLogItemController(svc *services.MealLogService) *MealLogItemController {
	return &MealLogItemController{Svc: svc}
}

func (h *MealLogItemController) Create(c *gin.Context) {
	var item models.MealLogItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Svc.CreateItem(c.Request.Context(), tokenFromCtx(c), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MealLogItemController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.Svc.GetItem(c.Request.Context(), tokenFromCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update edits quantity and/or quantity_grams. The two fields have no
// enforced relationship; both pass through exactly as submitted.
func (h *MealLogItemController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var item models.MealLogItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateItem(c.Request.Context(), tokenFromCtx(c), id, item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MealLogItemController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.DeleteItem(c.Request.Context(), tokenFromCtx(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal log item deleted"})
}

func (h *MealLogItemController) ListByMealLog(c *gin.Context) {
	mealLogID, ok := idParam(c, "mealLogId")
	if !ok {
		return
	}

	items, err := h.Svc.ItemsByMealLog(c.Request.Context(), tokenFromCtx(c), mealLogID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MealLogItemController) ListByFood(c *gin.Context) {
	foodID, ok := idParam(c, "foodId")
	if !ok {
		return
	}

	items, err := h.Svc.ItemsByFood(c.Request.Context(), tokenFromCtx(c), foodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
