package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/models"
	"github.com/momokapoolz/calories-app-gateway/services"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

func (h *FoodController) ListFoods(c *gin.Context) {
	foods, err := h.Svc.List(c.Request.Context(), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *FoodController) CreateFood(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), tokenFromCtx(c), food)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FoodController) GetFood(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	food, err := h.Svc.Get(c.Request.Context(), tokenFromCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *FoodController) UpdateFood(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), tokenFromCtx(c), id, food)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FoodController) DeleteFood(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), tokenFromCtx(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
