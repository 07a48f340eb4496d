package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/models"
	"github.com/momokapoolz/calories-app-gateway/services"
)

type FoodNutrientController struct {
	Svc *services.FoodService
}

func NewFoodNutrientController(svc *services.FoodService) *FoodNutrientController {
	return &FoodNutrientController{Svc: svc}
}

func (h *FoodNutrientController) List(c *gin.Context) {
	rows, err := h.Svc.ListFoodNutrients(c.Request.Context(), tokenFromCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *FoodNutrientController) Create(c *gin.Context) {
	var fn models.FoodNutrient
	if err := c.ShouldBindJSON(&fn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Svc.CreateFoodNutrient(c.Request.Context(), tokenFromCtx(c), fn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FoodNutrientController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	fn, err := h.Svc.GetFoodNutrient(c.Request.Context(), tokenFromCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fn)
}

func (h *FoodNutrientController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var fn models.FoodNutrient
	if err := c.ShouldBindJSON(&fn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateFoodNutrient(c.Request.Context(), tokenFromCtx(c), id, fn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FoodNutrientController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.DeleteFoodNutrient(c.Request.Context(), tokenFromCtx(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food nutrient deleted"})
}

func (h *FoodNutrientController) ListByFood(c *gin.Context) {
	foodID, ok := idParam(c, "foodId")
	if !ok {
		return
	}

	rows, err := h.Svc.NutrientsForFood(c.Request.Context(), tokenFromCtx(c), foodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
